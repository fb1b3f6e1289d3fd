package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quietbooks/quietbooks/internal/apperrors"
	"github.com/quietbooks/quietbooks/internal/core/domain"
	portsrepo "github.com/quietbooks/quietbooks/internal/core/ports/repositories"
	portssvc "github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/dto"
)

// periodService implements PeriodSvcFacade and CycleNotifier. All cycle
// advancement triggered by other services flows through the notifier
// methods so that every transition is visible in one place.
type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
	auditRepo  portsrepo.AuditRepositoryFacade
}

// NewPeriodService creates a new period service.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade, auditRepo portsrepo.AuditRepositoryFacade) *periodService {
	return &periodService{periodRepo: periodRepo, auditRepo: auditRepo}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)
var _ portssvc.CycleNotifier = (*periodService)(nil)

func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest) (*domain.Period, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: period name is required", apperrors.ErrValidation)
	}
	period := domain.Period{
		PeriodID: uuid.NewString(),
		Name:     req.Name,
	}
	if req.StartDate != "" {
		d, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date %q", apperrors.ErrValidation, req.StartDate)
		}
		period.StartDate = &d
	}
	if req.EndDate != "" {
		d, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date %q", apperrors.ErrValidation, req.EndDate)
		}
		period.EndDate = &d
	}
	if period.StartDate != nil && period.EndDate != nil && period.EndDate.Before(*period.StartDate) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}

	id, err := s.periodRepo.SavePeriod(ctx, period)
	if err != nil {
		s.LogError(ctx, "Failed to save period", "name", req.Name, "error", err)
		return nil, err
	}
	period.PeriodID = id
	if err := s.periodRepo.EnsureCycleSteps(ctx, id); err != nil {
		return nil, err
	}
	if req.MakeCurrent {
		if err := s.periodRepo.SetCurrentPeriod(ctx, id); err != nil {
			return nil, err
		}
		period.IsCurrent = true
	}
	s.appendAudit(ctx, "", domain.AuditPeriodCreated, map[string]any{
		"periodID": id, "name": period.Name,
	})
	s.LogInfo(ctx, "Period created", "periodID", id, "name", period.Name)
	return &period, nil
}

func (s *periodService) GetCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	return ensureCurrentPeriod(ctx, s.periodRepo)
}

func (s *periodService) RefreshCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	return s.periodRepo.FindCurrentPeriod(ctx)
}

func (s *periodService) SetActivePeriod(ctx context.Context, periodID string) error {
	if _, err := s.periodRepo.FindPeriodByID(ctx, periodID); err != nil {
		return err
	}
	return s.periodRepo.SetCurrentPeriod(ctx, periodID)
}

func (s *periodService) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	return s.periodRepo.ListPeriods(ctx)
}

func (s *periodService) GetCycleStatus(ctx context.Context, periodID string) ([]domain.CycleStepStatus, error) {
	return s.periodRepo.GetCycleStatus(ctx, periodID)
}

func (s *periodService) SetCycleStepStatus(ctx context.Context, periodID string, step int, status domain.CycleStepState, note string) error {
	if step < 1 || step > domain.AccountingCycleStepCount {
		return fmt.Errorf("%w: step %d out of range", apperrors.ErrValidation, step)
	}
	switch status {
	case domain.StepPending, domain.StepInProgress, domain.StepCompleted:
	default:
		return fmt.Errorf("%w: unknown step status %q", apperrors.ErrValidation, status)
	}

	// Completing a step implies every earlier step is done.
	if status == domain.StepCompleted {
		snapshot, err := s.periodRepo.GetCycleStatus(ctx, periodID)
		if err != nil {
			return err
		}
		for _, st := range snapshot {
			if st.Step >= step || st.Status == domain.StepCompleted {
				continue
			}
			if err := s.periodRepo.SetCycleStepStatus(ctx, periodID, st.Step, domain.StepCompleted, "Auto-completed"); err != nil {
				return err
			}
		}
	}

	if err := s.periodRepo.SetCycleStepStatus(ctx, periodID, step, status, note); err != nil {
		s.LogError(ctx, "Failed to update cycle step", "periodID", periodID, "step", step, "error", err)
		return err
	}
	s.appendAudit(ctx, "", domain.AuditCycleStepUpdated, map[string]any{
		"periodID": periodID, "step": step, "status": string(status),
	})

	// Completing the closing-entries step closes the period.
	if step == domain.StepClosingEntries && status == domain.StepCompleted {
		if err := s.periodRepo.MarkPeriodClosed(ctx, periodID); err != nil {
			return err
		}
		s.LogInfo(ctx, "Period closed", "periodID", periodID)
	}
	return nil
}

func (s *periodService) ResetCycleSteps(ctx context.Context, periodID string, step *int) error {
	if step != nil && (*step < 1 || *step > domain.AccountingCycleStepCount) {
		return fmt.Errorf("%w: step %d out of range", apperrors.ErrValidation, *step)
	}
	return s.periodRepo.ResetCycleSteps(ctx, periodID, step)
}

// EntryPosted advances the journalizing steps. Adjusting entries also
// complete the adjusting step and start the adjusted trial balance.
func (s *periodService) EntryPosted(ctx context.Context, entry domain.JournalEntry) error {
	if entry.IsClosing || entry.IsReversing {
		return nil
	}
	if err := s.SetCycleStepStatus(ctx, entry.PeriodID, domain.StepJournalize, domain.StepCompleted, "Entries recorded in journal"); err != nil {
		return err
	}
	if err := s.SetCycleStepStatus(ctx, entry.PeriodID, domain.StepPostToLedger, domain.StepCompleted, "Entries posted to ledger accounts"); err != nil {
		return err
	}
	if !entry.IsAdjusting {
		return nil
	}
	if err := s.SetCycleStepStatus(ctx, entry.PeriodID, domain.StepAdjustingEntries, domain.StepCompleted, "Adjusting entries recorded"); err != nil {
		return err
	}
	return s.SetCycleStepStatus(ctx, entry.PeriodID, domain.StepAdjustedTrialBal, domain.StepInProgress, "Adjusted trial balance pending")
}

func (s *periodService) StatementsGenerated(ctx context.Context, periodID string) error {
	return s.SetCycleStepStatus(ctx, periodID, domain.StepFinancialStatements, domain.StepCompleted, "Financial statements prepared")
}

// ClosingPosted completes the closing step, which also closes the period,
// and starts the post-closing trial balance.
func (s *periodService) ClosingPosted(ctx context.Context, periodID string, entryCount int) error {
	note := fmt.Sprintf("Closing entries posted (%d)", entryCount)
	if err := s.SetCycleStepStatus(ctx, periodID, domain.StepClosingEntries, domain.StepCompleted, note); err != nil {
		return err
	}
	return s.SetCycleStepStatus(ctx, periodID, domain.StepPostClosingTrialBal, domain.StepInProgress, "Verify post-closing trial balance")
}

func (s *periodService) ReversalsPosted(ctx context.Context, periodID string, count int) error {
	note := fmt.Sprintf("Reversing entries posted (%d)", count)
	return s.SetCycleStepStatus(ctx, periodID, domain.StepScheduleReversing, domain.StepCompleted, note)
}

func (s *periodService) AdjustmentApproved(ctx context.Context, periodID string) error {
	return s.SetCycleStepStatus(ctx, periodID, domain.StepAdjustingEntries, domain.StepInProgress, "Adjustment approved, entry pending")
}

func (s *periodService) appendAudit(ctx context.Context, user, action string, details map[string]any) {
	if s.auditRepo == nil {
		return
	}
	if err := s.auditRepo.AppendAuditLog(ctx, newAuditRecord(user, action, details)); err != nil {
		s.LogWarn(ctx, "Failed to append audit record", "action", action, "error", err)
	}
}

// ensureCurrentPeriod returns the current period, creating and seeding a
// calendar-month period when the book has none yet.
func ensureCurrentPeriod(ctx context.Context, repo portsrepo.PeriodRepositoryFacade) (*domain.Period, error) {
	period, err := repo.FindCurrentPeriod(ctx)
	if err == nil {
		return period, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	fresh := domain.Period{
		PeriodID:  uuid.NewString(),
		Name:      now.Format("January 2006"),
		StartDate: &start,
		EndDate:   &end,
	}
	id, err := repo.SavePeriod(ctx, fresh)
	if err != nil {
		return nil, err
	}
	fresh.PeriodID = id
	if err := repo.EnsureCycleSteps(ctx, id); err != nil {
		return nil, err
	}
	if err := repo.SetCurrentPeriod(ctx, id); err != nil {
		return nil, err
	}
	fresh.IsCurrent = true
	return &fresh, nil
}
