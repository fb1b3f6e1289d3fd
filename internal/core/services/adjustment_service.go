package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quietbooks/quietbooks/internal/apperrors"
	"github.com/quietbooks/quietbooks/internal/core/domain"
	portsrepo "github.com/quietbooks/quietbooks/internal/core/ports/repositories"
	portssvc "github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/dto"
)

// adjustmentService implements AdjustmentSvcFacade. Requests track intent;
// money only moves when a request is linked to a posted entry.
type adjustmentService struct {
	BaseService
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade
	journalRepo    portsrepo.JournalRepositoryFacade
	periodRepo     portsrepo.PeriodRepositoryFacade
	auditRepo      portsrepo.AuditRepositoryFacade
	notifier       portssvc.CycleNotifier
}

// NewAdjustmentService creates a new adjustment workflow service.
func NewAdjustmentService(
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	auditRepo portsrepo.AuditRepositoryFacade,
	notifier portssvc.CycleNotifier,
) portssvc.AdjustmentSvcFacade {
	return &adjustmentService{
		adjustmentRepo: adjustmentRepo,
		journalRepo:    journalRepo,
		periodRepo:     periodRepo,
		auditRepo:      auditRepo,
		notifier:       notifier,
	}
}

func (s *adjustmentService) CreateAdjustmentRequest(ctx context.Context, req dto.CreateAdjustmentRequest) (*domain.AdjustmentRequest, error) {
	period, err := ensureCurrentPeriod(ctx, s.periodRepo)
	if err != nil {
		return nil, err
	}
	requestedOn := time.Now()
	if req.RequestedOn != "" {
		d, err := time.Parse(dateLayout, req.RequestedOn)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.RequestedOn)
		}
		requestedOn = d
	}

	request := domain.AdjustmentRequest{
		RequestID:   uuid.NewString(),
		PeriodID:    period.PeriodID,
		Description: req.Description,
		RequestedOn: requestedOn,
		RequestedBy: req.RequestedBy,
		Status:      domain.AdjustmentRequested,
		Notes:       req.Notes,
	}
	if err := s.adjustmentRepo.SaveAdjustmentRequest(ctx, request); err != nil {
		s.LogError(ctx, "Failed to save adjustment request", "error", err)
		return nil, err
	}
	s.LogInfo(ctx, "Adjustment request opened", "requestID", request.RequestID)
	return &request, nil
}

func (s *adjustmentService) ListAdjustmentRequests(ctx context.Context) ([]domain.AdjustmentRequest, error) {
	period, err := ensureCurrentPeriod(ctx, s.periodRepo)
	if err != nil {
		return nil, err
	}
	return s.adjustmentRepo.ListAdjustmentRequests(ctx, period.PeriodID)
}

func (s *adjustmentService) UpdateAdjustmentStatus(ctx context.Context, requestID string, status domain.AdjustmentStatus, notes *string) error {
	switch status {
	case domain.AdjustmentDraft, domain.AdjustmentRequested, domain.AdjustmentApproved, domain.AdjustmentPosted:
	default:
		return fmt.Errorf("%w: unknown adjustment status %q", apperrors.ErrValidation, status)
	}
	if _, err := s.adjustmentRepo.FindAdjustmentRequestByID(ctx, requestID); err != nil {
		return err
	}
	return s.adjustmentRepo.UpdateAdjustmentStatus(ctx, requestID, status, notes)
}

// LinkAdjustmentToEntry marks the request Posted against the entry that
// satisfied it. Linking requires an existing posted entry.
func (s *adjustmentService) LinkAdjustmentToEntry(ctx context.Context, requestID string, entryID string, approvedBy string) error {
	request, err := s.adjustmentRepo.FindAdjustmentRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.Status != domain.Posted {
		return fmt.Errorf("%w: entry %s is not posted", apperrors.ErrValidation, entryID)
	}

	now := time.Now()
	if err := s.adjustmentRepo.LinkAdjustmentToEntry(ctx, requestID, entryID, approvedBy, now, domain.AdjustmentPosted); err != nil {
		s.LogError(ctx, "Failed to link adjustment to entry", "requestID", requestID, "error", err)
		return err
	}

	if s.auditRepo != nil {
		audit := newAuditRecord(approvedBy, domain.AuditAdjustmentLinked, map[string]any{
			"requestID": requestID,
			"entryID":   entryID,
		})
		if err := s.auditRepo.AppendAuditLog(ctx, audit); err != nil {
			s.LogWarn(ctx, "Failed to append audit record", "error", err)
		}
	}
	if s.notifier != nil {
		if err := s.notifier.AdjustmentApproved(ctx, request.PeriodID); err != nil {
			s.LogWarn(ctx, "Cycle notification failed", "requestID", requestID, "error", err)
		}
	}
	s.LogInfo(ctx, "Adjustment linked to entry", "requestID", requestID, "entryID", entryID)
	return nil
}
