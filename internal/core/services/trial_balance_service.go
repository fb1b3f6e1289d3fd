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
	"github.com/quietbooks/quietbooks/internal/utils/accounting"
)

// trialBalanceService implements TrialBalanceSvcFacade. It is the single
// calculator every statement is derived from.
type trialBalanceService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	periodRepo    portsrepo.PeriodRepositoryFacade
}

// NewTrialBalanceService creates a new trial balance service.
func NewTrialBalanceService(reportingRepo portsrepo.ReportingRepository, periodRepo portsrepo.PeriodRepositoryFacade) portssvc.TrialBalanceSvcFacade {
	return &trialBalanceService{reportingRepo: reportingRepo, periodRepo: periodRepo}
}

func (s *trialBalanceService) Compute(ctx context.Context, opts portssvc.TrialBalanceOptions) ([]domain.TrialBalanceRow, error) {
	balances, err := s.reportingRepo.AggregateBalances(ctx, portsrepo.BalanceQuery{
		FromDate:         opts.FromDate,
		UpToDate:         opts.UpToDate,
		PeriodID:         opts.PeriodID,
		IncludeTemporary: opts.IncludeTemporary,
		ExcludeClosing:   opts.ExcludeClosing,
	})
	if err != nil {
		s.LogError(ctx, "Failed to aggregate balances", "error", err)
		return nil, err
	}

	rows := make([]domain.TrialBalanceRow, 0, len(balances))
	for _, b := range balances {
		netDebit, netCredit := accounting.ClassifyBalance(b.Account.NormalSide, b.TotalDebit, b.TotalCredit)
		rows = append(rows, domain.TrialBalanceRow{
			AccountID:  b.Account.AccountID,
			Code:       b.Account.Code,
			Name:       b.Account.Name,
			Category:   b.Account.Category,
			NormalSide: b.Account.NormalSide,
			NetDebit:   netDebit,
			NetCredit:  netCredit,
		})
	}
	return rows, nil
}

func (s *trialBalanceService) CaptureSnapshot(ctx context.Context, stage string, asOf time.Time) (*domain.TrialBalanceSnapshot, error) {
	if stage == "" {
		return nil, fmt.Errorf("%w: snapshot stage is required", apperrors.ErrValidation)
	}
	period, err := ensureCurrentPeriod(ctx, s.periodRepo)
	if err != nil {
		return nil, err
	}

	rows, err := s.Compute(ctx, portssvc.TrialBalanceOptions{
		UpToDate:         &asOf,
		PeriodID:         &period.PeriodID,
		IncludeTemporary: true,
	})
	if err != nil {
		return nil, err
	}

	snapshot := domain.TrialBalanceSnapshot{
		SnapshotID: uuid.NewString(),
		PeriodID:   period.PeriodID,
		Stage:      stage,
		AsOf:       asOf,
		CapturedOn: time.Now(),
		Rows:       rows,
	}
	if err := s.reportingRepo.SaveTrialBalanceSnapshot(ctx, snapshot); err != nil {
		s.LogError(ctx, "Failed to save trial balance snapshot", "stage", stage, "error", err)
		return nil, err
	}
	s.LogInfo(ctx, "Trial balance snapshot captured",
		"periodID", period.PeriodID, "stage", stage, "rows", len(rows))
	return &snapshot, nil
}

func (s *trialBalanceService) ListSnapshots(ctx context.Context, stage *string) ([]domain.TrialBalanceSnapshot, error) {
	period, err := ensureCurrentPeriod(ctx, s.periodRepo)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.ListTrialBalanceSnapshots(ctx, period.PeriodID, stage)
}
