package services

import (
	"context"
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
)

// TrialBalanceOptions scopes a trial-balance computation.
type TrialBalanceOptions struct {
	FromDate         *time.Time
	UpToDate         *time.Time
	PeriodID         *string
	IncludeTemporary bool
	ExcludeClosing   bool
}

// TrialBalanceSvcFacade computes classified account balances.
type TrialBalanceSvcFacade interface {
	// Compute aggregates posted journal lines into per-account net debit /
	// net credit rows. It never fails on empty data; every active account
	// appears, zero-balance rows included.
	Compute(ctx context.Context, opts TrialBalanceOptions) ([]domain.TrialBalanceRow, error)

	// CaptureSnapshot freezes the current period's trial balance as of a
	// date under a stage label, replacing an earlier capture of the same
	// stage and date.
	CaptureSnapshot(ctx context.Context, stage string, asOf time.Time) (*domain.TrialBalanceSnapshot, error)

	// ListSnapshots retrieves the current period's snapshots, optionally
	// filtered by stage, newest first.
	ListSnapshots(ctx context.Context, stage *string) ([]domain.TrialBalanceSnapshot, error)
}

// StatementSvcFacade derives financial statements from the calculator.
type StatementSvcFacade interface {
	// GenerateIncomeStatement reports pre-closing revenue and expense
	// figures for the date range.
	GenerateIncomeStatement(ctx context.Context, start, end time.Time, periodID *string) (*domain.IncomeStatementReport, error)

	// GenerateBalanceSheet reports financial position as of a date. While
	// the current period's closing step is incomplete, unclosed net income
	// is included in equity as a plug.
	GenerateBalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)

	// GenerateCashFlow classifies cash movements in the date range into
	// Operating, Investing and Financing.
	GenerateCashFlow(ctx context.Context, start, end time.Time) (*domain.CashFlowReport, error)
}
