package repositories

import (
	"context"
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceQuery scopes a trial-balance aggregation. Only posted entries are
// aggregated; accounts with no matching lines still appear with zero sums.
type BalanceQuery struct {
	FromDate         *time.Time
	UpToDate         *time.Time
	PeriodID         *string
	IncludeTemporary bool
	ExcludeClosing   bool
}

// AccountBalance is the raw aggregate for one account before
// classification into net debit / net credit columns.
type AccountBalance struct {
	Account     domain.Account
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// CashActivity is one posted entry touching the cash account, with all of
// its lines, used for cash-flow classification.
type CashActivity struct {
	Entry domain.JournalEntry
	Lines []domain.JournalLine
}

// ReportingRepository aggregates journal lines for reports.
type ReportingRepository interface {
	// AggregateBalances sums debits and credits per active account over
	// posted entries matching the query.
	AggregateBalances(ctx context.Context, q BalanceQuery) ([]AccountBalance, error)

	// ListCashActivity retrieves posted entries in the date range that have
	// at least one line against the given account, lines populated, ordered
	// by date then entry.
	ListCashActivity(ctx context.Context, cashAccountID string, start, end time.Time, periodID *string) ([]CashActivity, error)

	// SaveTrialBalanceSnapshot stores a frozen trial balance, replacing any
	// earlier snapshot with the same period, stage and as-of date.
	SaveTrialBalanceSnapshot(ctx context.Context, snapshot domain.TrialBalanceSnapshot) error

	// ListTrialBalanceSnapshots retrieves a period's snapshots, optionally
	// filtered by stage, newest first.
	ListTrialBalanceSnapshots(ctx context.Context, periodID string, stage *string) ([]domain.TrialBalanceSnapshot, error)
}
