package services

import (
	"context"
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/dto"
	"github.com/shopspring/decimal"
)

// PostingReaderSvc defines read operations for journal entries.
type PostingReaderSvc interface {
	// GetEntryByID retrieves an entry; withLines controls whether the
	// lines are populated.
	GetEntryByID(ctx context.Context, entryID string, withLines bool) (*domain.JournalEntry, error)

	// ListEntries retrieves entries, optionally scoped to a period.
	ListEntries(ctx context.Context, periodID *string) ([]domain.JournalEntry, error)
}

// PostingWriterSvc defines write operations for journal entries.
type PostingWriterSvc interface {
	// RecordEntry validates and persists a journal entry, draft or posted,
	// running duplicate detection and optionally scheduling a reversal.
	RecordEntry(ctx context.Context, req dto.RecordEntryRequest) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry and cascades its lines. Access-control
	// gating is the caller's responsibility.
	DeleteEntry(ctx context.Context, entryID string, deletedBy string) error
}

// AdjustingHelperSvc provides period-end adjusting-entry conveniences
// built on RecordEntry.
type AdjustingHelperSvc interface {
	// AdjustSuppliesUsed records usage of supplies down to the counted
	// remaining amount. Returns nil without error when nothing was used.
	AdjustSuppliesUsed(ctx context.Context, date time.Time, remaining decimal.Decimal, recordedBy string) (*domain.JournalEntry, error)

	// AdjustPrepaidToExpense amortizes a prepaid account into an expense.
	AdjustPrepaidToExpense(ctx context.Context, date time.Time, prepaidName, expenseName string, amount decimal.Decimal, recordedBy string) (*domain.JournalEntry, error)

	// AdjustDepreciation records periodic depreciation against a contra
	// asset.
	AdjustDepreciation(ctx context.Context, date time.Time, assetName, contraName string, amount decimal.Decimal, recordedBy string) (*domain.JournalEntry, error)
}

// PostingSvcFacade combines all journal posting interfaces.
type PostingSvcFacade interface {
	PostingReaderSvc
	PostingWriterSvc
	AdjustingHelperSvc
}
