package repositories

import (
	"context"
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
)

// DuplicateProbe carries the identifying fields used for duplicate
// detection: entries in the same period with identical date, description,
// refs and status are candidates; the caller then compares line pairs.
type DuplicateProbe struct {
	PeriodID    string
	Date        time.Time
	Description string
	DocumentRef string
	ExternalRef string
	Status      domain.EntryStatus
}

// EntryFilter narrows entry listings.
type EntryFilter struct {
	PeriodID *string
	FromDate *time.Time
	UpToDate *time.Time
	Status   *domain.EntryStatus
}

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindEntryByID retrieves an entry without its lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of an entry in insertion order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntries retrieves entries matching the filter, ordered by date
	// then creation time, lines not populated.
	ListEntries(ctx context.Context, filter EntryFilter) ([]domain.JournalEntry, error)

	// FindDuplicateCandidates retrieves posted entries matching the probe,
	// lines populated, for line-level duplicate comparison.
	FindDuplicateCandidates(ctx context.Context, probe DuplicateProbe) ([]domain.JournalEntry, error)

	// CountLines returns the total number of journal lines stored.
	CountLines(ctx context.Context) (int64, error)
}

// JournalWriter defines write operations for journal data. Each method
// runs as a single database transaction: all rows or none.
type JournalWriter interface {
	// SaveEntry persists an entry with its lines, the optional reversing
	// queue row and the audit record atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, scheduleReverseOn *time.Time, audit domain.AuditLogEntry) error

	// DeleteEntry removes an entry, cascades its lines and writes the audit
	// record atomically.
	DeleteEntry(ctx context.Context, entryID string, audit domain.AuditLogEntry) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
