package repositories

import (
	"context"
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
)

// PeriodReader defines read operations for accounting periods.
type PeriodReader interface {
	// FindPeriodByID retrieves a period by its unique identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)

	// FindPeriodByName retrieves a period by its unique name.
	FindPeriodByName(ctx context.Context, name string) (*domain.Period, error)

	// FindCurrentPeriod retrieves the period flagged current, or
	// apperrors.ErrNotFound when none is.
	FindCurrentPeriod(ctx context.Context) (*domain.Period, error)

	// ListPeriods retrieves all periods ordered by start date then name.
	ListPeriods(ctx context.Context) ([]domain.Period, error)
}

// PeriodWriter defines write operations for accounting periods.
type PeriodWriter interface {
	// SavePeriod upserts a period by name and seeds its cycle steps.
	SavePeriod(ctx context.Context, period domain.Period) (string, error)

	// SetCurrentPeriod flags the given period current and clears the flag
	// everywhere else, in one transaction.
	SetCurrentPeriod(ctx context.Context, periodID string) error

	// MarkPeriodClosed sets the is_closed flag.
	MarkPeriodClosed(ctx context.Context, periodID string) error
}

// CycleReader defines read operations for cycle step state.
type CycleReader interface {
	// GetCycleStatus returns the ordered ten-row snapshot for the period,
	// seeding missing step rows as Pending.
	GetCycleStatus(ctx context.Context, periodID string) ([]domain.CycleStepStatus, error)
}

// CycleWriter defines write operations for cycle step state.
type CycleWriter interface {
	// EnsureCycleSteps inserts Pending rows for any steps the period is
	// missing.
	EnsureCycleSteps(ctx context.Context, periodID string) error

	// SetCycleStepStatus persists the step transition with a timestamp and
	// updates the period's current step, in one transaction.
	SetCycleStepStatus(ctx context.Context, periodID string, step int, status domain.CycleStepState, note string) error

	// ResetCycleSteps resets the given step, or all steps when step is nil,
	// back to Pending.
	ResetCycleSteps(ctx context.Context, periodID string, step *int) error
}

// PeriodRepositoryFacade combines period and cycle repository interfaces.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
	CycleReader
	CycleWriter
}

// ReversingReader defines read operations for the reversing queue.
type ReversingReader interface {
	// ListQueue retrieves queue items ordered by reverse_on date. dueBy,
	// when non-nil, restricts to items due at or before that date; status,
	// when non-nil, restricts to that status.
	ListQueue(ctx context.Context, status *domain.ReversingStatus, dueBy *time.Time) ([]domain.ReversingQueueItem, error)
}

// ReversingWriter defines write operations for the reversing queue.
type ReversingWriter interface {
	// Enqueue inserts a Pending queue item.
	Enqueue(ctx context.Context, item domain.ReversingQueueItem) error

	// MarkPosted transitions a Pending item to Posted recording the
	// reversal's entry ID. The transition happens exactly once; a second
	// call returns apperrors.ErrConflict.
	MarkPosted(ctx context.Context, itemID string, reversedEntryID string) error
}

// ReversingRepositoryFacade combines reversing queue interfaces.
type ReversingRepositoryFacade interface {
	ReversingReader
	ReversingWriter
}
