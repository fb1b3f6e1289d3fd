package services

import (
	"context"
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/dto"
)

// PeriodSvcFacade manages accounting periods and the cycle state machine.
type PeriodSvcFacade interface {
	// CreatePeriod creates (or updates by name) a period and seeds its
	// cycle steps, optionally making it current.
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest) (*domain.Period, error)

	// GetCurrentPeriod returns the current period, creating a default
	// month period when none exists.
	GetCurrentPeriod(ctx context.Context) (*domain.Period, error)

	// RefreshCurrentPeriod re-reads the current period from storage.
	RefreshCurrentPeriod(ctx context.Context) (*domain.Period, error)

	// SetActivePeriod makes the given period current.
	SetActivePeriod(ctx context.Context, periodID string) error

	// ListPeriods returns all periods.
	ListPeriods(ctx context.Context) ([]domain.Period, error)

	// GetCycleStatus returns the ordered ten-step snapshot for a period.
	GetCycleStatus(ctx context.Context, periodID string) ([]domain.CycleStepStatus, error)

	// SetCycleStepStatus transitions one step. Marking a step Completed
	// auto-completes earlier steps; completing the closing step marks the
	// period closed.
	SetCycleStepStatus(ctx context.Context, periodID string, step int, status domain.CycleStepState, note string) error

	// ResetCycleSteps is the only backward transition: it resets one step,
	// or all steps when step is nil, to Pending.
	ResetCycleSteps(ctx context.Context, periodID string, step *int) error
}

// CycleNotifier receives domain events that may advance the cycle state
// machine. The period service implements it; posting, closing, reversing
// and statement services publish through it instead of reaching into the
// state machine directly.
type CycleNotifier interface {
	// EntryPosted signals that a journal entry reached Posted status.
	EntryPosted(ctx context.Context, entry domain.JournalEntry) error

	// StatementsGenerated signals that financial statements were produced
	// for a period.
	StatementsGenerated(ctx context.Context, periodID string) error

	// ClosingPosted signals that closing entries were recorded.
	ClosingPosted(ctx context.Context, periodID string, entryCount int) error

	// ReversalsPosted signals that scheduled reversing entries were posted.
	ReversalsPosted(ctx context.Context, periodID string, count int) error

	// AdjustmentApproved signals that an adjustment request was linked to
	// a posted entry.
	AdjustmentApproved(ctx context.Context, periodID string) error
}

// ClosingSvcFacade zeroes temporary accounts into capital at period end.
type ClosingSvcFacade interface {
	// MakeClosingEntries posts closing entries dated closingDate for every
	// temporary account with a balance above the currency epsilon, plus a
	// drawings sweep. Idempotent: a second invocation finds zero balances
	// and posts nothing.
	MakeClosingEntries(ctx context.Context, closingDate time.Time, closedBy string) ([]string, error)
}

// ReversingSvcFacade posts queued mirror entries when they fall due.
type ReversingSvcFacade interface {
	// ProcessSchedule posts a mirrored entry for every pending queue item
	// due at or before asOf, marking each item Posted exactly once.
	ProcessSchedule(ctx context.Context, asOf time.Time, postedBy string) ([]string, error)

	// ListQueue returns the reversing queue ordered by due date.
	ListQueue(ctx context.Context) ([]domain.ReversingQueueItem, error)
}
