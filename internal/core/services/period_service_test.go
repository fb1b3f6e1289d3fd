package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quietbooks/quietbooks/internal/apperrors"
	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/dto"
)

func cycleSnapshot(statuses ...domain.CycleStepState) []domain.CycleStepStatus {
	steps := make([]domain.CycleStepStatus, domain.AccountingCycleStepCount)
	for i := range steps {
		status := domain.StepPending
		if i < len(statuses) {
			status = statuses[i]
		}
		steps[i] = domain.CycleStepStatus{
			PeriodID: "p1",
			Step:     i + 1,
			StepName: domain.CycleStepNames[i],
			Status:   status,
		}
	}
	return steps
}

type periodFixture struct {
	periods *MockPeriodRepository
	audit   *MockAuditRepository
	svc     *periodService
}

func newPeriodFixture() *periodFixture {
	f := &periodFixture{
		periods: new(MockPeriodRepository),
		audit:   new(MockAuditRepository),
	}
	f.audit.On("AppendAuditLog", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.svc = NewPeriodService(f.periods, f.audit)
	return f
}

func TestCreatePeriodSeedsCycleSteps(t *testing.T) {
	f := newPeriodFixture()
	ctx := context.Background()

	f.periods.On("SavePeriod", ctx, mock.Anything).Return("p-new", nil)
	f.periods.On("EnsureCycleSteps", ctx, "p-new").Return(nil)
	f.periods.On("SetCurrentPeriod", ctx, "p-new").Return(nil)

	period, err := f.svc.CreatePeriod(ctx, dto.CreatePeriodRequest{
		Name:        "February 2026",
		StartDate:   "2026-02-01",
		EndDate:     "2026-02-28",
		MakeCurrent: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "p-new", period.PeriodID)
	assert.True(t, period.IsCurrent)
	f.periods.AssertExpectations(t)
}

func TestCreatePeriodRejectsInvertedDates(t *testing.T) {
	f := newPeriodFixture()

	_, err := f.svc.CreatePeriod(context.Background(), dto.CreatePeriodRequest{
		Name:      "Backwards",
		StartDate: "2026-02-28",
		EndDate:   "2026-02-01",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetCurrentPeriodCreatesDefaultWhenMissing(t *testing.T) {
	f := newPeriodFixture()
	ctx := context.Background()

	f.periods.On("FindCurrentPeriod", ctx).Return(nil, apperrors.ErrNotFound)
	f.periods.On("SavePeriod", ctx, mock.Anything).Return("p-def", nil)
	f.periods.On("EnsureCycleSteps", ctx, "p-def").Return(nil)
	f.periods.On("SetCurrentPeriod", ctx, "p-def").Return(nil)

	period, err := f.svc.GetCurrentPeriod(ctx)

	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("January 2006"), period.Name)
	assert.True(t, period.IsCurrent)
}

func TestSetCycleStepStatusAutoCompletesPrerequisites(t *testing.T) {
	f := newPeriodFixture()
	ctx := context.Background()

	f.periods.On("GetCycleStatus", ctx, "p1").
		Return(cycleSnapshot(domain.StepCompleted, domain.StepPending, domain.StepPending), nil)
	// Steps 2-4 are pending and must auto-complete before step 5.
	f.periods.On("SetCycleStepStatus", ctx, "p1", 2, domain.StepCompleted, "Auto-completed").Return(nil)
	f.periods.On("SetCycleStepStatus", ctx, "p1", 3, domain.StepCompleted, "Auto-completed").Return(nil)
	f.periods.On("SetCycleStepStatus", ctx, "p1", 4, domain.StepCompleted, "Auto-completed").Return(nil)
	f.periods.On("SetCycleStepStatus", ctx, "p1", 5, domain.StepCompleted, "done").Return(nil)

	err := f.svc.SetCycleStepStatus(ctx, "p1", 5, domain.StepCompleted, "done")

	require.NoError(t, err)
	f.periods.AssertExpectations(t)
	f.periods.AssertNotCalled(t, "SetCycleStepStatus", ctx, "p1", 1, domain.StepCompleted, "Auto-completed")
}

func TestSetCycleStepStatusClosingStepClosesPeriod(t *testing.T) {
	f := newPeriodFixture()
	ctx := context.Background()

	f.periods.On("GetCycleStatus", ctx, "p1").
		Return(cycleSnapshot(
			domain.StepCompleted, domain.StepCompleted, domain.StepCompleted,
			domain.StepCompleted, domain.StepCompleted, domain.StepCompleted,
			domain.StepCompleted), nil)
	f.periods.On("SetCycleStepStatus", ctx, "p1", domain.StepClosingEntries, domain.StepCompleted, mock.Anything).Return(nil)
	f.periods.On("MarkPeriodClosed", ctx, "p1").Return(nil)

	err := f.svc.SetCycleStepStatus(ctx, "p1", domain.StepClosingEntries, domain.StepCompleted, "closed out")

	require.NoError(t, err)
	f.periods.AssertCalled(t, "MarkPeriodClosed", ctx, "p1")
}

func TestSetCycleStepStatusRejectsBadStep(t *testing.T) {
	f := newPeriodFixture()

	err := f.svc.SetCycleStepStatus(context.Background(), "p1", 11, domain.StepCompleted, "")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	err = f.svc.SetCycleStepStatus(context.Background(), "p1", 5, "WRAPPED_UP", "")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEntryPostedAdvancesJournalizingSteps(t *testing.T) {
	f := newPeriodFixture()
	ctx := context.Background()

	f.periods.On("GetCycleStatus", ctx, "p1").Return(cycleSnapshot(), nil)
	f.periods.On("SetCycleStepStatus", ctx, "p1", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := f.svc.EntryPosted(ctx, domain.JournalEntry{EntryID: "e1", PeriodID: "p1", Status: domain.Posted})

	require.NoError(t, err)
	f.periods.AssertCalled(t, "SetCycleStepStatus", ctx, "p1", domain.StepJournalize, domain.StepCompleted, mock.Anything)
	f.periods.AssertCalled(t, "SetCycleStepStatus", ctx, "p1", domain.StepPostToLedger, domain.StepCompleted, mock.Anything)
	f.periods.AssertNotCalled(t, "SetCycleStepStatus", ctx, "p1", domain.StepAdjustingEntries, mock.Anything, mock.Anything)
}

func TestEntryPostedAdjustingAdvancesAdjustingSteps(t *testing.T) {
	f := newPeriodFixture()
	ctx := context.Background()

	f.periods.On("GetCycleStatus", ctx, "p1").Return(cycleSnapshot(), nil)
	f.periods.On("SetCycleStepStatus", ctx, "p1", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := f.svc.EntryPosted(ctx, domain.JournalEntry{
		EntryID: "e1", PeriodID: "p1", Status: domain.Posted, IsAdjusting: true,
	})

	require.NoError(t, err)
	f.periods.AssertCalled(t, "SetCycleStepStatus", ctx, "p1", domain.StepAdjustingEntries, domain.StepCompleted, mock.Anything)
	f.periods.AssertCalled(t, "SetCycleStepStatus", ctx, "p1", domain.StepAdjustedTrialBal, domain.StepInProgress, mock.Anything)
}

func TestEntryPostedIgnoresClosingAndReversingEntries(t *testing.T) {
	f := newPeriodFixture()
	ctx := context.Background()

	err := f.svc.EntryPosted(ctx, domain.JournalEntry{EntryID: "e1", PeriodID: "p1", IsClosing: true})
	require.NoError(t, err)
	err = f.svc.EntryPosted(ctx, domain.JournalEntry{EntryID: "e2", PeriodID: "p1", IsReversing: true})
	require.NoError(t, err)
	f.periods.AssertNotCalled(t, "SetCycleStepStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClosingPostedCompletesClosingAndStartsPostClosing(t *testing.T) {
	f := newPeriodFixture()
	ctx := context.Background()

	f.periods.On("GetCycleStatus", ctx, "p1").Return(cycleSnapshot(), nil)
	f.periods.On("SetCycleStepStatus", ctx, "p1", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.periods.On("MarkPeriodClosed", ctx, "p1").Return(nil)

	err := f.svc.ClosingPosted(ctx, "p1", 3)

	require.NoError(t, err)
	f.periods.AssertCalled(t, "SetCycleStepStatus", ctx, "p1", domain.StepClosingEntries, domain.StepCompleted, mock.Anything)
	f.periods.AssertCalled(t, "SetCycleStepStatus", ctx, "p1", domain.StepPostClosingTrialBal, domain.StepInProgress, mock.Anything)
	f.periods.AssertCalled(t, "MarkPeriodClosed", ctx, "p1")
}

func TestResetCycleStepsIsOnlyBackwardTransition(t *testing.T) {
	f := newPeriodFixture()
	ctx := context.Background()

	f.periods.On("ResetCycleSteps", ctx, "p1", (*int)(nil)).Return(nil)

	require.NoError(t, f.svc.ResetCycleSteps(ctx, "p1", nil))

	bad := 12
	err := f.svc.ResetCycleSteps(ctx, "p1", &bad)
	require.ErrorIs(t, err, apperrors.ErrValidation)
}
