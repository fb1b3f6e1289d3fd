package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quietbooks/quietbooks/internal/apperrors"
	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/core/ports/repositories"
	"github.com/quietbooks/quietbooks/internal/dto"
)

func newTestAccount(id, code, name string, category domain.AccountCategory) domain.Account {
	return domain.Account{
		AccountID:  id,
		Code:       code,
		Name:       name,
		Category:   category,
		NormalSide: category.NormalSide(),
		IsActive:   true,
	}
}

func openPeriod() *domain.Period {
	return &domain.Period{PeriodID: "p1", Name: "January 2026", IsCurrent: true}
}

type postingFixture struct {
	journal   *MockJournalRepository
	accounts  *MockAccountRepository
	periods   *MockPeriodRepository
	reporting *MockReportingRepository
	notifier  *MockCycleNotifier
	svc       *postingService
}

func newPostingFixture() *postingFixture {
	f := &postingFixture{
		journal:   new(MockJournalRepository),
		accounts:  new(MockAccountRepository),
		periods:   new(MockPeriodRepository),
		reporting: new(MockReportingRepository),
		notifier:  new(MockCycleNotifier),
	}
	f.svc = NewPostingService(f.journal, f.accounts, f.periods, f.reporting, f.notifier).(*postingService)
	return f
}

func TestRecordEntryPostsBalancedEntry(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	cash := newTestAccount("a-cash", "101", "Cash", domain.Asset)
	revenue := newTestAccount("a-rev", "401", "Service Revenue", domain.Revenue)

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.accounts.On("FindAccountsByIDs", ctx, []string{"a-cash", "a-rev"}).
		Return(map[string]domain.Account{"a-cash": cash, "a-rev": revenue}, nil)
	f.journal.On("FindDuplicateCandidates", ctx, mock.Anything).Return([]domain.JournalEntry{}, nil)
	f.journal.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("EntryPosted", ctx, mock.Anything).Return(nil)

	entry, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-15",
		Description: "Performed services for cash",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(500)},
			{AccountID: "a-rev", Credit: decimal.NewFromInt(500)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Posted, entry.Status)
	assert.Equal(t, "p1", entry.PeriodID)
	assert.Len(t, entry.Lines, 2)
	assert.NotNil(t, entry.PostedAt)
	f.journal.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestRecordEntryRejectsUnbalancedLines(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)

	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-15",
		Description: "Unbalanced",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(500)},
			{AccountID: "a-rev", Credit: decimal.NewFromInt(400)},
		},
	})

	require.ErrorIs(t, err, apperrors.ErrValidation)
	f.journal.AssertNotCalled(t, "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordEntryToleratesRoundingWithinEpsilon(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	cash := newTestAccount("a-cash", "101", "Cash", domain.Asset)
	revenue := newTestAccount("a-rev", "401", "Service Revenue", domain.Revenue)

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.accounts.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{"a-cash": cash, "a-rev": revenue}, nil)
	f.journal.On("FindDuplicateCandidates", ctx, mock.Anything).Return([]domain.JournalEntry{}, nil)
	f.journal.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("EntryPosted", ctx, mock.Anything).Return(nil)

	// 100.001 rounds to 100.00; the residual sits inside the currency
	// tolerance.
	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-15",
		Description: "Rounded amounts",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.RequireFromString("100.001")},
			{AccountID: "a-rev", Credit: decimal.RequireFromString("100.00")},
		},
	})
	require.NoError(t, err)
}

func TestRecordEntryRejectsLineWithBothSides(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)

	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-15",
		Description: "Both sides",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(10), Credit: decimal.NewFromInt(10)},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecordEntryRejectsUnknownAccount(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	cash := newTestAccount("a-cash", "101", "Cash", domain.Asset)

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.accounts.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{"a-cash": cash}, nil)

	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-15",
		Description: "Ghost account",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(50)},
			{AccountID: "a-ghost", Credit: decimal.NewFromInt(50)},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestRecordEntryRejectsInactiveAccount(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	cash := newTestAccount("a-cash", "101", "Cash", domain.Asset)
	stale := newTestAccount("a-old", "199", "Old Equipment", domain.Asset)
	stale.IsActive = false

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.accounts.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{"a-cash": cash, "a-old": stale}, nil)

	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-15",
		Description: "Inactive account",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(50)},
			{AccountID: "a-old", Credit: decimal.NewFromInt(50)},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecordEntryRejectsClosedPeriod(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	closed := &domain.Period{PeriodID: "p0", Name: "December 2025", IsClosed: true}
	f.periods.On("FindPeriodByID", ctx, "p0").Return(closed, nil)

	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2025-12-31",
		Description: "Late entry",
		PeriodID:    "p0",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(10)},
			{AccountID: "a-rev", Credit: decimal.NewFromInt(10)},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrPeriodClosed)
}

func TestRecordEntryReversingAllowedInClosedPeriod(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	closed := &domain.Period{PeriodID: "p0", Name: "December 2025", IsClosed: true}
	f.periods.On("FindPeriodByID", ctx, "p0").Return(closed, nil)
	f.accounts.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{
			"a-salexp": newTestAccount("a-salexp", "502", "Salaries Expense", domain.Expense),
			"a-salpay": newTestAccount("a-salpay", "212", "Salaries Payable", domain.Liability),
		}, nil)
	f.journal.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("EntryPosted", ctx, mock.Anything).Return(nil)

	entry, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-01",
		Description: "Reversing entry for #e-orig",
		PeriodID:    "p0",
		IsReversing: true,
		SourceType:  "reversing_schedule",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-salpay", Debit: decimal.NewFromInt(900)},
			{AccountID: "a-salexp", Credit: decimal.NewFromInt(900)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Posted, entry.Status)
	assert.True(t, entry.IsReversing)
}

func TestRecordEntryDetectsDuplicate(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	cash := newTestAccount("a-cash", "101", "Cash", domain.Asset)
	revenue := newTestAccount("a-rev", "401", "Service Revenue", domain.Revenue)

	existing := domain.JournalEntry{
		EntryID: "e-prev",
		Lines: []domain.JournalLine{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(500)},
			{AccountID: "a-rev", Credit: decimal.NewFromInt(500)},
		},
	}

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.accounts.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{"a-cash": cash, "a-rev": revenue}, nil)
	f.journal.On("FindDuplicateCandidates", ctx, mock.Anything).Return([]domain.JournalEntry{existing}, nil)

	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-15",
		Description: "Performed services for cash",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(500)},
			{AccountID: "a-rev", Credit: decimal.NewFromInt(500)},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrDuplicateTransaction)
	f.journal.AssertNotCalled(t, "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordEntryAllowsDifferentAmountsSameDescription(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	cash := newTestAccount("a-cash", "101", "Cash", domain.Asset)
	revenue := newTestAccount("a-rev", "401", "Service Revenue", domain.Revenue)

	existing := domain.JournalEntry{
		EntryID: "e-prev",
		Lines: []domain.JournalLine{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(300)},
			{AccountID: "a-rev", Credit: decimal.NewFromInt(300)},
		},
	}

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.accounts.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{"a-cash": cash, "a-rev": revenue}, nil)
	f.journal.On("FindDuplicateCandidates", ctx, mock.Anything).Return([]domain.JournalEntry{existing}, nil)
	f.journal.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("EntryPosted", ctx, mock.Anything).Return(nil)

	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-15",
		Description: "Performed services for cash",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(500)},
			{AccountID: "a-rev", Credit: decimal.NewFromInt(500)},
		},
	})
	require.NoError(t, err)
}

func TestRecordEntryReversingSkipsDuplicateCheck(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	cash := newTestAccount("a-cash", "101", "Cash", domain.Asset)
	revenue := newTestAccount("a-rev", "401", "Service Revenue", domain.Revenue)

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.accounts.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{"a-cash": cash, "a-rev": revenue}, nil)
	f.journal.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("EntryPosted", ctx, mock.Anything).Return(nil)

	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-02-01",
		Description: "Reversing entry for #e-orig",
		IsReversing: true,
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(200)},
			{AccountID: "a-rev", Credit: decimal.NewFromInt(200)},
		},
	})
	require.NoError(t, err)
	f.journal.AssertNotCalled(t, "FindDuplicateCandidates", mock.Anything, mock.Anything)
}

func TestRecordEntryDraftDropsPlaceholderLines(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.journal.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	entry, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-15",
		Description: "Half-filled form",
		Status:      domain.Draft,
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash"},
			{AccountID: "a-rev"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Draft, entry.Status)
	assert.Empty(t, entry.Lines)
	assert.Nil(t, entry.PostedAt)
	f.notifier.AssertNotCalled(t, "EntryPosted", mock.Anything, mock.Anything)
}

func TestRecordEntryPostedRequiresLines(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)

	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        "2026-01-15",
		Description: "Empty posted entry",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecordEntrySchedulesReversal(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	cash := newTestAccount("a-cash", "101", "Cash", domain.Asset)
	payable := newTestAccount("a-sp", "212", "Salaries Payable", domain.Liability)

	var captured *time.Time
	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.accounts.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{"a-cash": cash, "a-sp": payable}, nil)
	f.journal.On("FindDuplicateCandidates", ctx, mock.Anything).Return([]domain.JournalEntry{}, nil)
	f.journal.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(*time.Time)
		}).Return(nil)
	f.notifier.On("EntryPosted", ctx, mock.Anything).Return(nil)

	_, err := f.svc.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:              "2026-01-31",
		Description:       "Accrued salaries",
		IsAdjusting:       true,
		ScheduleReverseOn: "2026-02-01",
		Lines: []dto.EntryLineRequest{
			{AccountID: "a-cash", Debit: decimal.NewFromInt(900)},
			{AccountID: "a-sp", Credit: decimal.NewFromInt(900)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "2026-02-01", captured.Format("2006-01-02"))
}

func TestDeleteEntryBlockedInClosedPeriod(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	entry := &domain.JournalEntry{EntryID: "e1", PeriodID: "p0", Description: "old"}
	closed := &domain.Period{PeriodID: "p0", Name: "December 2025", IsClosed: true}

	f.journal.On("FindEntryByID", ctx, "e1").Return(entry, nil)
	f.periods.On("FindPeriodByID", ctx, "p0").Return(closed, nil)

	err := f.svc.DeleteEntry(ctx, "e1", "tester")
	require.ErrorIs(t, err, apperrors.ErrPeriodClosed)
	f.journal.AssertNotCalled(t, "DeleteEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustPrepaidToExpensePostsAdjustingEntry(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	prepaid := newTestAccount("a-pre", "128", "Prepaid Rent", domain.Asset)
	rentExp := newTestAccount("a-rent", "501", "Rent Expense", domain.Expense)

	f.accounts.On("FindAccountByName", ctx, "Rent Expense").Return(&rentExp, nil)
	f.accounts.On("FindAccountByName", ctx, "Prepaid Rent").Return(&prepaid, nil)
	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.accounts.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{"a-pre": prepaid, "a-rent": rentExp}, nil)
	f.journal.On("FindDuplicateCandidates", ctx, mock.Anything).Return([]domain.JournalEntry{}, nil)
	f.journal.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("EntryPosted", ctx, mock.Anything).Return(nil)

	entry, err := f.svc.AdjustPrepaidToExpense(ctx,
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		"Prepaid Rent", "Rent Expense", decimal.NewFromInt(1000), "tester")

	require.NoError(t, err)
	assert.True(t, entry.IsAdjusting)
	require.Len(t, entry.Lines, 2)
	assert.Equal(t, "a-rent", entry.Lines[0].AccountID)
	assert.True(t, entry.Lines[0].Debit.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "a-pre", entry.Lines[1].AccountID)
	assert.True(t, entry.Lines[1].Credit.Equal(decimal.NewFromInt(1000)))
}

func TestAdjustSuppliesUsedNoUsageIsNoOp(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	supplies := newTestAccount("a-sup", "124", "Supplies", domain.Asset)

	f.accounts.On("FindAccountByName", ctx, "Supplies").Return(&supplies, nil)
	f.reporting.On("AggregateBalances", ctx, mock.Anything).Return([]repositories.AccountBalance{
		{Account: supplies, TotalDebit: decimal.NewFromInt(250), TotalCredit: decimal.Zero},
	}, nil)

	// Counted remaining equals the book balance, nothing was used.
	entry, err := f.svc.AdjustSuppliesUsed(ctx,
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(250), "tester")

	require.NoError(t, err)
	assert.Nil(t, entry)
	f.journal.AssertNotCalled(t, "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustSuppliesUsedRecordsUsage(t *testing.T) {
	f := newPostingFixture()
	ctx := context.Background()

	supplies := newTestAccount("a-sup", "124", "Supplies", domain.Asset)
	suppliesExp := newTestAccount("a-supx", "503", "Supplies Expense", domain.Expense)

	f.accounts.On("FindAccountByName", ctx, "Supplies").Return(&supplies, nil)
	f.accounts.On("FindAccountByName", ctx, "Supplies Expense").Return(&suppliesExp, nil)
	f.reporting.On("AggregateBalances", ctx, mock.Anything).Return([]repositories.AccountBalance{
		{Account: supplies, TotalDebit: decimal.NewFromInt(250), TotalCredit: decimal.Zero},
	}, nil)
	f.periods.On("FindCurrentPeriod", ctx).Return(openPeriod(), nil)
	f.accounts.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(map[string]domain.Account{"a-sup": supplies, "a-supx": suppliesExp}, nil)
	f.journal.On("FindDuplicateCandidates", ctx, mock.Anything).Return([]domain.JournalEntry{}, nil)
	f.journal.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("EntryPosted", ctx, mock.Anything).Return(nil)

	entry, err := f.svc.AdjustSuppliesUsed(ctx,
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(100), "tester")

	require.NoError(t, err)
	require.NotNil(t, entry)
	require.Len(t, entry.Lines, 2)
	assert.True(t, entry.Lines[0].Debit.Equal(decimal.NewFromInt(150)))
	assert.True(t, entry.Lines[1].Credit.Equal(decimal.NewFromInt(150)))
}
