package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/core/ports/repositories"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, updatedBy string) error {
	return m.Called(ctx, accountID, updatedBy).Error(0)
}

func (m *MockAccountRepository) SeedDefaultChart(ctx context.Context, createdBy string) error {
	return m.Called(ctx, createdBy).Error(0)
}

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, filter repositories.EntryFilter) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindDuplicateCandidates(ctx context.Context, probe repositories.DuplicateProbe) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, probe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) CountLines(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, scheduleReverseOn *time.Time, audit domain.AuditLogEntry) error {
	return m.Called(ctx, entry, scheduleReverseOn, audit).Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, entryID string, audit domain.AuditLogEntry) error {
	return m.Called(ctx, entryID, audit).Error(0)
}

type MockPeriodRepository struct {
	mock.Mock
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) FindPeriodByName(ctx context.Context, name string) (*domain.Period, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) FindCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.Period) (string, error) {
	args := m.Called(ctx, period)
	return args.String(0), args.Error(1)
}

func (m *MockPeriodRepository) SetCurrentPeriod(ctx context.Context, periodID string) error {
	return m.Called(ctx, periodID).Error(0)
}

func (m *MockPeriodRepository) MarkPeriodClosed(ctx context.Context, periodID string) error {
	return m.Called(ctx, periodID).Error(0)
}

func (m *MockPeriodRepository) GetCycleStatus(ctx context.Context, periodID string) ([]domain.CycleStepStatus, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CycleStepStatus), args.Error(1)
}

func (m *MockPeriodRepository) EnsureCycleSteps(ctx context.Context, periodID string) error {
	return m.Called(ctx, periodID).Error(0)
}

func (m *MockPeriodRepository) SetCycleStepStatus(ctx context.Context, periodID string, step int, status domain.CycleStepState, note string) error {
	return m.Called(ctx, periodID, step, status, note).Error(0)
}

func (m *MockPeriodRepository) ResetCycleSteps(ctx context.Context, periodID string, step *int) error {
	return m.Called(ctx, periodID, step).Error(0)
}

type MockReversingRepository struct {
	mock.Mock
}

func (m *MockReversingRepository) ListQueue(ctx context.Context, status *domain.ReversingStatus, dueBy *time.Time) ([]domain.ReversingQueueItem, error) {
	args := m.Called(ctx, status, dueBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReversingQueueItem), args.Error(1)
}

func (m *MockReversingRepository) Enqueue(ctx context.Context, item domain.ReversingQueueItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockReversingRepository) MarkPosted(ctx context.Context, itemID string, reversedEntryID string) error {
	return m.Called(ctx, itemID, reversedEntryID).Error(0)
}

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) AggregateBalances(ctx context.Context, q repositories.BalanceQuery) ([]repositories.AccountBalance, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.AccountBalance), args.Error(1)
}

func (m *MockReportingRepository) ListCashActivity(ctx context.Context, cashAccountID string, start, end time.Time, periodID *string) ([]repositories.CashActivity, error) {
	args := m.Called(ctx, cashAccountID, start, end, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.CashActivity), args.Error(1)
}

func (m *MockReportingRepository) SaveTrialBalanceSnapshot(ctx context.Context, snapshot domain.TrialBalanceSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *MockReportingRepository) ListTrialBalanceSnapshots(ctx context.Context, periodID string, stage *string) ([]domain.TrialBalanceSnapshot, error) {
	args := m.Called(ctx, periodID, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceSnapshot), args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) AppendAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAuditRepository) ListAuditLog(ctx context.Context, limit int) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

type MockCycleNotifier struct {
	mock.Mock
}

func (m *MockCycleNotifier) EntryPosted(ctx context.Context, entry domain.JournalEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockCycleNotifier) StatementsGenerated(ctx context.Context, periodID string) error {
	return m.Called(ctx, periodID).Error(0)
}

func (m *MockCycleNotifier) ClosingPosted(ctx context.Context, periodID string, entryCount int) error {
	return m.Called(ctx, periodID, entryCount).Error(0)
}

func (m *MockCycleNotifier) ReversalsPosted(ctx context.Context, periodID string, count int) error {
	return m.Called(ctx, periodID, count).Error(0)
}

func (m *MockCycleNotifier) AdjustmentApproved(ctx context.Context, periodID string) error {
	return m.Called(ctx, periodID).Error(0)
}
