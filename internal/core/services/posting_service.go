package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quietbooks/quietbooks/internal/apperrors"
	"github.com/quietbooks/quietbooks/internal/core/domain"
	portsrepo "github.com/quietbooks/quietbooks/internal/core/ports/repositories"
	portssvc "github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/dto"
	"github.com/quietbooks/quietbooks/internal/utils/accounting"
)

const dateLayout = "2006-01-02"

// Chart account names the adjusting helpers resolve at runtime.
const (
	suppliesAccountName        = "Supplies"
	suppliesExpenseAccountName = "Supplies Expense"
	depreciationExpenseName    = "Depreciation Expense"
)

// postingService implements PostingSvcFacade.
type postingService struct {
	BaseService
	journalRepo   portsrepo.JournalRepositoryFacade
	accountRepo   portsrepo.AccountRepositoryFacade
	periodRepo    portsrepo.PeriodRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
	notifier      portssvc.CycleNotifier
}

// NewPostingService creates a new posting service. notifier may be nil,
// in which case no cycle events are published.
func NewPostingService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	reportingRepo portsrepo.ReportingRepository,
	notifier portssvc.CycleNotifier,
) portssvc.PostingSvcFacade {
	return &postingService{
		journalRepo:   journalRepo,
		accountRepo:   accountRepo,
		periodRepo:    periodRepo,
		reportingRepo: reportingRepo,
		notifier:      notifier,
	}
}

func (s *postingService) GetEntryByID(ctx context.Context, entryID string, withLines bool) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, "Failed to find journal entry", "entryID", entryID, "error", err)
		return nil, err
	}
	if withLines {
		lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
		if err != nil {
			s.LogError(ctx, "Failed to load entry lines", "entryID", entryID, "error", err)
			return nil, err
		}
		entry.Lines = lines
	}
	return entry, nil
}

func (s *postingService) ListEntries(ctx context.Context, periodID *string) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntries(ctx, portsrepo.EntryFilter{PeriodID: periodID})
	if err != nil {
		s.LogError(ctx, "Failed to list journal entries", "error", err)
		return nil, err
	}
	return entries, nil
}

func (s *postingService) RecordEntry(ctx context.Context, req dto.RecordEntryRequest) (*domain.JournalEntry, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = domain.Posted
	}
	if status != domain.Draft && status != domain.Posted {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, req.Status)
	}

	var scheduleReverseOn *time.Time
	if req.ScheduleReverseOn != "" {
		d, err := time.Parse(dateLayout, req.ScheduleReverseOn)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid reversal date %q", apperrors.ErrValidation, req.ScheduleReverseOn)
		}
		scheduleReverseOn = &d
	}

	period, err := s.resolvePeriod(ctx, req.PeriodID)
	if err != nil {
		return nil, err
	}
	// Reversing entries are exempt: the schedule runs after the closing
	// step has already closed the period, and the queued mirrors must
	// still post.
	if period.IsClosed && !req.IsReversing {
		return nil, fmt.Errorf("%w: period %s", apperrors.ErrPeriodClosed, period.Name)
	}

	lines, err := s.buildLines(ctx, req.Lines, status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		Date:        date,
		Description: req.Description,
		PeriodID:    period.PeriodID,
		Status:      status,
		IsAdjusting: req.IsAdjusting,
		IsClosing:   req.IsClosing,
		IsReversing: req.IsReversing,
		DocumentRef: req.DocumentRef,
		ExternalRef: req.ExternalRef,
		Memo:        req.Memo,
		SourceType:  req.SourceType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
		Lines: lines,
	}
	if status == domain.Posted {
		entry.PostedAt = &now
		entry.PostedBy = req.CreatedBy
	}
	for i := range entry.Lines {
		entry.Lines[i].EntryID = entry.EntryID
	}

	// Reversals are deliberate mirrors of existing entries and would
	// always trip the duplicate check against themselves.
	if status == domain.Posted && !entry.IsReversing {
		if err := s.checkDuplicate(ctx, entry); err != nil {
			return nil, err
		}
	}

	audit := newAuditRecord(req.CreatedBy, domain.AuditEntryRecorded, map[string]any{
		"entryID":     entry.EntryID,
		"date":        req.Date,
		"description": entry.Description,
		"status":      string(entry.Status),
		"lineCount":   len(entry.Lines),
	})
	if err := s.journalRepo.SaveEntry(ctx, entry, scheduleReverseOn, audit); err != nil {
		s.LogError(ctx, "Failed to save journal entry", "entryID", entry.EntryID, "error", err)
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry recorded",
		"entryID", entry.EntryID, "status", string(entry.Status), "lines", len(entry.Lines))

	if entry.Status == domain.Posted && s.notifier != nil {
		if err := s.notifier.EntryPosted(ctx, entry); err != nil {
			s.LogWarn(ctx, "Cycle notification failed", "entryID", entry.EntryID, "error", err)
		}
	}
	return &entry, nil
}

func (s *postingService) DeleteEntry(ctx context.Context, entryID string, deletedBy string) error {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	period, err := s.periodRepo.FindPeriodByID(ctx, entry.PeriodID)
	if err == nil && period.IsClosed {
		return fmt.Errorf("%w: cannot delete from period %s", apperrors.ErrPeriodClosed, period.Name)
	}

	audit := newAuditRecord(deletedBy, domain.AuditEntryDeleted, map[string]any{
		"entryID":     entryID,
		"description": entry.Description,
	})
	if err := s.journalRepo.DeleteEntry(ctx, entryID, audit); err != nil {
		s.LogError(ctx, "Failed to delete journal entry", "entryID", entryID, "error", err)
		return err
	}
	s.LogInfo(ctx, "Journal entry deleted", "entryID", entryID)
	return nil
}

// buildLines validates and normalizes request lines into domain lines.
func (s *postingService) buildLines(ctx context.Context, reqLines []dto.EntryLineRequest, status domain.EntryStatus) ([]domain.JournalLine, error) {
	if status == domain.Posted && len(reqLines) == 0 {
		return nil, fmt.Errorf("%w: a posted entry needs at least one debit and one credit line", apperrors.ErrValidation)
	}

	lines := make([]domain.JournalLine, 0, len(reqLines))
	accountIDs := make([]string, 0, len(reqLines))
	hasAmounts := false
	for i, rl := range reqLines {
		debit := accounting.Round2(rl.Debit)
		credit := accounting.Round2(rl.Credit)
		if debit.IsNegative() || credit.IsNegative() {
			return nil, fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i+1)
		}
		if debit.IsPositive() && credit.IsPositive() {
			return nil, fmt.Errorf("%w: line %d carries both a debit and a credit", apperrors.ErrValidation, i+1)
		}
		ln := domain.JournalLine{
			LineID:    uuid.NewString(),
			AccountID: rl.AccountID,
			Debit:     debit,
			Credit:    credit,
		}
		if ln.IsPlaceholder() {
			if status == domain.Posted {
				return nil, fmt.Errorf("%w: line %d has no amount", apperrors.ErrValidation, i+1)
			}
			// Draft placeholder rows are dropped rather than stored.
			continue
		}
		hasAmounts = true
		lines = append(lines, ln)
		accountIDs = append(accountIDs, rl.AccountID)
	}

	if hasAmounts && !accounting.IsBalanced(lines) {
		debits, credits := accounting.SumLines(lines)
		return nil, fmt.Errorf("%w: debits %s do not equal credits %s",
			apperrors.ErrValidation, debits.StringFixed(2), credits.StringFixed(2))
	}

	if len(accountIDs) > 0 {
		accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range accountIDs {
			acct, ok := accounts[id]
			if !ok {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
			}
			if !acct.IsActive {
				return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, acct.Name)
			}
		}
	}
	return lines, nil
}

// checkDuplicate compares the candidate entry against already posted
// entries sharing its identifying fields. Two entries are duplicates when
// their (account, amount) debit pairs and credit pairs match exactly.
func (s *postingService) checkDuplicate(ctx context.Context, entry domain.JournalEntry) error {
	candidates, err := s.journalRepo.FindDuplicateCandidates(ctx, portsrepo.DuplicateProbe{
		PeriodID:    entry.PeriodID,
		Date:        entry.Date,
		Description: entry.Description,
		DocumentRef: entry.DocumentRef,
		ExternalRef: entry.ExternalRef,
		Status:      entry.Status,
	})
	if err != nil {
		return err
	}
	want := linePairs(entry.Lines)
	for _, cand := range candidates {
		if samePairs(want, linePairs(cand.Lines)) {
			s.LogWarn(ctx, "Duplicate entry rejected",
				"description", entry.Description, "matchedEntryID", cand.EntryID)
			return fmt.Errorf("%w: matches entry %s", apperrors.ErrDuplicateTransaction, cand.EntryID)
		}
	}
	return nil
}

// linePairs builds a multiset of "side|account|amount" keys.
func linePairs(lines []domain.JournalLine) map[string]int {
	pairs := make(map[string]int, len(lines))
	for _, ln := range lines {
		if ln.Debit.IsPositive() {
			pairs["D|"+ln.AccountID+"|"+ln.Debit.StringFixed(2)]++
		}
		if ln.Credit.IsPositive() {
			pairs["C|"+ln.AccountID+"|"+ln.Credit.StringFixed(2)]++
		}
	}
	return pairs
}

func samePairs(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, n := range a {
		if b[k] != n {
			return false
		}
	}
	return true
}

// resolvePeriod returns the named period, or the current period when
// periodID is empty, creating a default one if the book is brand new.
func (s *postingService) resolvePeriod(ctx context.Context, periodID string) (*domain.Period, error) {
	if periodID != "" {
		return s.periodRepo.FindPeriodByID(ctx, periodID)
	}
	return ensureCurrentPeriod(ctx, s.periodRepo)
}

// AdjustSuppliesUsed derives the supplies consumed from the counted
// remaining balance and records the adjusting entry. Returns (nil, nil)
// when the usage is zero within the currency epsilon.
func (s *postingService) AdjustSuppliesUsed(ctx context.Context, date time.Time, remaining decimal.Decimal, recordedBy string) (*domain.JournalEntry, error) {
	supplies, err := s.accountRepo.FindAccountByName(ctx, suppliesAccountName)
	if err != nil {
		return nil, err
	}
	balance, err := s.accountBalance(ctx, supplies.AccountID, date)
	if err != nil {
		return nil, err
	}
	used := accounting.Round2(balance.Sub(remaining))
	if accounting.IsZero(used) || used.IsNegative() {
		s.LogInfo(ctx, "No supplies usage to adjust", "balance", balance.String(), "remaining", remaining.String())
		return nil, nil
	}
	return s.recordAdjusting(ctx, date, "Supplies used during period",
		suppliesExpenseAccountName, supplies.Name, used, recordedBy)
}

// AdjustPrepaidToExpense amortizes part of a prepaid asset into an expense.
func (s *postingService) AdjustPrepaidToExpense(ctx context.Context, date time.Time, prepaidName, expenseName string, amount decimal.Decimal, recordedBy string) (*domain.JournalEntry, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amortization amount must be positive", apperrors.ErrValidation)
	}
	return s.recordAdjusting(ctx, date, fmt.Sprintf("%s expired", prepaidName),
		expenseName, prepaidName, accounting.Round2(amount), recordedBy)
}

// AdjustDepreciation records periodic depreciation on assetName against
// its accumulated-depreciation contra account.
func (s *postingService) AdjustDepreciation(ctx context.Context, date time.Time, assetName, contraName string, amount decimal.Decimal, recordedBy string) (*domain.JournalEntry, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: depreciation amount must be positive", apperrors.ErrValidation)
	}
	return s.recordAdjusting(ctx, date, fmt.Sprintf("Depreciation on %s", assetName),
		depreciationExpenseName, contraName, accounting.Round2(amount), recordedBy)
}

// recordAdjusting posts a two-line adjusting entry: debit debitName,
// credit creditName, both resolved from the chart by name.
func (s *postingService) recordAdjusting(ctx context.Context, date time.Time, description, debitName, creditName string, amount decimal.Decimal, recordedBy string) (*domain.JournalEntry, error) {
	debitAcct, err := s.accountRepo.FindAccountByName(ctx, debitName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, debitName)
	}
	creditAcct, err := s.accountRepo.FindAccountByName(ctx, creditName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, creditName)
	}
	return s.RecordEntry(ctx, dto.RecordEntryRequest{
		Date:        date.Format(dateLayout),
		Description: description,
		Status:      domain.Posted,
		IsAdjusting: true,
		SourceType:  "adjusting_helper",
		CreatedBy:   recordedBy,
		Lines: []dto.EntryLineRequest{
			{AccountID: debitAcct.AccountID, Debit: amount},
			{AccountID: creditAcct.AccountID, Credit: amount},
		},
	})
}

// accountBalance returns the account's signed normal-side balance up to
// and including date.
func (s *postingService) accountBalance(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error) {
	balances, err := s.reportingRepo.AggregateBalances(ctx, portsrepo.BalanceQuery{
		UpToDate:         &date,
		IncludeTemporary: true,
	})
	if err != nil {
		return decimal.Zero, err
	}
	for _, b := range balances {
		if b.Account.AccountID != accountID {
			continue
		}
		balance := b.TotalDebit.Sub(b.TotalCredit)
		if b.Account.NormalSide == domain.Credit {
			balance = balance.Neg()
		}
		return accounting.Round2(balance), nil
	}
	return decimal.Zero, nil
}

// newAuditRecord builds an append-only audit row with a JSON details
// payload.
func newAuditRecord(user, action string, details map[string]any) domain.AuditLogEntry {
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}
	return domain.AuditLogEntry{
		LogID:     uuid.NewString(),
		Timestamp: time.Now(),
		User:      user,
		Action:    action,
		Details:   string(payload),
	}
}
