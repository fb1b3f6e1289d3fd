package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quietbooks/quietbooks/internal/apperrors"
	"github.com/quietbooks/quietbooks/internal/core/domain"
	portsrepo "github.com/quietbooks/quietbooks/internal/core/ports/repositories"
	portssvc "github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/dto"
	"github.com/quietbooks/quietbooks/internal/utils/accounting"
)

const (
	capitalAccountName  = "Owner's Capital"
	drawingsAccountName = "Owner's Drawings"
)

// closingService implements ClosingSvcFacade. Closing entries zero every
// temporary account into capital, then sweep drawings.
type closingService struct {
	BaseService
	trialBalance portssvc.TrialBalanceSvcFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	periodRepo   portsrepo.PeriodRepositoryFacade
	auditRepo    portsrepo.AuditRepositoryFacade
	posting      portssvc.PostingWriterSvc
	notifier     portssvc.CycleNotifier
}

// NewClosingService creates a new closing service. notifier may be nil.
func NewClosingService(
	trialBalance portssvc.TrialBalanceSvcFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	auditRepo portsrepo.AuditRepositoryFacade,
	posting portssvc.PostingWriterSvc,
	notifier portssvc.CycleNotifier,
) portssvc.ClosingSvcFacade {
	return &closingService{
		trialBalance: trialBalance,
		accountRepo:  accountRepo,
		periodRepo:   periodRepo,
		auditRepo:    auditRepo,
		posting:      posting,
		notifier:     notifier,
	}
}

func (s *closingService) MakeClosingEntries(ctx context.Context, closingDate time.Time, closedBy string) ([]string, error) {
	period, err := ensureCurrentPeriod(ctx, s.periodRepo)
	if err != nil {
		return nil, err
	}
	capital, err := s.accountRepo.FindAccountByName(ctx, capitalAccountName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, capitalAccountName)
	}

	// Closing is scoped to the active period; leftover balances of an
	// earlier unclosed period must not leak into these entries. A period
	// that is already closed falls through: its temporary balances are
	// zero, so the scan below finds nothing and the call is a no-op.
	rows, err := s.trialBalance.Compute(ctx, portssvc.TrialBalanceOptions{
		UpToDate:         &closingDate,
		PeriodID:         &period.PeriodID,
		IncludeTemporary: true,
	})
	if err != nil {
		return nil, err
	}

	var (
		revenueLines  []dto.EntryLineRequest
		expenseLines  []dto.EntryLineRequest
		drawingsLines []dto.EntryLineRequest
		revenueTotal  = decimal.Zero
		expenseTotal  = decimal.Zero
	)
	for _, row := range rows {
		switch {
		case row.Category == domain.Revenue:
			// Normal balance is a credit; a debit balance still closes,
			// with the line sides flipped.
			balance := accounting.Round2(row.NetCredit.Sub(row.NetDebit))
			if accounting.IsZero(balance) {
				continue
			}
			revenueLines = append(revenueLines, closingLine(row.AccountID, domain.Debit, balance))
			revenueTotal = revenueTotal.Add(balance)
		case row.Category == domain.Expense:
			balance := accounting.Round2(row.NetDebit.Sub(row.NetCredit))
			if accounting.IsZero(balance) {
				continue
			}
			expenseLines = append(expenseLines, closingLine(row.AccountID, domain.Credit, balance))
			expenseTotal = expenseTotal.Add(balance)
		case row.Name == drawingsAccountName:
			balance := accounting.Round2(row.NetDebit.Sub(row.NetCredit))
			if accounting.IsZero(balance) {
				continue
			}
			drawingsLines = append(drawingsLines,
				closingLine(row.AccountID, domain.Credit, balance),
				closingLine(capital.AccountID, domain.Debit, balance))
		}
	}
	if !revenueTotal.IsZero() {
		revenueLines = append(revenueLines, closingLine(capital.AccountID, domain.Credit, revenueTotal))
	}
	if !expenseTotal.IsZero() {
		expenseLines = append(expenseLines, closingLine(capital.AccountID, domain.Debit, expenseTotal))
	}

	batches := []struct {
		description string
		lines       []dto.EntryLineRequest
	}{
		{"Close revenue accounts to capital", revenueLines},
		{"Close expense accounts to capital", expenseLines},
		{"Close drawings to capital", drawingsLines},
	}

	var entryIDs []string
	for _, batch := range batches {
		if len(batch.lines) == 0 {
			continue
		}
		if !balancedRequestLines(batch.lines) {
			// Closing entries are machine-built; an unbalanced one means
			// the ledger itself is inconsistent.
			return entryIDs, fmt.Errorf("%w: closing entry %q does not balance",
				apperrors.ErrInvariantViolation, batch.description)
		}
		entry, err := s.posting.RecordEntry(ctx, dto.RecordEntryRequest{
			Date:        closingDate.Format(dateLayout),
			Description: batch.description,
			Status:      domain.Posted,
			IsClosing:   true,
			SourceType:  "closing",
			PeriodID:    period.PeriodID,
			CreatedBy:   closedBy,
			Lines:       batch.lines,
		})
		if err != nil {
			return entryIDs, err
		}
		entryIDs = append(entryIDs, entry.EntryID)
	}

	if len(entryIDs) == 0 {
		s.LogInfo(ctx, "No balances to close", "periodID", period.PeriodID)
		return nil, nil
	}

	s.LogInfo(ctx, "Closing entries posted", "periodID", period.PeriodID, "count", len(entryIDs))
	if s.auditRepo != nil {
		audit := newAuditRecord(closedBy, domain.AuditClosingPosted, map[string]any{
			"periodID": period.PeriodID,
			"entryIDs": entryIDs,
		})
		if err := s.auditRepo.AppendAuditLog(ctx, audit); err != nil {
			s.LogWarn(ctx, "Failed to append audit record", "periodID", period.PeriodID, "error", err)
		}
	}
	if s.notifier != nil {
		if err := s.notifier.ClosingPosted(ctx, period.PeriodID, len(entryIDs)); err != nil {
			s.LogWarn(ctx, "Cycle notification failed", "periodID", period.PeriodID, "error", err)
		}
	}
	return entryIDs, nil
}

// closingLine builds one request line on the given side. A negative
// amount flips the side, which is how reverse-sign balances close.
func closingLine(accountID string, side domain.Side, amount decimal.Decimal) dto.EntryLineRequest {
	if amount.IsNegative() {
		amount = amount.Abs()
		if side == domain.Debit {
			side = domain.Credit
		} else {
			side = domain.Debit
		}
	}
	if side == domain.Debit {
		return dto.EntryLineRequest{AccountID: accountID, Debit: amount}
	}
	return dto.EntryLineRequest{AccountID: accountID, Credit: amount}
}

func balancedRequestLines(lines []dto.EntryLineRequest) bool {
	debits, credits := decimal.Zero, decimal.Zero
	for _, ln := range lines {
		debits = debits.Add(ln.Debit)
		credits = credits.Add(ln.Credit)
	}
	return accounting.IsZero(accounting.Round2(debits.Sub(credits)))
}
