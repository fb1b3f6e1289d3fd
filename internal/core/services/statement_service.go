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
	"github.com/quietbooks/quietbooks/internal/utils/accounting"
)

const cashAccountName = "Cash"

// statementService derives the three financial statements from the trial
// balance calculator.
type statementService struct {
	BaseService
	trialBalance  portssvc.TrialBalanceSvcFacade
	accountRepo   portsrepo.AccountRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
	periodRepo    portsrepo.PeriodRepositoryFacade
	notifier      portssvc.CycleNotifier
}

// NewStatementService creates a new statement service. notifier may be nil.
func NewStatementService(
	trialBalance portssvc.TrialBalanceSvcFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	reportingRepo portsrepo.ReportingRepository,
	periodRepo portsrepo.PeriodRepositoryFacade,
	notifier portssvc.CycleNotifier,
) portssvc.StatementSvcFacade {
	return &statementService{
		trialBalance:  trialBalance,
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
		periodRepo:    periodRepo,
		notifier:      notifier,
	}
}

func (s *statementService) GenerateIncomeStatement(ctx context.Context, start, end time.Time, periodID *string) (*domain.IncomeStatementReport, error) {
	rows, err := s.trialBalance.Compute(ctx, portssvc.TrialBalanceOptions{
		FromDate:         &start,
		UpToDate:         &end,
		PeriodID:         periodID,
		IncludeTemporary: true,
		ExcludeClosing:   true,
	})
	if err != nil {
		return nil, err
	}

	report := &domain.IncomeStatementReport{
		Start:        start,
		End:          end,
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, row := range rows {
		switch row.Category {
		case domain.Revenue:
			amount := row.NetCredit.Sub(row.NetDebit)
			if accounting.IsZero(amount) {
				continue
			}
			report.Revenues = append(report.Revenues, domain.AccountAmount{
				AccountID: row.AccountID, Name: row.Name, Amount: amount,
			})
			report.TotalRevenue = report.TotalRevenue.Add(amount)
		case domain.Expense:
			amount := row.NetDebit.Sub(row.NetCredit)
			if accounting.IsZero(amount) {
				continue
			}
			report.Expenses = append(report.Expenses, domain.AccountAmount{
				AccountID: row.AccountID, Name: row.Name, Amount: amount,
			})
			report.TotalExpense = report.TotalExpense.Add(amount)
		}
	}
	report.NetIncome = accounting.Round2(report.TotalRevenue.Sub(report.TotalExpense))
	return report, nil
}

func (s *statementService) GenerateBalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	rows, err := s.trialBalance.Compute(ctx, portssvc.TrialBalanceOptions{
		UpToDate:         &asOf,
		IncludeTemporary: true,
	})
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:             asOf,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
		NetIncome:        decimal.Zero,
	}
	for _, row := range rows {
		switch row.Category {
		case domain.Asset:
			amount := row.NetDebit.Sub(row.NetCredit)
			if accounting.IsZero(amount) {
				continue
			}
			report.Assets = append(report.Assets, domain.AccountAmount{
				AccountID: row.AccountID, Name: row.Name, Amount: amount,
			})
			report.TotalAssets = report.TotalAssets.Add(amount)
		case domain.ContraAsset:
			// Contra assets offset assets, shown as negative amounts.
			amount := row.NetCredit.Sub(row.NetDebit).Neg()
			if accounting.IsZero(amount) {
				continue
			}
			report.Assets = append(report.Assets, domain.AccountAmount{
				AccountID: row.AccountID, Name: row.Name, Amount: amount,
			})
			report.TotalAssets = report.TotalAssets.Add(amount)
		case domain.Liability:
			amount := row.NetCredit.Sub(row.NetDebit)
			if accounting.IsZero(amount) {
				continue
			}
			report.Liabilities = append(report.Liabilities, domain.AccountAmount{
				AccountID: row.AccountID, Name: row.Name, Amount: amount,
			})
			report.TotalLiabilities = report.TotalLiabilities.Add(amount)
		case domain.Equity:
			// Debit-normal equity (drawings) lands here as a negative.
			amount := row.NetCredit.Sub(row.NetDebit)
			if accounting.IsZero(amount) {
				continue
			}
			report.Equity = append(report.Equity, domain.AccountAmount{
				AccountID: row.AccountID, Name: row.Name, Amount: amount,
			})
			report.TotalEquity = report.TotalEquity.Add(amount)
		case domain.Revenue:
			report.NetIncome = report.NetIncome.Add(row.NetCredit.Sub(row.NetDebit))
		case domain.Expense:
			report.NetIncome = report.NetIncome.Sub(row.NetDebit.Sub(row.NetCredit))
		}
	}

	report.NetIncome = accounting.Round2(report.NetIncome)
	report.PostClosing = accounting.IsZero(report.NetIncome)
	rhs := report.TotalLiabilities.Add(report.TotalEquity)
	if !report.PostClosing {
		// Pre-closing, unclosed net income stands in for the closing
		// sweep so the equation still holds.
		rhs = rhs.Add(report.NetIncome)
	}
	report.BalanceCheck = accounting.Round2(report.TotalAssets.Sub(rhs))
	if !accounting.IsZero(report.BalanceCheck) {
		s.LogWarn(ctx, "Balance sheet out of balance",
			"asOf", asOf.Format(dateLayout), "difference", report.BalanceCheck.String())
	}

	if s.notifier != nil {
		if period, perr := s.periodRepo.FindCurrentPeriod(ctx); perr == nil {
			if err := s.notifier.StatementsGenerated(ctx, period.PeriodID); err != nil {
				s.LogWarn(ctx, "Cycle notification failed", "error", err)
			}
		}
	}
	return report, nil
}

func (s *statementService) GenerateCashFlow(ctx context.Context, start, end time.Time) (*domain.CashFlowReport, error) {
	cash, err := s.accountRepo.FindAccountByName(ctx, cashAccountName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, cashAccountName)
	}
	activities, err := s.reportingRepo.ListCashActivity(ctx, cash.AccountID, start, end, nil)
	if err != nil {
		return nil, err
	}

	// Resolve every referenced account once for classification.
	idSet := make(map[string]struct{})
	for _, act := range activities {
		for _, ln := range act.Lines {
			idSet[ln.AccountID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	accounts := map[string]domain.Account{}
	if len(ids) > 0 {
		accounts, err = s.accountRepo.FindAccountsByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	report := &domain.CashFlowReport{
		Start:    start,
		End:      end,
		Sections: make(map[domain.CashFlowSection][]domain.CashFlowItem),
		Totals: map[domain.CashFlowSection]decimal.Decimal{
			domain.Operating: decimal.Zero,
			domain.Investing: decimal.Zero,
			domain.Financing: decimal.Zero,
		},
		NetChangeInCash: decimal.Zero,
	}
	for _, act := range activities {
		var cashDelta decimal.Decimal
		for _, ln := range act.Lines {
			if ln.AccountID == cash.AccountID {
				cashDelta = cashDelta.Add(ln.Debit.Sub(ln.Credit))
			}
		}
		cashDelta = accounting.Round2(cashDelta)
		if accounting.IsZero(cashDelta) {
			continue
		}
		section := classifyCashMovement(act.Lines, cash.AccountID, accounts)
		report.Sections[section] = append(report.Sections[section], domain.CashFlowItem{
			EntryID:     act.Entry.EntryID,
			Date:        act.Entry.Date,
			Description: act.Entry.Description,
			Amount:      cashDelta,
		})
		report.Totals[section] = report.Totals[section].Add(cashDelta)
		report.NetChangeInCash = report.NetChangeInCash.Add(cashDelta)
	}
	return report, nil
}

// classifyCashMovement buckets an entry by the category of its first
// non-cash line: long-lived asset activity is Investing, liability and
// equity activity is Financing, everything else Operating.
func classifyCashMovement(lines []domain.JournalLine, cashAccountID string, accounts map[string]domain.Account) domain.CashFlowSection {
	for _, ln := range lines {
		if ln.AccountID == cashAccountID {
			continue
		}
		acct, ok := accounts[ln.AccountID]
		if !ok {
			continue
		}
		switch acct.Category {
		case domain.Asset, domain.ContraAsset:
			return domain.Investing
		case domain.Liability, domain.Equity:
			return domain.Financing
		default:
			return domain.Operating
		}
	}
	return domain.Operating
}
