package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account's classified balance in a trial balance.
// Exactly one of NetDebit/NetCredit is non-zero for a non-zero balance.
type TrialBalanceRow struct {
	AccountID  string          `json:"accountID"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Category   AccountCategory `json:"category"`
	NormalSide Side            `json:"normalSide"`
	NetDebit   decimal.Decimal `json:"netDebit"`
	NetCredit  decimal.Decimal `json:"netCredit"`
}

// TrialBalanceSnapshot is a trial balance frozen at a cycle stage
// (unadjusted, adjusted, post-closing) for one period. One snapshot exists
// per (period, stage, as-of); recapturing replaces it.
type TrialBalanceSnapshot struct {
	SnapshotID string            `json:"snapshotID"`
	PeriodID   string            `json:"periodID"`
	Stage      string            `json:"stage"`
	AsOf       time.Time         `json:"asOf"`
	CapturedOn time.Time         `json:"capturedOn"`
	Rows       []TrialBalanceRow `json:"rows"`
}

// AccountAmount is an account with its net amount for a statement section.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatementReport holds pre-closing revenue and expense figures.
type IncomeStatementReport struct {
	Start        time.Time       `json:"start"`
	End          time.Time       `json:"end"`
	Revenues     []AccountAmount `json:"revenues"`
	Expenses     []AccountAmount `json:"expenses"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetIncome    decimal.Decimal `json:"netIncome"`
}

// BalanceSheetReport holds the statement of financial position. Contra
// assets appear among Assets with negative amounts. While the period is
// still open, NetIncome carries the unclosed temporary-account total that
// is added to equity, so Assets = Liabilities + Equity + NetIncome.
// BalanceCheck = Assets - (Liabilities + Equity [+ NetIncome]); a non-zero
// value signals upstream data defects and is reported, never raised.
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	PostClosing      bool            `json:"postClosing"`
	BalanceCheck     decimal.Decimal `json:"balanceCheck"`
}

// CashFlowSection classifies a cash movement.
type CashFlowSection string

const (
	Operating CashFlowSection = "OPERATING"
	Investing CashFlowSection = "INVESTING"
	Financing CashFlowSection = "FINANCING"
)

// CashFlowItem is one cash movement attributed to a section. Amount is
// signed: inflows positive, outflows negative.
type CashFlowItem struct {
	EntryID     string          `json:"entryID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CashFlowReport buckets cash movements into the three standard sections.
type CashFlowReport struct {
	Start           time.Time                            `json:"start"`
	End             time.Time                            `json:"end"`
	Sections        map[CashFlowSection][]CashFlowItem   `json:"sections"`
	Totals          map[CashFlowSection]decimal.Decimal  `json:"totals"`
	NetChangeInCash decimal.Decimal                      `json:"netChangeInCash"`
}
