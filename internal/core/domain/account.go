package domain

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Asset       AccountCategory = "ASSET"
	ContraAsset AccountCategory = "CONTRA_ASSET"
	Liability   AccountCategory = "LIABILITY"
	Equity      AccountCategory = "EQUITY"
	Revenue     AccountCategory = "REVENUE"
	Expense     AccountCategory = "EXPENSE"
)

// Side is the debit or credit column of the ledger.
type Side string

const (
	Debit  Side = "DEBIT"
	Credit Side = "CREDIT"
)

// NormalSide returns the side on which the category carries a positive
// balance. Contra assets offset assets and therefore carry a credit balance.
func (c AccountCategory) NormalSide() Side {
	switch c {
	case Asset, Expense:
		return Debit
	case ContraAsset, Liability, Equity, Revenue:
		return Credit
	}
	return Debit
}

// IsTemporary reports whether balances in this category are swept into
// capital at period close.
func (c AccountCategory) IsTemporary() bool {
	return c == Revenue || c == Expense
}

// Valid reports whether c is one of the closed set of categories.
func (c AccountCategory) Valid() bool {
	switch c {
	case Asset, ContraAsset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents one row of the chart of accounts.
// Accounts are soft-deactivated, never hard-deleted once a journal line
// references them.
type Account struct {
	AccountID  string          `json:"accountID"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Category   AccountCategory `json:"category"`
	NormalSide Side            `json:"normalSide"` // defaulted from Category; seed data overrides Owner's Drawings to Debit
	IsActive   bool            `json:"isActive"`
	AuditFields
}
