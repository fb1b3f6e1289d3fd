package accounting

import (
	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Epsilon is the currency tolerance used everywhere a balance is compared
// against zero. Balances whose absolute value is at or below Epsilon are
// treated as zero.
var Epsilon = decimal.RequireFromString("0.005")

// Round2 rounds an amount to currency precision (2 decimal places).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// IsZero reports whether d is zero within the currency epsilon.
func IsZero(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(Epsilon)
}

// SumLines returns the total debits and total credits across lines.
func SumLines(lines []domain.JournalLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, ln := range lines {
		debits = debits.Add(ln.Debit)
		credits = credits.Add(ln.Credit)
	}
	return debits, credits
}

// IsBalanced reports whether total debits equal total credits to currency
// precision.
func IsBalanced(lines []domain.JournalLine) bool {
	debits, credits := SumLines(lines)
	return IsZero(Round2(debits.Sub(credits)))
}

// ClassifyBalance splits a raw signed balance (total debits minus total
// credits) into non-negative net debit / net credit columns according to
// the account's normal side. A debit-normal account with a negative
// balance lands in the credit column, and symmetrically for credit-normal
// accounts (contra assets included).
func ClassifyBalance(normalSide domain.Side, totalDebit, totalCredit decimal.Decimal) (netDebit, netCredit decimal.Decimal) {
	balance := Round2(totalDebit.Sub(totalCredit))
	if normalSide == domain.Debit {
		if balance.Sign() >= 0 {
			return balance, decimal.Zero
		}
		return decimal.Zero, balance.Abs()
	}
	// Credit-normal: work from the credit-side balance.
	balance = balance.Neg()
	if balance.Sign() >= 0 {
		return decimal.Zero, balance
	}
	return balance.Abs(), decimal.Zero
}
