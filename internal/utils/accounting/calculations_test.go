package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/quietbooks/quietbooks/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(debit, credit string) domain.JournalLine {
	return domain.JournalLine{Debit: dec(debit), Credit: dec(credit)}
}

func TestRound2(t *testing.T) {
	assert.True(t, dec("10.12").Equal(Round2(dec("10.124"))))
	assert.True(t, dec("10.13").Equal(Round2(dec("10.125"))))
	assert.True(t, dec("-3.35").Equal(Round2(dec("-3.345"))))
	assert.True(t, dec("7").Equal(Round2(dec("7"))))
}

func TestIsZeroEpsilonBoundary(t *testing.T) {
	assert.True(t, IsZero(decimal.Zero))
	assert.True(t, IsZero(dec("0.005")))
	assert.True(t, IsZero(dec("-0.005")))
	assert.False(t, IsZero(dec("0.006")))
	assert.False(t, IsZero(dec("-0.01")))
}

func TestSumLines(t *testing.T) {
	debits, credits := SumLines([]domain.JournalLine{
		line("100.50", "0"),
		line("0", "60.25"),
		line("0", "40.25"),
	})
	assert.True(t, dec("100.50").Equal(debits))
	assert.True(t, dec("100.50").Equal(credits))

	debits, credits = SumLines(nil)
	assert.True(t, debits.IsZero())
	assert.True(t, credits.IsZero())
}

func TestIsBalanced(t *testing.T) {
	assert.True(t, IsBalanced([]domain.JournalLine{
		line("250", "0"),
		line("0", "250"),
	}))
	assert.False(t, IsBalanced([]domain.JournalLine{
		line("250", "0"),
		line("0", "240"),
	}))
	// A sub-cent mismatch is within currency tolerance.
	assert.True(t, IsBalanced([]domain.JournalLine{
		line("100.001", "0"),
		line("0", "100.00"),
	}))
}

func TestClassifyBalance(t *testing.T) {
	netDebit, netCredit := ClassifyBalance(domain.Debit, dec("800"), dec("300"))
	assert.True(t, dec("500").Equal(netDebit))
	assert.True(t, netCredit.IsZero())

	netDebit, netCredit = ClassifyBalance(domain.Credit, dec("100"), dec("400"))
	assert.True(t, netDebit.IsZero())
	assert.True(t, dec("300").Equal(netCredit))
}

func TestClassifyBalanceReverseSign(t *testing.T) {
	// Debit-normal account driven negative lands in the credit column.
	netDebit, netCredit := ClassifyBalance(domain.Debit, dec("100"), dec("250"))
	assert.True(t, netDebit.IsZero())
	assert.True(t, dec("150").Equal(netCredit))

	// Credit-normal account driven negative lands in the debit column.
	netDebit, netCredit = ClassifyBalance(domain.Credit, dec("250"), dec("100"))
	assert.True(t, dec("150").Equal(netDebit))
	assert.True(t, netCredit.IsZero())
}
