package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalSide(t *testing.T) {
	assert.Equal(t, Debit, Asset.NormalSide())
	assert.Equal(t, Debit, Expense.NormalSide())
	assert.Equal(t, Credit, ContraAsset.NormalSide())
	assert.Equal(t, Credit, Liability.NormalSide())
	assert.Equal(t, Credit, Equity.NormalSide())
	assert.Equal(t, Credit, Revenue.NormalSide())
}

func TestIsTemporary(t *testing.T) {
	assert.True(t, Revenue.IsTemporary())
	assert.True(t, Expense.IsTemporary())
	assert.False(t, Asset.IsTemporary())
	assert.False(t, ContraAsset.IsTemporary())
	assert.False(t, Liability.IsTemporary())
	assert.False(t, Equity.IsTemporary())
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []AccountCategory{Asset, ContraAsset, Liability, Equity, Revenue, Expense} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, AccountCategory("GOODWILL").Valid())
	assert.False(t, AccountCategory("").Valid())
}
