package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	// Draft entries are freely mutable and may hold zero or partial lines
	// while a form is being filled in.
	Draft EntryStatus = "DRAFT"
	// Posted entries are immutable and must balance exactly.
	Posted EntryStatus = "POSTED"
)

// JournalEntry represents a single, dated financial event composed of
// balanced debit/credit lines.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`
	Date        time.Time   `json:"date"`
	Description string      `json:"description"`
	PeriodID    string      `json:"periodID"`
	Status      EntryStatus `json:"status"`
	IsAdjusting bool        `json:"isAdjusting"`
	IsClosing   bool        `json:"isClosing"`
	IsReversing bool        `json:"isReversing"`
	DocumentRef string      `json:"documentRef,omitempty"`
	ExternalRef string      `json:"externalRef,omitempty"`
	Memo        string      `json:"memo,omitempty"`
	SourceType  string      `json:"sourceType,omitempty"`
	PostedAt    *time.Time  `json:"postedAt,omitempty"`
	PostedBy    string      `json:"postedBy,omitempty"`
	AuditFields

	// Lines is populated on demand; listing endpoints may leave it nil.
	Lines []JournalLine `json:"lines,omitempty"`
}

// JournalLine is one debit or credit against a single account within an
// entry. Exactly one of Debit/Credit is non-zero on a posted line; a draft
// placeholder line may hold zeroes on both sides.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// IsPlaceholder reports whether both sides of the line are zero.
func (l JournalLine) IsPlaceholder() bool {
	return l.Debit.IsZero() && l.Credit.IsZero()
}

// Mirrored returns a copy of the line with debit and credit swapped,
// as used when building reversing entries.
func (l JournalLine) Mirrored() JournalLine {
	return JournalLine{
		AccountID: l.AccountID,
		Debit:     l.Credit,
		Credit:    l.Debit,
	}
}
