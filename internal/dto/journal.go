package dto

import (
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is one debit or credit line of an entry being recorded.
// Amounts are non-negative; a posted line carries exactly one side.
type EntryLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// RecordEntryRequest is the payload for recording a journal entry, draft
// or posted. Dates are ISO (YYYY-MM-DD) strings.
type RecordEntryRequest struct {
	Date              string             `json:"date" binding:"required,datetime=2006-01-02"`
	Description       string             `json:"description" binding:"required"`
	Lines             []EntryLineRequest `json:"lines" binding:"omitempty,dive"`
	Status            domain.EntryStatus `json:"status,omitempty"`
	IsAdjusting       bool               `json:"isAdjusting,omitempty"`
	IsClosing         bool               `json:"isClosing,omitempty"`
	IsReversing       bool               `json:"isReversing,omitempty"`
	DocumentRef       string             `json:"documentRef,omitempty"`
	ExternalRef       string             `json:"externalRef,omitempty"`
	Memo              string             `json:"memo,omitempty"`
	SourceType        string             `json:"sourceType,omitempty"`
	PeriodID          string             `json:"periodID,omitempty"`
	ScheduleReverseOn string             `json:"scheduleReverseOn,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CreatedBy         string             `json:"createdBy,omitempty"`
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string         `json:"entryID"`
	Date        time.Time      `json:"date"`
	Description string         `json:"description"`
	PeriodID    string         `json:"periodID"`
	Status      string         `json:"status"`
	IsAdjusting bool           `json:"isAdjusting"`
	IsClosing   bool           `json:"isClosing"`
	IsReversing bool           `json:"isReversing"`
	DocumentRef string         `json:"documentRef,omitempty"`
	ExternalRef string         `json:"externalRef,omitempty"`
	Memo        string         `json:"memo,omitempty"`
	SourceType  string         `json:"sourceType,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	CreatedBy   string         `json:"createdBy"`
	Lines       []LineResponse `json:"lines,omitempty"`
}

// ToLineResponses converts domain lines to response DTOs.
func ToLineResponses(lines []domain.JournalLine) []LineResponse {
	responses := make([]LineResponse, len(lines))
	for i, ln := range lines {
		responses[i] = LineResponse{
			LineID:    ln.LineID,
			AccountID: ln.AccountID,
			Debit:     ln.Debit,
			Credit:    ln.Credit,
		}
	}
	return responses
}

// ToEntryResponse converts a domain entry to its response DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     e.EntryID,
		Date:        e.Date,
		Description: e.Description,
		PeriodID:    e.PeriodID,
		Status:      string(e.Status),
		IsAdjusting: e.IsAdjusting,
		IsClosing:   e.IsClosing,
		IsReversing: e.IsReversing,
		DocumentRef: e.DocumentRef,
		ExternalRef: e.ExternalRef,
		Memo:        e.Memo,
		SourceType:  e.SourceType,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = ToLineResponses(e.Lines)
	}
	return resp
}
