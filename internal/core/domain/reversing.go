package domain

import "time"

// ReversingStatus is the lifecycle state of a scheduled reversal.
type ReversingStatus string

const (
	ReversalPending ReversingStatus = "PENDING"
	ReversalPosted  ReversingStatus = "POSTED"
)

// ReversingQueueItem schedules a mirror entry of a previously posted entry.
// ReversedEntryID is set exactly once, at the moment Status becomes Posted.
type ReversingQueueItem struct {
	ItemID          string          `json:"itemID"`
	OriginalEntryID string          `json:"originalEntryID"`
	ReverseOn       time.Time       `json:"reverseOn"`
	CreatedOn       time.Time       `json:"createdOn"`
	Status          ReversingStatus `json:"status"`
	ReversedEntryID *string         `json:"reversedEntryID,omitempty"`
}
