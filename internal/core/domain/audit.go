package domain

import "time"

// AuditLogEntry is one append-only audit record. Rows are only ever
// inserted, never updated or deleted.
type AuditLogEntry struct {
	LogID     string    `json:"logID"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"` // JSON payload
}

// Audit actions recorded by the engine.
const (
	AuditEntryRecorded     = "journal_entry_recorded"
	AuditEntryDeleted      = "journal_entry_deleted"
	AuditClosingPosted     = "closing_entries_posted"
	AuditReversalPosted    = "reversing_entry_posted"
	AuditPeriodCreated     = "period_created"
	AuditCycleStepUpdated  = "cycle_step_updated"
	AuditAdjustmentLinked  = "adjustment_linked_to_entry"
)
