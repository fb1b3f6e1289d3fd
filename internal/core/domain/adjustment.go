package domain

import "time"

// AdjustmentStatus is the approval state of an adjustment request.
type AdjustmentStatus string

const (
	AdjustmentDraft     AdjustmentStatus = "DRAFT"
	AdjustmentRequested AdjustmentStatus = "REQUESTED"
	AdjustmentApproved  AdjustmentStatus = "APPROVED"
	AdjustmentPosted    AdjustmentStatus = "POSTED"
)

// AdjustmentRequest is a lightweight approval workflow item for period-end
// adjusting entries. It lives beside the ledger; linking it to an entry is
// what actually moves money.
type AdjustmentRequest struct {
	RequestID   string           `json:"requestID"`
	PeriodID    string           `json:"periodID"`
	Description string           `json:"description"`
	RequestedOn time.Time        `json:"requestedOn"`
	RequestedBy string           `json:"requestedBy,omitempty"`
	Status      AdjustmentStatus `json:"status"`
	ApprovedBy  string           `json:"approvedBy,omitempty"`
	ApprovedOn  *time.Time       `json:"approvedOn,omitempty"`
	EntryID     *string          `json:"entryID,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}
