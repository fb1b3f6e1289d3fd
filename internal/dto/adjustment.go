package dto

import (
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
)

// CreateAdjustmentRequest is the payload for opening an adjustment request.
type CreateAdjustmentRequest struct {
	Description string `json:"description" binding:"required"`
	RequestedOn string `json:"requestedOn,omitempty" binding:"omitempty,datetime=2006-01-02"`
	RequestedBy string `json:"requestedBy,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateAdjustmentStatusRequest updates the workflow state of a request.
type UpdateAdjustmentStatusRequest struct {
	Status domain.AdjustmentStatus `json:"status" binding:"required"`
	Notes  *string                 `json:"notes,omitempty"`
}

// LinkAdjustmentRequest records the entry that satisfies a request.
type LinkAdjustmentRequest struct {
	EntryID    string `json:"entryID" binding:"required"`
	ApprovedBy string `json:"approvedBy,omitempty"`
}

// AdjustmentResponse defines the data returned for an adjustment request.
type AdjustmentResponse struct {
	RequestID   string     `json:"requestID"`
	PeriodID    string     `json:"periodID"`
	Description string     `json:"description"`
	RequestedOn time.Time  `json:"requestedOn"`
	RequestedBy string     `json:"requestedBy,omitempty"`
	Status      string     `json:"status"`
	ApprovedBy  string     `json:"approvedBy,omitempty"`
	ApprovedOn  *time.Time `json:"approvedOn,omitempty"`
	EntryID     *string    `json:"entryID,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// ToAdjustmentResponse converts a domain request to its response DTO.
func ToAdjustmentResponse(r *domain.AdjustmentRequest) AdjustmentResponse {
	return AdjustmentResponse{
		RequestID:   r.RequestID,
		PeriodID:    r.PeriodID,
		Description: r.Description,
		RequestedOn: r.RequestedOn,
		RequestedBy: r.RequestedBy,
		Status:      string(r.Status),
		ApprovedBy:  r.ApprovedBy,
		ApprovedOn:  r.ApprovedOn,
		EntryID:     r.EntryID,
		Notes:       r.Notes,
	}
}
