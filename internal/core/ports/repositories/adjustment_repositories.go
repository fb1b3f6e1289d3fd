package repositories

import (
	"context"
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
)

// AdjustmentRepositoryFacade persists the adjustment-request workflow.
type AdjustmentRepositoryFacade interface {
	// SaveAdjustmentRequest inserts a new request.
	SaveAdjustmentRequest(ctx context.Context, req domain.AdjustmentRequest) error

	// FindAdjustmentRequestByID retrieves a request.
	FindAdjustmentRequestByID(ctx context.Context, requestID string) (*domain.AdjustmentRequest, error)

	// ListAdjustmentRequests retrieves requests for a period ordered by
	// requested_on date.
	ListAdjustmentRequests(ctx context.Context, periodID string) ([]domain.AdjustmentRequest, error)

	// UpdateAdjustmentStatus updates the status and, optionally, notes.
	UpdateAdjustmentStatus(ctx context.Context, requestID string, status domain.AdjustmentStatus, notes *string) error

	// LinkAdjustmentToEntry records the posted entry that satisfies the
	// request and stamps approval.
	LinkAdjustmentToEntry(ctx context.Context, requestID string, entryID string, approvedBy string, approvedOn time.Time, status domain.AdjustmentStatus) error
}

// AuditRepositoryFacade persists the append-only audit log.
type AuditRepositoryFacade interface {
	// AppendAuditLog inserts one audit record. Records are never updated
	// or deleted.
	AppendAuditLog(ctx context.Context, entry domain.AuditLogEntry) error

	// ListAuditLog retrieves the most recent records, newest first.
	ListAuditLog(ctx context.Context, limit int) ([]domain.AuditLogEntry, error)
}
