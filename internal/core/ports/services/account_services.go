package services

import (
	"context"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a single account by ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByName retrieves a single account by exact name.
	GetAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// GetAccountsByIDs retrieves the given accounts keyed by ID.
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts returns the chart of accounts ordered by code.
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts.
type AccountWriterSvc interface {
	// CreateAccount adds an account to the chart.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// DeactivateAccount soft-deactivates an account.
	DeactivateAccount(ctx context.Context, accountID string, updatedBy string) error

	// SeedDefaultChart installs the default chart of accounts.
	SeedDefaultChart(ctx context.Context, createdBy string) error
}

// AccountSvcFacade combines all account service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// AdjustmentSvcFacade manages the adjustment-request approval workflow.
type AdjustmentSvcFacade interface {
	// CreateAdjustmentRequest opens a request against the current period.
	CreateAdjustmentRequest(ctx context.Context, req dto.CreateAdjustmentRequest) (*domain.AdjustmentRequest, error)

	// ListAdjustmentRequests lists requests for the current period.
	ListAdjustmentRequests(ctx context.Context) ([]domain.AdjustmentRequest, error)

	// UpdateAdjustmentStatus moves a request through its workflow.
	UpdateAdjustmentStatus(ctx context.Context, requestID string, status domain.AdjustmentStatus, notes *string) error

	// LinkAdjustmentToEntry marks a request Posted against the entry that
	// satisfied it.
	LinkAdjustmentToEntry(ctx context.Context, requestID string, entryID string, approvedBy string) error
}

// AuditSvcFacade exposes the append-only audit trail.
type AuditSvcFacade interface {
	// ListAuditLog returns the most recent audit records, newest first.
	ListAuditLog(ctx context.Context, limit int) ([]domain.AuditLogEntry, error)
}
