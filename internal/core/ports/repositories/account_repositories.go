package repositories

import (
	"context"

	"github.com/quietbooks/quietbooks/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByName retrieves an account by its exact name.
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// FindAccountsByIDs retrieves the given accounts keyed by ID. A missing
	// ID is simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves all accounts ordered by code.
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts.
type AccountWriter interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount soft-deactivates an account. Accounts referenced by
	// journal lines are never hard-deleted.
	DeactivateAccount(ctx context.Context, accountID string, updatedBy string) error

	// SeedDefaultChart inserts the default chart of accounts, ignoring
	// accounts that already exist.
	SeedDefaultChart(ctx context.Context, createdBy string) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
