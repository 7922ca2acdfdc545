package repositories

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountByName retrieves an account by its exact, unique name.
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error)

	// ListAccounts retrieves all accounts sorted by name, optionally restricted to one type.
	ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error)
}

// AccountWriter defines setup-time write operations for account data.
// The posting engine itself never writes accounts.
type AccountWriter interface {
	// SeedAccount inserts the account unless one with the same name exists.
	// It reports whether a row was created.
	SeedAccount(ctx context.Context, account domain.Account) (bool, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
