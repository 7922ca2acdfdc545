package services

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account. Unknown ids return an error
	// matching both apperrors.ErrNotFound and apperrors.ErrUnknownAccount.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// GetAccountByName retrieves an account by its exact name.
	GetAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// ListAccounts retrieves all accounts sorted by name, optionally filtered by type.
	ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error)
}

// AccountSeederSvc defines setup-time operations on the chart of accounts
type AccountSeederSvc interface {
	// SeedAccounts inserts each account whose name is not yet registered and
	// returns how many were created.
	SeedAccounts(ctx context.Context, accounts []domain.Account, creator string) (int, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountSeederSvc
}
