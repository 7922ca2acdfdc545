package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/models"
	"github.com/SscSPs/rental_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `account_id, name, account_type, is_bank, description, created_at, created_by`

type accountRepository struct {
	BaseRepository
}

// Ensure accountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) findOne(ctx context.Context, where string, arg any) (*domain.Account, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE `+where, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}
	modelAcc, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	account := mapping.ToDomainAccount(modelAcc)
	return &account, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := r.findOne(ctx, `account_id = $1`, accountID)
	if err != nil {
		return nil, fmt.Errorf("account %d: %w", accountID, err)
	}
	return account, nil
}

// FindAccountByName retrieves an account by its unique name.
func (r *accountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	account, err := r.findOne(ctx, `name = $1`, name)
	if err != nil {
		return nil, fmt.Errorf("account %q: %w", name, err)
	}
	return account, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing IDs are simply absent from the map.
func (r *accountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}

	rows, err := r.DB.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = ANY($1)`, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	modelAccs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan account rows during batch fetch: %w", err)
	}

	accountsMap := make(map[int64]domain.Account, len(modelAccs))
	for _, m := range modelAccs {
		accountsMap[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return accountsMap, nil
}

// ListAccounts returns the chart of accounts ordered by name, optionally filtered by type.
func (r *accountRepository) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	var filter *string
	if accountType != nil {
		t := string(*accountType)
		filter = &t
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE $1::text IS NULL OR account_type = $1::text
		ORDER BY name, account_id;
	`
	rows, err := r.DB.Query(ctx, query, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	modelAccs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(modelAccs), nil
}

// SeedAccount inserts the account unless one with the same name exists.
func (r *accountRepository) SeedAccount(ctx context.Context, account domain.Account) (bool, error) {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (name, account_type, is_bank, description, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO NOTHING;
	`
	tag, err := r.DB.Exec(ctx, query, m.Name, m.AccountType, m.IsBank, m.Description, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return false, fmt.Errorf("failed to seed account %q: %w", m.Name, err)
	}
	return tag.RowsAffected() == 1, nil
}
