package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

func (s *store) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	var out *domain.Account
	err := s.view(ctx, func(st *state) error {
		account, ok := st.accounts[accountID]
		if !ok {
			return fmt.Errorf("account %d: %w", accountID, apperrors.ErrNotFound)
		}
		out = &account
		return nil
	})
	return out, err
}

func (s *store) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	var out *domain.Account
	err := s.view(ctx, func(st *state) error {
		for _, account := range st.accounts {
			if account.Name == name {
				out = &account
				return nil
			}
		}
		return fmt.Errorf("account %q: %w", name, apperrors.ErrNotFound)
	})
	return out, err
}

func (s *store) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	out := make(map[int64]domain.Account, len(accountIDs))
	err := s.view(ctx, func(st *state) error {
		for _, id := range accountIDs {
			if account, ok := st.accounts[id]; ok {
				out[id] = account
			}
		}
		return nil
	})
	return out, err
}

func (s *store) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	out := []domain.Account{}
	err := s.view(ctx, func(st *state) error {
		for _, account := range st.accounts {
			if accountType != nil && account.AccountType != *accountType {
				continue
			}
			out = append(out, account)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].AccountID < out[j].AccountID
	})
	return out, err
}

func (s *store) SeedAccount(ctx context.Context, account domain.Account) (bool, error) {
	created := false
	err := s.update(ctx, func(st *state) error {
		for _, existing := range st.accounts {
			if existing.Name == account.Name {
				return nil
			}
		}
		account.AccountID = st.nextID(accountsTable)
		st.accounts[account.AccountID] = account
		created = true
		return nil
	})
	return created, err
}

// accountRef is an account reference held by a row; a nil id is an absent optional reference.
type accountRef struct {
	field string
	id    *int64
}

// accountRefs emulates the account foreign keys of the SQL schema.
func (st *state) accountRefs(refs ...accountRef) error {
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		if _, ok := st.accounts[*ref.id]; !ok {
			return apperrors.WithField(ref.field, fmt.Errorf("%w: id %d", apperrors.ErrUnknownAccount, *ref.id))
		}
	}
	return nil
}
