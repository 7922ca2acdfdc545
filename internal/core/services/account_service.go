package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
)

// accountService implements the chart of accounts registry
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountReportCache sets the cache invalidated when seeding adds accounts.
func WithAccountReportCache(cache portsrepo.ReportCache) AccountServiceOption {
	return func(s *accountService) {
		s.ReportCache = cache
	}
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("account %d: %w: %w", accountID, apperrors.ErrNotFound, apperrors.ErrUnknownAccount)
		}
		s.LogError(ctx, err, "Failed to get account", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *accountService) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("account %q: %w", name, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to get account by name", slog.String("name", name))
		return nil, fmt.Errorf("failed to get account by name: %w", err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	if accountType != nil && !accountType.Valid() {
		return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown account type %q", *accountType))
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, accountType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) SeedAccounts(ctx context.Context, accounts []domain.Account, creator string) (int, error) {
	now := time.Now().UTC()
	created := 0
	for i, account := range accounts {
		if strings.TrimSpace(account.Name) == "" {
			return created, apperrors.NewValidationError(fmt.Sprintf("accounts[%d].name", i), "name is required")
		}
		if !account.AccountType.Valid() {
			return created, apperrors.NewValidationError(fmt.Sprintf("accounts[%d].accountType", i),
				fmt.Sprintf("unknown account type %q", account.AccountType))
		}
		account.CreatedAt = now
		account.CreatedBy = creator

		ok, err := s.accountRepo.SeedAccount(ctx, account)
		if err != nil {
			s.LogError(ctx, err, "Failed to seed account", slog.String("name", account.Name))
			if created > 0 {
				s.ledgerChanged(ctx)
			}
			return created, fmt.Errorf("failed to seed account %q: %w", account.Name, err)
		}
		if ok {
			created++
			s.LogDebug(ctx, "Seeded account", slog.String("name", account.Name), slog.String("type", string(account.AccountType)))
		}
	}

	if created > 0 {
		// new accounts appear as zero lines in every report
		s.ledgerChanged(ctx)
	}
	s.LogInfo(ctx, "Chart of accounts seeded", slog.Int("created", created), slog.Int("requested", len(accounts)))
	return created, nil
}
