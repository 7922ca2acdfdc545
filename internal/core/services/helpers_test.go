package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testChart deliberately leaves the bank flag off so the name fallback is exercised.
var testChart = []domain.Account{
	{Name: "Cash", AccountType: domain.Asset},
	{Name: "Bank Account (ABA)", AccountType: domain.Asset},
	{Name: "Petty Float", AccountType: domain.Asset},
	{Name: "AT Rental", AccountType: domain.Revenue},
	{Name: "Fuel Expense", AccountType: domain.ExpenseType},
	{Name: "Accounts Payable", AccountType: domain.Liability},
	{Name: "Owner's Equity", AccountType: domain.Equity},
}

type fixture struct {
	db         *memory.Database
	repos      portsrepo.RepositoryProvider
	svc        *portssvc.ServiceContainer
	ids        map[string]int64
	customerID int64
	vendorID   int64
}

func newFixture(t *testing.T, opts ...func(*config.Config)) *fixture {
	return newFixtureWithChart(t, testChart, opts...)
}

func newFixtureWithChart(t *testing.T, chart []domain.Account, opts ...func(*config.Config)) *fixture {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{NumberRetryBudget: 10, BankNameFallback: true}
	for _, opt := range opts {
		opt(cfg)
	}

	db := memory.NewDatabase()
	repos := memory.NewRepositoryProvider(db, nil)
	f := &fixture{
		db:    db,
		repos: repos,
		svc:   services.NewServiceContainer(cfg, repos),
		ids:   make(map[string]int64),
	}

	_, err := f.svc.Account.SeedAccounts(ctx, chart, "test")
	require.NoError(t, err)
	accounts, err := f.svc.Account.ListAccounts(ctx, nil)
	require.NoError(t, err)
	for _, a := range accounts {
		f.ids[a.Name] = a.AccountID
	}

	f.customerID, err = db.Parties().AddCustomer(ctx, "Dara")
	require.NoError(t, err)
	f.vendorID, err = db.Parties().AddVendor(ctx, "Total Fuel")
	require.NoError(t, err)
	return f
}

func (f *fixture) id(name string) int64 {
	return f.ids[name]
}

func idPtr(id int64) *int64 {
	return &id
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func withoutBankNameFallback(cfg *config.Config) {
	cfg.BankNameFallback = false
}
