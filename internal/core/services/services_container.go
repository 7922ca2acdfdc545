package services

import (
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	numbers := NewDocumentNumberGenerator(cfg.NumberRetryBudget)
	rules := NewPostingRules(WithBankNameFallback(cfg.BankNameFallback))

	container.Account = NewAccountService(repos.AccountRepo, WithAccountReportCache(repos.ReportCache))
	container.Ledger = NewLedgerService(repos.TxManager, repos.Store, numbers,
		WithLedgerReportCache(repos.ReportCache))

	deps := SubsidiaryDeps{
		TxManager:   repos.TxManager,
		Store:       repos.Store,
		Parties:     repos.Parties,
		Rules:       rules,
		Numbers:     numbers,
		Ledger:      container.Ledger,
		ReportCache: repos.ReportCache,
	}
	container.Sale = NewSaleService(deps)
	container.Expense = NewExpenseService(deps)
	container.Reporting = NewReportingService(repos.Store, WithReportingCache(repos.ReportCache))

	return container
}
