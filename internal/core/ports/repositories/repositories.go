package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Store       Store // auto-commit view for reads
	TxManager   TransactionManager
	AccountRepo AccountRepositoryFacade
	Parties     PartyDirectory
	ReportCache ReportCache // nil when no cache is configured
}
