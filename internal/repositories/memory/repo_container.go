package memory

import (
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to db. cache may be nil.
func NewRepositoryProvider(db *Database, cache portsrepo.ReportCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Store:       db.Store(),
		TxManager:   db,
		AccountRepo: db.Accounts(),
		Parties:     db.Parties(),
		ReportCache: cache,
	}
}
