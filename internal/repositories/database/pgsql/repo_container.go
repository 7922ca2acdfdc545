package pgsql

import (
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository to the pool. cache may be nil.
func NewRepositoryProvider(dbPool *pgxpool.Pool, cache portsrepo.ReportCache) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: dbPool}

	return portsrepo.RepositoryProvider{
		Store:       newStore(dbPool),
		TxManager:   newTxManager(dbPool),
		AccountRepo: &accountRepository{BaseRepository: base},
		Parties:     &PartyRepository{BaseRepository: base},
		ReportCache: cache,
	}
}

// NewPartyRepository returns the customer and vendor directory.
func NewPartyRepository(dbPool *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{BaseRepository: BaseRepository{DB: dbPool}}
}
