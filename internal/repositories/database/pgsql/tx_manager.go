package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs units of work on a PostgreSQL transaction.
type TxManager struct {
	BaseRepository
}

func newTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{BaseRepository: BaseRepository{DB: pool}}
}

// Ensure TxManager implements the TransactionManager interface
var _ portsrepo.TransactionManager = (*TxManager)(nil)

// WithinTransaction begins a transaction, hands fn a Store bound to it and
// commits only when fn succeeds.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, store portsrepo.Store) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = m.Rollback(ctx, tx) }()

	if err := fn(ctx, newStore(tx)); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}
