// Package memory is an in-process storage engine used by tests and STORAGE_DRIVER=memory.
// A unit of work runs against a cloned snapshot and is swapped in only on success.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
)

type table string

const (
	accountsTable table = "accounts"
	postingsTable table = "postings"
	salesTable    table = "sales"
	expensesTable table = "expenses"
	partiesTable  table = "parties"
)

type state struct {
	accounts  map[int64]domain.Account
	postings  map[int64]domain.Posting
	sales     map[int64]domain.Sale
	expenses  map[int64]domain.Expense
	customers map[int64]string
	vendors   map[int64]string
	lastID    map[table]int64
}

func newState() *state {
	return &state{
		accounts:  make(map[int64]domain.Account),
		postings:  make(map[int64]domain.Posting),
		sales:     make(map[int64]domain.Sale),
		expenses:  make(map[int64]domain.Expense),
		customers: make(map[int64]string),
		vendors:   make(map[int64]string),
		lastID:    make(map[table]int64),
	}
}

func (s *state) clone() *state {
	return &state{
		accounts:  maps.Clone(s.accounts),
		postings:  maps.Clone(s.postings),
		sales:     maps.Clone(s.sales),
		expenses:  maps.Clone(s.expenses),
		customers: maps.Clone(s.customers),
		vendors:   maps.Clone(s.vendors),
		lastID:    maps.Clone(s.lastID),
	}
}

func (s *state) nextID(t table) int64 {
	s.lastID[t]++
	return s.lastID[t]
}

// Database is the in-memory storage engine. Units of work are serialized.
type Database struct {
	mu    sync.RWMutex
	state *state
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{state: newState()}
}

// Ensure Database implements the TransactionManager interface
var _ portsrepo.TransactionManager = (*Database)(nil)

// WithinTransaction runs fn against a private snapshot and publishes it when fn succeeds.
// fn must use the Store it is given; calling the auto-commit Store from inside fn deadlocks.
func (db *Database) WithinTransaction(ctx context.Context, fn func(ctx context.Context, store portsrepo.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	work := db.state.clone()
	if err := fn(ctx, &store{db: db, tx: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	db.state = work
	return nil
}

// Store returns an auto-commit view; every write runs as its own unit of work.
func (db *Database) Store() portsrepo.Store {
	return &store{db: db}
}

// Accounts returns the account repository including setup-time writes.
func (db *Database) Accounts() portsrepo.AccountRepositoryFacade {
	return &store{db: db}
}

// Parties returns the customer and vendor directory.
func (db *Database) Parties() *PartyDirectory {
	return &PartyDirectory{db: db}
}

// store is bound either to a unit of work (tx set) or to the live state.
type store struct {
	db *Database
	tx *state
}

func (s *store) Accounts() portsrepo.AccountReader           { return s }
func (s *store) Sequences() portsrepo.DocumentSequenceReader { return s }
func (s *store) Postings() portsrepo.PostingRepositoryFacade { return s }
func (s *store) Sales() portsrepo.SaleRepositoryFacade       { return s }
func (s *store) Expenses() portsrepo.ExpenseRepositoryFacade { return s }
func (s *store) Reporting() portsrepo.ReportingRepository    { return s }

func (s *store) view(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.tx != nil {
		return fn(s.tx)
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return fn(s.db.state)
}

func (s *store) update(ctx context.Context, fn func(st *state) error) error {
	if s.tx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(s.tx)
	}
	return s.db.WithinTransaction(ctx, func(_ context.Context, st portsrepo.Store) error {
		return fn(st.(*store).tx)
	})
}
