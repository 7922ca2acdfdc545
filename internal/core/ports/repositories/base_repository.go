package repositories

import (
	"context"
)

// Store is a view over every repository the posting engine writes through.
// A Store handed out by TransactionManager is bound to one unit of work.
type Store interface {
	Accounts() AccountReader
	Sequences() DocumentSequenceReader
	Postings() PostingRepositoryFacade
	Sales() SaleRepositoryFacade
	Expenses() ExpenseRepositoryFacade
	Reporting() ReportingRepository
}

// TransactionManager runs units of work.
type TransactionManager interface {
	// WithinTransaction runs fn against a transaction-bound Store. The unit of work
	// commits when fn returns nil and rolls back entirely otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}
