package pgsql

import (
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
)

// store groups the repositories that share one querier.
type store struct {
	accounts  *accountRepository
	sequences *sequenceRepository
	postings  *postingRepository
	sales     *saleRepository
	expenses  *expenseRepository
	reporting *reportingRepository
}

func newStore(q querier) *store {
	base := BaseRepository{DB: q}
	return &store{
		accounts:  &accountRepository{BaseRepository: base},
		sequences: &sequenceRepository{BaseRepository: base},
		postings:  &postingRepository{BaseRepository: base},
		sales:     &saleRepository{BaseRepository: base},
		expenses:  &expenseRepository{BaseRepository: base},
		reporting: &reportingRepository{BaseRepository: base},
	}
}

// Ensure store implements the Store interface
var _ portsrepo.Store = (*store)(nil)

func (s *store) Accounts() portsrepo.AccountReader           { return s.accounts }
func (s *store) Sequences() portsrepo.DocumentSequenceReader { return s.sequences }
func (s *store) Postings() portsrepo.PostingRepositoryFacade { return s.postings }
func (s *store) Sales() portsrepo.SaleRepositoryFacade       { return s.sales }
func (s *store) Expenses() portsrepo.ExpenseRepositoryFacade { return s.expenses }
func (s *store) Reporting() portsrepo.ReportingRepository    { return s.reporting }
