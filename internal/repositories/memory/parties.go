package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
)

// PartyDirectory keeps customers and vendors in the same database as the ledger.
type PartyDirectory struct {
	db *Database
}

// Ensure PartyDirectory implements the PartyDirectory port
var _ portsrepo.PartyDirectory = (*PartyDirectory)(nil)

// AddCustomer registers a customer and returns its id.
func (p *PartyDirectory) AddCustomer(ctx context.Context, name string) (int64, error) {
	var id int64
	err := p.db.WithinTransaction(ctx, func(_ context.Context, s portsrepo.Store) error {
		st := s.(*store).tx
		id = st.nextID(partiesTable)
		st.customers[id] = name
		return nil
	})
	return id, err
}

// AddVendor registers a vendor and returns its id.
func (p *PartyDirectory) AddVendor(ctx context.Context, name string) (int64, error) {
	var id int64
	err := p.db.WithinTransaction(ctx, func(_ context.Context, s portsrepo.Store) error {
		st := s.(*store).tx
		id = st.nextID(partiesTable)
		st.vendors[id] = name
		return nil
	})
	return id, err
}

func (p *PartyDirectory) CustomerName(ctx context.Context, customerID int64) (string, error) {
	var name string
	err := (&store{db: p.db}).view(ctx, func(st *state) error {
		n, ok := st.customers[customerID]
		if !ok {
			return fmt.Errorf("customer %d: %w", customerID, apperrors.ErrNotFound)
		}
		name = n
		return nil
	})
	return name, err
}

func (p *PartyDirectory) VendorName(ctx context.Context, vendorID int64) (string, error) {
	var name string
	err := (&store{db: p.db}).view(ctx, func(st *state) error {
		n, ok := st.vendors[vendorID]
		if !ok {
			return fmt.Errorf("vendor %d: %w", vendorID, apperrors.ErrNotFound)
		}
		name = n
		return nil
	})
	return name, err
}
