package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// PartyRepository reads and registers customers and vendors.
type PartyRepository struct {
	BaseRepository
}

// Ensure PartyRepository implements the PartyDirectory interface
var _ portsrepo.PartyDirectory = (*PartyRepository)(nil)

func (r *PartyRepository) name(ctx context.Context, table string, id int64) (string, error) {
	var name string
	err := r.DB.QueryRow(ctx, `SELECT name FROM `+table+` WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%s %d: %w", strings.TrimSuffix(table, "s"), id, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to look up %s %d: %w", table, id, err)
	}
	return name, nil
}

func (r *PartyRepository) add(ctx context.Context, table, name string) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `INSERT INTO `+table+` (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return id, nil
}

func (r *PartyRepository) CustomerName(ctx context.Context, customerID int64) (string, error) {
	return r.name(ctx, "customers", customerID)
}

func (r *PartyRepository) VendorName(ctx context.Context, vendorID int64) (string, error) {
	return r.name(ctx, "vendors", vendorID)
}

// AddCustomer registers a customer and returns its id.
func (r *PartyRepository) AddCustomer(ctx context.Context, name string) (int64, error) {
	return r.add(ctx, "customers", name)
}

// AddVendor registers a vendor and returns its id.
func (r *PartyRepository) AddVendor(ctx context.Context, name string) (int64, error) {
	return r.add(ctx, "vendors", name)
}
