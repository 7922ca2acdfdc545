package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
)

// sequenceTarget names the table and columns a document series is probed against.
type sequenceTarget struct {
	table  string
	id     string
	number string
}

var sequenceTargets = map[domain.DocumentKind]sequenceTarget{
	domain.DocumentPosting: {table: "postings", id: "posting_id", number: "transaction_no"},
	domain.DocumentSale:    {table: "sales", id: "sale_id", number: "sale_no"},
	domain.DocumentExpense: {table: "expenses", id: "expense_id", number: "expense_no"},
}

type sequenceRepository struct {
	BaseRepository
}

// Ensure sequenceRepository implements portsrepo.DocumentSequenceReader
var _ portsrepo.DocumentSequenceReader = (*sequenceRepository)(nil)

func lookupTarget(kind domain.DocumentKind) (sequenceTarget, error) {
	target, ok := sequenceTargets[kind]
	if !ok {
		return sequenceTarget{}, fmt.Errorf("unknown document kind %q", kind)
	}
	return target, nil
}

// MaxID returns the highest surrogate id in the kind's table, 0 when empty.
func (r *sequenceRepository) MaxID(ctx context.Context, kind domain.DocumentKind) (int64, error) {
	target, err := lookupTarget(kind)
	if err != nil {
		return 0, err
	}
	var maxID int64
	query := fmt.Sprintf(`SELECT COALESCE(MAX(%s), 0) FROM %s`, target.id, target.table)
	if err := r.DB.QueryRow(ctx, query).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("failed to read max id of %s: %w", target.table, err)
	}
	return maxID, nil
}

// DocumentNumberExists reports whether number is already used in the kind's table.
func (r *sequenceRepository) DocumentNumberExists(ctx context.Context, kind domain.DocumentKind, number string) (bool, error) {
	target, err := lookupTarget(kind)
	if err != nil {
		return false, err
	}
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, target.table, target.number)
	if err := r.DB.QueryRow(ctx, query, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to probe %s: %w", target.table, err)
	}
	return exists, nil
}
