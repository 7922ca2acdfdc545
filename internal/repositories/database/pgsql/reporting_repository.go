package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// Ensure reportingRepository implements the ReportingRepository interface
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// SumActivityUpTo totals the debit and credit legs per account for postings dated on or before cutoff.
func (r *reportingRepository) SumActivityUpTo(ctx context.Context, cutoff time.Time) (map[int64]domain.AccountActivity, error) {
	query := `
		SELECT account_id, SUM(debit) AS total_debit, SUM(credit) AS total_credit
		FROM (
			SELECT debit_account_id AS account_id, amount AS debit, 0::numeric AS credit
			FROM postings
			WHERE transaction_date <= $1
			UNION ALL
			SELECT credit_account_id AS account_id, 0::numeric AS debit, amount AS credit
			FROM postings
			WHERE transaction_date <= $1
		) legs
		GROUP BY account_id
	`

	rows, err := r.DB.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]domain.AccountActivity)
	for rows.Next() {
		var row domain.AccountActivity
		var debit, credit decimal.Decimal
		if err := rows.Scan(&row.AccountID, &debit, &credit); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		row.Debit = debit
		row.Credit = credit
		result[row.AccountID] = row
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}
