package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/models"
	"github.com/SscSPs/rental_ledger/internal/utils/mapping"
	"github.com/SscSPs/rental_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const postingColumns = `posting_id, transaction_no, transaction_date, description, memo,
	debit_account_id, credit_account_id, amount, sale_id, expense_id, created_at, created_by`

type postingRepository struct {
	BaseRepository
}

// Ensure postingRepository implements portsrepo.PostingRepositoryFacade
var _ portsrepo.PostingRepositoryFacade = (*postingRepository)(nil)

func (r *postingRepository) queryPostings(ctx context.Context, query string, args ...any) ([]domain.Posting, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query postings: %w", err)
	}
	modelPostings, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Posting])
	if err != nil {
		return nil, fmt.Errorf("failed to scan posting rows: %w", err)
	}
	return mapping.ToDomainPostingSlice(modelPostings), nil
}

// FindPostingByID retrieves a posting by its ID.
func (r *postingRepository) FindPostingByID(ctx context.Context, postingID int64) (*domain.Posting, error) {
	postings, err := r.queryPostings(ctx, `SELECT `+postingColumns+` FROM postings WHERE posting_id = $1`, postingID)
	if err != nil {
		return nil, err
	}
	if len(postings) == 0 {
		return nil, fmt.Errorf("posting %d: %w", postingID, apperrors.ErrNotFound)
	}
	return &postings[0], nil
}

// FindPostingByOrigin retrieves the posting generated by a sale or an expense.
func (r *postingRepository) FindPostingByOrigin(ctx context.Context, origin domain.Origin) (*domain.Posting, error) {
	var postings []domain.Posting
	var err error
	switch {
	case origin.SaleID != nil:
		postings, err = r.queryPostings(ctx, `SELECT `+postingColumns+` FROM postings WHERE sale_id = $1`, *origin.SaleID)
	case origin.ExpenseID != nil:
		postings, err = r.queryPostings(ctx, `SELECT `+postingColumns+` FROM postings WHERE expense_id = $1`, *origin.ExpenseID)
	default:
		return nil, fmt.Errorf("%w: manual postings have no origin", apperrors.ErrValidation)
	}
	if err != nil {
		return nil, err
	}
	if len(postings) == 0 {
		return nil, fmt.Errorf("posting for origin: %w", apperrors.ErrNotFound)
	}
	return &postings[0], nil
}

// ListPostings returns a page of postings ordered newest first using keyset pagination.
func (r *postingRepository) ListPostings(ctx context.Context, limit int, nextToken *string) ([]domain.Posting, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{limit + 1}
	where := ""
	if nextToken != nil && *nextToken != "" {
		date, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		where = `WHERE (transaction_date, posting_id) < ($2, $3)`
		args = append(args, date, id)
	}

	query := `
		SELECT ` + postingColumns + `
		FROM postings
		` + where + `
		ORDER BY transaction_date DESC, posting_id DESC
		LIMIT $1;
	`
	postings, err := r.queryPostings(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	if len(postings) <= limit {
		return postings, nil, nil
	}
	postings = postings[:limit]
	last := postings[len(postings)-1]
	token := pagination.EncodeToken(last.TransactionDate, last.PostingID)
	return postings, &token, nil
}

// ListPostingsUpTo returns every posting dated on or before cutoff, oldest first.
func (r *postingRepository) ListPostingsUpTo(ctx context.Context, cutoff time.Time) ([]domain.Posting, error) {
	query := `
		SELECT ` + postingColumns + `
		FROM postings
		WHERE transaction_date <= $1
		ORDER BY transaction_date, posting_id;
	`
	return r.queryPostings(ctx, query, cutoff)
}

// InsertPosting stores a posting and fills in its ID.
// A taken transaction number yields apperrors.ErrDuplicate.
func (r *postingRepository) InsertPosting(ctx context.Context, posting *domain.Posting) error {
	m := mapping.ToModelPosting(*posting)
	query := `
		INSERT INTO postings (transaction_no, transaction_date, description, memo,
			debit_account_id, credit_account_id, amount, sale_id, expense_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING posting_id;
	`
	err := r.guarded(ctx, func(q querier) error {
		return q.QueryRow(ctx, query,
			m.TransactionNo,
			m.TransactionDate,
			m.Description,
			m.Memo,
			m.DebitAccountID,
			m.CreditAccountID,
			m.Amount,
			m.SaleID,
			m.ExpenseID,
			m.CreatedAt,
			m.CreatedBy,
		).Scan(&posting.PostingID)
	})
	if err != nil {
		switch {
		case isUniqueViolation(err) && constraintName(err) == "postings_transaction_no_key":
			return fmt.Errorf("transaction number %s: %w", m.TransactionNo, apperrors.ErrDuplicate)
		case isUniqueViolation(err):
			return fmt.Errorf("%w: origin already has a posting", apperrors.ErrValidation)
		case isForeignKeyViolation(err) && accountForeignKeys[constraintName(err)] != "":
			return foreignKeyError(err)
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: posting origin does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to insert posting %s: %w", m.TransactionNo, err)
	}
	return nil
}

// DeletePostingsByOrigin removes the postings generated by a sale or an expense.
func (r *postingRepository) DeletePostingsByOrigin(ctx context.Context, origin domain.Origin) (int64, error) {
	var query string
	var arg int64
	switch {
	case origin.SaleID != nil:
		query, arg = `DELETE FROM postings WHERE sale_id = $1`, *origin.SaleID
	case origin.ExpenseID != nil:
		query, arg = `DELETE FROM postings WHERE expense_id = $1`, *origin.ExpenseID
	default:
		return 0, errors.New("refusing to delete postings without an origin")
	}

	tag, err := r.DB.Exec(ctx, query, arg)
	if err != nil {
		return 0, fmt.Errorf("failed to delete postings: %w", err)
	}
	return tag.RowsAffected(), nil
}
