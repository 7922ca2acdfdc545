package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories translate.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB querier
}

// Begin starts a transaction, or a savepoint when DB is already a transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// guarded runs fn inside a savepoint so a constraint violation leaves the
// surrounding transaction usable for a retry.
func (r *BaseRepository) guarded(ctx context.Context, fn func(q querier) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = r.Rollback(ctx, tx)
		return err
	}
	return r.Commit(ctx, tx)
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == foreignKeyViolation
}

// constraintName returns the violated constraint, if any.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// accountForeignKeys maps account references to the request field that carries them.
var accountForeignKeys = map[string]string{
	"sales_revenue_account_fk":    "revenueAccountID",
	"sales_bank_account_fk":       "bankAccountID",
	"expenses_expense_account_fk": "expenseAccountID",
	"expenses_bank_account_fk":    "bankAccountID",
	"postings_debit_account_fk":   "debitAccountID",
	"postings_credit_account_fk":  "creditAccountID",
}

// partyForeignKeys maps customer and vendor references to their request field.
var partyForeignKeys = map[string]string{
	"sales_customer_fk":  "customerID",
	"expenses_vendor_fk": "vendorID",
}

// foreignKeyError translates a foreign key violation into the same field-level
// errors the posting rules produce. It returns nil for any other error.
func foreignKeyError(err error) error {
	if !isForeignKeyViolation(err) {
		return nil
	}
	name := constraintName(err)
	if field, ok := accountForeignKeys[name]; ok {
		return apperrors.WithField(field, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, name))
	}
	if field, ok := partyForeignKeys[name]; ok {
		return apperrors.NewValidationError(field, "does not exist")
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, name)
}
