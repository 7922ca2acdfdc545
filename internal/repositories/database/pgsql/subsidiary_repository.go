package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/models"
	"github.com/SscSPs/rental_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const saleColumns = `sale_id, sale_no, sale_date, customer_id, description, memo, amount,
	payment_type, revenue_account_id, bank_account_id, created_at, created_by`

const expenseColumns = `expense_id, expense_no, expense_date, vendor_id, description, memo, amount,
	payment_type, expense_account_id, bank_account_id, created_at, created_by`

type saleRepository struct {
	BaseRepository
}

// Ensure saleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*saleRepository)(nil)

// InsertSale stores a sale and fills in its ID. A taken sale number yields apperrors.ErrDuplicate.
func (r *saleRepository) InsertSale(ctx context.Context, sale *domain.Sale) error {
	m := mapping.ToModelSale(*sale)
	query := `
		INSERT INTO sales (sale_no, sale_date, customer_id, description, memo, amount,
			payment_type, revenue_account_id, bank_account_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING sale_id;
	`
	err := r.guarded(ctx, func(q querier) error {
		return q.QueryRow(ctx, query,
			m.SaleNo, m.SaleDate, m.CustomerID, m.Description, m.Memo, m.Amount,
			m.PaymentType, m.RevenueAccountID, m.BankAccountID, m.CreatedAt, m.CreatedBy,
		).Scan(&sale.SaleID)
	})
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("sale number %s: %w", m.SaleNo, apperrors.ErrDuplicate)
		case isForeignKeyViolation(err):
			return foreignKeyError(err)
		}
		return fmt.Errorf("failed to insert sale %s: %w", m.SaleNo, err)
	}
	return nil
}

// FindSaleByID retrieves a sale by its ID.
func (r *saleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+saleColumns+` FROM sales WHERE sale_id = $1`, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale %d: %w", saleID, err)
	}
	modelSales, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Sale])
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale %d: %w", saleID, err)
	}
	if len(modelSales) == 0 {
		return nil, fmt.Errorf("sale %d: %w", saleID, apperrors.ErrNotFound)
	}
	sale := mapping.ToDomainSale(modelSales[0])
	return &sale, nil
}

// ListSales returns sales newest first.
func (r *saleRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		ORDER BY sale_date DESC, sale_id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.DB.Query(ctx, query, limit, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	modelSales, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Sale])
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale rows: %w", err)
	}

	sales := make([]domain.Sale, len(modelSales))
	for i, m := range modelSales {
		sales[i] = mapping.ToDomainSale(m)
	}
	return sales, nil
}

// DeleteSale removes a sale. Its posting is removed by the ON DELETE CASCADE foreign key.
func (r *saleRepository) DeleteSale(ctx context.Context, saleID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale %d: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sale %d: %w", saleID, apperrors.ErrNotFound)
	}
	return nil
}

type expenseRepository struct {
	BaseRepository
}

// Ensure expenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*expenseRepository)(nil)

// InsertExpense stores an expense and fills in its ID. A taken expense number yields apperrors.ErrDuplicate.
func (r *expenseRepository) InsertExpense(ctx context.Context, expense *domain.Expense) error {
	m := mapping.ToModelExpense(*expense)
	query := `
		INSERT INTO expenses (expense_no, expense_date, vendor_id, description, memo, amount,
			payment_type, expense_account_id, bank_account_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING expense_id;
	`
	err := r.guarded(ctx, func(q querier) error {
		return q.QueryRow(ctx, query,
			m.ExpenseNo, m.ExpenseDate, m.VendorID, m.Description, m.Memo, m.Amount,
			m.PaymentType, m.ExpenseAccountID, m.BankAccountID, m.CreatedAt, m.CreatedBy,
		).Scan(&expense.ExpenseID)
	})
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("expense number %s: %w", m.ExpenseNo, apperrors.ErrDuplicate)
		case isForeignKeyViolation(err):
			return foreignKeyError(err)
		}
		return fmt.Errorf("failed to insert expense %s: %w", m.ExpenseNo, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *expenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE expense_id = $1`, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense %d: %w", expenseID, err)
	}
	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense %d: %w", expenseID, err)
	}
	if len(modelExpenses) == 0 {
		return nil, fmt.Errorf("expense %d: %w", expenseID, apperrors.ErrNotFound)
	}
	expense := mapping.ToDomainExpense(modelExpenses[0])
	return &expense, nil
}

// ListExpenses returns expenses newest first.
func (r *expenseRepository) ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		ORDER BY expense_date DESC, expense_id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.DB.Query(ctx, query, limit, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	modelExpenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense rows: %w", err)
	}

	expenses := make([]domain.Expense, len(modelExpenses))
	for i, m := range modelExpenses {
		expenses[i] = mapping.ToDomainExpense(m)
	}
	return expenses, nil
}

// DeleteExpense removes an expense. Its posting is removed by the ON DELETE CASCADE foreign key.
func (r *expenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %d: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}
