package repositories

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// SaleRepositoryFacade defines persistence for sales.
type SaleRepositoryFacade interface {
	// InsertSale persists sale and assigns its id. A sale_no collision returns apperrors.ErrDuplicate.
	InsertSale(ctx context.Context, sale *domain.Sale) error
	FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)
	// ListSales returns sales newest first.
	ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)
	// DeleteSale removes the sale row; apperrors.ErrNotFound when absent.
	DeleteSale(ctx context.Context, saleID int64) error
}

// ExpenseRepositoryFacade defines persistence for expenses.
type ExpenseRepositoryFacade interface {
	// InsertExpense persists expense and assigns its id. An expense_no collision returns apperrors.ErrDuplicate.
	InsertExpense(ctx context.Context, expense *domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)
	// ListExpenses returns expenses newest first.
	ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error)
	// DeleteExpense removes the expense row; apperrors.ErrNotFound when absent.
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// PartyDirectory resolves customer and vendor display names.
// Unknown ids return apperrors.ErrNotFound.
type PartyDirectory interface {
	CustomerName(ctx context.Context, customerID int64) (string, error)
	VendorName(ctx context.Context, vendorID int64) (string, error)
}
