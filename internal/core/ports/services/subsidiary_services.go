package services

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

// SaleSvcFacade records sales and their postings.
type SaleSvcFacade interface {
	// CreateSale persists the sale and its posting in one unit of work.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, creator string) (*domain.Sale, error)

	// GetSale returns the sale with its posting attached.
	GetSale(ctx context.Context, saleID int64) (*domain.Sale, error)

	ListSales(ctx context.Context, params dto.ListParams) ([]domain.Sale, error)

	// DeleteSale removes the sale and its posting in one unit of work.
	DeleteSale(ctx context.Context, saleID int64) error
}

// ExpenseSvcFacade records expenses and their postings.
type ExpenseSvcFacade interface {
	// CreateExpense persists the expense and its posting in one unit of work.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creator string) (*domain.Expense, error)

	// GetExpense returns the expense with its posting attached.
	GetExpense(ctx context.Context, expenseID int64) (*domain.Expense, error)

	ListExpenses(ctx context.Context, params dto.ListParams) ([]domain.Expense, error)

	// DeleteExpense removes the expense and its posting in one unit of work.
	DeleteExpense(ctx context.Context, expenseID int64) error
}
