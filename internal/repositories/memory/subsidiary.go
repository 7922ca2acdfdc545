package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

func (s *store) InsertSale(ctx context.Context, sale *domain.Sale) error {
	return s.update(ctx, func(st *state) error {
		if saleNoTaken(st, sale.SaleNo) {
			return fmt.Errorf("sale number %s: %w", sale.SaleNo, apperrors.ErrDuplicate)
		}
		if _, ok := st.customers[sale.CustomerID]; !ok {
			return apperrors.NewValidationError("customerID", "does not exist")
		}
		if err := st.accountRefs(
			accountRef{"revenueAccountID", &sale.RevenueAccountID},
			accountRef{"bankAccountID", sale.BankAccountID},
		); err != nil {
			return err
		}
		sale.SaleID = st.nextID(salesTable)
		stored := *sale
		stored.Posting = nil
		st.sales[sale.SaleID] = stored
		return nil
	})
}

func (s *store) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	var out *domain.Sale
	err := s.view(ctx, func(st *state) error {
		sale, ok := st.sales[saleID]
		if !ok {
			return fmt.Errorf("sale %d: %w", saleID, apperrors.ErrNotFound)
		}
		out = &sale
		return nil
	})
	return out, err
}

func (s *store) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	var all []domain.Sale
	err := s.view(ctx, func(st *state) error {
		for _, sale := range st.sales {
			all = append(all, sale)
		}
		return nil
	})
	sort.Slice(all, func(i, j int) bool {
		if !all[i].SaleDate.Equal(all[j].SaleDate) {
			return all[i].SaleDate.After(all[j].SaleDate)
		}
		return all[i].SaleID > all[j].SaleID
	})
	return window(all, limit, offset), err
}

func (s *store) DeleteSale(ctx context.Context, saleID int64) error {
	return s.update(ctx, func(st *state) error {
		if _, ok := st.sales[saleID]; !ok {
			return fmt.Errorf("sale %d: %w", saleID, apperrors.ErrNotFound)
		}
		delete(st.sales, saleID)
		cascade(st, domain.SaleOrigin(saleID))
		return nil
	})
}

func (s *store) InsertExpense(ctx context.Context, expense *domain.Expense) error {
	return s.update(ctx, func(st *state) error {
		if expenseNoTaken(st, expense.ExpenseNo) {
			return fmt.Errorf("expense number %s: %w", expense.ExpenseNo, apperrors.ErrDuplicate)
		}
		if _, ok := st.vendors[expense.VendorID]; !ok {
			return apperrors.NewValidationError("vendorID", "does not exist")
		}
		if err := st.accountRefs(
			accountRef{"expenseAccountID", &expense.ExpenseAccountID},
			accountRef{"bankAccountID", expense.BankAccountID},
		); err != nil {
			return err
		}
		expense.ExpenseID = st.nextID(expensesTable)
		stored := *expense
		stored.Posting = nil
		st.expenses[expense.ExpenseID] = stored
		return nil
	})
}

func (s *store) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	var out *domain.Expense
	err := s.view(ctx, func(st *state) error {
		expense, ok := st.expenses[expenseID]
		if !ok {
			return fmt.Errorf("expense %d: %w", expenseID, apperrors.ErrNotFound)
		}
		out = &expense
		return nil
	})
	return out, err
}

func (s *store) ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error) {
	var all []domain.Expense
	err := s.view(ctx, func(st *state) error {
		for _, expense := range st.expenses {
			all = append(all, expense)
		}
		return nil
	})
	sort.Slice(all, func(i, j int) bool {
		if !all[i].ExpenseDate.Equal(all[j].ExpenseDate) {
			return all[i].ExpenseDate.After(all[j].ExpenseDate)
		}
		return all[i].ExpenseID > all[j].ExpenseID
	})
	return window(all, limit, offset), err
}

func (s *store) DeleteExpense(ctx context.Context, expenseID int64) error {
	return s.update(ctx, func(st *state) error {
		if _, ok := st.expenses[expenseID]; !ok {
			return fmt.Errorf("expense %d: %w", expenseID, apperrors.ErrNotFound)
		}
		delete(st.expenses, expenseID)
		cascade(st, domain.ExpenseOrigin(expenseID))
		return nil
	})
}

// cascade mirrors ON DELETE CASCADE from postings to their origin.
func cascade(st *state, origin domain.Origin) {
	for id, posting := range st.postings {
		if sameOrigin(posting.Origin, origin) {
			delete(st.postings, id)
		}
	}
}

func saleNoTaken(st *state, number string) bool {
	for _, sale := range st.sales {
		if sale.SaleNo == number {
			return true
		}
	}
	return false
}

func expenseNoTaken(st *state, number string) bool {
	for _, expense := range st.expenses {
		if expense.ExpenseNo == number {
			return true
		}
	}
	return false
}

func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
