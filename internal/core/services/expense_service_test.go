package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseRequest(f *fixture, paymentType domain.PaymentType, amount string) dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		ExpenseDate:      "2024-05-03",
		VendorID:         f.vendorID,
		Description:      "diesel for AT-07",
		Amount:           money(amount),
		PaymentType:      paymentType,
		ExpenseAccountID: f.id("Fuel Expense"),
	}
}

func TestCreateExpense_CashExpense(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	expense, err := f.svc.Expense.CreateExpense(ctx, expenseRequest(f, domain.PaymentCash, "12.50"), "clerk-1")
	require.NoError(t, err)

	assert.Equal(t, "EXP-0001", expense.ExpenseNo)
	require.NotNil(t, expense.Posting)
	assert.Equal(t, "GL-001", expense.Posting.TransactionNo)
	assert.Equal(t, f.id("Fuel Expense"), expense.Posting.DebitAccountID)
	assert.Equal(t, f.id("Cash"), expense.Posting.CreditAccountID)
	assert.Equal(t, "Expense to Total Fuel for diesel for AT-07", expense.Posting.Description)
	assert.Equal(t, "EXP-0001", expense.Posting.Memo)
	require.NotNil(t, expense.Posting.ExpenseID)
	assert.Equal(t, expense.ExpenseID, *expense.Posting.ExpenseID)
	assert.Nil(t, expense.Posting.SaleID)

	stored, err := f.svc.Expense.GetExpense(ctx, expense.ExpenseID)
	require.NoError(t, err)
	require.NotNil(t, stored.Posting)
	assert.Equal(t, expense.Posting.TransactionNo, stored.Posting.TransactionNo)
}

func TestCreateExpense_BankCreditsBankAccount(t *testing.T) {
	f := newFixture(t)
	req := expenseRequest(f, domain.PaymentBank, "99.99")
	req.BankAccountID = idPtr(f.id("Bank Account (ABA)"))

	expense, err := f.svc.Expense.CreateExpense(context.Background(), req, "clerk-1")
	require.NoError(t, err)
	assert.Equal(t, f.id("Bank Account (ABA)"), expense.Posting.CreditAccountID)
}

func TestCreateExpense_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*fixture, *dto.CreateExpenseRequest)
		wantErr error
		field   string
	}{
		{"credit is not an expense payment", func(f *fixture, r *dto.CreateExpenseRequest) {
			r.PaymentType = domain.PaymentCredit
			r.BankAccountID = idPtr(f.id("Bank Account (ABA)"))
		}, apperrors.ErrValidation, "paymentType"},
		{"bank target is a liability", func(f *fixture, r *dto.CreateExpenseRequest) {
			r.PaymentType = domain.PaymentBank
			r.BankAccountID = idPtr(f.id("Accounts Payable"))
		}, apperrors.ErrInvalidAccountClassification, "bankAccountID"},
		{"expense side is revenue", func(f *fixture, r *dto.CreateExpenseRequest) {
			r.ExpenseAccountID = f.id("AT Rental")
		}, apperrors.ErrInvalidAccountClassification, "expenseAccountID"},
		{"unknown expense account", func(_ *fixture, r *dto.CreateExpenseRequest) {
			r.ExpenseAccountID = 777
		}, apperrors.ErrUnknownAccount, "expenseAccountID"},
		{"unknown vendor", func(_ *fixture, r *dto.CreateExpenseRequest) {
			r.VendorID = 777
		}, apperrors.ErrValidation, "vendorID"},
		{"negative amount", func(_ *fixture, r *dto.CreateExpenseRequest) {
			r.Amount = money("-1.00")
		}, apperrors.ErrValidation, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := expenseRequest(f, domain.PaymentCash, "12.50")
			tt.mutate(f, &req)

			_, err := f.svc.Expense.CreateExpense(context.Background(), req, "clerk-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, apperrors.Fields(err), tt.field)
			assertNothingPersisted(t, f)
		})
	}
}

func TestDeleteExpense_RemovesPosting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	expense, err := f.svc.Expense.CreateExpense(ctx, expenseRequest(f, domain.PaymentCash, "12.50"), "clerk-1")
	require.NoError(t, err)
	sale, err := f.svc.Sale.CreateSale(ctx, saleRequest(f, domain.PaymentCash, "50.00"), "clerk-1")
	require.NoError(t, err)

	require.NoError(t, f.svc.Expense.DeleteExpense(ctx, expense.ExpenseID))

	postings, err := f.svc.Ledger.ListPostingsUpTo(ctx, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.Equal(t, sale.Posting.PostingID, postings[0].PostingID)

	assert.ErrorIs(t, f.svc.Expense.DeleteExpense(ctx, expense.ExpenseID), apperrors.ErrNotFound)
}
