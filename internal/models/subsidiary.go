package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales table.
type Sale struct {
	SaleID           int64           `db:"sale_id"`
	SaleNo           string          `db:"sale_no"`
	SaleDate         time.Time       `db:"sale_date"`
	CustomerID       int64           `db:"customer_id"`
	Description      string          `db:"description"`
	Memo             string          `db:"memo"`
	Amount           decimal.Decimal `db:"amount"`
	PaymentType      string          `db:"payment_type"`
	RevenueAccountID int64           `db:"revenue_account_id"`
	BankAccountID    *int64          `db:"bank_account_id"` // Nullable
	AuditFields
}

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID        int64           `db:"expense_id"`
	ExpenseNo        string          `db:"expense_no"`
	ExpenseDate      time.Time       `db:"expense_date"`
	VendorID         int64           `db:"vendor_id"`
	Description      string          `db:"description"`
	Memo             string          `db:"memo"`
	Amount           decimal.Decimal `db:"amount"`
	PaymentType      string          `db:"payment_type"`
	ExpenseAccountID int64           `db:"expense_account_id"`
	BankAccountID    *int64          `db:"bank_account_id"` // Nullable
	AuditFields
}
