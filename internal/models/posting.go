package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting is a row of the postings table. At most one of SaleID and ExpenseID is set.
type Posting struct {
	PostingID       int64           `db:"posting_id"`
	TransactionNo   string          `db:"transaction_no"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	Memo            string          `db:"memo"`
	DebitAccountID  int64           `db:"debit_account_id"`
	CreditAccountID int64           `db:"credit_account_id"`
	Amount          decimal.Decimal `db:"amount"`
	SaleID          *int64          `db:"sale_id"`    // Nullable
	ExpenseID       *int64          `db:"expense_id"` // Nullable
	AuditFields
}
