package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origin names the subsidiary record a posting was generated from.
// At most one of SaleID and ExpenseID is set; neither means a manual posting.
type Origin struct {
	SaleID    *int64 `json:"saleID,omitempty"`
	ExpenseID *int64 `json:"expenseID,omitempty"`
}

// SaleOrigin returns the origin for a posting generated by a sale.
func SaleOrigin(saleID int64) Origin { return Origin{SaleID: &saleID} }

// ExpenseOrigin returns the origin for a posting generated by an expense.
func ExpenseOrigin(expenseID int64) Origin { return Origin{ExpenseID: &expenseID} }

// IsManual reports whether the origin names no subsidiary record.
func (o Origin) IsManual() bool { return o.SaleID == nil && o.ExpenseID == nil }

// Valid reports whether at most one origin is set.
func (o Origin) Valid() bool { return o.SaleID == nil || o.ExpenseID == nil }

// Posting is a single two-legged entry in the general ledger.
// Postings are never mutated; they disappear only when their origin is deleted.
type Posting struct {
	PostingID       int64           `json:"postingID"`
	TransactionNo   string          `json:"transactionNo"`   // GL-NNN, unique
	TransactionDate time.Time       `json:"transactionDate"` // calendar date
	Description     string          `json:"description"`
	Memo            string          `json:"memo,omitempty"`
	DebitAccountID  int64           `json:"debitAccountID"`
	CreditAccountID int64           `json:"creditAccountID"`
	Amount          decimal.Decimal `json:"amount"` // > 0, at most 2 decimal places
	Origin
	AuditFields
}

// PostingInput is what a caller supplies to the ledger; the ledger assigns number and id.
type PostingInput struct {
	TransactionDate time.Time
	Description     string
	Memo            string
	DebitAccountID  int64
	CreditAccountID int64
	Amount          decimal.Decimal
	Origin          Origin
	CreatedBy       string
}

// PostingPair is the resolved debit and credit account of a posting.
type PostingPair struct {
	Debit  Account
	Credit Account
}

// ValidAmount reports whether amount is positive and carries at most two decimal places.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}
