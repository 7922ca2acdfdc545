package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType describes how a sale was paid or an expense was settled.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentBank   PaymentType = "bank"
	PaymentCredit PaymentType = "credit"
)

// ValidForSale reports whether p is accepted on a sale.
func (p PaymentType) ValidForSale() bool {
	return p == PaymentCash || p == PaymentBank || p == PaymentCredit
}

// ValidForExpense reports whether p is accepted on an expense.
func (p PaymentType) ValidForExpense() bool {
	return p == PaymentCash || p == PaymentBank
}

// Sale is a subsidiary record that produces exactly one posting.
type Sale struct {
	SaleID           int64           `json:"saleID"`
	SaleNo           string          `json:"saleNo"` // SALE-NNNN, unique
	SaleDate         time.Time       `json:"saleDate"`
	CustomerID       int64           `json:"customerID"`
	Description      string          `json:"description"`
	Memo             string          `json:"memo,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentType      PaymentType     `json:"paymentType"`
	RevenueAccountID int64           `json:"revenueAccountID"`        // credit side
	BankAccountID    *int64          `json:"bankAccountID,omitempty"` // debit side for bank/credit
	AuditFields
	Posting *Posting `json:"posting,omitempty"`
}

// Expense is a subsidiary record that produces exactly one posting.
type Expense struct {
	ExpenseID        int64           `json:"expenseID"`
	ExpenseNo        string          `json:"expenseNo"` // EXP-NNNN, unique
	ExpenseDate      time.Time       `json:"expenseDate"`
	VendorID         int64           `json:"vendorID"`
	Description      string          `json:"description"`
	Memo             string          `json:"memo,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentType      PaymentType     `json:"paymentType"`
	ExpenseAccountID int64           `json:"expenseAccountID"`        // debit side
	BankAccountID    *int64          `json:"bankAccountID,omitempty"` // credit side for bank
	AuditFields
	Posting *Posting `json:"posting,omitempty"`
}
