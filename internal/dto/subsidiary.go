package dto

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the payload for recording a sale.
type CreateSaleRequest struct {
	SaleDate         string             `json:"saleDate" binding:"required,datetime=2006-01-02"`
	CustomerID       int64              `json:"customerID" binding:"required,gt=0"`
	Description      string             `json:"description" binding:"required,max=255"`
	Memo             string             `json:"memo" binding:"max=255"`
	Amount           decimal.Decimal    `json:"amount" binding:"required,money" swaggertype:"string" example:"50.00"`
	PaymentType      domain.PaymentType `json:"paymentType" binding:"required,oneof=cash bank credit"`
	RevenueAccountID int64              `json:"revenueAccountID" binding:"required,gt=0"`
	BankAccountID    *int64             `json:"bankAccountID" binding:"omitempty,gt=0"`
}

// CreateExpenseRequest defines the payload for recording an expense.
type CreateExpenseRequest struct {
	ExpenseDate      string             `json:"expenseDate" binding:"required,datetime=2006-01-02"`
	VendorID         int64              `json:"vendorID" binding:"required,gt=0"`
	Description      string             `json:"description" binding:"required,max=255"`
	Memo             string             `json:"memo" binding:"max=255"`
	Amount           decimal.Decimal    `json:"amount" binding:"required,money" swaggertype:"string" example:"12.50"`
	PaymentType      domain.PaymentType `json:"paymentType" binding:"required,oneof=cash bank"`
	ExpenseAccountID int64              `json:"expenseAccountID" binding:"required,gt=0"`
	BankAccountID    *int64             `json:"bankAccountID" binding:"omitempty,gt=0"`
}

// ListParams defines offset pagination for subsidiary listings.
type ListParams struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID           int64            `json:"saleID"`
	SaleNo           string           `json:"saleNo"`
	SaleDate         string           `json:"saleDate"`
	CustomerID       int64            `json:"customerID"`
	Description      string           `json:"description"`
	Memo             string           `json:"memo,omitempty"`
	Amount           decimal.Decimal  `json:"amount" swaggertype:"string"`
	PaymentType      string           `json:"paymentType"`
	RevenueAccountID int64            `json:"revenueAccountID"`
	BankAccountID    *int64           `json:"bankAccountID,omitempty"`
	CreatedBy        string           `json:"createdBy"`
	Posting          *PostingResponse `json:"posting,omitempty"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID        int64            `json:"expenseID"`
	ExpenseNo        string           `json:"expenseNo"`
	ExpenseDate      string           `json:"expenseDate"`
	VendorID         int64            `json:"vendorID"`
	Description      string           `json:"description"`
	Memo             string           `json:"memo,omitempty"`
	Amount           decimal.Decimal  `json:"amount" swaggertype:"string"`
	PaymentType      string           `json:"paymentType"`
	ExpenseAccountID int64            `json:"expenseAccountID"`
	BankAccountID    *int64           `json:"bankAccountID,omitempty"`
	CreatedBy        string           `json:"createdBy"`
	Posting          *PostingResponse `json:"posting,omitempty"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	resp := SaleResponse{
		SaleID:           s.SaleID,
		SaleNo:           s.SaleNo,
		SaleDate:         s.SaleDate.Format(domain.DateLayout),
		CustomerID:       s.CustomerID,
		Description:      s.Description,
		Memo:             s.Memo,
		Amount:           s.Amount,
		PaymentType:      string(s.PaymentType),
		RevenueAccountID: s.RevenueAccountID,
		BankAccountID:    s.BankAccountID,
		CreatedBy:        s.CreatedBy,
	}
	if s.Posting != nil {
		p := ToPostingResponse(s.Posting)
		resp.Posting = &p
	}
	return resp
}

// ToSaleResponses converts a slice of domain.Sale to []SaleResponse.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ExpenseID:        e.ExpenseID,
		ExpenseNo:        e.ExpenseNo,
		ExpenseDate:      e.ExpenseDate.Format(domain.DateLayout),
		VendorID:         e.VendorID,
		Description:      e.Description,
		Memo:             e.Memo,
		Amount:           e.Amount,
		PaymentType:      string(e.PaymentType),
		ExpenseAccountID: e.ExpenseAccountID,
		BankAccountID:    e.BankAccountID,
		CreatedBy:        e.CreatedBy,
	}
	if e.Posting != nil {
		p := ToPostingResponse(e.Posting)
		resp.Posting = &p
	}
	return resp
}

// ToExpenseResponses converts a slice of domain.Expense to []ExpenseResponse.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
