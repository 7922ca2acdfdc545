package dto

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateManualPostingRequest defines the payload for a manual general-ledger posting.
type CreateManualPostingRequest struct {
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	Description     string          `json:"description" binding:"required,max=255"`
	Memo            string          `json:"memo" binding:"max=255"`
	DebitAccountID  int64           `json:"debitAccountID" binding:"required,gt=0"`
	CreditAccountID int64           `json:"creditAccountID" binding:"required,gt=0,nefield=DebitAccountID"`
	Amount          decimal.Decimal `json:"amount" binding:"required,money" swaggertype:"string" example:"50.00"`
}

// ListPostingsParams defines the query parameters for listing postings.
type ListPostingsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// PostingResponse defines the data returned for a posting.
type PostingResponse struct {
	PostingID       int64           `json:"postingID"`
	TransactionNo   string          `json:"transactionNo"`
	TransactionDate string          `json:"transactionDate"`
	Description     string          `json:"description"`
	Memo            string          `json:"memo,omitempty"`
	DebitAccountID  int64           `json:"debitAccountID"`
	CreditAccountID int64           `json:"creditAccountID"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string"`
	SaleID          *int64          `json:"saleID,omitempty"`
	ExpenseID       *int64          `json:"expenseID,omitempty"`
	CreatedBy       string          `json:"createdBy"`
}

// ListPostingsResponse wraps a page of postings.
type ListPostingsResponse struct {
	Postings  []PostingResponse `json:"postings"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPostingResponse converts a domain.Posting to PostingResponse DTO.
func ToPostingResponse(p *domain.Posting) PostingResponse {
	return PostingResponse{
		PostingID:       p.PostingID,
		TransactionNo:   p.TransactionNo,
		TransactionDate: p.TransactionDate.Format(domain.DateLayout),
		Description:     p.Description,
		Memo:            p.Memo,
		DebitAccountID:  p.DebitAccountID,
		CreditAccountID: p.CreditAccountID,
		Amount:          p.Amount,
		SaleID:          p.SaleID,
		ExpenseID:       p.ExpenseID,
		CreatedBy:       p.CreatedBy,
	}
}

// ToPostingResponses converts a slice of domain.Posting to []PostingResponse.
func ToPostingResponses(postings []domain.Posting) []PostingResponse {
	responses := make([]PostingResponse, len(postings))
	for i := range postings {
		responses[i] = ToPostingResponse(&postings[i])
	}
	return responses
}
