package dto

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// ListAccountsQuery defines the query parameters for listing accounts.
type ListAccountsQuery struct {
	Type string `form:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   int64  `json:"accountID"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	IsBank      bool   `json:"isBank"`
	Description string `json:"description,omitempty"`
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Name:        acc.Name,
		AccountType: string(acc.AccountType),
		IsBank:      acc.IsBank,
		Description: acc.Description,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to ListAccountsResponse DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	list := make([]AccountResponse, len(accounts))
	for i := range accounts {
		list[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: list}
}
