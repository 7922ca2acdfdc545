package dto

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceQuery defines the query parameters of the trial balance report.
type TrialBalanceQuery struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   int64           `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit" swaggertype:"string"`
	Credit      decimal.Decimal `json:"credit" swaggertype:"string"`
	Anomalous   bool            `json:"anomalous"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit" swaggertype:"string"`
		Credit decimal.Decimal `json:"credit" swaggertype:"string"`
	} `json:"totals"`
	Balanced bool `json:"balanced"`
}

// ToTrialBalanceResponse converts a domain trial balance report to a DTO response
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf: report.AsOf.Format(domain.DateLayout),
		Rows: make([]TrialBalanceRowResponse, len(report.Lines)),
	}

	for i, line := range report.Lines {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   line.AccountID,
			AccountName: line.AccountName,
			AccountType: string(line.AccountType),
			Debit:       line.DebitBalance,
			Credit:      line.CreditBalance,
			Anomalous:   line.Anomalous,
		}
	}

	response.Totals.Debit = report.TotalDebit
	response.Totals.Credit = report.TotalCredit
	response.Balanced = report.Balanced()

	return response
}
