package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountActivity holds the raw debit and credit totals posted to one account.
type AccountActivity struct {
	AccountID int64
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// TrialBalanceLine represents a single account row in a trial balance report.
// At most one of DebitBalance and CreditBalance is non-zero.
type TrialBalanceLine struct {
	AccountID     int64           `json:"accountID"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	Anomalous     bool            `json:"anomalous"` // balance sits opposite the type's normal side
}

// TrialBalanceReport is the trial balance of every account as of a cutoff date.
type TrialBalanceReport struct {
	AsOf           time.Time          `json:"asOf"`
	Lines          []TrialBalanceLine `json:"lines"`
	TotalDebit     decimal.Decimal    `json:"totalDebit"`  // sum of DebitBalance
	TotalCredit    decimal.Decimal    `json:"totalCredit"` // sum of CreditBalance
	RawDebitTotal  decimal.Decimal    `json:"rawDebitTotal"`
	RawCreditTotal decimal.Decimal    `json:"rawCreditTotal"`
}

// Balanced reports whether both balance columns agree.
func (r *TrialBalanceReport) Balanced() bool {
	return r.TotalDebit.Equal(r.TotalCredit)
}
