package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset       AccountType = "ASSET"
	Liability   AccountType = "LIABILITY"
	Equity      AccountType = "EQUITY"
	Revenue     AccountType = "REVENUE"
	ExpenseType AccountType = "EXPENSE"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID   int64       `db:"account_id"`
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	IsBank      bool        `db:"is_bank"`
	Description string      `db:"description"`
	AuditFields
}
