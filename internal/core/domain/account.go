package domain

import "strings"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset       AccountType = "ASSET"
	Liability   AccountType = "LIABILITY"
	Equity      AccountType = "EQUITY"
	Revenue     AccountType = "REVENUE"
	ExpenseType AccountType = "EXPENSE"
)

// AccountTypes lists every valid account type.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, ExpenseType}

// Side is one side of a double-entry posting.
type Side string

const (
	DebitSide  Side = "DEBIT"
	CreditSide Side = "CREDIT"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, ExpenseType:
		return true
	}
	return false
}

// NormalSide returns the side on which balances of this type normally sit.
func (t AccountType) NormalSide() Side {
	switch t {
	case Asset, ExpenseType:
		return DebitSide
	default:
		return CreditSide
	}
}

// CashAccountName is the canonical account debited by cash sales and credited by cash expenses.
const CashAccountName = "Cash"

const bankNameMarker = "Bank"

// Account represents a ledger account in the chart of accounts.
type Account struct {
	AccountID   int64       `json:"accountID"`
	Name        string      `json:"name"`        // unique
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	IsBank      bool        `json:"isBank"`      // explicit bank-account marker
	Description string      `json:"description"`
	AuditFields
}

// IsBankAsset reports whether the account may stand in for a bank account.
// With nameFallback set, an ASSET whose name contains "Bank" qualifies even without the flag.
func (a Account) IsBankAsset(nameFallback bool) bool {
	if a.AccountType != Asset {
		return false
	}
	if a.IsBank {
		return true
	}
	return nameFallback && strings.Contains(a.Name, bankNameMarker)
}

// DefaultChart is the rental chart of accounts seeded by ledgerctl.
func DefaultChart() []Account {
	return []Account{
		{Name: CashAccountName, AccountType: Asset, Description: "Cash on hand"},
		{Name: "Bank Account (ABA)", AccountType: Asset, IsBank: true, Description: "Primary operating bank account"},
		{Name: "Accounts Receivable", AccountType: Asset, Description: "Amounts owed by customers"},
		{Name: "Vehicle Fleet", AccountType: Asset, Description: "Rental vehicles at cost"},
		{Name: "Accounts Payable", AccountType: Liability, Description: "Amounts owed to vendors"},
		{Name: "Customer Deposits", AccountType: Liability, Description: "Refundable rental deposits"},
		{Name: "Owner's Equity", AccountType: Equity, Description: "Owner capital"},
		{Name: "AT Rental", AccountType: Revenue, Description: "Automatic transmission rental income"},
		{Name: "Car Rental", AccountType: Revenue, Description: "Car rental income"},
		{Name: "Motorbike Rental", AccountType: Revenue, Description: "Motorbike rental income"},
		{Name: "Fuel Expense", AccountType: ExpenseType, Description: "Fuel purchases"},
		{Name: "Maintenance Expense", AccountType: ExpenseType, Description: "Repairs and servicing"},
		{Name: "Insurance Expense", AccountType: ExpenseType, Description: "Fleet insurance premiums"},
	}
}
