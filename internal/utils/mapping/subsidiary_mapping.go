package mapping

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale. The attached posting is not mapped.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:           d.SaleID,
		SaleNo:           d.SaleNo,
		SaleDate:         d.SaleDate,
		CustomerID:       d.CustomerID,
		Description:      d.Description,
		Memo:             d.Memo,
		Amount:           d.Amount,
		PaymentType:      string(d.PaymentType),
		RevenueAccountID: d.RevenueAccountID,
		BankAccountID:    d.BankAccountID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:           m.SaleID,
		SaleNo:           m.SaleNo,
		SaleDate:         domain.DateOnly(m.SaleDate),
		CustomerID:       m.CustomerID,
		Description:      m.Description,
		Memo:             m.Memo,
		Amount:           m.Amount,
		PaymentType:      domain.PaymentType(m.PaymentType),
		RevenueAccountID: m.RevenueAccountID,
		BankAccountID:    m.BankAccountID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExpense converts a domain Expense to a model Expense. The attached posting is not mapped.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:        d.ExpenseID,
		ExpenseNo:        d.ExpenseNo,
		ExpenseDate:      d.ExpenseDate,
		VendorID:         d.VendorID,
		Description:      d.Description,
		Memo:             d.Memo,
		Amount:           d.Amount,
		PaymentType:      string(d.PaymentType),
		ExpenseAccountID: d.ExpenseAccountID,
		BankAccountID:    d.BankAccountID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:        m.ExpenseID,
		ExpenseNo:        m.ExpenseNo,
		ExpenseDate:      domain.DateOnly(m.ExpenseDate),
		VendorID:         m.VendorID,
		Description:      m.Description,
		Memo:             m.Memo,
		Amount:           m.Amount,
		PaymentType:      domain.PaymentType(m.PaymentType),
		ExpenseAccountID: m.ExpenseAccountID,
		BankAccountID:    m.BankAccountID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
