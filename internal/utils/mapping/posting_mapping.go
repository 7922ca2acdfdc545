package mapping

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/models"
)

// ToModelPosting converts a domain Posting to a model Posting
func ToModelPosting(d domain.Posting) models.Posting {
	return models.Posting{
		PostingID:       d.PostingID,
		TransactionNo:   d.TransactionNo,
		TransactionDate: d.TransactionDate,
		Description:     d.Description,
		Memo:            d.Memo,
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		Amount:          d.Amount,
		SaleID:          d.SaleID,
		ExpenseID:       d.ExpenseID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPosting converts a model Posting to a domain Posting.
// DATE columns come back as midnight UTC already; DateOnly guards against driver time zones.
func ToDomainPosting(m models.Posting) domain.Posting {
	return domain.Posting{
		PostingID:       m.PostingID,
		TransactionNo:   m.TransactionNo,
		TransactionDate: domain.DateOnly(m.TransactionDate),
		Description:     m.Description,
		Memo:            m.Memo,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		Amount:          m.Amount,
		Origin:          domain.Origin{SaleID: m.SaleID, ExpenseID: m.ExpenseID},
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPostingSlice converts a slice of model Postings to a slice of domain Postings
func ToDomainPostingSlice(ms []models.Posting) []domain.Posting {
	ds := make([]domain.Posting, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPosting(m)
	}
	return ds
}
