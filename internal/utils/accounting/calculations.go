package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalizeBalance places the net of raw debits and credits on a single side.
// A net that sits opposite the account type's normal side is reported there and flagged anomalous.
func NormalizeBalance(accountType domain.AccountType, rawDebit, rawCredit decimal.Decimal) (debit, credit decimal.Decimal, anomalous bool) {
	net := rawDebit.Sub(rawCredit)
	debit, credit = decimal.Zero, decimal.Zero
	switch {
	case net.IsPositive():
		debit = net
	case net.IsNegative():
		credit = net.Neg()
	}

	switch accountType.NormalSide() {
	case domain.DebitSide:
		anomalous = net.IsNegative()
	default:
		anomalous = net.IsPositive()
	}
	return debit, credit, anomalous
}

// BuildTrialBalance combines the chart of accounts with raw activity into a report.
// Every account gets a line, including those without activity; lines are sorted by name.
func BuildTrialBalance(asOf time.Time, accounts []domain.Account, activity map[int64]domain.AccountActivity) *domain.TrialBalanceReport {
	report := &domain.TrialBalanceReport{
		AsOf:           domain.DateOnly(asOf),
		Lines:          make([]domain.TrialBalanceLine, 0, len(accounts)),
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
		RawDebitTotal:  decimal.Zero,
		RawCreditTotal: decimal.Zero,
	}

	for _, account := range accounts {
		raw := activity[account.AccountID]
		rawDebit, rawCredit := raw.Debit, raw.Credit
		debit, credit, anomalous := NormalizeBalance(account.AccountType, rawDebit, rawCredit)

		report.Lines = append(report.Lines, domain.TrialBalanceLine{
			AccountID:     account.AccountID,
			AccountName:   account.Name,
			AccountType:   account.AccountType,
			DebitBalance:  debit,
			CreditBalance: credit,
			Anomalous:     anomalous,
		})
		report.TotalDebit = report.TotalDebit.Add(debit)
		report.TotalCredit = report.TotalCredit.Add(credit)
		report.RawDebitTotal = report.RawDebitTotal.Add(rawDebit)
		report.RawCreditTotal = report.RawCreditTotal.Add(rawCredit)
	}

	sort.SliceStable(report.Lines, func(i, j int) bool {
		if report.Lines[i].AccountName != report.Lines[j].AccountName {
			return report.Lines[i].AccountName < report.Lines[j].AccountName
		}
		return report.Lines[i].AccountID < report.Lines[j].AccountID
	})
	return report
}

// ActivityFromPostings sums raw debits and credits per account. Postings dated after cutoff are skipped.
func ActivityFromPostings(postings []domain.Posting, cutoff time.Time) map[int64]domain.AccountActivity {
	cutoff = domain.DateOnly(cutoff)
	out := make(map[int64]domain.AccountActivity)
	for _, p := range postings {
		if p.TransactionDate.After(cutoff) {
			continue
		}
		d := out[p.DebitAccountID]
		d.AccountID = p.DebitAccountID
		d.Debit = d.Debit.Add(p.Amount)
		out[p.DebitAccountID] = d

		c := out[p.CreditAccountID]
		c.AccountID = p.CreditAccountID
		c.Credit = c.Credit.Add(p.Amount)
		out[p.CreditAccountID] = c
	}
	return out
}
