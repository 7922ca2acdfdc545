package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// SumActivityUpTo returns raw debit and credit totals per account for postings
	// dated on or before cutoff. Accounts without activity are absent.
	SumActivityUpTo(ctx context.Context, cutoff time.Time) (map[int64]domain.AccountActivity, error)
}

// ReportCache stores computed trial balances keyed by cutoff and ledger version.
type ReportCache interface {
	// FetchTrialBalance returns the cached report for asOf, calling load and
	// storing its result on a miss.
	FetchTrialBalance(ctx context.Context, asOf time.Time, load func(ctx context.Context) (*domain.TrialBalanceReport, error)) (*domain.TrialBalanceReport, error)

	// Invalidate marks every cached report stale.
	Invalidate(ctx context.Context) error
}
