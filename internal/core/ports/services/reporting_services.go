package services

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)
}
