package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/utils/accounting"
	"golang.org/x/sync/singleflight"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	store portsrepo.Store
	group singleflight.Group
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingCache sets the cache consulted before computing a trial balance.
func WithReportingCache(cache portsrepo.ReportCache) ReportingServiceOption {
	return func(s *reportingService) {
		s.ReportCache = cache
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(store portsrepo.Store, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		store: store,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance report as of a specific date.
// Identical concurrent requests share one computation, which runs detached
// from any single caller's cancellation.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	asOf = domain.DateOnly(asOf)
	key := asOf.Format(domain.DateLayout)

	flightCtx := context.WithoutCancel(ctx)
	resultChan := s.group.DoChan(key, func() (any, error) {
		if s.ReportCache == nil {
			return s.computeTrialBalance(flightCtx, asOf)
		}
		return s.cachedTrialBalance(flightCtx, asOf)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-resultChan:
	}
	if res.Err != nil {
		s.LogError(ctx, res.Err, "Failed to generate trial balance", slog.String("asOf", key))
		return nil, res.Err
	}

	report := res.Val.(*domain.TrialBalanceReport)
	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("asOf", key),
		slog.Int("row_count", len(report.Lines)),
		slog.Bool("shared", res.Shared))
	return report, nil
}

// cachedTrialBalance reads through the report cache. Cache faults are logged
// and the report is served from storage.
func (s *reportingService) cachedTrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	var (
		loaded     bool
		computed   *domain.TrialBalanceReport
		computeErr error
	)
	report, err := s.ReportCache.FetchTrialBalance(ctx, asOf, func(ctx context.Context) (*domain.TrialBalanceReport, error) {
		loaded = true
		computed, computeErr = s.computeTrialBalance(ctx, asOf)
		return computed, computeErr
	})

	switch {
	case err == nil:
		return report, nil
	case !loaded:
		s.LogError(ctx, err, "Report cache unavailable, computing trial balance directly",
			slog.String("asOf", asOf.Format(domain.DateLayout)))
		return s.computeTrialBalance(ctx, asOf)
	case computeErr != nil:
		return nil, computeErr
	default:
		s.LogError(ctx, err, "Failed to store trial balance in report cache",
			slog.String("asOf", asOf.Format(domain.DateLayout)))
		return computed, nil
	}
}

func (s *reportingService) computeTrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	accounts, err := s.store.Accounts().ListAccounts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	activity, err := s.store.Reporting().SumActivityUpTo(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	report := accounting.BuildTrialBalance(asOf, accounts, activity)
	for _, line := range report.Lines {
		if line.Anomalous {
			s.LogWarn(ctx, "Account balance on abnormal side",
				slog.Int64("account_id", line.AccountID),
				slog.String("account_name", line.AccountName),
				slog.String("account_type", string(line.AccountType)),
				slog.String("debit", line.DebitBalance.StringFixed(2)),
				slog.String("credit", line.CreditBalance.StringFixed(2)))
		}
	}
	if !report.Balanced() {
		s.LogError(ctx, fmt.Errorf("debits %s != credits %s", report.TotalDebit, report.TotalCredit),
			"Trial balance does not balance", slog.String("asOf", asOf.Format(domain.DateLayout)))
	}
	return report, nil
}
