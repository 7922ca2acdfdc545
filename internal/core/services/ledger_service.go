package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

const defaultPageSize = 20

// ledgerService records and reads general-ledger postings.
type ledgerService struct {
	BaseService
	txManager portsrepo.TransactionManager
	store     portsrepo.Store
	numbers   *DocumentNumberGenerator
	now       func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerReportCache sets the cache invalidated after each committed posting.
func WithLedgerReportCache(cache portsrepo.ReportCache) LedgerServiceOption {
	return func(s *ledgerService) {
		s.ReportCache = cache
	}
}

// WithLedgerClock overrides the clock used for audit timestamps.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(txManager portsrepo.TransactionManager, store portsrepo.Store, numbers *DocumentNumberGenerator, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		txManager: txManager,
		store:     store,
		numbers:   numbers,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) Post(ctx context.Context, input domain.PostingInput) (*domain.Posting, error) {
	var posting *domain.Posting
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		posting, err = s.PostInTx(ctx, store, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.ledgerChanged(ctx)
	return posting, nil
}

func (s *ledgerService) PostInTx(ctx context.Context, store portsrepo.Store, input domain.PostingInput) (*domain.Posting, error) {
	if err := validatePostingInput(input); err != nil {
		s.LogWarn(ctx, "Rejected posting input", slog.String("error", err.Error()))
		return nil, err
	}

	found, err := store.Accounts().FindAccountsByIDs(ctx, []int64{input.DebitAccountID, input.CreditAccountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve posting accounts")
		return nil, fmt.Errorf("failed to resolve posting accounts: %w", err)
	}
	if _, ok := found[input.DebitAccountID]; !ok {
		return nil, apperrors.WithField("debitAccountID", fmt.Errorf("%w: id %d", apperrors.ErrUnknownAccount, input.DebitAccountID))
	}
	if _, ok := found[input.CreditAccountID]; !ok {
		return nil, apperrors.WithField("creditAccountID", fmt.Errorf("%w: id %d", apperrors.ErrUnknownAccount, input.CreditAccountID))
	}

	posting := &domain.Posting{
		TransactionDate: domain.DateOnly(input.TransactionDate),
		Description:     strings.TrimSpace(input.Description),
		Memo:            input.Memo,
		DebitAccountID:  input.DebitAccountID,
		CreditAccountID: input.CreditAccountID,
		Amount:          input.Amount,
		Origin:          input.Origin,
		AuditFields: domain.AuditFields{
			CreatedAt: s.now().UTC(),
			CreatedBy: input.CreatedBy,
		},
	}

	_, err = s.numbers.Allocate(ctx, store.Sequences(), domain.PostingSeries, func(number string) error {
		posting.TransactionNo = number
		return store.Postings().InsertPosting(ctx, posting)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record posting",
			slog.Int64("debit_account_id", input.DebitAccountID),
			slog.Int64("credit_account_id", input.CreditAccountID))
		return nil, fmt.Errorf("failed to record posting: %w", err)
	}

	s.LogInfo(ctx, "Posting recorded",
		slog.Int64("posting_id", posting.PostingID),
		slog.String("transaction_no", posting.TransactionNo),
		slog.String("amount", posting.Amount.StringFixed(2)))
	return posting, nil
}

func (s *ledgerService) CreateManualPosting(ctx context.Context, req dto.CreateManualPostingRequest, creator string) (*domain.Posting, error) {
	date, err := domain.ParseDate(req.TransactionDate)
	if err != nil {
		return nil, apperrors.NewValidationError("transactionDate", "must be a date in YYYY-MM-DD format")
	}

	return s.Post(ctx, domain.PostingInput{
		TransactionDate: date,
		Description:     req.Description,
		Memo:            req.Memo,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Amount:          req.Amount,
		CreatedBy:       creator,
	})
}

func (s *ledgerService) GetPosting(ctx context.Context, postingID int64) (*domain.Posting, error) {
	posting, err := s.store.Postings().FindPostingByID(ctx, postingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get posting", slog.Int64("posting_id", postingID))
		}
		return nil, fmt.Errorf("failed to get posting %d: %w", postingID, err)
	}
	return posting, nil
}

func (s *ledgerService) ListPostings(ctx context.Context, params dto.ListPostingsParams) (*dto.ListPostingsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	postings, next, err := s.store.Postings().ListPostings(ctx, limit, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, apperrors.NewValidationError("nextToken", "invalid pagination token")
		}
		s.LogError(ctx, err, "Failed to list postings")
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}

	return &dto.ListPostingsResponse{
		Postings:  dto.ToPostingResponses(postings),
		NextToken: next,
	}, nil
}

func (s *ledgerService) ListPostingsUpTo(ctx context.Context, cutoff time.Time) ([]domain.Posting, error) {
	postings, err := s.store.Postings().ListPostingsUpTo(ctx, domain.DateOnly(cutoff))
	if err != nil {
		s.LogError(ctx, err, "Failed to list postings up to cutoff", slog.String("cutoff", cutoff.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	return postings, nil
}

// validatePostingInput checks the invariants every posting must satisfy before touching storage.
func validatePostingInput(input domain.PostingInput) error {
	if input.DebitAccountID == input.CreditAccountID {
		return apperrors.WithField("creditAccountID", apperrors.ErrSameAccount)
	}
	if !domain.ValidAmount(input.Amount) {
		return apperrors.WithField("amount", apperrors.ErrInvalidAmount)
	}
	if !input.Origin.Valid() {
		return apperrors.NewValidationError("origin", "a posting may reference a sale or an expense, not both")
	}
	if strings.TrimSpace(input.Description) == "" {
		return apperrors.NewValidationError("description", "description is required")
	}
	if input.TransactionDate.IsZero() {
		return apperrors.NewValidationError("transactionDate", "transaction date is required")
	}
	return nil
}
