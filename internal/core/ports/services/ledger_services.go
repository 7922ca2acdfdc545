package services

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

// LedgerPoster records postings.
type LedgerPoster interface {
	// Post validates and records a posting in its own unit of work.
	Post(ctx context.Context, input domain.PostingInput) (*domain.Posting, error)

	// PostInTx validates and records a posting inside the caller's unit of work.
	PostInTx(ctx context.Context, store portsrepo.Store, input domain.PostingInput) (*domain.Posting, error)
}

// LedgerReaderSvc defines read operations for postings
type LedgerReaderSvc interface {
	GetPosting(ctx context.Context, postingID int64) (*domain.Posting, error)

	// ListPostings returns a page of postings, newest first.
	ListPostings(ctx context.Context, params dto.ListPostingsParams) (*dto.ListPostingsResponse, error)

	// ListPostingsUpTo returns every posting dated on or before cutoff.
	ListPostingsUpTo(ctx context.Context, cutoff time.Time) ([]domain.Posting, error)
}

// LedgerWriterSvc defines the public manual-journal entry point
type LedgerWriterSvc interface {
	CreateManualPosting(ctx context.Context, req dto.CreateManualPostingRequest, creator string) (*domain.Posting, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerPoster
	LedgerReaderSvc
	LedgerWriterSvc
}
