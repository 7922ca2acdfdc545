package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// DocumentSequenceReader exposes what the document number generator probes.
type DocumentSequenceReader interface {
	// MaxID returns the highest id in the table backing kind, or 0 when it is empty.
	MaxID(ctx context.Context, kind domain.DocumentKind) (int64, error)

	// DocumentNumberExists reports whether number is already used in the table backing kind.
	DocumentNumberExists(ctx context.Context, kind domain.DocumentKind, number string) (bool, error)
}

// PostingReader defines read operations for postings
type PostingReader interface {
	// FindPostingByID retrieves a posting by its id.
	FindPostingByID(ctx context.Context, postingID int64) (*domain.Posting, error)

	// FindPostingByOrigin retrieves the posting generated by a sale or expense.
	FindPostingByOrigin(ctx context.Context, origin domain.Origin) (*domain.Posting, error)

	// ListPostings returns postings newest first (transaction date, then id) with cursor pagination.
	ListPostings(ctx context.Context, limit int, nextToken *string) ([]domain.Posting, *string, error)

	// ListPostingsUpTo returns every posting dated on or before cutoff in chronological order.
	ListPostingsUpTo(ctx context.Context, cutoff time.Time) ([]domain.Posting, error)
}

// PostingWriter defines write operations for postings
type PostingWriter interface {
	// InsertPosting persists posting and assigns its id. A transaction number
	// collision returns apperrors.ErrDuplicate without aborting the unit of work.
	InsertPosting(ctx context.Context, posting *domain.Posting) error

	// DeletePostingsByOrigin removes the postings generated by a sale or expense.
	DeletePostingsByOrigin(ctx context.Context, origin domain.Origin) (int64, error)
}

// PostingRepositoryFacade combines all posting-related repository interfaces
type PostingRepositoryFacade interface {
	PostingReader
	PostingWriter
}
