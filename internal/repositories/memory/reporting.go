package memory

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/utils/accounting"
)

func (s *store) SumActivityUpTo(ctx context.Context, cutoff time.Time) (map[int64]domain.AccountActivity, error) {
	var postings []domain.Posting
	err := s.view(ctx, func(st *state) error {
		postings = make([]domain.Posting, 0, len(st.postings))
		for _, posting := range st.postings {
			postings = append(postings, posting)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounting.ActivityFromPostings(postings, cutoff), nil
}
