package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/utils/pagination"
)

func (s *store) MaxID(ctx context.Context, kind domain.DocumentKind) (int64, error) {
	var maxID int64
	err := s.view(ctx, func(st *state) error {
		switch kind {
		case domain.DocumentPosting:
			maxID = maxKey(st.postings)
		case domain.DocumentSale:
			maxID = maxKey(st.sales)
		case domain.DocumentExpense:
			maxID = maxKey(st.expenses)
		default:
			return fmt.Errorf("unknown document kind %q", kind)
		}
		return nil
	})
	return maxID, err
}

func (s *store) DocumentNumberExists(ctx context.Context, kind domain.DocumentKind, number string) (bool, error) {
	exists := false
	err := s.view(ctx, func(st *state) error {
		switch kind {
		case domain.DocumentPosting:
			exists = postingNoTaken(st, number)
		case domain.DocumentSale:
			exists = saleNoTaken(st, number)
		case domain.DocumentExpense:
			exists = expenseNoTaken(st, number)
		default:
			return fmt.Errorf("unknown document kind %q", kind)
		}
		return nil
	})
	return exists, err
}

func (s *store) FindPostingByID(ctx context.Context, postingID int64) (*domain.Posting, error) {
	var out *domain.Posting
	err := s.view(ctx, func(st *state) error {
		posting, ok := st.postings[postingID]
		if !ok {
			return fmt.Errorf("posting %d: %w", postingID, apperrors.ErrNotFound)
		}
		out = &posting
		return nil
	})
	return out, err
}

func (s *store) FindPostingByOrigin(ctx context.Context, origin domain.Origin) (*domain.Posting, error) {
	var out *domain.Posting
	err := s.view(ctx, func(st *state) error {
		for _, id := range sortedKeys(st.postings) {
			posting := st.postings[id]
			if sameOrigin(posting.Origin, origin) {
				out = &posting
				return nil
			}
		}
		return fmt.Errorf("posting for origin: %w", apperrors.ErrNotFound)
	})
	return out, err
}

func (s *store) ListPostings(ctx context.Context, limit int, nextToken *string) ([]domain.Posting, *string, error) {
	var (
		afterDate time.Time
		afterID   int64
		hasCursor bool
	)
	if nextToken != nil && *nextToken != "" {
		date, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		afterDate, afterID, hasCursor = date, id, true
	}

	var all []domain.Posting
	err := s.view(ctx, func(st *state) error {
		for _, posting := range st.postings {
			all = append(all, posting)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(all, func(i, j int) bool { return newerFirst(all[i], all[j]) })

	page := make([]domain.Posting, 0, limit)
	for _, posting := range all {
		if hasCursor && !olderThan(posting, afterDate, afterID) {
			continue
		}
		if len(page) == limit {
			last := page[len(page)-1]
			token := pagination.EncodeToken(last.TransactionDate, last.PostingID)
			return page, &token, nil
		}
		page = append(page, posting)
	}
	return page, nil, nil
}

func (s *store) ListPostingsUpTo(ctx context.Context, cutoff time.Time) ([]domain.Posting, error) {
	out := []domain.Posting{}
	err := s.view(ctx, func(st *state) error {
		for _, id := range sortedKeys(st.postings) {
			posting := st.postings[id]
			if !posting.TransactionDate.After(cutoff) {
				out = append(out, posting)
			}
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].TransactionDate.Before(out[j].TransactionDate) })
	return out, err
}

func (s *store) InsertPosting(ctx context.Context, posting *domain.Posting) error {
	return s.update(ctx, func(st *state) error {
		if postingNoTaken(st, posting.TransactionNo) {
			return fmt.Errorf("transaction number %s: %w", posting.TransactionNo, apperrors.ErrDuplicate)
		}
		if err := st.accountRefs(
			accountRef{"debitAccountID", &posting.DebitAccountID},
			accountRef{"creditAccountID", &posting.CreditAccountID},
		); err != nil {
			return err
		}
		posting.PostingID = st.nextID(postingsTable)
		st.postings[posting.PostingID] = *posting
		return nil
	})
}

func (s *store) DeletePostingsByOrigin(ctx context.Context, origin domain.Origin) (int64, error) {
	if origin.IsManual() {
		return 0, fmt.Errorf("%w: manual postings cannot be deleted by origin", apperrors.ErrValidation)
	}
	var removed int64
	err := s.update(ctx, func(st *state) error {
		for id, posting := range st.postings {
			if sameOrigin(posting.Origin, origin) {
				delete(st.postings, id)
				removed++
			}
		}
		return nil
	})
	return removed, err
}

func postingNoTaken(st *state, number string) bool {
	for _, posting := range st.postings {
		if posting.TransactionNo == number {
			return true
		}
	}
	return false
}

func sameOrigin(a, b domain.Origin) bool {
	return equalID(a.SaleID, b.SaleID) && equalID(a.ExpenseID, b.ExpenseID)
}

func equalID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func newerFirst(a, b domain.Posting) bool {
	if !a.TransactionDate.Equal(b.TransactionDate) {
		return a.TransactionDate.After(b.TransactionDate)
	}
	return a.PostingID > b.PostingID
}

// olderThan reports whether p sorts after the cursor in newest-first order.
func olderThan(p domain.Posting, date time.Time, id int64) bool {
	if !p.TransactionDate.Equal(date) {
		return p.TransactionDate.Before(date)
	}
	return p.PostingID < id
}

func maxKey[V any](m map[int64]V) int64 {
	var highest int64
	for k := range m {
		if k > highest {
			highest = k
		}
	}
	return highest
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
