package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
)

// DefaultNumberRetryBudget is the number of candidates tried before giving up.
const DefaultNumberRetryBudget = 10

// DocumentNumberGenerator hands out human-readable document numbers of the form PREFIX-NNN.
// Candidates start one past the highest existing id and advance on every collision.
type DocumentNumberGenerator struct {
	BaseService
	retryBudget int
}

// NewDocumentNumberGenerator creates a generator. A non-positive budget falls back to the default.
func NewDocumentNumberGenerator(retryBudget int) *DocumentNumberGenerator {
	if retryBudget <= 0 {
		retryBudget = DefaultNumberRetryBudget
	}
	return &DocumentNumberGenerator{retryBudget: retryBudget}
}

// Next returns the first number in series that is not in use yet.
// The number is not reserved; writers should use Allocate.
func (g *DocumentNumberGenerator) Next(ctx context.Context, seq portsrepo.DocumentSequenceReader, series domain.Series) (string, error) {
	return g.Allocate(ctx, seq, series, func(string) error { return nil })
}

// Allocate finds a free number in series and passes it to insert. When insert
// reports apperrors.ErrDuplicate (a concurrent writer took the number) the next
// candidate is tried. Any other insert error aborts the allocation.
func (g *DocumentNumberGenerator) Allocate(ctx context.Context, seq portsrepo.DocumentSequenceReader, series domain.Series, insert func(number string) error) (string, error) {
	maxID, err := seq.MaxID(ctx, series.Kind)
	if err != nil {
		return "", fmt.Errorf("failed to probe %s series: %w", series.Prefix, err)
	}

	candidate := maxID + 1
	for attempt := 1; attempt <= g.retryBudget; attempt, candidate = attempt+1, candidate+1 {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		number := series.Format(candidate)
		exists, err := seq.DocumentNumberExists(ctx, series.Kind, number)
		if err != nil {
			return "", fmt.Errorf("failed to check document number %s: %w", number, err)
		}
		if exists {
			g.LogDebug(ctx, "Document number already taken", slog.String("number", number), slog.Int("attempt", attempt))
			continue
		}

		err = insert(number)
		if err == nil {
			return number, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return "", err
		}
		g.LogDebug(ctx, "Document number claimed concurrently", slog.String("number", number), slog.Int("attempt", attempt))
	}

	g.LogWarn(ctx, "Document number retry budget exhausted",
		slog.String("series", series.Prefix),
		slog.Int("budget", g.retryBudget))
	return "", fmt.Errorf("%w: series %s after %d attempts", apperrors.ErrExhaustedRetries, series.Prefix, g.retryBudget)
}
