package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	versionKey = "ledger:version"
	keyPrefix  = "ledger:trial_balance"
)

// ReportCache keeps computed trial balances in Redis. Keys embed a ledger
// version; bumping the version strands every earlier entry until its TTL expires.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache instantiates the cache helper.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

var _ portsrepo.ReportCache = (*ReportCache)(nil)

// Version returns the current ledger version, initialising when missing.
func (c *ReportCache) Version(ctx context.Context) (int64, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}
	ver, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		// SETNX so a concurrent Invalidate is not overwritten.
		if err := c.client.SetNX(ctx, versionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return c.client.Get(ctx, versionKey).Int64()
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

func (c *ReportCache) key(ctx context.Context, asOf time.Time) (string, error) {
	ver, err := c.Version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d", strings.Join([]string{keyPrefix, asOf.Format(domain.DateLayout)}, ":"), ver), nil
}

// FetchTrialBalance loads a cached report or populates it using load.
func (c *ReportCache) FetchTrialBalance(ctx context.Context, asOf time.Time, load func(ctx context.Context) (*domain.TrialBalanceReport, error)) (*domain.TrialBalanceReport, error) {
	if load == nil {
		return nil, errors.New("cache: loader required")
	}
	if c == nil || c.client == nil {
		return load(ctx)
	}

	key, err := c.key(ctx, asOf)
	if err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var report domain.TrialBalanceReport
		if err := json.Unmarshal(payload, &report); err != nil {
			return nil, fmt.Errorf("cache: decode %s: %w", key, err)
		}
		return &report, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	report, err := load(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return nil, err
	}
	return report, nil
}

// Invalidate bumps the ledger version.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Incr(ctx, versionKey).Err()
}
