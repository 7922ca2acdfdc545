package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	applicationName = "rental-ledger"
	connectTimeout  = 5 * time.Second
)

// NewPgxPool opens the pool backing the ledger repositories. Connections are
// tagged with the service's application_name so ledger sessions are
// identifiable in pg_stat_activity. With verify the pool must answer a ping.
func NewPgxPool(ctx context.Context, databaseURL string, verify bool) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required for the postgres storage driver")
	}

	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PGSQL_URL: %w", err)
	}
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout
	if poolConfig.ConnConfig.RuntimeParams == nil {
		poolConfig.ConnConfig.RuntimeParams = make(map[string]string)
	}
	poolConfig.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger connection pool: %w", err)
	}

	if verify {
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ledger database unreachable: %w", err)
		}
		slog.Info("Connected to ledger database", slog.Int("max_conns", int(poolConfig.MaxConns)))
	}

	return pool, nil
}

// ClosePgxPool releases the ledger pool. A nil pool is ignored.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	pool.Close()
	slog.Info("Ledger database pool closed")
}
