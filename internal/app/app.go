// Package app assembles storage, cache and services from configuration.
// Both the HTTP server and ledgerctl start here.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/SscSPs/rental_ledger/internal/platform/cache"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/rental_ledger/internal/repositories/memory"
	"github.com/SscSPs/rental_ledger/pkg/database"
)

// PartyWriter registers customers and vendors. Parties are owned outside the
// ledger core; this is the setup-time door into that directory.
type PartyWriter interface {
	AddCustomer(ctx context.Context, name string) (int64, error)
	AddVendor(ctx context.Context, name string) (int64, error)
}

// App is a fully wired ledger.
type App struct {
	Config   *config.Config
	Repos    portsrepo.RepositoryProvider
	Services *portssvc.ServiceContainer
	Parties  PartyWriter

	closers []func()
}

// Options tweak how New assembles the application.
type Options struct {
	// RunMigrations applies pending migrations before the postgres pool is used.
	RunMigrations bool
	// SeedDefaultChart inserts the default rental chart when the store is empty.
	SeedDefaultChart bool
}

// New connects the configured storage driver and the optional report cache,
// then builds the service container on top of them.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	a := &App{Config: cfg}

	reportCache, err := a.openCache(ctx, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	switch cfg.StorageDriver {
	case config.DriverMemory:
		db := memory.NewDatabase()
		a.Repos = memory.NewRepositoryProvider(db, reportCache)
		a.Parties = db.Parties()
		logger.Warn("Using in-memory storage; data is lost on exit")
	default:
		if opts.RunMigrations {
			changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp)
			if err != nil {
				a.Close()
				return nil, fmt.Errorf("failed to apply migrations: %w", err)
			}
			logger.Info("Database migrations checked", slog.Bool("applied", changed))
		}

		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		a.closers = append(a.closers, func() { database.ClosePgxPool(pool) })
		a.Repos = pgsql.NewRepositoryProvider(pool, reportCache)
		a.Parties = pgsql.NewPartyRepository(pool)
		logger.Info("Database connection pool established")
	}

	a.Services = services.NewServiceContainer(cfg, a.Repos)

	if opts.SeedDefaultChart {
		created, err := a.Services.Account.SeedAccounts(ctx, domain.DefaultChart(), "system")
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to seed chart of accounts: %w", err)
		}
		logger.Info("Chart of accounts seeded", slog.Int("created", created))
	}

	return a, nil
}

func (a *App) openCache(ctx context.Context, logger *slog.Logger) (portsrepo.ReportCache, error) {
	if a.Config.RedisAddr == "" {
		logger.Info("Report cache disabled")
		return nil, nil
	}
	client, err := cache.NewClient(ctx, a.Config.RedisAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect report cache: %w", err)
	}
	a.closers = append(a.closers, func() {
		if err := client.Close(); err != nil {
			logger.Warn("Failed to close report cache client", slog.String("error", err.Error()))
		}
	})
	logger.Info("Report cache enabled", slog.String("addr", a.Config.RedisAddr), slog.Duration("ttl", a.Config.ReportCacheTTL))
	return cache.NewReportCache(client, a.Config.ReportCacheTTL), nil
}

// Close releases every connection New opened, newest first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
