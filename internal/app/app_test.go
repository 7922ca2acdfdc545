package app_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/rental_ledger/internal/app"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		StorageDriver:     config.DriverMemory,
		NumberRetryBudget: 10,
		BankNameFallback:  true,
		ReportCacheTTL:    time.Minute,
	}
}

func TestNew_MemoryWithSeededChart(t *testing.T) {
	a, err := app.New(context.Background(), memoryConfig(), slog.Default(), app.Options{SeedDefaultChart: true})
	require.NoError(t, err)
	defer a.Close()

	accounts, err := a.Services.Account.ListAccounts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, accounts, len(domain.DefaultChart()))
	assert.Nil(t, a.Repos.ReportCache)
}

func TestNew_WiresReportCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := memoryConfig()
	cfg.RedisAddr = mr.Addr()

	a, err := app.New(context.Background(), cfg, slog.Default(), app.Options{SeedDefaultChart: true})
	require.NoError(t, err)
	defer a.Close()
	require.NotNil(t, a.Repos.ReportCache)

	asOf := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	_, err = a.Services.Reporting.TrialBalance(context.Background(), asOf)
	require.NoError(t, err)

	keys := mr.Keys()
	assert.Contains(t, keys, "ledger:trial_balance:2024-05-31:1")
}

func TestNew_UnreachableCacheFails(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := memoryConfig()
	cfg.RedisAddr = mr.Addr()
	mr.Close()

	_, err := app.New(context.Background(), cfg, slog.Default(), app.Options{})
	assert.Error(t, err)
}

func TestNew_PostgresNeedsURL(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = config.DriverPostgres

	_, err := app.New(context.Background(), cfg, slog.Default(), app.Options{})
	assert.Error(t, err)
}
