package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 10, cfg.NumberRetryBudget)
	assert.True(t, cfg.BankNameFallback)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 10*time.Minute, cfg.ReportCacheTTL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REPORT_CACHE_TTL", "30s")
	t.Setenv("LEDGER_NUMBER_RETRY_BUDGET", "25")
	t.Setenv("LEDGER_BANK_NAME_FALLBACK", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
	assert.Equal(t, 25, cfg.NumberRetryBudget)
	assert.False(t, cfg.BankNameFallback)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("LEDGER_NUMBER_RETRY_BUDGET", "-3")
	t.Setenv("REPORT_CACHE_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 10, cfg.NumberRetryBudget)
	assert.Equal(t, 10*time.Minute, cfg.ReportCacheTTL)
}
