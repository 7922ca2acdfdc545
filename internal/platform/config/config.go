package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageDriver  string // postgres or memory
	MigrationsPath string

	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration

	RedisAddr      string // empty disables the report cache
	ReportCacheTTL time.Duration

	NumberRetryBudget int  // document number candidates tried before giving up
	BankNameFallback  bool // accept ASSET accounts named "...Bank..." without the bank flag

	RateLimit          string // ulule formatted, e.g. 100-M
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_DRIVER", DriverPostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "rental-ledger")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REPORT_CACHE_TTL", "10m")
	v.SetDefault("LEDGER_NUMBER_RETRY_BUDGET", 10)
	v.SetDefault("LEDGER_BANK_NAME_FALLBACK", true)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:     strings.ToLower(v.GetString("STORAGE_DRIVER")),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		NumberRetryBudget: v.GetInt("LEDGER_NUMBER_RETRY_BUDGET"),
		BankNameFallback:  v.GetBool("LEDGER_BANK_NAME_FALLBACK"),
		RateLimit:         v.GetString("RATE_LIMIT"),
	}

	if cfg.StorageDriver != DriverPostgres && cfg.StorageDriver != DriverMemory {
		log.Printf("Warning: unknown STORAGE_DRIVER '%s'. Defaulting to %s.\n", cfg.StorageDriver, DriverPostgres)
		cfg.StorageDriver = DriverPostgres
	}
	if cfg.StorageDriver == DriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = durationOr(v, "JWT_EXPIRY_DURATION", time.Hour)
	cfg.ReportCacheTTL = durationOr(v, "REPORT_CACHE_TTL", 10*time.Minute)

	if cfg.NumberRetryBudget <= 0 {
		log.Printf("Warning: invalid LEDGER_NUMBER_RETRY_BUDGET (%d). Defaulting to 10.\n", cfg.NumberRetryBudget)
		cfg.NumberRetryBudget = 10
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}
