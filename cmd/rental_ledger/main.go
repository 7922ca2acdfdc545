package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/rental_ledger/internal/app"
	"github.com/SscSPs/rental_ledger/internal/handlers"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Rental Ledger API
// @version 1.0
// @description Double-entry posting and reporting engine for a rental fleet.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ledger, err := app.New(context.Background(), cfg, logger, app.Options{
		RunMigrations:    true,
		SeedDefaultChart: cfg.StorageDriver == config.DriverMemory,
	})
	if err != nil {
		logger.Error("Failed to start ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer ledger.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, ledger.Services); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
