package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// ReportCache is invalidated after every committed ledger change. Nil disables caching.
	ReportCache portsrepo.ReportCache
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning, used for rejected input and suspicious balances
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// ledgerChanged invalidates cached reports after a committed post or delete.
// A cache failure is logged and never fails the ledger operation.
func (s *BaseService) ledgerChanged(ctx context.Context) {
	if s.ReportCache == nil {
		return
	}
	if err := s.ReportCache.Invalidate(ctx); err != nil {
		s.LogError(ctx, err, "Failed to invalidate report cache")
	}
}
