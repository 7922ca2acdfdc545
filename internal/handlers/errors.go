package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps service errors onto HTTP statuses. action names the
// operation for the generic 500 message.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAccountClassification):
		logger.Warn("Account classification rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:  err.Error(),
			Code:   "invalid_account_classification",
			Fields: apperrors.Fields(err),
		})
	case errors.Is(err, apperrors.ErrMissingCanonicalAccount):
		logger.Error("Chart of accounts is incomplete", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "configuration_error"})
	case errors.Is(err, apperrors.ErrExhaustedRetries):
		logger.Error("Document number allocation exhausted", slog.String("error", err.Error()))
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Document numbering is busy, retry shortly", Code: "retry_exhausted"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "validation_error", Fields: apperrors.Fields(err)})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// respondBindError reports a malformed request body or query.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:  "Invalid " + what + ": " + err.Error(),
		Code:   "validation_error",
		Fields: bindingFieldErrors(err),
	})
}
