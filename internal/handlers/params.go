package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// idParam parses a positive integer path parameter, answering 400 when it is not one.
func idParam(c *gin.Context, logger *slog.Logger, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid id in path", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "Invalid " + name,
			Code:   "validation_error",
			Fields: map[string]string{name: "must be a positive integer"},
		})
		return 0, false
	}
	return id, true
}

// requireUser returns the authenticated subject, answering 401 when absent.
func requireUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
