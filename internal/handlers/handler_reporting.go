package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance of every account as of a specific date, inclusive
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.TrialBalanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	asOf := domain.DateOnly(h.now())
	if query.AsOf != "" {
		parsed, err := domain.ParseDate(query.AsOf)
		if err != nil {
			respondBindError(c, logger, err, "date format. Use YYYY-MM-DD")
			return
		}
		asOf = parsed
	}

	logger = logger.With(slog.String("asOf", asOf.Format(domain.DateLayout)))
	logger.Info("Received request to generate trial balance report")

	report, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "generate trial balance report")
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(report.Lines)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}
