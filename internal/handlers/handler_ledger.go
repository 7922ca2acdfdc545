package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for general-ledger postings.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// RegisterLedgerRoutes registers routes related to postings.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	postings := rg.Group("/ledger/postings")
	{
		postings.POST("", h.createPosting)
		postings.GET("", h.listPostings)
		postings.GET("/:id", h.getPosting)
	}
}

// createPosting godoc
// @Summary Record a manual posting
// @Description Records a single debit/credit pair in the general ledger and assigns the next GL number
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   posting body dto.CreateManualPostingRequest true "Posting details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 503 {object} ErrorResponse "Document numbering busy"
// @Failure 500 {object} ErrorResponse "Failed to record posting"
// @Security BearerAuth
// @Router /ledger/postings [post]
func (h *ledgerHandler) createPosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateManualPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	creatorUserID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	posting, err := h.ledgerService.CreateManualPosting(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "record posting")
		return
	}

	logger.Info("Posting created successfully", slog.String("transaction_no", posting.TransactionNo))
	c.JSON(http.StatusCreated, dto.ToPostingResponse(posting))
}

// listPostings godoc
// @Summary List postings
// @Description Lists postings newest first using a continuation token
// @Tags ledger
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.ListPostingsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list postings"
// @Security BearerAuth
// @Router /ledger/postings [get]
func (h *ledgerHandler) listPostings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPostingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	resp, err := h.ledgerService.ListPostings(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "list postings")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getPosting godoc
// @Summary Get a posting by ID
// @Tags ledger
// @Produce  json
// @Param   id path int true "Posting ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 404 {object} ErrorResponse "Posting not found"
// @Security BearerAuth
// @Router /ledger/postings/{id} [get]
func (h *ledgerHandler) getPosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postingID, ok := idParam(c, logger, "id")
	if !ok {
		return
	}

	posting, err := h.ledgerService.GetPosting(c.Request.Context(), postingID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("posting_id", postingID)), err, "retrieve posting")
		return
	}
	c.JSON(http.StatusOK, dto.ToPostingResponse(posting))
}
