package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Lists every account ordered by name, optionally filtered by type
// @Tags accounts
// @Produce  json
// @Param   type query string false "Account type" Enums(ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} ErrorResponse "Invalid account type"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListAccountsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	var accountType *domain.AccountType
	if query.Type != "" {
		t := domain.AccountType(query.Type)
		accountType = &t
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), accountType)
	if err != nil {
		respondError(c, logger, err, "list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details for a specific account by its ID
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid account ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := idParam(c, logger, "id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("target_account_id", accountID))
	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
