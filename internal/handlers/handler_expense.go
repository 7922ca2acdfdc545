package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(ss portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: ss}
}

// RegisterExpenseRoutes registers routes related to expenses.
func RegisterExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Records an expense and its posting in one unit of work. Cash expenses credit Cash; bank and credit expenses credit the given bank account.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 422 {object} ErrorResponse "Account has the wrong classification"
// @Failure 503 {object} ErrorResponse "Document numbering busy"
// @Failure 500 {object} ErrorResponse "Failed to record expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	creatorUserID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID), slog.Int64("vendor_id", req.VendorID))
	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "record expense")
		return
	}

	logger.Info("Expense created successfully", slog.String("expense_no", expense.ExpenseNo))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}

// getExpense godoc
// @Summary Get a expense by ID
// @Description Retrieves a expense together with its posting
// @Tags expenses
// @Produce  json
// @Param   id path int true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID, ok := idParam(c, logger, "id")
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), expenseID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("expense_id", expenseID)), err, "retrieve expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete a expense
// @Description Deletes a expense and the posting it generated
// @Tags expenses
// @Param   id path int true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID, ok := idParam(c, logger, "id")
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		respondError(c, logger.With(slog.Int64("expense_id", expenseID)), err, "delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}
