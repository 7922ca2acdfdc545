package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// RegisterSaleRoutes registers routes related to sales.
func RegisterSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
		sales.DELETE("/:id", h.deleteSale)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Records a sale and its posting in one unit of work. Cash sales debit Cash; bank and credit sales debit the given bank account.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 422 {object} ErrorResponse "Account has the wrong classification"
// @Failure 503 {object} ErrorResponse "Document numbering busy"
// @Failure 500 {object} ErrorResponse "Failed to record sale"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	creatorUserID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID), slog.Int64("customer_id", req.CustomerID))
	sale, err := h.saleService.CreateSale(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "record sale")
		return
	}

	logger.Info("Sale created successfully", slog.String("sale_no", sale.SaleNo))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "list sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// getSale godoc
// @Summary Get a sale by ID
// @Description Retrieves a sale together with its posting
// @Tags sales
// @Produce  json
// @Param   id path int true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := idParam(c, logger, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("sale_id", saleID)), err, "retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Deletes a sale and the posting it generated
// @Tags sales
// @Param   id path int true "Sale ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := idParam(c, logger, "id")
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), saleID); err != nil {
		respondError(c, logger.With(slog.Int64("sale_id", saleID)), err, "delete sale")
		return
	}
	c.Status(http.StatusNoContent)
}
