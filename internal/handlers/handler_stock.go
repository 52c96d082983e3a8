package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lookiva/lookiva_app/internal/apperrors"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/dto"
	"github.com/lookiva/lookiva_app/internal/middleware"
)

// stockHandler handles HTTP requests for the derived stock views.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{
		stockService: ss,
	}
}

// registerStockRoutes registers routes related to stock.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.GET("", h.getStockTable)
		stock.GET("/in-stock", h.getInStock)
		stock.GET("/:batchID", h.getStock)
	}
}

// getStockTable godoc
// @Summary Get the full stock table
// @Description Per-batch purchased, sold, closing stock, value and status, with headline totals
// @Tags stock
// @Produce  json
// @Success 200 {object} dto.StockTableResponse
// @Failure 500 {object} map[string]string "Failed to compute stock table"
// @Router /stock [get]
func (h *stockHandler) getStockTable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.stockService.GetStockTable(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute stock table", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stock table"})
		return
	}
	c.JSON(http.StatusOK, dto.ToStockTableResponse(rows))
}

// getInStock godoc
// @Summary List batches with positive closing stock
// @Tags stock
// @Produce  json
// @Success 200 {array} dto.StockRowResponse
// @Failure 500 {object} map[string]string "Failed to compute stock"
// @Router /stock/in-stock [get]
func (h *stockHandler) getInStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.stockService.GetInStockProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute in-stock products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stock"})
		return
	}
	responses := make([]dto.StockRowResponse, len(rows))
	for i, r := range rows {
		responses[i] = dto.ToStockRowResponse(r)
	}
	c.JSON(http.StatusOK, responses)
}

// getStock godoc
// @Summary Get the stock view for one batch
// @Tags stock
// @Produce  json
// @Param   batchID path string true "Batch identifier"
// @Success 200 {object} dto.StockRowResponse
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 500 {object} map[string]string "Failed to compute stock"
// @Router /stock/{batchID} [get]
func (h *stockHandler) getStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("batchID")

	row, err := h.stockService.GetStock(c.Request.Context(), batchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Batch '%s' not found", batchID)})
		} else {
			logger.Error("Failed to compute stock", slog.String("batch_id", batchID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stock"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToStockRowResponse(*row))
}
