package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lookiva/lookiva_app/internal/apperrors"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/dto"
	"github.com/lookiva/lookiva_app/internal/middleware"
)

// cashFlowHandler handles HTTP requests related to the cash-flow ledger.
type cashFlowHandler struct {
	cashFlowService portssvc.CashFlowSvcFacade
}

func newCashFlowHandler(cs portssvc.CashFlowSvcFacade) *cashFlowHandler {
	return &cashFlowHandler{
		cashFlowService: cs,
	}
}

// registerCashFlowRoutes registers routes related to cash flow.
func registerCashFlowRoutes(rg *gin.RouterGroup, cashFlowService portssvc.CashFlowSvcFacade) {
	h := newCashFlowHandler(cashFlowService)

	cashflow := rg.Group("/cashflow")
	{
		cashflow.POST("", h.createCashFlow)
		cashflow.GET("", h.getLedger)
		cashflow.PATCH("/:id/status", h.updateStatus)
	}
}

// createCashFlow godoc
// @Summary Record a cash movement
// @Description Exactly one of inflow and outflow must be positive
// @Tags cashflow
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateCashFlowRequest true "Entry details"
// @Success 201 {object} map[string]int64 "Created entry id"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record cash-flow entry"
// @Router /cashflow [post]
func (h *cashFlowHandler) createCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCashFlow", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.cashFlowService.CreateCashFlow(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording cash-flow entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record cash-flow entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record cash-flow entry"})
		}
		return
	}

	logger.Info("Cash-flow entry recorded", slog.Int64("entry_id", created.ID), slog.String("status", string(created.Status)))
	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

// getLedger godoc
// @Summary Get the cash-flow ledger
// @Description All entries with running balances, plus the cash summary
// @Tags cashflow
// @Produce  json
// @Success 200 {object} dto.CashFlowLedgerResponse
// @Failure 500 {object} map[string]string "Failed to compute cash-flow ledger"
// @Router /cashflow [get]
func (h *cashFlowHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, summary, err := h.cashFlowService.GetCashFlowLedger(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute cash-flow ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cash-flow ledger"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowLedgerResponse(rows, summary))
}

// updateStatus godoc
// @Summary Update the status of a cash-flow entry
// @Description Typically transitions an entry from Pending to Completed
// @Tags cashflow
// @Accept  json
// @Produce  json
// @Param   id path int true "Entry id"
// @Param   status body dto.UpdateCashFlowStatusRequest true "New status"
// @Success 200 {object} map[string]string "Status updated"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Router /cashflow/{id}/status [patch]
func (h *cashFlowHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var req dto.UpdateCashFlowStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCashFlowStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	err = h.cashFlowService.UpdateStatus(c.Request.Context(), id, domain.CashFlowStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cash-flow entry not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update cash-flow status", slog.Int64("entry_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	logger.Info("Cash-flow status updated", slog.Int64("entry_id", id), slog.String("status", req.Status))
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
