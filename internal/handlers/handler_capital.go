package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lookiva/lookiva_app/internal/apperrors"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/dto"
	"github.com/lookiva/lookiva_app/internal/middleware"
)

// capitalHandler handles HTTP requests related to the capital ledger.
type capitalHandler struct {
	capitalService portssvc.CapitalSvcFacade
}

func newCapitalHandler(cs portssvc.CapitalSvcFacade) *capitalHandler {
	return &capitalHandler{
		capitalService: cs,
	}
}

// registerCapitalRoutes registers routes related to capital.
func registerCapitalRoutes(rg *gin.RouterGroup, capitalService portssvc.CapitalSvcFacade) {
	h := newCapitalHandler(capitalService)

	capital := rg.Group("/capital")
	{
		capital.POST("", h.createCapital)
		capital.GET("", h.getLedger)
	}
}

// createCapital godoc
// @Summary Record a capital movement
// @Tags capital
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateCapitalRequest true "Entry details"
// @Success 201 {object} map[string]int64 "Created entry id"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record capital entry"
// @Router /capital [post]
func (h *capitalHandler) createCapital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCapitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCapital", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.capitalService.CreateCapital(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording capital entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record capital entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record capital entry"})
		}
		return
	}

	logger.Info("Capital entry recorded", slog.Int64("entry_id", created.ID), slog.String("type", string(created.Type)))
	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

// getLedger godoc
// @Summary Get the capital ledger
// @Description All entries with running balances and the final balance
// @Tags capital
// @Produce  json
// @Success 200 {object} dto.CapitalLedgerResponse
// @Failure 500 {object} map[string]string "Failed to compute capital ledger"
// @Router /capital [get]
func (h *capitalHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ledger, err := h.capitalService.GetCapitalLedger(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute capital ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute capital ledger"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCapitalLedgerResponse(*ledger))
}
