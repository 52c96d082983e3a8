package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/dto"
	"github.com/lookiva/lookiva_app/internal/middleware"
	"github.com/lookiva/lookiva_app/internal/platform/config"
)

// reportingHandler handles HTTP requests for the derived financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService

	defaultLowStockThreshold int64
	recentLimit              int
}

func newReportingHandler(rs portssvc.ReportingService, cfg *config.Config) *reportingHandler {
	return &reportingHandler{
		reportingService:         rs,
		defaultLowStockThreshold: cfg.LowStockThreshold,
		recentLimit:              cfg.RecentLimit,
	}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, cfg *config.Config) {
	h := newReportingHandler(reportingService, cfg)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/pnl", h.getMonthlyPnL)
		reports.GET("/revenue", h.getMonthlyRevenue)
		reports.GET("/cash-summary", h.getCashSummary)
		reports.GET("/low-stock", h.getLowStockAlerts)
		reports.GET("/top-products", h.getTopSellingProducts)
		reports.GET("/recent-sales", h.getRecentSales)
		reports.GET("/recent-purchases", h.getRecentPurchases)
	}
}

// getDashboard godoc
// @Summary Get dashboard KPIs
// @Description Headline figures for the current calendar month
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DashboardKPIsResponse
// @Failure 500 {object} map[string]string "Failed to compute dashboard"
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kpis, err := h.reportingService.GetDashboardKPIs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard KPIs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardKPIsResponse(*kpis))
}

// getMonthlyPnL godoc
// @Summary Get the monthly profit and loss report
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.MonthlyPnLResponse
// @Failure 500 {object} map[string]string "Failed to compute P&L"
// @Router /reports/pnl [get]
func (h *reportingHandler) getMonthlyPnL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.GetMonthlyPnL(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute monthly P&L", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute P&L"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyPnLResponse(rows))
}

// getMonthlyRevenue godoc
// @Summary Get monthly revenue and units sold
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.MonthlyRevenueRowResponse
// @Failure 500 {object} map[string]string "Failed to compute revenue"
// @Router /reports/revenue [get]
func (h *reportingHandler) getMonthlyRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.GetMonthlyRevenue(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute monthly revenue", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyRevenueResponses(rows))
}

// getCashSummary godoc
// @Summary Get the cash position
// @Description Cash in hand over completed entries plus pending receipt and payment totals
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.CashSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute cash summary"
// @Router /reports/cash-summary [get]
func (h *reportingHandler) getCashSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetCashSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute cash summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cash summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCashSummaryResponse(*summary))
}

// getLowStockAlerts godoc
// @Summary List batches at or below the low-stock threshold
// @Tags reports
// @Produce  json
// @Param   threshold query int false "Closing-stock threshold (defaults to the configured value)"
// @Success 200 {array} dto.LowStockAlertResponse
// @Failure 400 {object} map[string]string "Invalid threshold"
// @Failure 500 {object} map[string]string "Failed to compute low-stock alerts"
// @Router /reports/low-stock [get]
func (h *reportingHandler) getLowStockAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	threshold := h.defaultLowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be a non-negative integer"})
			return
		}
		threshold = parsed
	}

	alerts, err := h.reportingService.GetLowStockAlerts(c.Request.Context(), threshold)
	if err != nil {
		logger.Error("Failed to compute low-stock alerts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute low-stock alerts"})
		return
	}
	c.JSON(http.StatusOK, dto.ToLowStockAlertResponses(alerts))
}

// getTopSellingProducts godoc
// @Summary List the best-selling batches
// @Tags reports
// @Produce  json
// @Param   limit query int false "Maximum rows (default 5)"
// @Success 200 {array} dto.TopSellingProductResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to compute top sellers"
// @Router /reports/top-products [get]
func (h *reportingHandler) getTopSellingProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := h.recentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	top, err := h.reportingService.GetTopSellingProducts(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to compute top-selling products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute top sellers"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTopSellingProductResponses(top))
}

// getRecentSales godoc
// @Summary List the most recent sales
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.SaleResponse
// @Failure 500 {object} map[string]string "Failed to list recent sales"
// @Router /reports/recent-sales [get]
func (h *reportingHandler) getRecentSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sales, err := h.reportingService.GetRecentSales(c.Request.Context(), h.recentLimit)
	if err != nil {
		logger.Error("Failed to list recent sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recent sales"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// getRecentPurchases godoc
// @Summary List the most recent purchases
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.PurchaseResponse
// @Failure 500 {object} map[string]string "Failed to list recent purchases"
// @Router /reports/recent-purchases [get]
func (h *reportingHandler) getRecentPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	purchases, err := h.reportingService.GetRecentPurchases(c.Request.Context(), h.recentLimit)
	if err != nil {
		logger.Error("Failed to list recent purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recent purchases"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponses(purchases))
}
