package services

import (
	"context"

	"github.com/lookiva/lookiva_app/internal/core/domain"
)

// ReportingService defines the derived financial report views. Each report
// is a pure function of the ledger state: re-running a report without
// intervening writes yields identical output.
type ReportingService interface {
	// GetDashboardKPIs computes the headline figures for the calendar month
	// containing the evaluation instant.
	GetDashboardKPIs(ctx context.Context) (*domain.DashboardKPIs, error)

	// GetMonthlyPnL computes gross profit, expenses and net profit per
	// month, ascending, covering every month that has sales or expenses.
	GetMonthlyPnL(ctx context.Context) ([]domain.MonthlyPnLRow, error)

	// GetMonthlyRevenue computes revenue and units sold per month, ascending.
	GetMonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenueRow, error)

	// GetCashSummary computes cash in hand over completed entries and the
	// pending receipt/payment totals.
	GetCashSummary(ctx context.Context) (*domain.CashSummary, error)

	// GetLowStockAlerts lists batches with closing stock between zero and
	// the threshold inclusive, closing stock ascending.
	GetLowStockAlerts(ctx context.Context, threshold int64) ([]domain.LowStockAlert, error)

	// GetTopSellingProducts lists the best-selling batches by quantity.
	GetTopSellingProducts(ctx context.Context, limit int) ([]domain.TopSellingProduct, error)

	// GetRecentSales lists the most recent sale rows.
	GetRecentSales(ctx context.Context, limit int) ([]domain.SaleWithProduct, error)

	// GetRecentPurchases lists the most recent purchase rows.
	GetRecentPurchases(ctx context.Context, limit int) ([]domain.PurchaseWithProduct, error)
}
