package repositories

import (
	"context"
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the aggregation queries the derived views are
// built from. Aggregates over batches without matching ledger rows come back
// as zero, never as an error.
type ReportingRepository interface {
	// GetBatchQuantities retrieves every batch with its summed purchased and
	// sold quantities, ordered by batch identifier.
	GetBatchQuantities(ctx context.Context) ([]domain.BatchQuantities, error)

	// GetBatchQuantitiesByID retrieves the summed quantities for one batch.
	// Fails with apperrors.ErrNotFound when the batch does not exist.
	GetBatchQuantitiesByID(ctx context.Context, batchID string) (*domain.BatchQuantities, error)

	// CountProducts returns the total number of batches.
	CountProducts(ctx context.Context) (int64, error)

	// GetMonthlyGrossProfit sums (retailer price - current batch cost) * qty
	// over sales, grouped by YYYY-MM, month ascending.
	GetMonthlyGrossProfit(ctx context.Context) ([]domain.MonthlyAmount, error)

	// GetMonthlyExpenses sums expense amounts grouped by YYYY-MM, month
	// ascending.
	GetMonthlyExpenses(ctx context.Context) ([]domain.MonthlyAmount, error)

	// GetMonthlyRevenue sums retailer revenue and units sold grouped by
	// YYYY-MM, month ascending.
	GetMonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenueRow, error)

	// GetTopSellingProducts aggregates sales per batch, quantity descending,
	// at most limit rows.
	GetTopSellingProducts(ctx context.Context, limit int) ([]domain.TopSellingProduct, error)

	// SumRevenueBetween sums retailer revenue over sales dated within
	// [from, to] inclusive.
	SumRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumCostOfGoodsBetween sums current batch cost * qty over sales dated
	// within [from, to] inclusive.
	SumCostOfGoodsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumExpensesBetween sums expense amounts dated within [from, to]
	// inclusive.
	SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
