package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lookiva/lookiva_app/internal/apperrors"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository runs the aggregation queries the derived views are
// built from. All sums are COALESCEd so batches or ranges without ledger rows
// come back as zero rather than NULL.
type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

const batchQuantitiesSelect = `
	SELECT p.batch_id, p.product_name, p.category, p.cost_per_unit,
	       COALESCE(pu.total_purchased, 0) AS total_purchased,
	       COALESCE(s.total_sold, 0) AS total_sold
	FROM products p
	LEFT JOIN (
		SELECT batch_id, SUM(quantity) AS total_purchased
		FROM purchases GROUP BY batch_id
	) pu ON pu.batch_id = p.batch_id
	LEFT JOIN (
		SELECT batch_id, SUM(quantity) AS total_sold
		FROM sales GROUP BY batch_id
	) s ON s.batch_id = p.batch_id`

// GetBatchQuantities retrieves every batch with its summed purchased and sold
// quantities, ordered by batch identifier.
func (r *PgxReportingRepository) GetBatchQuantities(ctx context.Context) ([]domain.BatchQuantities, error) {
	rows, err := r.pool.Query(ctx, batchQuantitiesSelect+` ORDER BY p.batch_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch quantities: %w", err)
	}
	defer rows.Close()

	var quantities []domain.BatchQuantities
	for rows.Next() {
		var q domain.BatchQuantities
		err := rows.Scan(&q.BatchID, &q.ProductName, &q.Category, &q.CostPerUnit, &q.TotalPurchased, &q.TotalSold)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batch quantities row: %w", err)
		}
		quantities = append(quantities, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading batch quantities rows: %w", err)
	}
	return quantities, nil
}

// GetBatchQuantitiesByID retrieves the summed quantities for one batch.
func (r *PgxReportingRepository) GetBatchQuantitiesByID(ctx context.Context, batchID string) (*domain.BatchQuantities, error) {
	var q domain.BatchQuantities
	err := r.pool.QueryRow(ctx, batchQuantitiesSelect+` WHERE p.batch_id = $1;`, batchID).
		Scan(&q.BatchID, &q.ProductName, &q.Category, &q.CostPerUnit, &q.TotalPurchased, &q.TotalSold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query batch quantities for %s: %w", batchID, err)
	}
	return &q, nil
}

// CountProducts returns the total number of batches.
func (r *PgxReportingRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) queryMonthlyAmounts(ctx context.Context, query string) ([]domain.MonthlyAmount, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var amounts []domain.MonthlyAmount
	for rows.Next() {
		var m domain.MonthlyAmount
		if err := rows.Scan(&m.Month, &m.Amount); err != nil {
			return nil, err
		}
		amounts = append(amounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return amounts, nil
}

// GetMonthlyGrossProfit sums (retailer price - current batch cost) * qty over
// sales, grouped by calendar month. Margins use the batch's current standard
// cost, not the historical purchase cost.
func (r *PgxReportingRepository) GetMonthlyGrossProfit(ctx context.Context) ([]domain.MonthlyAmount, error) {
	query := `
		SELECT to_char(s.date, 'YYYY-MM') AS month,
		       COALESCE(SUM((s.selling_price_retailer - p.cost_per_unit) * s.quantity), 0) AS gross
		FROM sales s
		JOIN products p ON p.batch_id = s.batch_id
		GROUP BY month
		ORDER BY month ASC;
	`
	amounts, err := r.queryMonthlyAmounts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly gross profit: %w", err)
	}
	return amounts, nil
}

// GetMonthlyExpenses sums expense amounts grouped by calendar month.
func (r *PgxReportingRepository) GetMonthlyExpenses(ctx context.Context) ([]domain.MonthlyAmount, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM') AS month,
		       COALESCE(SUM(amount), 0) AS total
		FROM expenses
		GROUP BY month
		ORDER BY month ASC;
	`
	amounts, err := r.queryMonthlyAmounts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly expenses: %w", err)
	}
	return amounts, nil
}

// GetMonthlyRevenue sums retailer revenue and units sold grouped by calendar
// month.
func (r *PgxReportingRepository) GetMonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenueRow, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM') AS month,
		       COALESCE(SUM(selling_price_retailer * quantity), 0) AS revenue,
		       COALESCE(SUM(quantity), 0) AS units_sold
		FROM sales
		GROUP BY month
		ORDER BY month ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly revenue: %w", err)
	}
	defer rows.Close()

	var revenue []domain.MonthlyRevenueRow
	for rows.Next() {
		var m domain.MonthlyRevenueRow
		if err := rows.Scan(&m.Month, &m.Revenue, &m.UnitsSold); err != nil {
			return nil, fmt.Errorf("failed to scan monthly revenue row: %w", err)
		}
		revenue = append(revenue, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading monthly revenue rows: %w", err)
	}
	return revenue, nil
}

// GetTopSellingProducts aggregates sales per batch, quantity descending.
func (r *PgxReportingRepository) GetTopSellingProducts(ctx context.Context, limit int) ([]domain.TopSellingProduct, error) {
	query := `
		SELECT s.batch_id, p.product_name,
		       COALESCE(SUM(s.quantity), 0) AS total_qty,
		       COALESCE(SUM(s.selling_price_retailer * s.quantity), 0) AS total_revenue
		FROM sales s
		JOIN products p ON p.batch_id = s.batch_id
		GROUP BY s.batch_id, p.product_name
		ORDER BY total_qty DESC
		LIMIT $1;
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top selling products: %w", err)
	}
	defer rows.Close()

	var top []domain.TopSellingProduct
	for rows.Next() {
		var t domain.TopSellingProduct
		if err := rows.Scan(&t.BatchID, &t.ProductName, &t.TotalQty, &t.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan top selling product row: %w", err)
		}
		top = append(top, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading top selling product rows: %w", err)
	}
	return top, nil
}

func (r *PgxReportingRepository) sumBetween(ctx context.Context, query string, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx, query, from, to).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// SumRevenueBetween sums retailer revenue over sales dated within [from, to].
func (r *PgxReportingRepository) SumRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(selling_price_retailer * quantity), 0)
		FROM sales
		WHERE date >= $1 AND date <= $2;
	`
	sum, err := r.sumBetween(ctx, query, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return sum, nil
}

// SumCostOfGoodsBetween sums current batch cost * qty over sales dated within
// [from, to].
func (r *PgxReportingRepository) SumCostOfGoodsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.cost_per_unit * s.quantity), 0)
		FROM sales s
		JOIN products p ON p.batch_id = s.batch_id
		WHERE s.date >= $1 AND s.date <= $2;
	`
	sum, err := r.sumBetween(ctx, query, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum cost of goods: %w", err)
	}
	return sum, nil
}

// SumExpensesBetween sums expense amounts dated within [from, to].
func (r *PgxReportingRepository) SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE date >= $1 AND date <= $2;
	`
	sum, err := r.sumBetween(ctx, query, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return sum, nil
}
