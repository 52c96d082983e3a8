package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lookiva/lookiva_app/internal/apperrors"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
)

// PgxSaleRepository persists sales ledger rows.
type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

func newPgxSaleRepository(pool *pgxpool.Pool) *PgxSaleRepository {
	return &PgxSaleRepository{pool: pool}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleJoinedSelect = `
	SELECT s.id, s.date, s.batch_id, s.quantity,
	       s.selling_price_customer, s.selling_price_retailer, s.sale_type,
	       s.remarks, s.created_at,
	       p.product_name, p.category, p.cost_per_unit
	FROM sales s
	JOIN products p ON p.batch_id = s.batch_id`

func scanSaleRows(rows pgx.Rows) ([]domain.SaleWithProduct, error) {
	defer rows.Close()

	var sales []domain.SaleWithProduct
	for rows.Next() {
		var s domain.SaleWithProduct
		err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.BatchID,
			&s.Quantity,
			&s.SellingPriceCustomer,
			&s.SellingPriceRetailer,
			&s.SaleType,
			&s.Remarks,
			&s.CreatedAt,
			&s.ProductName,
			&s.Category,
			&s.ProductCost,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading sale rows: %w", err)
	}
	return sales, nil
}

// SaveSale inserts a sale row and returns its generated id.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) (int64, error) {
	query := `
		INSERT INTO sales (date, batch_id, quantity, selling_price_customer, selling_price_retailer, sale_type, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		sale.Date,
		sale.BatchID,
		sale.Quantity,
		sale.SellingPriceCustomer,
		sale.SellingPriceRetailer,
		sale.SaleType,
		sale.Remarks,
		sale.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return 0, fmt.Errorf("%w: batch %s does not exist", apperrors.ErrRefIntegrity, sale.BatchID)
		}
		return 0, fmt.Errorf("failed to save sale for batch %s: %w", sale.BatchID, err)
	}
	return id, nil
}

// ListSales retrieves sale rows joined with product name, category and
// current cost, date desc then id desc.
func (r *PgxSaleRepository) ListSales(ctx context.Context, from, to *time.Time, saleType *domain.SaleType) ([]domain.SaleWithProduct, error) {
	query := saleJoinedSelect + `
	WHERE ($1::date IS NULL OR s.date >= $1)
	  AND ($2::date IS NULL OR s.date <= $2)
	  AND ($3::text IS NULL OR s.sale_type = $3)
	ORDER BY s.date DESC, s.id DESC;`

	rows, err := r.pool.Query(ctx, query, from, to, saleType)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return scanSaleRows(rows)
}

// ListRecentSales retrieves the most recent sale rows.
func (r *PgxSaleRepository) ListRecentSales(ctx context.Context, limit int) ([]domain.SaleWithProduct, error) {
	query := saleJoinedSelect + `
	ORDER BY s.date DESC, s.id DESC
	LIMIT $1;`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent sales: %w", err)
	}
	return scanSaleRows(rows)
}
