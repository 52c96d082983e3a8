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

// PgxPurchaseRepository persists purchase ledger rows.
type PgxPurchaseRepository struct {
	pool *pgxpool.Pool
}

func newPgxPurchaseRepository(pool *pgxpool.Pool) *PgxPurchaseRepository {
	return &PgxPurchaseRepository{pool: pool}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseJoinedSelect = `
	SELECT pu.id, pu.date, pu.batch_id, pu.supplier_name, pu.quantity,
	       pu.cost_per_unit, pu.payment_method, pu.remarks, pu.created_at,
	       p.product_name, p.category
	FROM purchases pu
	JOIN products p ON p.batch_id = pu.batch_id`

func scanPurchaseRows(rows pgx.Rows) ([]domain.PurchaseWithProduct, error) {
	defer rows.Close()

	var purchases []domain.PurchaseWithProduct
	for rows.Next() {
		var pu domain.PurchaseWithProduct
		err := rows.Scan(
			&pu.ID,
			&pu.Date,
			&pu.BatchID,
			&pu.SupplierName,
			&pu.Quantity,
			&pu.CostPerUnit,
			&pu.PaymentMethod,
			&pu.Remarks,
			&pu.CreatedAt,
			&pu.ProductName,
			&pu.Category,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, pu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading purchase rows: %w", err)
	}
	return purchases, nil
}

// SavePurchase inserts a purchase row and returns its generated id.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) (int64, error) {
	query := `
		INSERT INTO purchases (date, batch_id, supplier_name, quantity, cost_per_unit, payment_method, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		purchase.Date,
		purchase.BatchID,
		purchase.SupplierName,
		purchase.Quantity,
		purchase.CostPerUnit,
		purchase.PaymentMethod,
		purchase.Remarks,
		purchase.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return 0, fmt.Errorf("%w: batch %s does not exist", apperrors.ErrRefIntegrity, purchase.BatchID)
		}
		return 0, fmt.Errorf("failed to save purchase for batch %s: %w", purchase.BatchID, err)
	}
	return id, nil
}

// ListPurchases retrieves purchase rows joined with product name and
// category, date desc then id desc.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithProduct, error) {
	query := purchaseJoinedSelect + `
	WHERE ($1::date IS NULL OR pu.date >= $1)
	  AND ($2::date IS NULL OR pu.date <= $2)
	ORDER BY pu.date DESC, pu.id DESC;`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return scanPurchaseRows(rows)
}

// ListRecentPurchases retrieves the most recent purchase rows.
func (r *PgxPurchaseRepository) ListRecentPurchases(ctx context.Context, limit int) ([]domain.PurchaseWithProduct, error) {
	query := purchaseJoinedSelect + `
	ORDER BY pu.date DESC, pu.id DESC
	LIMIT $1;`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent purchases: %w", err)
	}
	return scanPurchaseRows(rows)
}
