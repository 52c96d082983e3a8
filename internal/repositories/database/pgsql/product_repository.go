package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lookiva/lookiva_app/internal/apperrors"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
)

// PgxProductRepository persists product batches.
type PgxProductRepository struct {
	pool *pgxpool.Pool
}

func newPgxProductRepository(pool *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{pool: pool}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `batch_id, base_product_id, category, product_name, fabric, color, pattern, size, source, cost_per_unit, first_purchase_date, image_path, remarks, created_at`

func scanProduct(row pgx.Row) (*domain.ProductBatch, error) {
	var p domain.ProductBatch
	err := row.Scan(
		&p.BatchID,
		&p.BaseProductID,
		&p.Category,
		&p.ProductName,
		&p.Fabric,
		&p.Color,
		&p.Pattern,
		&p.Size,
		&p.Source,
		&p.CostPerUnit,
		&p.FirstPurchaseDate,
		&p.ImagePath,
		&p.Remarks,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProduct inserts a new batch. A duplicate batch identifier maps to
// apperrors.ErrDuplicate.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.ProductBatch) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		product.BatchID,
		product.BaseProductID,
		product.Category,
		product.ProductName,
		product.Fabric,
		product.Color,
		product.Pattern,
		product.Size,
		product.Source,
		product.CostPerUnit,
		product.FirstPurchaseDate,
		product.ImagePath,
		product.Remarks,
		product.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: batch %s already exists", apperrors.ErrDuplicate, product.BatchID)
		}
		return fmt.Errorf("failed to save product batch %s: %w", product.BatchID, err)
	}
	return nil
}

// FindProductByBatchID retrieves a batch by its identifier.
func (r *PgxProductRepository) FindProductByBatchID(ctx context.Context, batchID string) (*domain.ProductBatch, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE batch_id = $1;`
	product, err := scanProduct(r.pool.QueryRow(ctx, query, batchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product batch %s: %w", batchID, err)
	}
	return product, nil
}

// ListProducts retrieves all batches, newest first purchase date first.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.ProductBatch, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY first_purchase_date DESC NULLS LAST, batch_id;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list product batches: %w", err)
	}
	defer rows.Close()

	var products []domain.ProductBatch
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product batch row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading product batch rows: %w", err)
	}
	return products, nil
}

// ListCategories retrieves the distinct categories in use.
func (r *PgxProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM products ORDER BY category;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading category rows: %w", err)
	}
	return categories, nil
}

// FindLatestBatchID returns the highest batch identifier matching the LIKE
// pattern, or "" when none does.
func (r *PgxProductRepository) FindLatestBatchID(ctx context.Context, pattern string) (string, error) {
	query := `SELECT batch_id FROM products WHERE batch_id LIKE $1 ORDER BY batch_id DESC LIMIT 1;`
	var batchID string
	err := r.pool.QueryRow(ctx, query, pattern).Scan(&batchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to find latest batch id for pattern %s: %w", pattern, err)
	}
	return batchID, nil
}

// UpdateProduct applies the non-nil fields of the update.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, batchID string, update domain.ProductUpdate) error {
	setClauses := make([]string, 0, 10)
	args := make([]any, 0, 11)
	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.ProductName != nil {
		addSet("product_name", *update.ProductName)
	}
	if update.Category != nil {
		addSet("category", *update.Category)
	}
	if update.Fabric != nil {
		addSet("fabric", *update.Fabric)
	}
	if update.Color != nil {
		addSet("color", *update.Color)
	}
	if update.Pattern != nil {
		addSet("pattern", *update.Pattern)
	}
	if update.Size != nil {
		addSet("size", *update.Size)
	}
	if update.Source != nil {
		addSet("source", *update.Source)
	}
	if update.CostPerUnit != nil {
		addSet("cost_per_unit", *update.CostPerUnit)
	}
	if update.ImagePath != nil {
		addSet("image_path", *update.ImagePath)
	}
	if update.Remarks != nil {
		addSet("remarks", *update.Remarks)
	}
	if len(setClauses) == 0 {
		return nil
	}

	args = append(args, batchID)
	query := fmt.Sprintf("UPDATE products SET %s WHERE batch_id = $%d;", strings.Join(setClauses, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product batch %s: %w", batchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a batch. Deleting a batch that still has purchase or
// sale rows maps to apperrors.ErrRefIntegrity.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, batchID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE batch_id = $1;`, batchID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: batch %s still has purchase or sale entries", apperrors.ErrRefIntegrity, batchID)
		}
		return fmt.Errorf("failed to delete product batch %s: %w", batchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
