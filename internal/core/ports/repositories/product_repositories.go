package repositories

import (
	"context"

	"github.com/lookiva/lookiva_app/internal/core/domain"
)

// ProductReader defines read operations for product batch data
type ProductReader interface {
	// FindProductByBatchID retrieves a single batch by its identifier.
	FindProductByBatchID(ctx context.Context, batchID string) (*domain.ProductBatch, error)

	// ListProducts retrieves all batches, newest first purchase date first,
	// then batch identifier ascending.
	ListProducts(ctx context.Context) ([]domain.ProductBatch, error)

	// ListCategories retrieves the distinct product categories in use.
	ListCategories(ctx context.Context) ([]string, error)

	// FindLatestBatchID returns the highest existing batch identifier
	// matching the given LIKE pattern, or "" when none matches.
	FindLatestBatchID(ctx context.Context, pattern string) (string, error)
}

// ProductWriter defines write operations for product batch data
type ProductWriter interface {
	// SaveProduct inserts a new batch; a colliding batch identifier fails
	// with apperrors.ErrDuplicate.
	SaveProduct(ctx context.Context, product domain.ProductBatch) error

	// UpdateProduct applies the non-nil fields of the update to an existing
	// batch.
	UpdateProduct(ctx context.Context, batchID string, update domain.ProductUpdate) error

	// DeleteProduct removes a batch. Deleting a batch that still has
	// purchase or sale rows fails with apperrors.ErrRefIntegrity.
	DeleteProduct(ctx context.Context, batchID string) error
}

// ProductRepositoryFacade combines all product repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
