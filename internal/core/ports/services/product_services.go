package services

import (
	"context"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/lookiva/lookiva_app/internal/dto"
)

// ProductSvcFacade defines operations on the product batch catalogue.
type ProductSvcFacade interface {
	// CreateProduct registers a new batch. An empty BatchID in the request
	// gets the next advisory identifier for the category prefix.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.ProductBatch, error)

	// GetProduct retrieves a single batch by identifier.
	GetProduct(ctx context.Context, batchID string) (*domain.ProductBatch, error)

	// ListProducts retrieves all batches.
	ListProducts(ctx context.Context) ([]domain.ProductBatch, error)

	// ListCategories retrieves the distinct categories in use.
	ListCategories(ctx context.Context) ([]string, error)

	// UpdateProduct applies the provided mutable fields to a batch.
	UpdateProduct(ctx context.Context, batchID string, req dto.UpdateProductRequest) (*domain.ProductBatch, error)

	// DeleteProduct removes a batch with no referencing transactions.
	DeleteProduct(ctx context.Context, batchID string) error

	// GenerateBatchID suggests the next batch identifier for a category
	// prefix. Advisory only; insertion enforces uniqueness.
	GenerateBatchID(ctx context.Context, categoryPrefix string) (string, error)
}
