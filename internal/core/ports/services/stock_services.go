package services

import (
	"context"

	"github.com/lookiva/lookiva_app/internal/core/domain"
)

// StockSvcFacade defines the derived stock views.
type StockSvcFacade interface {
	// GetStockTable computes the per-batch stock view for every batch,
	// ordered by batch identifier.
	GetStockTable(ctx context.Context) ([]domain.StockRow, error)

	// GetStock computes the stock view for one batch.
	GetStock(ctx context.Context, batchID string) (*domain.StockRow, error)

	// GetInStockProducts computes the stock view restricted to batches with
	// positive closing stock.
	GetInStockProducts(ctx context.Context) ([]domain.StockRow, error)

	// GetAvailableStock returns the closing stock for one batch.
	GetAvailableStock(ctx context.Context, batchID string) (int64, error)
}
