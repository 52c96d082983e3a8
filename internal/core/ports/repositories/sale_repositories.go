package repositories

import (
	"context"
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
)

// SaleReader defines read operations for the sales ledger
type SaleReader interface {
	// ListSales retrieves sale rows joined with product name, category and
	// current cost, date desc then id desc. A nil from/to leaves the range
	// open; a nil saleType matches both sale types.
	ListSales(ctx context.Context, from, to *time.Time, saleType *domain.SaleType) ([]domain.SaleWithProduct, error)

	// ListRecentSales retrieves the most recent sale rows.
	ListRecentSales(ctx context.Context, limit int) ([]domain.SaleWithProduct, error)
}

// SaleWriter defines write operations for the sales ledger
type SaleWriter interface {
	// SaveSale inserts a sale row and returns its generated id. Referencing
	// a missing batch fails with apperrors.ErrRefIntegrity.
	SaveSale(ctx context.Context, sale domain.Sale) (int64, error)
}

// SaleRepositoryFacade combines all sale repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
