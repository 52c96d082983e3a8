package repositories

import (
	"context"
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
)

// PurchaseReader defines read operations for the purchase ledger
type PurchaseReader interface {
	// ListPurchases retrieves purchase rows joined with product name and
	// category, date desc then id desc. A nil from/to leaves the range open.
	ListPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithProduct, error)

	// ListRecentPurchases retrieves the most recent purchase rows.
	ListRecentPurchases(ctx context.Context, limit int) ([]domain.PurchaseWithProduct, error)
}

// PurchaseWriter defines write operations for the purchase ledger
type PurchaseWriter interface {
	// SavePurchase inserts a purchase row and returns its generated id.
	// Referencing a missing batch fails with apperrors.ErrRefIntegrity.
	SavePurchase(ctx context.Context, purchase domain.Purchase) (int64, error)
}

// PurchaseRepositoryFacade combines all purchase repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
