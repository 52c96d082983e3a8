package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lookiva/lookiva_app/internal/apperrors"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/dto"
)

// saleService records stock-out entries against the sales ledger.
//
// The data layer does not enforce a stock floor: a sale may drive a batch's
// closing stock negative. Capping the quantity at available stock is a
// caller-side concern; negative stock surfaces through the stock status and
// a negative stock value.
type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
}

// NewSaleService creates a new sale service
func NewSaleService(repo portsrepo.SaleRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: repo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.SellingPriceCustomer.IsNegative() {
		return nil, fmt.Errorf("%w: sellingPriceCustomer must not be negative", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	// The retailer price is what the business actually receives. For Direct
	// sales it defaults to the customer price.
	retailerPrice := req.SellingPriceCustomer
	if req.SellingPriceRetailer != nil {
		retailerPrice = *req.SellingPriceRetailer
	}
	if retailerPrice.IsNegative() {
		return nil, fmt.Errorf("%w: sellingPriceRetailer must not be negative", apperrors.ErrValidation)
	}

	sale := domain.Sale{
		Date:                 date,
		BatchID:              req.BatchID,
		Quantity:             req.Quantity,
		SellingPriceCustomer: req.SellingPriceCustomer,
		SellingPriceRetailer: retailerPrice,
		SaleType:             domain.SaleType(req.SaleType),
		Remarks:              req.Remarks,
		CreatedAt:            time.Now(),
	}

	id, err := s.saleRepo.SaveSale(ctx, sale)
	if err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("batch_id", req.BatchID))
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}
	sale.ID = id

	s.LogInfo(ctx, "Sale recorded",
		slog.Int64("sale_id", id),
		slog.String("batch_id", req.BatchID),
		slog.Int64("quantity", req.Quantity),
		slog.String("sale_type", req.SaleType))
	return &sale, nil
}

func (s *saleService) ListSales(ctx context.Context, from, to *time.Time, saleType *domain.SaleType) ([]domain.SaleWithProduct, error) {
	sales, err := s.saleRepo.ListSales(ctx, from, to, saleType)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	if sales == nil {
		return []domain.SaleWithProduct{}, nil
	}
	return sales, nil
}
