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

// purchaseService records stock-in entries against the purchase ledger.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(repo portsrepo.PurchaseRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseService{purchaseRepo: repo}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	// A zero quantity means nothing happened; negative quantities are valid
	// returns to the supplier.
	if req.Quantity == 0 {
		return nil, fmt.Errorf("%w: quantity must not be zero", apperrors.ErrValidation)
	}
	if req.CostPerUnit.IsNegative() {
		return nil, fmt.Errorf("%w: costPerUnit must not be negative", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Cash"
	}

	purchase := domain.Purchase{
		Date:          date,
		BatchID:       req.BatchID,
		SupplierName:  req.SupplierName,
		Quantity:      req.Quantity,
		CostPerUnit:   req.CostPerUnit,
		PaymentMethod: paymentMethod,
		Remarks:       req.Remarks,
		CreatedAt:     time.Now(),
	}

	id, err := s.purchaseRepo.SavePurchase(ctx, purchase)
	if err != nil {
		s.LogError(ctx, err, "Failed to save purchase", slog.String("batch_id", req.BatchID))
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}
	purchase.ID = id

	s.LogInfo(ctx, "Purchase recorded",
		slog.Int64("purchase_id", id),
		slog.String("batch_id", req.BatchID),
		slog.Int64("quantity", req.Quantity))
	return &purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithProduct, error) {
	purchases, err := s.purchaseRepo.ListPurchases(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	if purchases == nil {
		return []domain.PurchaseWithProduct{}, nil
	}
	return purchases, nil
}
