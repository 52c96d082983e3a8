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
	"github.com/lookiva/lookiva_app/internal/utils/batchid"
)

// productService manages the batch catalogue and suggests batch identifiers.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	now         func() time.Time
}

// ProductServiceOption is a functional option for configuring the product service
type ProductServiceOption func(*productService)

// WithProductClock overrides the clock used for batch identifier month
// suffixes. Used by tests.
func WithProductClock(now func() time.Time) ProductServiceOption {
	return func(s *productService) {
		s.now = now
	}
}

// NewProductService creates a new product service with the provided options
func NewProductService(repo portsrepo.ProductRepositoryFacade, options ...ProductServiceOption) portssvc.ProductSvcFacade {
	svc := &productService{
		productRepo: repo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.ProductBatch, error) {
	if req.CostPerUnit.IsNegative() {
		return nil, fmt.Errorf("%w: costPerUnit must not be negative", apperrors.ErrValidation)
	}

	batchID := req.BatchID
	if batchID == "" {
		generated, err := s.GenerateBatchID(ctx, prefixForCategory(req.Category))
		if err != nil {
			return nil, fmt.Errorf("failed to generate batch identifier: %w", err)
		}
		batchID = generated
	}

	baseProductID := req.BaseProductID
	if baseProductID == "" {
		// Default grouping key: the prefix plus sequence part of the batch id.
		baseProductID = batchID
		if len(batchID) > 6 {
			baseProductID = batchID[:6]
		}
	}

	product := domain.ProductBatch{
		BatchID:       batchID,
		BaseProductID: baseProductID,
		Category:      req.Category,
		ProductName:   req.ProductName,
		Fabric:        req.Fabric,
		Color:         req.Color,
		Pattern:       req.Pattern,
		Size:          req.Size,
		Source:        req.Source,
		CostPerUnit:   req.CostPerUnit,
		ImagePath:     req.ImagePath,
		Remarks:       req.Remarks,
		CreatedAt:     s.now(),
	}

	if req.FirstPurchaseDate != nil && *req.FirstPurchaseDate != "" {
		d, err := time.Parse("2006-01-02", *req.FirstPurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: firstPurchaseDate must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		product.FirstPurchaseDate = &d
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product batch", slog.String("batch_id", batchID))
		return nil, fmt.Errorf("failed to create product batch: %w", err)
	}

	s.LogInfo(ctx, "Product batch created", slog.String("batch_id", batchID), slog.String("category", product.Category))
	return &product, nil
}

func (s *productService) GetProduct(ctx context.Context, batchID string) (*domain.ProductBatch, error) {
	product, err := s.productRepo.FindProductByBatchID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product batch %s: %w", batchID, err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.ProductBatch, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list product batches: %w", err)
	}
	if products == nil {
		return []domain.ProductBatch{}, nil
	}
	return products, nil
}

func (s *productService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []string{}, nil
	}
	return categories, nil
}

func (s *productService) UpdateProduct(ctx context.Context, batchID string, req dto.UpdateProductRequest) (*domain.ProductBatch, error) {
	if req.CostPerUnit != nil && req.CostPerUnit.IsNegative() {
		return nil, fmt.Errorf("%w: costPerUnit must not be negative", apperrors.ErrValidation)
	}
	if req.ProductName != nil && *req.ProductName == "" {
		return nil, fmt.Errorf("%w: productName must not be empty", apperrors.ErrValidation)
	}

	update := domain.ProductUpdate{
		ProductName: req.ProductName,
		Category:    req.Category,
		Fabric:      req.Fabric,
		Color:       req.Color,
		Pattern:     req.Pattern,
		Size:        req.Size,
		Source:      req.Source,
		CostPerUnit: req.CostPerUnit,
		ImagePath:   req.ImagePath,
		Remarks:     req.Remarks,
	}

	if err := s.productRepo.UpdateProduct(ctx, batchID, update); err != nil {
		s.LogError(ctx, err, "Failed to update product batch", slog.String("batch_id", batchID))
		return nil, fmt.Errorf("failed to update product batch %s: %w", batchID, err)
	}

	product, err := s.productRepo.FindProductByBatchID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload product batch %s: %w", batchID, err)
	}

	s.LogInfo(ctx, "Product batch updated", slog.String("batch_id", batchID))
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, batchID string) error {
	if err := s.productRepo.DeleteProduct(ctx, batchID); err != nil {
		s.LogError(ctx, err, "Failed to delete product batch", slog.String("batch_id", batchID))
		return fmt.Errorf("failed to delete product batch %s: %w", batchID, err)
	}
	s.LogInfo(ctx, "Product batch deleted", slog.String("batch_id", batchID))
	return nil
}

// GenerateBatchID suggests the next identifier for the category prefix,
// e.g. SR0007NOV24. It first looks at the highest identifier of the current
// month; failing that, the highest identifier with the prefix in any month;
// failing that, numbering starts at 1.
func (s *productService) GenerateBatchID(ctx context.Context, categoryPrefix string) (string, error) {
	now := s.now()
	suffix := batchid.MonthSuffix(now)

	latest, err := s.productRepo.FindLatestBatchID(ctx, categoryPrefix+"%"+suffix)
	if err != nil {
		return "", fmt.Errorf("failed to scan batch identifiers: %w", err)
	}

	var next int
	if latest != "" {
		next = batchid.NextSameMonth(latest, categoryPrefix, suffix)
	} else {
		latest, err = s.productRepo.FindLatestBatchID(ctx, categoryPrefix+"%")
		if err != nil {
			return "", fmt.Errorf("failed to scan batch identifiers: %w", err)
		}
		if latest != "" {
			next = batchid.NextAnyMonth(latest, categoryPrefix)
		} else {
			next = 1
		}
	}

	return batchid.Format(categoryPrefix, next, now), nil
}

// prefixForCategory maps a category name to its identifier prefix: the first
// two letters, upper-cased, defaulting to SR.
func prefixForCategory(category string) string {
	if len(category) < 2 {
		return "SR"
	}
	prefix := ""
	for _, ch := range category[:2] {
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		prefix += string(ch)
	}
	return prefix
}
