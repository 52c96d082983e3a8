package services

import (
	"context"
	"fmt"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// stockService derives per-batch stock levels from the purchase and sales
// ledgers. Closing stock is purchased minus sold; value is the batch's
// current standard cost times closing stock. There is no lot costing: a
// batch's cost is a single current value.
type stockService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewStockService creates a new stock service
func NewStockService(repo portsrepo.ReportingRepository) portssvc.StockSvcFacade {
	return &stockService{reportingRepo: repo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

// deriveStockRow turns raw purchased/sold sums into the derived stock view.
// Negative closing stock yields a negative value; nothing is clamped.
func deriveStockRow(q domain.BatchQuantities) domain.StockRow {
	closing := q.TotalPurchased - q.TotalSold
	return domain.StockRow{
		BatchID:        q.BatchID,
		ProductName:    q.ProductName,
		Category:       q.Category,
		CostPerUnit:    q.CostPerUnit,
		TotalPurchased: q.TotalPurchased,
		TotalSold:      q.TotalSold,
		ClosingStock:   closing,
		StockValue:     q.CostPerUnit.Mul(decimal.NewFromInt(closing)),
		Status:         domain.StatusForClosing(closing),
	}
}

func (s *stockService) GetStockTable(ctx context.Context) ([]domain.StockRow, error) {
	quantities, err := s.reportingRepo.GetBatchQuantities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch quantities: %w", err)
	}

	rows := make([]domain.StockRow, len(quantities))
	for i, q := range quantities {
		rows[i] = deriveStockRow(q)
	}
	return rows, nil
}

func (s *stockService) GetStock(ctx context.Context, batchID string) (*domain.StockRow, error) {
	quantities, err := s.reportingRepo.GetBatchQuantitiesByID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quantities for batch %s: %w", batchID, err)
	}
	row := deriveStockRow(*quantities)
	return &row, nil
}

func (s *stockService) GetInStockProducts(ctx context.Context) ([]domain.StockRow, error) {
	all, err := s.GetStockTable(ctx)
	if err != nil {
		return nil, err
	}

	inStock := make([]domain.StockRow, 0, len(all))
	for _, row := range all {
		if row.ClosingStock > 0 {
			inStock = append(inStock, row)
		}
	}
	return inStock, nil
}

func (s *stockService) GetAvailableStock(ctx context.Context, batchID string) (int64, error) {
	row, err := s.GetStock(ctx, batchID)
	if err != nil {
		return 0, err
	}
	return row.ClosingStock, nil
}
