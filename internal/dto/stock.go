package dto

import (
	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockRowResponse is the per-batch stock view.
type StockRowResponse struct {
	BatchID        string          `json:"batchID"`
	ProductName    string          `json:"productName"`
	Category       string          `json:"category"`
	CostPerUnit    decimal.Decimal `json:"costPerUnit"`
	TotalPurchased int64           `json:"totalPurchased"`
	TotalSold      int64           `json:"totalSold"`
	ClosingStock   int64           `json:"closingStock"`
	StockValue     decimal.Decimal `json:"stockValue"`
	Status         string          `json:"status"`
}

// StockTableResponse is the full stock table with headline totals.
type StockTableResponse struct {
	Rows    []StockRowResponse `json:"rows"`
	Summary struct {
		TotalUnits      int64           `json:"totalUnits"`
		TotalValue      decimal.Decimal `json:"totalValue"`
		InStockCount    int64           `json:"inStockCount"`
		OutOfStockCount int64           `json:"outOfStockCount"`
	} `json:"summary"`
}

// ToStockRowResponse converts a domain stock row.
func ToStockRowResponse(r domain.StockRow) StockRowResponse {
	return StockRowResponse{
		BatchID:        r.BatchID,
		ProductName:    r.ProductName,
		Category:       r.Category,
		CostPerUnit:    r.CostPerUnit,
		TotalPurchased: r.TotalPurchased,
		TotalSold:      r.TotalSold,
		ClosingStock:   r.ClosingStock,
		StockValue:     r.StockValue,
		Status:         string(r.Status),
	}
}

// ToStockTableResponse converts domain stock rows and derives the headline
// totals. Units and value only count batches with positive closing stock.
func ToStockTableResponse(rows []domain.StockRow) StockTableResponse {
	response := StockTableResponse{
		Rows: make([]StockRowResponse, len(rows)),
	}
	totalValue := decimal.Zero
	for i, r := range rows {
		response.Rows[i] = ToStockRowResponse(r)
		if r.ClosingStock > 0 {
			response.Summary.TotalUnits += r.ClosingStock
			totalValue = totalValue.Add(r.StockValue)
			response.Summary.InStockCount++
		} else {
			response.Summary.OutOfStockCount++
		}
	}
	response.Summary.TotalValue = totalValue
	return response
}
