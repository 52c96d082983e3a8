package domain

import "github.com/shopspring/decimal"

// StockStatus is the read-time classification of a batch's closing stock.
type StockStatus string

const (
	StockStatusOut       StockStatus = "Out of Stock"
	StockStatusLow       StockStatus = "Low Stock"
	StockStatusAvailable StockStatus = "Available"
)

// lowStockStatusCutoff is the closing-stock level at or below which a batch
// in stock is reported as Low Stock.
const lowStockStatusCutoff = 2

// StatusForClosing classifies a closing-stock quantity. Negative closing
// stock reports as out of stock; the data layer does not floor it.
func StatusForClosing(closing int64) StockStatus {
	switch {
	case closing <= 0:
		return StockStatusOut
	case closing <= lowStockStatusCutoff:
		return StockStatusLow
	default:
		return StockStatusAvailable
	}
}

// BatchQuantities holds the raw purchased/sold sums for one batch, as read
// from the ledgers. Batches without purchase or sale rows carry zero sums.
type BatchQuantities struct {
	BatchID        string
	ProductName    string
	Category       string
	CostPerUnit    decimal.Decimal
	TotalPurchased int64
	TotalSold      int64
}

// StockRow is the derived per-batch stock view: running quantity balance and
// its monetized value at the batch's current standard cost.
type StockRow struct {
	BatchID        string          `json:"batchID"`
	ProductName    string          `json:"productName"`
	Category       string          `json:"category"`
	CostPerUnit    decimal.Decimal `json:"costPerUnit"`
	TotalPurchased int64           `json:"totalPurchased"`
	TotalSold      int64           `json:"totalSold"`
	ClosingStock   int64           `json:"closingStock"`
	StockValue     decimal.Decimal `json:"stockValue"`
	Status         StockStatus     `json:"status"`
}
