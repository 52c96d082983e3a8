package dto

import (
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest records stock in for a batch. Quantity may be
// negative to record a supplier return, but never zero.
type CreatePurchaseRequest struct {
	Date          string          `json:"date" binding:"required"` // YYYY-MM-DD
	BatchID       string          `json:"batchID" binding:"required"`
	SupplierName  string          `json:"supplierName"`
	Quantity      int64           `json:"quantity" binding:"required"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	PaymentMethod string          `json:"paymentMethod"`
	Remarks       string          `json:"remarks"`
}

// PurchaseResponse is the API representation of a purchase row, joined with
// its product's name and category.
type PurchaseResponse struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	BatchID       string          `json:"batchID"`
	ProductName   string          `json:"productName"`
	Category      string          `json:"category"`
	SupplierName  string          `json:"supplierName,omitempty"`
	Quantity      int64           `json:"quantity"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToPurchaseResponse converts a joined purchase row to its API representation.
func ToPurchaseResponse(p domain.PurchaseWithProduct) PurchaseResponse {
	return PurchaseResponse{
		ID:            p.ID,
		Date:          p.Date.Format("2006-01-02"),
		BatchID:       p.BatchID,
		ProductName:   p.ProductName,
		Category:      p.Category,
		SupplierName:  p.SupplierName,
		Quantity:      p.Quantity,
		CostPerUnit:   p.CostPerUnit,
		TotalCost:     p.CostPerUnit.Mul(decimal.NewFromInt(p.Quantity)),
		PaymentMethod: p.PaymentMethod,
		Remarks:       p.Remarks,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPurchaseResponses converts a list of joined purchase rows.
func ToPurchaseResponses(purchases []domain.PurchaseWithProduct) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		responses[i] = ToPurchaseResponse(p)
	}
	return responses
}
