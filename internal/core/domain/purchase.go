package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records stock coming in for a batch. Quantity may be negative,
// which represents a return to the supplier; returns reduce purchased totals
// symmetrically to a positive purchase of the same magnitude.
type Purchase struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"date"`
	BatchID       string          `json:"batchID"`
	SupplierName  string          `json:"supplierName,omitempty"`
	Quantity      int64           `json:"quantity"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"` // cost at time of purchase, independent of the batch's standard cost
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PurchaseWithProduct is a purchase row joined with its batch's name and
// category for listing views.
type PurchaseWithProduct struct {
	Purchase
	ProductName string `json:"productName"`
	Category    string `json:"category"`
}
