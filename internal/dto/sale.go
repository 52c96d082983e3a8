package dto

import (
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest records stock out of a batch. For Direct sales the
// retailer price may be omitted; it then defaults to the customer price.
type CreateSaleRequest struct {
	Date                 string           `json:"date" binding:"required"` // YYYY-MM-DD
	BatchID              string           `json:"batchID" binding:"required"`
	Quantity             int64            `json:"quantity" binding:"required,gt=0"`
	SellingPriceCustomer decimal.Decimal  `json:"sellingPriceCustomer"`
	SellingPriceRetailer *decimal.Decimal `json:"sellingPriceRetailer"`
	SaleType             string           `json:"saleType" binding:"required,oneof=Direct Indirect"`
	Remarks              string           `json:"remarks"`
}

// SaleResponse is the API representation of a sale row, joined with its
// product's name, category and current standard cost.
type SaleResponse struct {
	ID                   int64           `json:"id"`
	Date                 string          `json:"date"`
	BatchID              string          `json:"batchID"`
	ProductName          string          `json:"productName"`
	Category             string          `json:"category"`
	Quantity             int64           `json:"quantity"`
	SellingPriceCustomer decimal.Decimal `json:"sellingPriceCustomer"`
	SellingPriceRetailer decimal.Decimal `json:"sellingPriceRetailer"`
	SaleType             string          `json:"saleType"`
	Revenue              decimal.Decimal `json:"revenue"`
	ProductCost          decimal.Decimal `json:"productCost"`
	Remarks              string          `json:"remarks,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// ToSaleResponse converts a joined sale row to its API representation.
func ToSaleResponse(s domain.SaleWithProduct) SaleResponse {
	return SaleResponse{
		ID:                   s.ID,
		Date:                 s.Date.Format("2006-01-02"),
		BatchID:              s.BatchID,
		ProductName:          s.ProductName,
		Category:             s.Category,
		Quantity:             s.Quantity,
		SellingPriceCustomer: s.SellingPriceCustomer,
		SellingPriceRetailer: s.SellingPriceRetailer,
		SaleType:             string(s.SaleType),
		Revenue:              s.SellingPriceRetailer.Mul(decimal.NewFromInt(s.Quantity)),
		ProductCost:          s.ProductCost,
		Remarks:              s.Remarks,
		CreatedAt:            s.CreatedAt,
	}
}

// ToSaleResponses converts a list of joined sale rows.
func ToSaleResponses(sales []domain.SaleWithProduct) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, s := range sales {
		responses[i] = ToSaleResponse(s)
	}
	return responses
}
