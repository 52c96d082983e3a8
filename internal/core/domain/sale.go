package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleType distinguishes direct customer sales from sales through a retailer.
type SaleType string

const (
	SaleTypeDirect   SaleType = "Direct"
	SaleTypeIndirect SaleType = "Indirect"
)

// Sale records stock going out of a batch. SellingPriceRetailer is the amount
// the business actually receives; for Direct sales it equals the customer
// price, for Indirect sales it may be lower. Margins are always computed on
// the retailer price.
type Sale struct {
	ID                   int64           `json:"id"`
	Date                 time.Time       `json:"date"`
	BatchID              string          `json:"batchID"`
	Quantity             int64           `json:"quantity"`
	SellingPriceCustomer decimal.Decimal `json:"sellingPriceCustomer"`
	SellingPriceRetailer decimal.Decimal `json:"sellingPriceRetailer"`
	SaleType             SaleType        `json:"saleType"`
	Remarks              string          `json:"remarks,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// SaleWithProduct is a sale row joined with its batch's name, category and
// current standard cost for listing views.
type SaleWithProduct struct {
	Sale
	ProductName string          `json:"productName"`
	Category    string          `json:"category"`
	ProductCost decimal.Decimal `json:"productCost"`
}
