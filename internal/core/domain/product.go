package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductBatch is a distinct purchasable lot of a product. The batch is the
// unit of stock tracking; BatchID is the primary key and is referenced by
// every purchase and sale row.
type ProductBatch struct {
	BatchID           string          `json:"batchID"`
	BaseProductID     string          `json:"baseProductID"` // groups batch variants of the same product
	Category          string          `json:"category"`
	ProductName       string          `json:"productName"`
	Fabric            string          `json:"fabric,omitempty"`
	Color             string          `json:"color,omitempty"`
	Pattern           string          `json:"pattern,omitempty"`
	Size              string          `json:"size,omitempty"`
	Source            string          `json:"source,omitempty"`
	CostPerUnit       decimal.Decimal `json:"costPerUnit"` // current standard unit cost
	FirstPurchaseDate *time.Time      `json:"firstPurchaseDate,omitempty"`
	ImagePath         string          `json:"imagePath,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ProductUpdate carries the mutable fields of a batch. Nil pointers mean
// "leave unchanged".
type ProductUpdate struct {
	ProductName *string
	Category    *string
	Fabric      *string
	Color       *string
	Pattern     *string
	Size        *string
	Source      *string
	CostPerUnit *decimal.Decimal
	ImagePath   *string
	Remarks     *string
}
