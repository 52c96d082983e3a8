package dto

import (
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest creates a new product batch. BatchID may be left
// empty, in which case the next advisory identifier for the category prefix
// is generated server-side. BaseProductID defaults to the first six
// characters of the batch identifier.
type CreateProductRequest struct {
	BatchID           string          `json:"batchID"`
	BaseProductID     string          `json:"baseProductID"`
	Category          string          `json:"category" binding:"required"`
	ProductName       string          `json:"productName" binding:"required"`
	Fabric            string          `json:"fabric"`
	Color             string          `json:"color"`
	Pattern           string          `json:"pattern"`
	Size              string          `json:"size"`
	Source            string          `json:"source"`
	CostPerUnit       decimal.Decimal `json:"costPerUnit"`
	FirstPurchaseDate *string         `json:"firstPurchaseDate"` // YYYY-MM-DD
	ImagePath         string          `json:"imagePath"`
	Remarks           string          `json:"remarks"`
}

// UpdateProductRequest updates the mutable fields of a batch; nil fields are
// left unchanged.
type UpdateProductRequest struct {
	ProductName *string          `json:"productName"`
	Category    *string          `json:"category"`
	Fabric      *string          `json:"fabric"`
	Color       *string          `json:"color"`
	Pattern     *string          `json:"pattern"`
	Size        *string          `json:"size"`
	Source      *string          `json:"source"`
	CostPerUnit *decimal.Decimal `json:"costPerUnit"`
	ImagePath   *string          `json:"imagePath"`
	Remarks     *string          `json:"remarks"`
}

// ProductResponse is the API representation of a product batch.
type ProductResponse struct {
	BatchID           string          `json:"batchID"`
	BaseProductID     string          `json:"baseProductID"`
	Category          string          `json:"category"`
	ProductName       string          `json:"productName"`
	Fabric            string          `json:"fabric,omitempty"`
	Color             string          `json:"color,omitempty"`
	Pattern           string          `json:"pattern,omitempty"`
	Size              string          `json:"size,omitempty"`
	Source            string          `json:"source,omitempty"`
	CostPerUnit       decimal.Decimal `json:"costPerUnit"`
	FirstPurchaseDate string          `json:"firstPurchaseDate,omitempty"`
	ImagePath         string          `json:"imagePath,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// BatchIDSuggestionResponse carries the advisory next batch identifier for a
// category prefix.
type BatchIDSuggestionResponse struct {
	BatchID string `json:"batchID"`
}

// ToProductResponse converts a domain batch to its API representation.
func ToProductResponse(p domain.ProductBatch) ProductResponse {
	resp := ProductResponse{
		BatchID:       p.BatchID,
		BaseProductID: p.BaseProductID,
		Category:      p.Category,
		ProductName:   p.ProductName,
		Fabric:        p.Fabric,
		Color:         p.Color,
		Pattern:       p.Pattern,
		Size:          p.Size,
		Source:        p.Source,
		CostPerUnit:   p.CostPerUnit,
		ImagePath:     p.ImagePath,
		Remarks:       p.Remarks,
		CreatedAt:     p.CreatedAt,
	}
	if p.FirstPurchaseDate != nil {
		resp.FirstPurchaseDate = p.FirstPurchaseDate.Format("2006-01-02")
	}
	return resp
}

// ToProductResponses converts a list of domain batches.
func ToProductResponses(products []domain.ProductBatch) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return responses
}
