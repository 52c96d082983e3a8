package dto

import (
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCapitalRequest records owner capital moving in or out.
type CreateCapitalRequest struct {
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Description string          `json:"description"`
	Type        string          `json:"type" binding:"required,oneof='Capital In' Withdrawal"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CapitalLedgerRowResponse is one capital entry with its running balance.
type CapitalLedgerRowResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CapitalLedgerResponse is the full capital ledger and its final balance.
type CapitalLedgerResponse struct {
	Rows    []CapitalLedgerRowResponse `json:"rows"`
	Balance decimal.Decimal            `json:"balance"`
}

// ToCapitalLedgerResponse converts a domain capital ledger.
func ToCapitalLedgerResponse(ledger domain.CapitalLedger) CapitalLedgerResponse {
	response := CapitalLedgerResponse{
		Rows:    make([]CapitalLedgerRowResponse, len(ledger.Rows)),
		Balance: ledger.Balance,
	}
	for i, r := range ledger.Rows {
		response.Rows[i] = CapitalLedgerRowResponse{
			ID:          r.ID,
			Date:        r.Date.Format("2006-01-02"),
			Description: r.Description,
			Type:        string(r.Type),
			Amount:      r.Amount,
			Balance:     r.Balance,
			CreatedAt:   r.CreatedAt,
		}
	}
	return response
}
