package dto

import (
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCashFlowRequest records a cash movement. Exactly one of inflow and
// outflow must be positive.
type CreateCashFlowRequest struct {
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Description string          `json:"description"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	PendingType string          `json:"pendingType" binding:"omitempty,oneof=Receipt Payment"`
	Status      string          `json:"status" binding:"omitempty,oneof=Completed Pending"`
}

// UpdateCashFlowStatusRequest transitions an entry's status, typically
// Pending to Completed.
type UpdateCashFlowStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Completed Pending"`
}

// CashFlowLedgerRowResponse is one row of the cash-flow ledger with its
// running balance.
type CashFlowLedgerRowResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	Net         decimal.Decimal `json:"net"`
	Balance     decimal.Decimal `json:"balance"`
	PendingType string          `json:"pendingType"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CashFlowLedgerResponse is the full cash-flow ledger plus the derived cash
// summary.
type CashFlowLedgerResponse struct {
	Rows    []CashFlowLedgerRowResponse `json:"rows"`
	Summary CashSummaryResponse         `json:"summary"`
}

// CashSummaryResponse is the derived cash position.
type CashSummaryResponse struct {
	CashInHand      decimal.Decimal `json:"cashInHand"`
	PendingReceipts decimal.Decimal `json:"pendingReceipts"`
	PendingPayments decimal.Decimal `json:"pendingPayments"`
}

// ToCashFlowLedgerResponse converts ledger rows and a cash summary to the
// API representation.
func ToCashFlowLedgerResponse(rows []domain.CashFlowLedgerRow, summary domain.CashSummary) CashFlowLedgerResponse {
	response := CashFlowLedgerResponse{
		Rows:    make([]CashFlowLedgerRowResponse, len(rows)),
		Summary: ToCashSummaryResponse(summary),
	}
	for i, r := range rows {
		response.Rows[i] = CashFlowLedgerRowResponse{
			ID:          r.ID,
			Date:        r.Date.Format("2006-01-02"),
			Description: r.Description,
			Inflow:      r.Inflow,
			Outflow:     r.Outflow,
			Net:         r.Net,
			Balance:     r.Balance,
			PendingType: string(r.PendingType),
			Status:      string(r.Status),
			CreatedAt:   r.CreatedAt,
		}
	}
	return response
}

// ToCashSummaryResponse converts a domain cash summary.
func ToCashSummaryResponse(s domain.CashSummary) CashSummaryResponse {
	return CashSummaryResponse{
		CashInHand:      s.CashInHand,
		PendingReceipts: s.PendingReceipts,
		PendingPayments: s.PendingPayments,
	}
}
