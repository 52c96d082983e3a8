package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingType classifies what a pending cash-flow entry will become once it
// completes: money coming in (Receipt) or going out (Payment).
type PendingType string

const (
	PendingTypeReceipt PendingType = "Receipt"
	PendingTypePayment PendingType = "Payment"
)

// CashFlowStatus tracks whether an entry has actually hit the cash box.
// Status is the one mutable field on a cash-flow entry.
type CashFlowStatus string

const (
	CashFlowCompleted CashFlowStatus = "Completed"
	CashFlowPending   CashFlowStatus = "Pending"
)

// CashFlowEntry records a single cash movement. An entry carries either an
// inflow or an outflow, never both.
type CashFlowEntry struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	PendingType PendingType     `json:"pendingType"`
	Status      CashFlowStatus  `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CashFlowLedgerRow is a cash-flow entry with its net movement and the
// running balance after it, ordered date asc then id asc. The running
// balance includes pending entries; CashSummary.CashInHand does not.
type CashFlowLedgerRow struct {
	CashFlowEntry
	Net     decimal.Decimal `json:"net"`
	Balance decimal.Decimal `json:"balance"`
}
