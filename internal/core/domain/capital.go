package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapitalType marks owner funds moving into or out of the business.
type CapitalType string

const (
	CapitalTypeIn         CapitalType = "Capital In"
	CapitalTypeWithdrawal CapitalType = "Withdrawal"
)

// CapitalEntry records an owner contribution or withdrawal, tracked
// separately from operating cash flow.
type CapitalEntry struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	Type        CapitalType     `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CapitalLedgerRow is a capital entry with the running balance after it,
// ordered date asc then id asc.
type CapitalLedgerRow struct {
	CapitalEntry
	Balance decimal.Decimal `json:"balance"`
}
