package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating expense entry. ExpenseType is a free-form category.
type Expense struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	ExpenseType string          `json:"expenseType"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}
