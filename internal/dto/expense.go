package dto

import (
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest records an operating expense.
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	ExpenseType string          `json:"expenseType" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ExpenseResponse is the API representation of an expense row.
type ExpenseResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	ExpenseType string          `json:"expenseType"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain expense to its API representation.
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		ExpenseType: e.ExpenseType,
		Description: e.Description,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a list of domain expenses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return responses
}
