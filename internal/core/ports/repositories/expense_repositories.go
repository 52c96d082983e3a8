package repositories

import (
	"context"
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
)

// ExpenseReader defines read operations for the expense ledger
type ExpenseReader interface {
	// ListExpenses retrieves expense rows, date desc then id desc. A nil
	// from/to leaves the range open.
	ListExpenses(ctx context.Context, from, to *time.Time) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for the expense ledger
type ExpenseWriter interface {
	// SaveExpense inserts an expense row and returns its generated id.
	SaveExpense(ctx context.Context, expense domain.Expense) (int64, error)
}

// ExpenseRepositoryFacade combines all expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
