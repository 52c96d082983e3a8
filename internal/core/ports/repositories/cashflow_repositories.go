package repositories

import (
	"context"

	"github.com/lookiva/lookiva_app/internal/core/domain"
)

// CashFlowReader defines read operations for the cash-flow ledger
type CashFlowReader interface {
	// ListCashFlow retrieves all cash-flow entries, date asc then id asc,
	// the order the running-balance fold depends on.
	ListCashFlow(ctx context.Context) ([]domain.CashFlowEntry, error)
}

// CashFlowWriter defines write operations for the cash-flow ledger
type CashFlowWriter interface {
	// SaveCashFlow inserts a cash-flow entry and returns its generated id.
	SaveCashFlow(ctx context.Context, entry domain.CashFlowEntry) (int64, error)

	// UpdateCashFlowStatus atomically updates the status of a single entry.
	// Fails with apperrors.ErrNotFound when the id does not exist.
	UpdateCashFlowStatus(ctx context.Context, id int64, status domain.CashFlowStatus) error
}

// CashFlowRepositoryFacade combines all cash-flow repository interfaces
type CashFlowRepositoryFacade interface {
	CashFlowReader
	CashFlowWriter
}
