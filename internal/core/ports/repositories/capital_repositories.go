package repositories

import (
	"context"

	"github.com/lookiva/lookiva_app/internal/core/domain"
)

// CapitalReader defines read operations for the capital ledger
type CapitalReader interface {
	// ListCapital retrieves all capital entries, date asc then id asc, the
	// order the running-balance fold depends on.
	ListCapital(ctx context.Context) ([]domain.CapitalEntry, error)
}

// CapitalWriter defines write operations for the capital ledger
type CapitalWriter interface {
	// SaveCapital inserts a capital entry and returns its generated id.
	SaveCapital(ctx context.Context, entry domain.CapitalEntry) (int64, error)
}

// CapitalRepositoryFacade combines all capital repository interfaces
type CapitalRepositoryFacade interface {
	CapitalReader
	CapitalWriter
}
