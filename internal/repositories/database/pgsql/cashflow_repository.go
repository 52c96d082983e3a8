package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lookiva/lookiva_app/internal/apperrors"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
)

// PgxCashFlowRepository persists cash-flow ledger rows.
type PgxCashFlowRepository struct {
	pool *pgxpool.Pool
}

func newPgxCashFlowRepository(pool *pgxpool.Pool) *PgxCashFlowRepository {
	return &PgxCashFlowRepository{pool: pool}
}

var _ portsrepo.CashFlowRepositoryFacade = (*PgxCashFlowRepository)(nil)

// SaveCashFlow inserts a cash-flow entry and returns its generated id.
func (r *PgxCashFlowRepository) SaveCashFlow(ctx context.Context, entry domain.CashFlowEntry) (int64, error) {
	query := `
		INSERT INTO cash_flow (date, description, inflow, outflow, pending_type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		entry.Date,
		entry.Description,
		entry.Inflow,
		entry.Outflow,
		entry.PendingType,
		entry.Status,
		entry.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save cash-flow entry: %w", err)
	}
	return id, nil
}

// ListCashFlow retrieves all cash-flow entries, date asc then id asc.
func (r *PgxCashFlowRepository) ListCashFlow(ctx context.Context) ([]domain.CashFlowEntry, error) {
	query := `
		SELECT id, date, description, inflow, outflow, pending_type, status, created_at
		FROM cash_flow
		ORDER BY date ASC, id ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash-flow entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.CashFlowEntry
	for rows.Next() {
		var e domain.CashFlowEntry
		err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.Inflow, &e.Outflow, &e.PendingType, &e.Status, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash-flow row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading cash-flow rows: %w", err)
	}
	return entries, nil
}

// UpdateCashFlowStatus updates the status of a single entry.
func (r *PgxCashFlowRepository) UpdateCashFlowStatus(ctx context.Context, id int64, status domain.CashFlowStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE cash_flow SET status = $1 WHERE id = $2;`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status of cash-flow entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
