package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
)

// PgxCapitalRepository persists capital ledger rows.
type PgxCapitalRepository struct {
	pool *pgxpool.Pool
}

func newPgxCapitalRepository(pool *pgxpool.Pool) *PgxCapitalRepository {
	return &PgxCapitalRepository{pool: pool}
}

var _ portsrepo.CapitalRepositoryFacade = (*PgxCapitalRepository)(nil)

// SaveCapital inserts a capital entry and returns its generated id.
func (r *PgxCapitalRepository) SaveCapital(ctx context.Context, entry domain.CapitalEntry) (int64, error) {
	query := `
		INSERT INTO capital (date, description, type, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		entry.Date,
		entry.Description,
		entry.Type,
		entry.Amount,
		entry.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save capital entry: %w", err)
	}
	return id, nil
}

// ListCapital retrieves all capital entries, date asc then id asc.
func (r *PgxCapitalRepository) ListCapital(ctx context.Context) ([]domain.CapitalEntry, error) {
	query := `
		SELECT id, date, description, type, amount, created_at
		FROM capital
		ORDER BY date ASC, id ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list capital entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.CapitalEntry
	for rows.Next() {
		var e domain.CapitalEntry
		err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.Type, &e.Amount, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan capital row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading capital rows: %w", err)
	}
	return entries, nil
}
