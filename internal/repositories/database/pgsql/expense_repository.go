package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
)

// PgxExpenseRepository persists expense ledger rows.
type PgxExpenseRepository struct {
	pool *pgxpool.Pool
}

func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{pool: pool}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense inserts an expense row and returns its generated id.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (int64, error) {
	query := `
		INSERT INTO expenses (date, expense_type, description, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		expense.Date,
		expense.ExpenseType,
		expense.Description,
		expense.Amount,
		expense.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save expense: %w", err)
	}
	return id, nil
}

// ListExpenses retrieves expense rows, date desc then id desc.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, from, to *time.Time) ([]domain.Expense, error) {
	query := `
		SELECT id, date, expense_type, description, amount, created_at
		FROM expenses
		WHERE ($1::date IS NULL OR date >= $1)
		  AND ($2::date IS NULL OR date <= $2)
		ORDER BY date DESC, id DESC;
	`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var e domain.Expense
		err := rows.Scan(&e.ID, &e.Date, &e.ExpenseType, &e.Description, &e.Amount, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading expense rows: %w", err)
	}
	return expenses, nil
}
