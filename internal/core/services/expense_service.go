package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lookiva/lookiva_app/internal/apperrors"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/dto"
)

// expenseService records operating expenses.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	expense := domain.Expense{
		Date:        date,
		ExpenseType: req.ExpenseType,
		Description: req.Description,
		Amount:      req.Amount,
		CreatedAt:   time.Now(),
	}

	id, err := s.expenseRepo.SaveExpense(ctx, expense)
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_type", req.ExpenseType))
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}
	expense.ID = id

	s.LogInfo(ctx, "Expense recorded",
		slog.Int64("expense_id", id),
		slog.String("expense_type", req.ExpenseType))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, from, to *time.Time) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}
