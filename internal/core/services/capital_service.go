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
	"github.com/shopspring/decimal"
)

// capitalService records owner capital movements and derives the running
// capital ledger.
type capitalService struct {
	BaseService
	capitalRepo portsrepo.CapitalRepositoryFacade
}

// NewCapitalService creates a new capital service
func NewCapitalService(repo portsrepo.CapitalRepositoryFacade) portssvc.CapitalSvcFacade {
	return &capitalService{capitalRepo: repo}
}

var _ portssvc.CapitalSvcFacade = (*capitalService)(nil)

func (s *capitalService) CreateCapital(ctx context.Context, req dto.CreateCapitalRequest) (*domain.CapitalEntry, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	entry := domain.CapitalEntry{
		Date:        date,
		Description: req.Description,
		Type:        domain.CapitalType(req.Type),
		Amount:      req.Amount,
		CreatedAt:   time.Now(),
	}

	id, err := s.capitalRepo.SaveCapital(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save capital entry")
		return nil, fmt.Errorf("failed to record capital entry: %w", err)
	}
	entry.ID = id

	s.LogInfo(ctx, "Capital entry recorded",
		slog.Int64("capital_id", id),
		slog.String("type", req.Type))
	return &entry, nil
}

// GetCapitalLedger folds entries in date asc, id asc order: contributions
// add to the balance, withdrawals subtract. The final balance is
// order-independent; the running sequence is not.
func (s *capitalService) GetCapitalLedger(ctx context.Context) (*domain.CapitalLedger, error) {
	entries, err := s.capitalRepo.ListCapital(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list capital entries: %w", err)
	}

	ledger := &domain.CapitalLedger{
		Rows:    make([]domain.CapitalLedgerRow, len(entries)),
		Balance: decimal.Zero,
	}
	for i, e := range entries {
		if e.Type == domain.CapitalTypeIn {
			ledger.Balance = ledger.Balance.Add(e.Amount)
		} else {
			ledger.Balance = ledger.Balance.Sub(e.Amount)
		}
		ledger.Rows[i] = domain.CapitalLedgerRow{
			CapitalEntry: e,
			Balance:      ledger.Balance,
		}
	}

	return ledger, nil
}
