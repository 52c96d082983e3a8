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

// cashFlowService records cash movements and derives the running ledger and
// cash summary from them.
type cashFlowService struct {
	BaseService
	cashFlowRepo portsrepo.CashFlowRepositoryFacade
}

// NewCashFlowService creates a new cash-flow service
func NewCashFlowService(repo portsrepo.CashFlowRepositoryFacade) portssvc.CashFlowSvcFacade {
	return &cashFlowService{cashFlowRepo: repo}
}

var _ portssvc.CashFlowSvcFacade = (*cashFlowService)(nil)

func (s *cashFlowService) CreateCashFlow(ctx context.Context, req dto.CreateCashFlowRequest) (*domain.CashFlowEntry, error) {
	if req.Inflow.IsNegative() || req.Outflow.IsNegative() {
		return nil, fmt.Errorf("%w: inflow and outflow must not be negative", apperrors.ErrValidation)
	}
	// An entry is either money in or money out, never both.
	if req.Inflow.IsPositive() && req.Outflow.IsPositive() {
		return nil, fmt.Errorf("%w: an entry carries either an inflow or an outflow, not both", apperrors.ErrValidation)
	}
	if req.Inflow.IsZero() && req.Outflow.IsZero() {
		return nil, fmt.Errorf("%w: one of inflow or outflow must be positive", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	pendingType := domain.PendingType(req.PendingType)
	if pendingType == "" {
		pendingType = domain.PendingTypeReceipt
	}
	status := domain.CashFlowStatus(req.Status)
	if status == "" {
		status = domain.CashFlowCompleted
	}

	entry := domain.CashFlowEntry{
		Date:        date,
		Description: req.Description,
		Inflow:      req.Inflow,
		Outflow:     req.Outflow,
		PendingType: pendingType,
		Status:      status,
		CreatedAt:   time.Now(),
	}

	id, err := s.cashFlowRepo.SaveCashFlow(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save cash-flow entry")
		return nil, fmt.Errorf("failed to record cash-flow entry: %w", err)
	}
	entry.ID = id

	s.LogInfo(ctx, "Cash-flow entry recorded",
		slog.Int64("cash_flow_id", id),
		slog.String("status", string(status)))
	return &entry, nil
}

// GetCashFlowLedger folds all entries in date asc, id asc order into the
// running-balance ledger, and derives the cash summary in the same pass.
// The running balance includes pending entries; cash in hand does not.
func (s *cashFlowService) GetCashFlowLedger(ctx context.Context) ([]domain.CashFlowLedgerRow, domain.CashSummary, error) {
	entries, err := s.cashFlowRepo.ListCashFlow(ctx)
	if err != nil {
		return nil, domain.CashSummary{}, fmt.Errorf("failed to list cash-flow entries: %w", err)
	}

	rows := make([]domain.CashFlowLedgerRow, len(entries))
	summary := domain.CashSummary{
		CashInHand:      decimal.Zero,
		PendingReceipts: decimal.Zero,
		PendingPayments: decimal.Zero,
	}
	balance := decimal.Zero

	for i, e := range entries {
		net := e.Inflow.Sub(e.Outflow)
		balance = balance.Add(net)
		rows[i] = domain.CashFlowLedgerRow{
			CashFlowEntry: e,
			Net:           net,
			Balance:       balance,
		}

		switch e.Status {
		case domain.CashFlowCompleted:
			summary.CashInHand = summary.CashInHand.Add(net)
		case domain.CashFlowPending:
			if e.Inflow.IsPositive() {
				summary.PendingReceipts = summary.PendingReceipts.Add(e.Inflow)
			}
			if e.Outflow.IsPositive() {
				summary.PendingPayments = summary.PendingPayments.Add(e.Outflow)
			}
		}
	}

	return rows, summary, nil
}

func (s *cashFlowService) UpdateStatus(ctx context.Context, id int64, status domain.CashFlowStatus) error {
	if status != domain.CashFlowCompleted && status != domain.CashFlowPending {
		return fmt.Errorf("%w: status must be Completed or Pending", apperrors.ErrValidation)
	}

	if err := s.cashFlowRepo.UpdateCashFlowStatus(ctx, id, status); err != nil {
		s.LogError(ctx, err, "Failed to update cash-flow status", slog.Int64("cash_flow_id", id))
		return fmt.Errorf("failed to update cash-flow entry %d: %w", id, err)
	}

	s.LogInfo(ctx, "Cash-flow status updated",
		slog.Int64("cash_flow_id", id),
		slog.String("status", string(status)))
	return nil
}
