package services

import (
	"context"
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	"github.com/lookiva/lookiva_app/internal/dto"
)

// PurchaseSvcFacade defines operations on the purchase ledger.
type PurchaseSvcFacade interface {
	// CreatePurchase validates and records a purchase (or a return, when
	// the quantity is negative).
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)

	// ListPurchases retrieves purchases, optionally bounded by a date range.
	ListPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithProduct, error)
}

// SaleSvcFacade defines operations on the sales ledger.
type SaleSvcFacade interface {
	// CreateSale validates and records a sale. The data layer permits a sale
	// that drives closing stock negative; callers are expected to cap the
	// quantity at available stock.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)

	// ListSales retrieves sales, optionally bounded by a date range and
	// filtered by sale type.
	ListSales(ctx context.Context, from, to *time.Time, saleType *domain.SaleType) ([]domain.SaleWithProduct, error)
}

// ExpenseSvcFacade defines operations on the expense ledger.
type ExpenseSvcFacade interface {
	// CreateExpense validates and records an expense.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// ListExpenses retrieves expenses, optionally bounded by a date range.
	ListExpenses(ctx context.Context, from, to *time.Time) ([]domain.Expense, error)
}

// CashFlowSvcFacade defines operations on the cash-flow ledger.
type CashFlowSvcFacade interface {
	// CreateCashFlow validates and records a cash movement. An entry must
	// carry either an inflow or an outflow, not both.
	CreateCashFlow(ctx context.Context, req dto.CreateCashFlowRequest) (*domain.CashFlowEntry, error)

	// GetCashFlowLedger retrieves all entries with running balances, plus
	// the derived cash summary.
	GetCashFlowLedger(ctx context.Context) ([]domain.CashFlowLedgerRow, domain.CashSummary, error)

	// UpdateStatus transitions the status of one entry.
	UpdateStatus(ctx context.Context, id int64, status domain.CashFlowStatus) error
}

// CapitalSvcFacade defines operations on the capital ledger.
type CapitalSvcFacade interface {
	// CreateCapital validates and records a capital movement.
	CreateCapital(ctx context.Context, req dto.CreateCapitalRequest) (*domain.CapitalEntry, error)

	// GetCapitalLedger retrieves all entries with running balances and the
	// final balance.
	GetCapitalLedger(ctx context.Context) (*domain.CapitalLedger, error)
}
