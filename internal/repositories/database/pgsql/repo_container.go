package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx-backed repositories into the provider
// the service container consumes.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:   newPgxProductRepository(pool),
		PurchaseRepo:  newPgxPurchaseRepository(pool),
		SaleRepo:      newPgxSaleRepository(pool),
		ExpenseRepo:   newPgxExpenseRepository(pool),
		CashFlowRepo:  newPgxCashFlowRepository(pool),
		CapitalRepo:   newPgxCapitalRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}
