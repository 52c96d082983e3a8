package services

import (
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Product = NewProductService(repos.ProductRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo)
	container.Sale = NewSaleService(repos.SaleRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.CashFlow = NewCashFlowService(repos.CashFlowRepo)
	container.Capital = NewCapitalService(repos.CapitalRepo)
	container.Stock = NewStockService(repos.ReportingRepo)

	// Reporting composes the cash-flow service so the cash summary has a
	// single implementation.
	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		repos.PurchaseRepo,
		repos.SaleRepo,
		container.CashFlow,
	)

	return container
}
