package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	portsrepo "github.com/lookiva/lookiva_app/internal/core/ports/repositories"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService derives the financial report views. Every report is
// recomputed from the ledgers on each call; nothing is cached.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	purchaseRepo  portsrepo.PurchaseReader
	saleRepo      portsrepo.SaleReader
	cashFlowSvc   portssvc.CashFlowSvcFacade
	now           func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock used to resolve the current-month
// window for dashboard KPIs. Used by tests.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	purchaseRepo portsrepo.PurchaseReader,
	saleRepo portsrepo.SaleReader,
	cashFlowSvc portssvc.CashFlowSvcFacade,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: reportingRepo,
		purchaseRepo:  purchaseRepo,
		saleRepo:      saleRepo,
		cashFlowSvc:   cashFlowSvc,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// monthRange resolves the true calendar bounds of the month containing t.
// The end is the actual last day of the month, so sales on the 29th-31st of
// short months are never excluded.
func monthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}

// GetDashboardKPIs composes the current-month headline figures: catalogue
// size, total stock value at current cost, month revenue, month profit
// (revenue minus cost of goods minus expenses) and the cash position.
func (s *reportingService) GetDashboardKPIs(ctx context.Context) (*domain.DashboardKPIs, error) {
	totalProducts, err := s.reportingRepo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	quantities, err := s.reportingRepo.GetBatchQuantities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch quantities: %w", err)
	}
	stockValue := decimal.Zero
	for _, q := range quantities {
		closing := q.TotalPurchased - q.TotalSold
		stockValue = stockValue.Add(q.CostPerUnit.Mul(decimal.NewFromInt(closing)))
	}

	from, to := monthRange(s.now())
	revenue, err := s.reportingRepo.SumRevenueBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly revenue: %w", err)
	}
	costOfGoods, err := s.reportingRepo.SumCostOfGoodsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly cost of goods: %w", err)
	}
	expenses, err := s.reportingRepo.SumExpensesBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly expenses: %w", err)
	}

	_, cashSummary, err := s.cashFlowSvc.GetCashFlowLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to derive cash summary: %w", err)
	}

	kpis := &domain.DashboardKPIs{
		TotalProducts:   totalProducts,
		StockValue:      stockValue,
		MonthlyRevenue:  revenue,
		MonthlyProfit:   revenue.Sub(costOfGoods).Sub(expenses),
		CashInHand:      cashSummary.CashInHand,
		PendingReceipts: cashSummary.PendingReceipts,
		PendingPayments: cashSummary.PendingPayments,
	}

	s.LogInfo(ctx, "Dashboard KPIs computed",
		slog.String("month_start", from.Format("2006-01-02")),
		slog.String("month_end", to.Format("2006-01-02")))
	return kpis, nil
}

// GetMonthlyPnL merges monthly gross profit (from sales) with monthly
// expenses, keyed by YYYY-MM. A month present on either side appears in the
// report; the missing side counts as zero.
func (s *reportingService) GetMonthlyPnL(ctx context.Context) ([]domain.MonthlyPnLRow, error) {
	grossByMonth, err := s.reportingRepo.GetMonthlyGrossProfit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly gross profit: %w", err)
	}
	expensesByMonth, err := s.reportingRepo.GetMonthlyExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly expenses: %w", err)
	}

	merged := make(map[string]*domain.MonthlyPnLRow)
	for _, g := range grossByMonth {
		merged[g.Month] = &domain.MonthlyPnLRow{
			Month:       g.Month,
			GrossProfit: g.Amount,
			Expenses:    decimal.Zero,
		}
	}
	for _, e := range expensesByMonth {
		row, ok := merged[e.Month]
		if !ok {
			row = &domain.MonthlyPnLRow{
				Month:       e.Month,
				GrossProfit: decimal.Zero,
			}
			merged[e.Month] = row
		}
		row.Expenses = e.Amount
	}

	rows := make([]domain.MonthlyPnLRow, 0, len(merged))
	for _, row := range merged {
		row.NetProfit = row.GrossProfit.Sub(row.Expenses)
		rows = append(rows, *row)
	}
	// YYYY-MM keys sort chronologically as strings.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })

	return rows, nil
}

func (s *reportingService) GetMonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenueRow, error) {
	rows, err := s.reportingRepo.GetMonthlyRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly revenue: %w", err)
	}
	if rows == nil {
		return []domain.MonthlyRevenueRow{}, nil
	}
	return rows, nil
}

func (s *reportingService) GetCashSummary(ctx context.Context) (*domain.CashSummary, error) {
	_, summary, err := s.cashFlowSvc.GetCashFlowLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to derive cash summary: %w", err)
	}
	return &summary, nil
}

// GetLowStockAlerts flags batches whose closing stock sits between zero and
// the threshold inclusive, closing stock ascending. Batches already driven
// negative are excluded; they show up as out of stock instead.
func (s *reportingService) GetLowStockAlerts(ctx context.Context, threshold int64) ([]domain.LowStockAlert, error) {
	quantities, err := s.reportingRepo.GetBatchQuantities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch quantities: %w", err)
	}

	alerts := make([]domain.LowStockAlert, 0)
	for _, q := range quantities {
		closing := q.TotalPurchased - q.TotalSold
		if closing >= 0 && closing <= threshold {
			alerts = append(alerts, domain.LowStockAlert{
				BatchID:      q.BatchID,
				ProductName:  q.ProductName,
				ClosingStock: closing,
			})
		}
	}
	sort.SliceStable(alerts, func(i, j int) bool { return alerts[i].ClosingStock < alerts[j].ClosingStock })

	return alerts, nil
}

func (s *reportingService) GetTopSellingProducts(ctx context.Context, limit int) ([]domain.TopSellingProduct, error) {
	rows, err := s.reportingRepo.GetTopSellingProducts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top selling products: %w", err)
	}
	if rows == nil {
		return []domain.TopSellingProduct{}, nil
	}
	return rows, nil
}

func (s *reportingService) GetRecentSales(ctx context.Context, limit int) ([]domain.SaleWithProduct, error) {
	sales, err := s.saleRepo.ListRecentSales(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent sales: %w", err)
	}
	if sales == nil {
		return []domain.SaleWithProduct{}, nil
	}
	return sales, nil
}

func (s *reportingService) GetRecentPurchases(ctx context.Context, limit int) ([]domain.PurchaseWithProduct, error) {
	purchases, err := s.purchaseRepo.ListRecentPurchases(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent purchases: %w", err)
	}
	if purchases == nil {
		return []domain.PurchaseWithProduct{}, nil
	}
	return purchases, nil
}
