package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/lookiva/lookiva_app/internal/core/domain"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PurchaseReader / SaleReader ---
type MockPurchaseReader struct {
	mock.Mock
}

func (m *MockPurchaseReader) ListPurchases(ctx context.Context, from, to *time.Time) ([]domain.PurchaseWithProduct, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseWithProduct), args.Error(1)
}

func (m *MockPurchaseReader) ListRecentPurchases(ctx context.Context, limit int) ([]domain.PurchaseWithProduct, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseWithProduct), args.Error(1)
}

type MockSaleReader struct {
	mock.Mock
}

func (m *MockSaleReader) ListSales(ctx context.Context, from, to *time.Time, saleType *domain.SaleType) ([]domain.SaleWithProduct, error) {
	args := m.Called(ctx, from, to, saleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleWithProduct), args.Error(1)
}

func (m *MockSaleReader) ListRecentSales(ctx context.Context, limit int) ([]domain.SaleWithProduct, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleWithProduct), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockReportingRepository
	mockPurchases    *MockPurchaseReader
	mockSales        *MockSaleReader
	mockCashFlowRepo *MockCashFlowRepository
	service          portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.mockPurchases = new(MockPurchaseReader)
	suite.mockSales = new(MockSaleReader)
	suite.mockCashFlowRepo = new(MockCashFlowRepository)

	// Fixed clock: mid February 2025, a short month, to pin the KPI window.
	clock := func() time.Time { return time.Date(2025, time.February, 15, 12, 0, 0, 0, time.UTC) }
	suite.service = services.NewReportingService(
		suite.mockRepo,
		suite.mockPurchases,
		suite.mockSales,
		services.NewCashFlowService(suite.mockCashFlowRepo),
		services.WithReportingClock(clock),
	)
}

// --- GetMonthlyPnL ---

func (suite *ReportingServiceTestSuite) TestGetMonthlyPnL_MergesSalesAndExpenseMonths() {
	ctx := context.Background()

	suite.mockRepo.On("GetMonthlyGrossProfit", ctx).Return([]domain.MonthlyAmount{
		{Month: "2024-10", Amount: decimal.NewFromInt(500)},
		{Month: "2024-11", Amount: decimal.NewFromInt(300)},
	}, nil).Once()
	suite.mockRepo.On("GetMonthlyExpenses", ctx).Return([]domain.MonthlyAmount{
		{Month: "2024-11", Amount: decimal.NewFromInt(100)},
		{Month: "2024-12", Amount: decimal.NewFromInt(50)},
	}, nil).Once()

	rows, err := suite.service.GetMonthlyPnL(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	suite.Equal("2024-10", rows[0].Month)
	suite.True(rows[0].GrossProfit.Equal(decimal.NewFromInt(500)))
	suite.True(rows[0].Expenses.IsZero())
	suite.True(rows[0].NetProfit.Equal(decimal.NewFromInt(500)))

	suite.Equal("2024-11", rows[1].Month)
	suite.True(rows[1].NetProfit.Equal(decimal.NewFromInt(200)))

	// Expense-only month still appears, with negative net profit.
	suite.Equal("2024-12", rows[2].Month)
	suite.True(rows[2].GrossProfit.IsZero())
	suite.True(rows[2].NetProfit.Equal(decimal.NewFromInt(-50)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetMonthlyPnL_Idempotent() {
	ctx := context.Background()

	suite.mockRepo.On("GetMonthlyGrossProfit", ctx).Return([]domain.MonthlyAmount{
		{Month: "2024-11", Amount: decimal.NewFromInt(300)},
	}, nil).Twice()
	suite.mockRepo.On("GetMonthlyExpenses", ctx).Return([]domain.MonthlyAmount{
		{Month: "2024-11", Amount: decimal.NewFromInt(100)},
	}, nil).Twice()

	first, err := suite.service.GetMonthlyPnL(ctx)
	suite.Require().NoError(err)
	second, err := suite.service.GetMonthlyPnL(ctx)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GetDashboardKPIs ---

func (suite *ReportingServiceTestSuite) TestGetDashboardKPIs_ShortMonthWindowAndComposition() {
	ctx := context.Background()

	suite.mockRepo.On("CountProducts", ctx).Return(int64(12), nil).Once()
	// Stock value covers every batch, negative closings included.
	suite.mockRepo.On("GetBatchQuantities", ctx).Return([]domain.BatchQuantities{
		{BatchID: "A", CostPerUnit: decimal.NewFromInt(100), TotalPurchased: 5, TotalSold: 2}, // +300
		{BatchID: "B", CostPerUnit: decimal.NewFromInt(50), TotalPurchased: 2, TotalSold: 4},  // -100
	}, nil).Once()

	// February 2025 runs through the 28th; the window must not spill into
	// March or stop short.
	expectedFrom := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	expectedTo := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("SumRevenueBetween", ctx, expectedFrom, expectedTo).Return(decimal.NewFromInt(900), nil).Once()
	suite.mockRepo.On("SumCostOfGoodsBetween", ctx, expectedFrom, expectedTo).Return(decimal.NewFromInt(400), nil).Once()
	suite.mockRepo.On("SumExpensesBetween", ctx, expectedFrom, expectedTo).Return(decimal.NewFromInt(150), nil).Once()

	suite.mockCashFlowRepo.On("ListCashFlow", ctx).Return([]domain.CashFlowEntry{
		{ID: 1, Inflow: decimal.NewFromInt(1000), Outflow: decimal.Zero, Status: domain.CashFlowCompleted},
		{ID: 2, Inflow: decimal.NewFromInt(250), Outflow: decimal.Zero, PendingType: domain.PendingTypeReceipt, Status: domain.CashFlowPending},
	}, nil).Once()

	kpis, err := suite.service.GetDashboardKPIs(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(12), kpis.TotalProducts)
	suite.True(kpis.StockValue.Equal(decimal.NewFromInt(200)))
	suite.True(kpis.MonthlyRevenue.Equal(decimal.NewFromInt(900)))
	suite.True(kpis.MonthlyProfit.Equal(decimal.NewFromInt(350)))
	suite.True(kpis.CashInHand.Equal(decimal.NewFromInt(1000)))
	suite.True(kpis.PendingReceipts.Equal(decimal.NewFromInt(250)))
	suite.True(kpis.PendingPayments.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

// --- GetLowStockAlerts ---

func (suite *ReportingServiceTestSuite) TestGetLowStockAlerts_FiltersAndSorts() {
	ctx := context.Background()

	suite.mockRepo.On("GetBatchQuantities", ctx).Return([]domain.BatchQuantities{
		{BatchID: "A", ProductName: "Out", TotalPurchased: 4, TotalSold: 4},      // 0: alert
		{BatchID: "B", ProductName: "Low", TotalPurchased: 5, TotalSold: 4},      // 1: alert
		{BatchID: "C", ProductName: "Plenty", TotalPurchased: 10, TotalSold: 2},  // 8: no
		{BatchID: "D", ProductName: "Oversold", TotalPurchased: 2, TotalSold: 5}, // -3: excluded
	}, nil).Once()

	alerts, err := suite.service.GetLowStockAlerts(ctx, 1)

	suite.Require().NoError(err)
	suite.Require().Len(alerts, 2)
	suite.Equal("A", alerts[0].BatchID)
	suite.Equal(int64(0), alerts[0].ClosingStock)
	suite.Equal("B", alerts[1].BatchID)
	suite.Equal(int64(1), alerts[1].ClosingStock)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Pass-through views ---

func (suite *ReportingServiceTestSuite) TestGetCashSummary() {
	ctx := context.Background()

	suite.mockCashFlowRepo.On("ListCashFlow", ctx).Return([]domain.CashFlowEntry{
		{ID: 1, Inflow: decimal.NewFromInt(400), Outflow: decimal.Zero, Status: domain.CashFlowCompleted},
		{ID: 2, Inflow: decimal.Zero, Outflow: decimal.NewFromInt(120), PendingType: domain.PendingTypePayment, Status: domain.CashFlowPending},
	}, nil).Once()

	summary, err := suite.service.GetCashSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.CashInHand.Equal(decimal.NewFromInt(400)))
	suite.True(summary.PendingPayments.Equal(decimal.NewFromInt(120)))
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetRecentSalesAndPurchases() {
	ctx := context.Background()

	suite.mockSales.On("ListRecentSales", ctx, 5).Return([]domain.SaleWithProduct{
		{Sale: domain.Sale{ID: 9, BatchID: "SR0001NOV24"}},
	}, nil).Once()
	suite.mockPurchases.On("ListRecentPurchases", ctx, 5).Return([]domain.PurchaseWithProduct{
		{Purchase: domain.Purchase{ID: 3, BatchID: "SR0001NOV24"}},
	}, nil).Once()

	sales, err := suite.service.GetRecentSales(ctx, 5)
	suite.Require().NoError(err)
	suite.Require().Len(sales, 1)

	purchases, err := suite.service.GetRecentPurchases(ctx, 5)
	suite.Require().NoError(err)
	suite.Require().Len(purchases, 1)

	suite.mockSales.AssertExpectations(suite.T())
	suite.mockPurchases.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
