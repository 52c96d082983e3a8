package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/lookiva/lookiva_app/internal/apperrors"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetBatchQuantities(ctx context.Context) ([]domain.BatchQuantities, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchQuantities), args.Error(1)
}

func (m *MockReportingRepository) GetBatchQuantitiesByID(ctx context.Context, batchID string) (*domain.BatchQuantities, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchQuantities), args.Error(1)
}

func (m *MockReportingRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyGrossProfit(ctx context.Context) ([]domain.MonthlyAmount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyAmount), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyExpenses(ctx context.Context) ([]domain.MonthlyAmount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyAmount), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenueRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyRevenueRow), args.Error(1)
}

func (m *MockReportingRepository) GetTopSellingProducts(ctx context.Context, limit int) ([]domain.TopSellingProduct, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopSellingProduct), args.Error(1)
}

func (m *MockReportingRepository) SumRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumCostOfGoodsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type StockServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.StockSvcFacade
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewStockService(suite.mockRepo)
}

func (suite *StockServiceTestSuite) TestGetStockTable_DerivesClosingValueAndStatus() {
	ctx := context.Background()

	suite.mockRepo.On("GetBatchQuantities", ctx).Return([]domain.BatchQuantities{
		{BatchID: "SR0001NOV24", ProductName: "Silk Saree", CostPerUnit: decimal.NewFromInt(450), TotalPurchased: 10, TotalSold: 4},
		{BatchID: "SR0002NOV24", ProductName: "Cotton Saree", CostPerUnit: decimal.NewFromInt(300), TotalPurchased: 5, TotalSold: 3},
		{BatchID: "SR0003NOV24", ProductName: "Kota Saree", CostPerUnit: decimal.NewFromInt(250), TotalPurchased: 4, TotalSold: 4},
	}, nil).Once()

	rows, err := suite.service.GetStockTable(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	suite.Equal(int64(6), rows[0].ClosingStock)
	suite.True(rows[0].StockValue.Equal(decimal.NewFromInt(2700)))
	suite.Equal(domain.StockStatusAvailable, rows[0].Status)

	suite.Equal(int64(2), rows[1].ClosingStock)
	suite.Equal(domain.StockStatusLow, rows[1].Status)

	suite.Equal(int64(0), rows[2].ClosingStock)
	suite.Equal(domain.StockStatusOut, rows[2].Status)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestGetStock_NegativeClosingNotClamped() {
	ctx := context.Background()

	// Oversold batch: the data layer keeps the negative balance visible
	// instead of flooring it.
	suite.mockRepo.On("GetBatchQuantitiesByID", ctx, "SR0004NOV24").Return(&domain.BatchQuantities{
		BatchID:        "SR0004NOV24",
		ProductName:    "Oversold Saree",
		CostPerUnit:    decimal.NewFromInt(100),
		TotalPurchased: 3,
		TotalSold:      5,
	}, nil).Once()

	row, err := suite.service.GetStock(ctx, "SR0004NOV24")

	suite.Require().NoError(err)
	suite.Equal(int64(-2), row.ClosingStock)
	suite.True(row.StockValue.Equal(decimal.NewFromInt(-200)))
	suite.Equal(domain.StockStatusOut, row.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestGetStock_UnknownBatch() {
	ctx := context.Background()

	suite.mockRepo.On("GetBatchQuantitiesByID", ctx, "NOPE").Return(nil, apperrors.ErrNotFound).Once()

	row, err := suite.service.GetStock(ctx, "NOPE")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(row)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestGetInStockProducts_FiltersNonPositive() {
	ctx := context.Background()

	suite.mockRepo.On("GetBatchQuantities", ctx).Return([]domain.BatchQuantities{
		{BatchID: "A", TotalPurchased: 10, TotalSold: 4},
		{BatchID: "B", TotalPurchased: 5, TotalSold: 5},
		{BatchID: "C", TotalPurchased: 2, TotalSold: 3},
	}, nil).Once()

	rows, err := suite.service.GetInStockProducts(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("A", rows[0].BatchID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestGetAvailableStock() {
	ctx := context.Background()

	suite.mockRepo.On("GetBatchQuantitiesByID", ctx, "SR0001NOV24").Return(&domain.BatchQuantities{
		BatchID:        "SR0001NOV24",
		TotalPurchased: 10,
		TotalSold:      4,
	}, nil).Once()

	available, err := suite.service.GetAvailableStock(ctx, "SR0001NOV24")

	suite.Require().NoError(err)
	suite.Equal(int64(6), available)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
