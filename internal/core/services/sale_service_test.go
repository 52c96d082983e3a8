package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/lookiva/lookiva_app/internal/apperrors"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/core/services"
	"github.com/lookiva/lookiva_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	MockSaleReader
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) (int64, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSaleRepository
	service  portssvc.SaleSvcFacade
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSaleRepository)
	suite.service = services.NewSaleService(suite.mockRepo)
}

func (suite *SaleServiceTestSuite) TestCreateSale_RetailerPriceDefaultsToCustomerPrice() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Date:                 "2024-11-10",
		BatchID:              "SR0001NOV24",
		Quantity:             2,
		SellingPriceCustomer: decimal.NewFromInt(700),
		SaleType:             "Direct",
	}

	suite.mockRepo.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.SellingPriceRetailer.Equal(decimal.NewFromInt(700)) && s.SaleType == domain.SaleTypeDirect
	})).Return(int64(11), nil).Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(11), sale.ID)
	suite.True(sale.SellingPriceRetailer.Equal(decimal.NewFromInt(700)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_ExplicitRetailerPriceKept() {
	ctx := context.Background()
	retailer := decimal.NewFromInt(550)
	req := dto.CreateSaleRequest{
		Date:                 "2024-11-10",
		BatchID:              "SR0001NOV24",
		Quantity:             1,
		SellingPriceCustomer: decimal.NewFromInt(700),
		SellingPriceRetailer: &retailer,
		SaleType:             "Indirect",
	}

	suite.mockRepo.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.SellingPriceRetailer.Equal(retailer) && s.SaleType == domain.SaleTypeIndirect
	})).Return(int64(12), nil).Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err)
	suite.True(sale.SellingPriceRetailer.Equal(retailer))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_NonPositiveQuantityRejected() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Date:     "2024-11-10",
		BatchID:  "SR0001NOV24",
		Quantity: 0,
		SaleType: "Direct",
	}

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(sale)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_MissingBatchPropagates() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Date:                 "2024-11-10",
		BatchID:              "NOPE",
		Quantity:             1,
		SellingPriceCustomer: decimal.NewFromInt(100),
		SaleType:             "Direct",
	}

	suite.mockRepo.On("SaveSale", ctx, mock.Anything).Return(int64(0), apperrors.ErrRefIntegrity).Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRefIntegrity)
	suite.Nil(sale)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestListSales_TypeFilterPassthrough() {
	ctx := context.Background()
	direct := domain.SaleTypeDirect
	from := day(2024, time.November, 1)
	to := day(2024, time.November, 30)

	suite.mockRepo.On("ListSales", ctx, &from, &to, &direct).Return([]domain.SaleWithProduct{
		{Sale: domain.Sale{ID: 1, SaleType: domain.SaleTypeDirect}},
	}, nil).Once()

	sales, err := suite.service.ListSales(ctx, &from, &to, &direct)

	suite.Require().NoError(err)
	suite.Require().Len(sales, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
