package services_test

import (
	"context"
	"testing"

	"github.com/lookiva/lookiva_app/internal/apperrors"
	"github.com/lookiva/lookiva_app/internal/core/domain"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/core/services"
	"github.com/lookiva/lookiva_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	MockPurchaseReader
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) (int64, error) {
	args := m.Called(ctx, purchase)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type PurchaseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPurchaseRepository
	service  portssvc.PurchaseSvcFacade
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPurchaseRepository)
	suite.service = services.NewPurchaseService(suite.mockRepo)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_DefaultsPaymentMethod() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Date:        "2024-11-03",
		BatchID:     "SR0001NOV24",
		Quantity:    10,
		CostPerUnit: decimal.NewFromInt(450),
	}

	suite.mockRepo.On("SavePurchase", ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.PaymentMethod == "Cash" && p.Quantity == 10
	})).Return(int64(5), nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(5), purchase.ID)
	suite.Equal("Cash", purchase.PaymentMethod)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_NegativeQuantityIsReturn() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Date:     "2024-11-03",
		BatchID:  "SR0001NOV24",
		Quantity: -2,
		Remarks:  "returned to supplier",
	}

	suite.mockRepo.On("SavePurchase", ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.Quantity == -2
	})).Return(int64(6), nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(-2), purchase.Quantity)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_ZeroQuantityRejected() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Date:     "2024-11-03",
		BatchID:  "SR0001NOV24",
		Quantity: 0,
	}

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(purchase)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_BadDateRejected() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		Date:     "03-11-2024",
		BatchID:  "SR0001NOV24",
		Quantity: 1,
	}

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(purchase)
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
