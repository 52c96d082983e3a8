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

// --- Mock CashFlowRepository ---
type MockCashFlowRepository struct {
	mock.Mock
}

func (m *MockCashFlowRepository) ListCashFlow(ctx context.Context) ([]domain.CashFlowEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowEntry), args.Error(1)
}

func (m *MockCashFlowRepository) SaveCashFlow(ctx context.Context, entry domain.CashFlowEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCashFlowRepository) UpdateCashFlowStatus(ctx context.Context, id int64, status domain.CashFlowStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// --- Test Suite ---
type CashFlowServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCashFlowRepository
	service  portssvc.CashFlowSvcFacade
}

func (suite *CashFlowServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCashFlowRepository)
	suite.service = services.NewCashFlowService(suite.mockRepo)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- CreateCashFlow ---

func (suite *CashFlowServiceTestSuite) TestCreateCashFlow_DefaultsApplied() {
	ctx := context.Background()
	req := dto.CreateCashFlowRequest{
		Date:   "2024-11-05",
		Inflow: decimal.NewFromInt(500),
	}

	suite.mockRepo.On("SaveCashFlow", ctx, mock.MatchedBy(func(e domain.CashFlowEntry) bool {
		return e.PendingType == domain.PendingTypeReceipt && e.Status == domain.CashFlowCompleted
	})).Return(int64(7), nil).Once()

	entry, err := suite.service.CreateCashFlow(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(7), entry.ID)
	suite.Equal(domain.CashFlowCompleted, entry.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCreateCashFlow_BothSidesRejected() {
	ctx := context.Background()
	req := dto.CreateCashFlowRequest{
		Date:    "2024-11-05",
		Inflow:  decimal.NewFromInt(100),
		Outflow: decimal.NewFromInt(50),
	}

	entry, err := suite.service.CreateCashFlow(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCashFlow", mock.Anything, mock.Anything)
}

func (suite *CashFlowServiceTestSuite) TestCreateCashFlow_NeitherSideRejected() {
	ctx := context.Background()
	req := dto.CreateCashFlowRequest{Date: "2024-11-05"}

	entry, err := suite.service.CreateCashFlow(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
}

// --- GetCashFlowLedger ---

func (suite *CashFlowServiceTestSuite) TestGetCashFlowLedger_BalancesAndSummary() {
	ctx := context.Background()

	entries := []domain.CashFlowEntry{
		{ID: 1, Date: day(2024, time.November, 1), Inflow: decimal.NewFromInt(1000), Outflow: decimal.Zero, PendingType: domain.PendingTypeReceipt, Status: domain.CashFlowCompleted},
		{ID: 2, Date: day(2024, time.November, 2), Inflow: decimal.NewFromInt(500), Outflow: decimal.Zero, PendingType: domain.PendingTypeReceipt, Status: domain.CashFlowPending},
		{ID: 3, Date: day(2024, time.November, 3), Inflow: decimal.Zero, Outflow: decimal.NewFromInt(200), PendingType: domain.PendingTypePayment, Status: domain.CashFlowCompleted},
		{ID: 4, Date: day(2024, time.November, 4), Inflow: decimal.Zero, Outflow: decimal.NewFromInt(300), PendingType: domain.PendingTypePayment, Status: domain.CashFlowPending},
	}
	suite.mockRepo.On("ListCashFlow", ctx).Return(entries, nil).Once()

	rows, summary, err := suite.service.GetCashFlowLedger(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 4)

	// Running balance includes pending entries.
	suite.True(rows[0].Balance.Equal(decimal.NewFromInt(1000)))
	suite.True(rows[1].Balance.Equal(decimal.NewFromInt(1500)))
	suite.True(rows[2].Balance.Equal(decimal.NewFromInt(1300)))
	suite.True(rows[3].Balance.Equal(decimal.NewFromInt(1000)))

	// Cash in hand only counts completed entries.
	suite.True(summary.CashInHand.Equal(decimal.NewFromInt(800)))
	suite.True(summary.PendingReceipts.Equal(decimal.NewFromInt(500)))
	suite.True(summary.PendingPayments.Equal(decimal.NewFromInt(300)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestGetCashFlowLedger_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCashFlow", ctx).Return([]domain.CashFlowEntry{}, nil).Once()

	rows, summary, err := suite.service.GetCashFlowLedger(ctx)

	suite.Require().NoError(err)
	suite.Empty(rows)
	suite.True(summary.CashInHand.IsZero())
	suite.True(summary.PendingReceipts.IsZero())
	suite.True(summary.PendingPayments.IsZero())
}

// --- UpdateStatus ---

func (suite *CashFlowServiceTestSuite) TestUpdateStatus_InvalidValue() {
	err := suite.service.UpdateStatus(context.Background(), 1, domain.CashFlowStatus("Unknown"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCashFlowStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashFlowServiceTestSuite) TestUpdateStatus_NotFoundPropagates() {
	ctx := context.Background()

	suite.mockRepo.On("UpdateCashFlowStatus", ctx, int64(42), domain.CashFlowCompleted).Return(apperrors.ErrNotFound).Once()

	err := suite.service.UpdateStatus(ctx, 42, domain.CashFlowCompleted)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestUpdateStatus_Success() {
	ctx := context.Background()

	suite.mockRepo.On("UpdateCashFlowStatus", ctx, int64(42), domain.CashFlowCompleted).Return(nil).Once()

	err := suite.service.UpdateStatus(ctx, 42, domain.CashFlowCompleted)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCashFlowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashFlowServiceTestSuite))
}
