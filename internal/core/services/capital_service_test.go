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

// --- Mock CapitalRepository ---
type MockCapitalRepository struct {
	mock.Mock
}

func (m *MockCapitalRepository) ListCapital(ctx context.Context) ([]domain.CapitalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CapitalEntry), args.Error(1)
}

func (m *MockCapitalRepository) SaveCapital(ctx context.Context, entry domain.CapitalEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type CapitalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCapitalRepository
	service  portssvc.CapitalSvcFacade
}

func (suite *CapitalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCapitalRepository)
	suite.service = services.NewCapitalService(suite.mockRepo)
}

func (suite *CapitalServiceTestSuite) TestCreateCapital_Success() {
	ctx := context.Background()
	req := dto.CreateCapitalRequest{
		Date:   "2024-11-01",
		Type:   "Capital In",
		Amount: decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("SaveCapital", ctx, mock.MatchedBy(func(e domain.CapitalEntry) bool {
		return e.Type == domain.CapitalTypeIn && e.Amount.Equal(decimal.NewFromInt(1000))
	})).Return(int64(1), nil).Once()

	entry, err := suite.service.CreateCapital(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), entry.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CapitalServiceTestSuite) TestCreateCapital_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateCapitalRequest{
		Date:   "2024-11-01",
		Type:   "Withdrawal",
		Amount: decimal.NewFromInt(-5),
	}

	entry, err := suite.service.CreateCapital(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCapital", mock.Anything, mock.Anything)
}

func (suite *CapitalServiceTestSuite) TestGetCapitalLedger_RunningBalance() {
	ctx := context.Background()

	// Same-day entries stay in insertion order (id asc), which pins the
	// running sequence even though the final balance is order-independent.
	entries := []domain.CapitalEntry{
		{ID: 1, Date: day(2024, time.November, 1), Type: domain.CapitalTypeIn, Amount: decimal.NewFromInt(1000)},
		{ID: 2, Date: day(2024, time.November, 1), Type: domain.CapitalTypeWithdrawal, Amount: decimal.NewFromInt(400)},
		{ID: 3, Date: day(2024, time.November, 5), Type: domain.CapitalTypeIn, Amount: decimal.NewFromInt(200)},
	}
	suite.mockRepo.On("ListCapital", ctx).Return(entries, nil).Once()

	ledger, err := suite.service.GetCapitalLedger(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Rows, 3)
	suite.True(ledger.Rows[0].Balance.Equal(decimal.NewFromInt(1000)))
	suite.True(ledger.Rows[1].Balance.Equal(decimal.NewFromInt(600)))
	suite.True(ledger.Rows[2].Balance.Equal(decimal.NewFromInt(800)))
	suite.True(ledger.Balance.Equal(decimal.NewFromInt(800)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CapitalServiceTestSuite) TestGetCapitalLedger_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCapital", ctx).Return([]domain.CapitalEntry{}, nil).Once()

	ledger, err := suite.service.GetCapitalLedger(ctx)

	suite.Require().NoError(err)
	suite.Empty(ledger.Rows)
	suite.True(ledger.Balance.IsZero())
}

func TestCapitalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CapitalServiceTestSuite))
}
