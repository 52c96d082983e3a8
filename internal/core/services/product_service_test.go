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

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.ProductBatch) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByBatchID(ctx context.Context, batchID string) (*domain.ProductBatch, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductBatch), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.ProductBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductBatch), args.Error(1)
}

func (m *MockProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) FindLatestBatchID(ctx context.Context, pattern string) (string, error) {
	args := m.Called(ctx, pattern)
	return args.String(0), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, batchID string, update domain.ProductUpdate) error {
	args := m.Called(ctx, batchID, update)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, batchID string) error {
	args := m.Called(ctx, batchID)
	return args.Error(0)
}

// --- Test Suite ---
type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	// Fixed clock: mid November 2024, so generated identifiers carry NOV24.
	clock := func() time.Time { return time.Date(2024, time.November, 15, 10, 0, 0, 0, time.UTC) }
	suite.service = services.NewProductService(suite.mockRepo, services.WithProductClock(clock))
}

// --- GenerateBatchID ---

func (suite *ProductServiceTestSuite) TestGenerateBatchID_SameMonthContinues() {
	ctx := context.Background()

	suite.mockRepo.On("FindLatestBatchID", ctx, "SR%NOV24").Return("SR0006NOV24", nil).Once()

	batchID, err := suite.service.GenerateBatchID(ctx, "SR")

	suite.Require().NoError(err)
	suite.Equal("SR0007NOV24", batchID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestGenerateBatchID_NewMonthContinuesSequence() {
	ctx := context.Background()

	// Nothing for the current month, so the sequence continues from the
	// highest identifier of any month.
	suite.mockRepo.On("FindLatestBatchID", ctx, "SR%NOV24").Return("", nil).Once()
	suite.mockRepo.On("FindLatestBatchID", ctx, "SR%").Return("SR0012OCT24", nil).Once()

	batchID, err := suite.service.GenerateBatchID(ctx, "SR")

	suite.Require().NoError(err)
	suite.Equal("SR0013NOV24", batchID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestGenerateBatchID_EmptyCatalogueStartsAtOne() {
	ctx := context.Background()

	suite.mockRepo.On("FindLatestBatchID", ctx, "SR%NOV24").Return("", nil).Once()
	suite.mockRepo.On("FindLatestBatchID", ctx, "SR%").Return("", nil).Once()

	batchID, err := suite.service.GenerateBatchID(ctx, "SR")

	suite.Require().NoError(err)
	suite.Equal("SR0001NOV24", batchID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestGenerateBatchID_MalformedLatestResetsToOne() {
	ctx := context.Background()

	suite.mockRepo.On("FindLatestBatchID", ctx, "SR%NOV24").Return("SRXXNOV24", nil).Once()

	batchID, err := suite.service.GenerateBatchID(ctx, "SR")

	suite.Require().NoError(err)
	suite.Equal("SR0001NOV24", batchID)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- CreateProduct ---

func (suite *ProductServiceTestSuite) TestCreateProduct_GeneratesBatchIDWhenEmpty() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Category:    "Saree",
		ProductName: "Banarasi Silk",
		CostPerUnit: decimal.NewFromInt(450),
	}

	suite.mockRepo.On("FindLatestBatchID", ctx, "SA%NOV24").Return("SA0002NOV24", nil).Once()
	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.ProductBatch) bool {
		return p.BatchID == "SA0003NOV24" && p.BaseProductID == "SA0003" && p.Category == "Saree"
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.Equal("SA0003NOV24", product.BatchID)
	suite.Equal("SA0003", product.BaseProductID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_ExplicitBatchIDKept() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		BatchID:     "SR0007NOV24",
		Category:    "Saree",
		ProductName: "Kota Cotton",
		CostPerUnit: decimal.NewFromInt(300),
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.ProductBatch) bool {
		return p.BatchID == "SR0007NOV24" && p.BaseProductID == "SR0007"
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("SR0007", product.BaseProductID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativeCostRejected() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Category:    "Saree",
		ProductName: "Bad Cost",
		CostPerUnit: decimal.NewFromInt(-10),
	}

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(product)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DuplicatePropagates() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		BatchID:     "SR0007NOV24",
		Category:    "Saree",
		ProductName: "Duplicate",
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(product)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
