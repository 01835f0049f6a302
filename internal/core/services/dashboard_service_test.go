package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/retailpulse/bi_backend/internal/apperrors"
	"github.com/retailpulse/bi_backend/internal/core/domain"
	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
	"github.com/retailpulse/bi_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type DashboardServiceTestSuite struct {
	suite.Suite
	mockSalesRepo  *MockSalesFactRepository
	mockProfitRepo *MockProfitFactRepository
	mockStockRepo  *MockStockFactRepository
	service        portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockSalesRepo = new(MockSalesFactRepository)
	suite.mockProfitRepo = new(MockProfitFactRepository)
	suite.mockStockRepo = new(MockStockFactRepository)
	suite.service = services.NewDashboardService(suite.mockSalesRepo, suite.mockProfitRepo, suite.mockStockRepo)
}

// --- Test Cases ---

func (suite *DashboardServiceTestSuite) TestListSales_PassesFilter() {
	ctx := context.Background()
	month, year := 7, 2025
	filter := domain.PeriodFilter{Month: &month, Year: &year}
	date := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	expected := []domain.SalesFact{{ID: 1, PeriodMonth: 7, PeriodYear: 2025, Date: &date}}

	suite.mockSalesRepo.On("ListSalesFacts", ctx, filter).Return(expected, nil).Once()

	facts, err := suite.service.ListSales(ctx, filter)

	suite.Require().NoError(err)
	suite.Equal(expected, facts)
	suite.mockSalesRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestListSales_RepoError() {
	ctx := context.Background()
	suite.mockSalesRepo.On("ListSalesFacts", ctx, domain.PeriodFilter{}).Return(nil, assert.AnError).Once()

	facts, err := suite.service.ListSales(ctx, domain.PeriodFilter{})

	suite.Require().Error(err)
	suite.Nil(facts)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *DashboardServiceTestSuite) TestListStock_NoFilter() {
	ctx := context.Background()
	expected := []domain.StockAgeingFact{{ID: 3, PeriodMonth: 6, PeriodYear: 2025}}

	suite.mockStockRepo.On("ListStockFacts", ctx, domain.PeriodFilter{}).Return(expected, nil).Once()

	facts, err := suite.service.ListStock(ctx, domain.PeriodFilter{})

	suite.Require().NoError(err)
	suite.Equal(expected, facts)
}

func (suite *DashboardServiceTestSuite) TestTopCustomers_RequiresPeriod() {
	ctx := context.Background()
	month := 7

	_, err := suite.service.TopCustomers(ctx, &month, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSalesRepo.AssertNotCalled(suite.T(), "TopCustomersByGross")
}

func (suite *DashboardServiceTestSuite) TestTopCustomers_MapsMissingNameToUnknown() {
	ctx := context.Background()
	month, year := 7, 2025
	acme := "Acme Traders"
	blank := ""
	ranking := []domain.CustomerGross{
		{Customer: &acme, Amount: decimal.NewFromInt(900)},
		{Customer: nil, Amount: decimal.NewFromInt(400)},
		{Customer: &blank, Amount: decimal.NewFromInt(100)},
	}

	suite.mockSalesRepo.On("TopCustomersByGross", ctx, month, year, 5).Return(ranking, nil).Once()

	result, err := suite.service.TopCustomers(ctx, &month, &year)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Acme Traders", *result[0].Customer)
	suite.Equal("Unknown", *result[1].Customer)
	suite.Equal("Unknown", *result[2].Customer)
	suite.mockSalesRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestTopCustomers_EmptyPeriod() {
	ctx := context.Background()
	month, year := 1, 2020

	suite.mockSalesRepo.On("TopCustomersByGross", ctx, month, year, 5).Return([]domain.CustomerGross{}, nil).Once()

	result, err := suite.service.TopCustomers(ctx, &month, &year)

	suite.Require().NoError(err)
	suite.Empty(result)
}

// --- Run Test Suite ---
func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
