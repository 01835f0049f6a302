package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/retailpulse/bi_backend/internal/apperrors"
	"github.com/retailpulse/bi_backend/internal/core/domain"
	"github.com/retailpulse/bi_backend/internal/dto"
	"github.com/retailpulse/bi_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) ListSales(ctx context.Context, filter domain.PeriodFilter) ([]domain.SalesFact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesFact), args.Error(1)
}

func (m *MockDashboardService) ListProfit(ctx context.Context, filter domain.PeriodFilter) ([]domain.ProfitMarginFact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfitMarginFact), args.Error(1)
}

func (m *MockDashboardService) ListStock(ctx context.Context, filter domain.PeriodFilter) ([]domain.StockAgeingFact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockAgeingFact), args.Error(1)
}

func (m *MockDashboardService) TopCustomers(ctx context.Context, month, year *int) ([]domain.CustomerGross, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerGross), args.Error(1)
}

// --- Test Suite ---
type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockDashboardService
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockDashboardService)
	handlers.RegisterDashboardRoutes(suite.router.Group(""), suite.mockService)
}

func (suite *DashboardHandlerTestSuite) serve(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *DashboardHandlerTestSuite) TestGetDashboardRows_Sales() {
	date := time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC)
	acme := "Acme Traders"
	month, year := 7, 2025
	facts := []domain.SalesFact{
		{ID: 1, PeriodMonth: 7, PeriodYear: 2025, Date: &date, CustomerName: &acme, Gross: decimal.NewFromInt(150)},
	}

	suite.mockService.On("ListSales", mock.Anything, domain.PeriodFilter{Month: &month, Year: &year}).
		Return(facts, nil).Once()

	w := suite.serve("/dashboard/sales?month=7&year=2025")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.SalesDashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Data, 1)
	suite.Equal(int64(1), body.Data[0].ID)
	suite.Require().NotNil(body.Data[0].Date)
	suite.Equal("2025-07-14T00:00:00Z", *body.Data[0].Date)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetDashboardRows_WithoutFilter() {
	suite.mockService.On("ListStock", mock.Anything, domain.PeriodFilter{}).
		Return([]domain.StockAgeingFact{}, nil).Once()

	w := suite.serve("/dashboard/stock")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.StockDashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Empty(body.Data)
}

func (suite *DashboardHandlerTestSuite) TestGetDashboardRows_UnknownKind() {
	w := suite.serve("/dashboard/expenses")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Unknown kind")
	suite.mockService.AssertNotCalled(suite.T(), "ListSales")
}

func (suite *DashboardHandlerTestSuite) TestGetDashboardRows_MalformedMonth() {
	w := suite.serve("/dashboard/sales?month=july")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListSales")
}

func (suite *DashboardHandlerTestSuite) TestGetDashboardRows_ServiceError() {
	suite.mockService.On("ListProfit", mock.Anything, domain.PeriodFilter{}).
		Return(nil, context.DeadlineExceeded).Once()

	w := suite.serve("/dashboard/profit")

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *DashboardHandlerTestSuite) TestGetTopCustomers_Success() {
	month, year := 7, 2025
	acme := "Acme Traders"
	ranking := []domain.CustomerGross{
		{Customer: &acme, Amount: decimal.NewFromInt(900)},
		{Customer: nil, Amount: decimal.NewFromInt(400)},
	}

	suite.mockService.On("TopCustomers", mock.Anything, &month, &year).
		Return(ranking, nil).Once()

	w := suite.serve("/dashboard/top-customers?month=7&year=2025")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TopCustomersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Data, 2)
	suite.Equal("Acme Traders", body.Data[0].Customer)
	suite.Equal("Unknown", body.Data[1].Customer)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetTopCustomers_MissingPeriod() {
	suite.mockService.On("TopCustomers", mock.Anything, (*int)(nil), (*int)(nil)).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.serve("/dashboard/top-customers")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Month and year are required")
}

// --- Run Test Suite ---
func TestDashboardHandler(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
