package services_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/retailpulse/bi_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// testLogger discards output; the services log informationally only.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Mock SalesFactRepository ---
type MockSalesFactRepository struct {
	mock.Mock
}

func (m *MockSalesFactRepository) SaveSalesFacts(ctx context.Context, facts []domain.SalesFact) (int64, error) {
	args := m.Called(ctx, facts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesFactRepository) ListSalesFacts(ctx context.Context, filter domain.PeriodFilter) ([]domain.SalesFact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesFact), args.Error(1)
}

func (m *MockSalesFactRepository) TopCustomersByGross(ctx context.Context, month, year, limit int) ([]domain.CustomerGross, error) {
	args := m.Called(ctx, month, year, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerGross), args.Error(1)
}

// --- Mock ProfitFactRepository ---
type MockProfitFactRepository struct {
	mock.Mock
}

func (m *MockProfitFactRepository) SaveProfitFacts(ctx context.Context, facts []domain.ProfitMarginFact) (int64, error) {
	args := m.Called(ctx, facts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfitFactRepository) ListProfitFacts(ctx context.Context, filter domain.PeriodFilter) ([]domain.ProfitMarginFact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfitMarginFact), args.Error(1)
}

// --- Mock StockFactRepository ---
type MockStockFactRepository struct {
	mock.Mock
}

func (m *MockStockFactRepository) SaveStockFacts(ctx context.Context, facts []domain.StockAgeingFact) (int64, error) {
	args := m.Called(ctx, facts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockFactRepository) ListStockFacts(ctx context.Context, filter domain.PeriodFilter) ([]domain.StockAgeingFact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockAgeingFact), args.Error(1)
}
