package repositories

import (
	"context"

	"github.com/retailpulse/bi_backend/internal/core/domain"
)

// SalesFactWriter defines write operations for sales facts.
type SalesFactWriter interface {
	// SaveSalesFacts bulk-inserts rows with skip-on-duplicate semantics and
	// returns how many rows the store actually accepted.
	SaveSalesFacts(ctx context.Context, facts []domain.SalesFact) (int64, error)
}

// SalesFactReader defines read operations for sales facts.
type SalesFactReader interface {
	// ListSalesFacts retrieves rows matching the filter, ordered by date ascending.
	ListSalesFacts(ctx context.Context, filter domain.PeriodFilter) ([]domain.SalesFact, error)

	// TopCustomersByGross ranks customers of one period by summed gross value.
	TopCustomersByGross(ctx context.Context, month, year, limit int) ([]domain.CustomerGross, error)
}

// SalesFactRepository combines all sales fact repository interfaces.
type SalesFactRepository interface {
	SalesFactWriter
	SalesFactReader
}

// ProfitFactRepository defines operations for profit margin facts.
type ProfitFactRepository interface {
	SaveProfitFacts(ctx context.Context, facts []domain.ProfitMarginFact) (int64, error)
	ListProfitFacts(ctx context.Context, filter domain.PeriodFilter) ([]domain.ProfitMarginFact, error)
}

// StockFactRepository defines operations for stock ageing facts.
type StockFactRepository interface {
	SaveStockFacts(ctx context.Context, facts []domain.StockAgeingFact) (int64, error)

	// ListStockFacts retrieves rows matching the filter, ordered by
	// (year desc, month desc, insertion order desc).
	ListStockFacts(ctx context.Context, filter domain.PeriodFilter) ([]domain.StockAgeingFact, error)
}

// RawQueryExecutor runs an already-validated read-only statement and returns
// its rows as column-name keyed maps with JSON-safe values.
type RawQueryExecutor interface {
	RunSelect(ctx context.Context, sql string) ([]map[string]any, error)
}

// RepositoryProvider bundles all repositories for dependency injection.
type RepositoryProvider struct {
	SalesRepo    SalesFactRepository
	ProfitRepo   ProfitFactRepository
	StockRepo    StockFactRepository
	RawQueryRepo RawQueryExecutor
}
