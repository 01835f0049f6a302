package services

import (
	"context"

	"github.com/retailpulse/bi_backend/internal/core/domain"
)

// DashboardReaderSvc answers the dashboard's fixed read patterns.
type DashboardReaderSvc interface {
	// ListSales returns sales rows for the optional period filter, date ascending.
	ListSales(ctx context.Context, filter domain.PeriodFilter) ([]domain.SalesFact, error)

	// ListProfit returns profit margin rows for the optional period filter, date ascending.
	ListProfit(ctx context.Context, filter domain.PeriodFilter) ([]domain.ProfitMarginFact, error)

	// ListStock returns stock ageing rows for the optional period filter,
	// newest period first.
	ListStock(ctx context.Context, filter domain.PeriodFilter) ([]domain.StockAgeingFact, error)

	// TopCustomers ranks the period's customers by summed gross value,
	// descending, top five. Both month and year are required; rows without a
	// customer name are grouped under "Unknown".
	TopCustomers(ctx context.Context, month, year *int) ([]domain.CustomerGross, error)
}

// DashboardSvcFacade combines the dashboard service interfaces.
type DashboardSvcFacade interface {
	DashboardReaderSvc
}
