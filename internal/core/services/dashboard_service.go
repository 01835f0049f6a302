package services

import (
	"context"
	"fmt"

	"github.com/retailpulse/bi_backend/internal/apperrors"
	"github.com/retailpulse/bi_backend/internal/core/domain"
	portsrepo "github.com/retailpulse/bi_backend/internal/core/ports/repositories"
	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
)

// topCustomersLimit caps the top-customers ranking.
const topCustomersLimit = 5

// DashboardService answers the dashboard's fixed read patterns over the
// stored fact tables.
type DashboardService struct {
	salesRepo  portsrepo.SalesFactReader
	profitRepo portsrepo.ProfitFactRepository
	stockRepo  portsrepo.StockFactRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	salesRepo portsrepo.SalesFactRepository,
	profitRepo portsrepo.ProfitFactRepository,
	stockRepo portsrepo.StockFactRepository,
) *DashboardService {
	return &DashboardService{
		salesRepo:  salesRepo,
		profitRepo: profitRepo,
		stockRepo:  stockRepo,
	}
}

// Ensure implementation matches interface
var _ portssvc.DashboardSvcFacade = (*DashboardService)(nil)

// ListSales returns sales rows for the optional period filter.
func (s *DashboardService) ListSales(ctx context.Context, filter domain.PeriodFilter) ([]domain.SalesFact, error) {
	facts, err := s.salesRepo.ListSalesFacts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales facts: %w", err)
	}
	return facts, nil
}

// ListProfit returns profit margin rows for the optional period filter.
func (s *DashboardService) ListProfit(ctx context.Context, filter domain.PeriodFilter) ([]domain.ProfitMarginFact, error) {
	facts, err := s.profitRepo.ListProfitFacts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list profit margin facts: %w", err)
	}
	return facts, nil
}

// ListStock returns stock ageing rows for the optional period filter.
func (s *DashboardService) ListStock(ctx context.Context, filter domain.PeriodFilter) ([]domain.StockAgeingFact, error) {
	facts, err := s.stockRepo.ListStockFacts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock ageing facts: %w", err)
	}
	return facts, nil
}

// TopCustomers ranks the period's customers by summed gross, descending,
// top five. Month and year are both required. Rows without a customer name
// stay one group and surface as "Unknown".
func (s *DashboardService) TopCustomers(ctx context.Context, month, year *int) ([]domain.CustomerGross, error) {
	if month == nil || year == nil {
		return nil, fmt.Errorf("%w: month and year are required", apperrors.ErrValidation)
	}

	ranking, err := s.salesRepo.TopCustomersByGross(ctx, *month, *year, topCustomersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top customers: %w", err)
	}

	unknown := "Unknown"
	for i := range ranking {
		if ranking[i].Customer == nil || *ranking[i].Customer == "" {
			ranking[i].Customer = &unknown
		}
	}
	return ranking, nil
}
