package services

import (
	"log/slog"

	portsrepo "github.com/retailpulse/bi_backend/internal/core/ports/repositories"
	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
)

// NewServiceContainer wires all application services over the repository
// provider and the completion client.
func NewServiceContainer(repos portsrepo.RepositoryProvider, generator portssvc.SQLGenerator, logger *slog.Logger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ingestion: NewIngestionService(repos.SalesRepo, repos.ProfitRepo, repos.StockRepo, logger),
		Dashboard: NewDashboardService(repos.SalesRepo, repos.ProfitRepo, repos.StockRepo),
		Insight:   NewInsightService(generator, repos.RawQueryRepo, logger),
	}
}
