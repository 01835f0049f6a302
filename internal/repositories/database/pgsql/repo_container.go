package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/retailpulse/bi_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SalesRepo:    newPgxSalesFactRepository(dbPool),
		ProfitRepo:   newPgxProfitFactRepository(dbPool),
		StockRepo:    newPgxStockFactRepository(dbPool),
		RawQueryRepo: newPgxRawQueryRepository(dbPool),
	}
}
