package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailpulse/bi_backend/internal/core/domain"
	portsrepo "github.com/retailpulse/bi_backend/internal/core/ports/repositories"
	"github.com/retailpulse/bi_backend/internal/models"
	"github.com/retailpulse/bi_backend/internal/utils/mapping"
)

type PgxProfitFactRepository struct {
	BaseRepository
}

// newPgxProfitFactRepository creates a new repository for profit margin fact data.
func newPgxProfitFactRepository(pool *pgxpool.Pool) portsrepo.ProfitFactRepository {
	return &PgxProfitFactRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProfitFactRepository = (*PgxProfitFactRepository)(nil)

const insertProfitFactSQL = `
	INSERT INTO "ProfitMarginFact" (
		"periodMonth", "periodYear", "date", "customerName", "docNo", "itemName", "unitName",
		"quantity", "rate", "gross", "taxableValue", "avgPurchasePrice", "appGross", "grossProfit", "gpMarginPct"
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT DO NOTHING;
`

// SaveProfitFacts bulk-inserts rows with skip-on-duplicate semantics.
func (r *PgxProfitFactRepository) SaveProfitFacts(ctx context.Context, facts []domain.ProfitMarginFact) (int64, error) {
	batch := &pgx.Batch{}
	for _, f := range facts {
		m := mapping.ToModelProfitMarginFact(f)
		batch.Queue(insertProfitFactSQL,
			m.PeriodMonth, m.PeriodYear, m.Date, m.CustomerName, m.DocNo, m.ItemName, m.UnitName,
			m.Quantity, m.Rate, m.Gross, m.TaxableValue, m.AvgPurchasePrice, m.AppGross, m.GrossProfit, m.GpMarginPct,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range facts {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert profit margin fact batch: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

const selectProfitFactColumns = `
	"id", "periodMonth", "periodYear", "date", "customerName", "docNo", "itemName", "unitName",
	"quantity", "rate", "gross", "taxableValue", "avgPurchasePrice", "appGross", "grossProfit", "gpMarginPct"
`

// ListProfitFacts retrieves rows matching the optional period filter, ordered
// by date ascending.
func (r *PgxProfitFactRepository) ListProfitFacts(ctx context.Context, filter domain.PeriodFilter) ([]domain.ProfitMarginFact, error) {
	query := `SELECT ` + selectProfitFactColumns + ` FROM "ProfitMarginFact"`
	where, args := periodWhereClause(filter)
	query += where + ` ORDER BY "date" ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profit margin facts: %w", err)
	}
	defer rows.Close()

	modelFacts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ProfitMarginFact, error) {
		var m models.ProfitMarginFact
		err := row.Scan(
			&m.ID, &m.PeriodMonth, &m.PeriodYear, &m.Date, &m.CustomerName, &m.DocNo, &m.ItemName, &m.UnitName,
			&m.Quantity, &m.Rate, &m.Gross, &m.TaxableValue, &m.AvgPurchasePrice, &m.AppGross, &m.GrossProfit, &m.GpMarginPct,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan profit margin facts: %w", err)
	}

	return mapping.ToDomainProfitMarginFactSlice(modelFacts), nil
}
