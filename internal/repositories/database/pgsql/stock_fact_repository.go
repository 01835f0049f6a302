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

type PgxStockFactRepository struct {
	BaseRepository
}

// newPgxStockFactRepository creates a new repository for stock ageing fact data.
func newPgxStockFactRepository(pool *pgxpool.Pool) portsrepo.StockFactRepository {
	return &PgxStockFactRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StockFactRepository = (*PgxStockFactRepository)(nil)

const insertStockFactSQL = `
	INSERT INTO "StockAgeingFact" (
		"periodMonth", "periodYear", "particulars", "warehouse", "totalQty", "totalValue",
		"q0_30", "v0_30", "q31_60", "v31_60", "q61_90", "v61_90", "q91_120", "v91_120",
		"q121_150", "v121_150", "q151_180", "v151_180", "q181_360", "v181_360", "q_gt_360", "v_gt_360"
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	ON CONFLICT DO NOTHING;
`

// SaveStockFacts bulk-inserts rows with skip-on-duplicate semantics.
func (r *PgxStockFactRepository) SaveStockFacts(ctx context.Context, facts []domain.StockAgeingFact) (int64, error) {
	batch := &pgx.Batch{}
	for _, f := range facts {
		m := mapping.ToModelStockAgeingFact(f)
		batch.Queue(insertStockFactSQL,
			m.PeriodMonth, m.PeriodYear, m.Particulars, m.Warehouse, m.TotalQty, m.TotalValue,
			m.Q0to30, m.V0to30, m.Q31to60, m.V31to60, m.Q61to90, m.V61to90, m.Q91to120, m.V91to120,
			m.Q121to150, m.V121to150, m.Q151to180, m.V151to180, m.Q181to360, m.V181to360, m.QOver360, m.VOver360,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range facts {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert stock ageing fact batch: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

const selectStockFactColumns = `
	"id", "periodMonth", "periodYear", "particulars", "warehouse", "totalQty", "totalValue",
	"q0_30", "v0_30", "q31_60", "v31_60", "q61_90", "v61_90", "q91_120", "v91_120",
	"q121_150", "v121_150", "q151_180", "v151_180", "q181_360", "v181_360", "q_gt_360", "v_gt_360"
`

// ListStockFacts retrieves rows matching the optional period filter, newest
// reporting period first, then newest insertion first within a period.
func (r *PgxStockFactRepository) ListStockFacts(ctx context.Context, filter domain.PeriodFilter) ([]domain.StockAgeingFact, error) {
	query := `SELECT ` + selectStockFactColumns + ` FROM "StockAgeingFact"`
	where, args := periodWhereClause(filter)
	query += where + ` ORDER BY "periodYear" DESC, "periodMonth" DESC, "id" DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock ageing facts: %w", err)
	}
	defer rows.Close()

	modelFacts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StockAgeingFact, error) {
		var m models.StockAgeingFact
		err := row.Scan(
			&m.ID, &m.PeriodMonth, &m.PeriodYear, &m.Particulars, &m.Warehouse, &m.TotalQty, &m.TotalValue,
			&m.Q0to30, &m.V0to30, &m.Q31to60, &m.V31to60, &m.Q61to90, &m.V61to90, &m.Q91to120, &m.V91to120,
			&m.Q121to150, &m.V121to150, &m.Q151to180, &m.V151to180, &m.Q181to360, &m.V181to360, &m.QOver360, &m.VOver360,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stock ageing facts: %w", err)
	}

	return mapping.ToDomainStockAgeingFactSlice(modelFacts), nil
}
