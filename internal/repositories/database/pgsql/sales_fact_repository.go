package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/retailpulse/bi_backend/internal/core/domain"
	portsrepo "github.com/retailpulse/bi_backend/internal/core/ports/repositories"
	"github.com/retailpulse/bi_backend/internal/models"
	"github.com/retailpulse/bi_backend/internal/utils/mapping"
)

type PgxSalesFactRepository struct {
	BaseRepository
}

// newPgxSalesFactRepository creates a new repository for sales fact data.
func newPgxSalesFactRepository(pool *pgxpool.Pool) portsrepo.SalesFactRepository {
	return &PgxSalesFactRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SalesFactRepository = (*PgxSalesFactRepository)(nil)

const insertSalesFactSQL = `
	INSERT INTO "SalesFact" (
		"periodMonth", "periodYear", "date", "voucherName", "voucher", "customerName", "itemName",
		"quantity", "rate", "gross", "taxableValue", "avgPurchasePrice", "avgPPGross", "profitMargin"
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT DO NOTHING;
`

// SaveSalesFacts bulk-inserts rows in one batch round trip. Rows colliding
// with the table's uniqueness constraint are skipped, not failed; the return
// value counts rows the store actually accepted.
func (r *PgxSalesFactRepository) SaveSalesFacts(ctx context.Context, facts []domain.SalesFact) (int64, error) {
	batch := &pgx.Batch{}
	for _, f := range facts {
		m := mapping.ToModelSalesFact(f)
		batch.Queue(insertSalesFactSQL,
			m.PeriodMonth, m.PeriodYear, m.Date, m.VoucherName, m.Voucher, m.CustomerName, m.ItemName,
			m.Quantity, m.Rate, m.Gross, m.TaxableValue, m.AvgPurchasePrice, m.AvgPPGross, m.ProfitMargin,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range facts {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert sales fact batch: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

const selectSalesFactColumns = `
	"id", "periodMonth", "periodYear", "date", "voucherName", "voucher", "customerName", "itemName",
	"quantity", "rate", "gross", "taxableValue", "avgPurchasePrice", "avgPPGross", "profitMargin"
`

// ListSalesFacts retrieves rows matching the optional period filter, ordered
// by date ascending.
func (r *PgxSalesFactRepository) ListSalesFacts(ctx context.Context, filter domain.PeriodFilter) ([]domain.SalesFact, error) {
	query := `SELECT ` + selectSalesFactColumns + ` FROM "SalesFact"`
	where, args := periodWhereClause(filter)
	query += where + ` ORDER BY "date" ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales facts: %w", err)
	}
	defer rows.Close()

	modelFacts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SalesFact, error) {
		var m models.SalesFact
		err := row.Scan(
			&m.ID, &m.PeriodMonth, &m.PeriodYear, &m.Date, &m.VoucherName, &m.Voucher, &m.CustomerName, &m.ItemName,
			&m.Quantity, &m.Rate, &m.Gross, &m.TaxableValue, &m.AvgPurchasePrice, &m.AvgPPGross, &m.ProfitMargin,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales facts: %w", err)
	}

	return mapping.ToDomainSalesFactSlice(modelFacts), nil
}

// TopCustomersByGross groups the period's sales rows by customer name and
// sums the gross value per group, descending. NULL customer names form their
// own group and surface as a nil Customer.
func (r *PgxSalesFactRepository) TopCustomersByGross(ctx context.Context, month, year, limit int) ([]domain.CustomerGross, error) {
	query := `
		SELECT "customerName", COALESCE(SUM("gross"), 0) AS total_gross
		FROM "SalesFact"
		WHERE "periodMonth" = $1 AND "periodYear" = $2
		GROUP BY "customerName"
		ORDER BY total_gross DESC
		LIMIT $3;
	`

	rows, err := r.Pool.Query(ctx, query, month, year, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top customers: %w", err)
	}
	defer rows.Close()

	ranking, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CustomerGross, error) {
		var entry domain.CustomerGross
		var amount decimal.Decimal
		err := row.Scan(&entry.Customer, &amount)
		entry.Amount = amount
		return entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan top customers: %w", err)
	}

	if ranking == nil {
		ranking = []domain.CustomerGross{}
	}
	return ranking, nil
}
