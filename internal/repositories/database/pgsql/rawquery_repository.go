package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	portsrepo "github.com/retailpulse/bi_backend/internal/core/ports/repositories"
)

type PgxRawQueryRepository struct {
	BaseRepository
}

// newPgxRawQueryRepository creates the executor for validated, read-only
// generated SQL. It must only ever receive statements that passed the
// sqlguard gate.
func newPgxRawQueryRepository(pool *pgxpool.Pool) portsrepo.RawQueryExecutor {
	return &PgxRawQueryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RawQueryExecutor = (*PgxRawQueryRepository)(nil)

// RunSelect executes the statement and returns each row as a column-name
// keyed map whose values are safe to marshal to JSON.
func (r *PgxRawQueryRepository) RunSelect(ctx context.Context, sql string) ([]map[string]any, error) {
	rows, err := r.Pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to run generated query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	result := []map[string]any{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read generated query row: %w", err)
		}
		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			row[fd.Name] = jsonSafeValue(values[i])
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate generated query rows: %w", err)
	}

	return result, nil
}

// maxSafeInteger is the largest integer JSON consumers can represent without
// precision loss (2^53 - 1).
const maxSafeInteger = int64(1)<<53 - 1

// jsonSafeValue converts driver values into JSON-representable ones.
// Numerics and out-of-range integers become strings so aggregate sums are
// never silently truncated on the wire; timestamps become RFC 3339 text.
func jsonSafeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case pgtype.Numeric:
		if !val.Valid {
			return nil
		}
		if val.NaN {
			return "NaN"
		}
		return numericString(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case int64:
		if val > maxSafeInteger || val < -maxSafeInteger {
			return strconv.FormatInt(val, 10)
		}
		return val
	default:
		return v
	}
}

// numericString renders a pgtype.Numeric as plain decimal text.
func numericString(n pgtype.Numeric) string {
	if n.Int == nil {
		return "0"
	}
	return decimal.NewFromBigInt(n.Int, n.Exp).String()
}
