package pgsql

import (
	"fmt"
	"strings"

	"github.com/retailpulse/bi_backend/internal/core/domain"
)

// periodWhereClause renders the optional (month, year) filter as a WHERE
// clause with positional parameters, returning the clause text (possibly
// empty) and its argument slice.
func periodWhereClause(filter domain.PeriodFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.Month != nil {
		args = append(args, *filter.Month)
		conds = append(conds, fmt.Sprintf(`"periodMonth" = $%d`, len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		conds = append(conds, fmt.Sprintf(`"periodYear" = $%d`, len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
