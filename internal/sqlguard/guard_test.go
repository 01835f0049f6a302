package sqlguard_test

import (
	"testing"

	"github.com/retailpulse/bi_backend/internal/sqlguard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t,
		`SELECT * FROM "SalesFact"`,
		sqlguard.StripCodeFences("```sql\nSELECT * FROM \"SalesFact\"\n```"))
	assert.Equal(t,
		`SELECT * FROM "SalesFact"`,
		sqlguard.StripCodeFences(`SELECT * FROM "SalesFact"`))
}

func TestValidate_AllowsSelectOnKnownTables(t *testing.T) {
	statements := []string{
		`SELECT * FROM "SalesFact"`,
		`select "customerName", SUM("gross") from "SalesFact" group by "customerName"`,
		`SELECT s."gross", p."grossProfit" FROM "SalesFact" s JOIN "ProfitMarginFact" p ON s."itemName" = p."itemName"`,
		`SELECT COUNT(*) FROM "StockAgeingFact" WHERE "periodYear" = 2025`,
		// a literal mentioning a forbidden word must not trip the gate
		`SELECT * FROM "SalesFact" WHERE "itemName" = 'delete me'`,
	}
	for _, sql := range statements {
		assert.NoError(t, sqlguard.Validate(sql), sql)
	}
}

func TestValidate_RejectsNonSelect(t *testing.T) {
	err := sqlguard.Validate(`DELETE FROM "SalesFact"`)

	var rejection *sqlguard.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, `DELETE FROM "SalesFact"`, rejection.SQL)
	assert.Contains(t, rejection.Reason, "SELECT")
}

func TestValidate_RejectsForbiddenKeyword(t *testing.T) {
	err := sqlguard.Validate(`SELECT * FROM "SalesFact"; DROP TABLE "SalesFact"`)

	var rejection *sqlguard.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Contains(t, rejection.Reason, "drop")
}

func TestValidate_RejectsUnknownTable(t *testing.T) {
	err := sqlguard.Validate(`SELECT * FROM "Users"`)

	var rejection *sqlguard.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Contains(t, rejection.Reason, "users")
}

func TestValidate_RejectsStatementWithoutTables(t *testing.T) {
	err := sqlguard.Validate(`SELECT 1`)

	var rejection *sqlguard.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "no table found in statement", rejection.Reason)
}

func TestValidate_RejectsEmpty(t *testing.T) {
	assert.Error(t, sqlguard.Validate(""))
	assert.Error(t, sqlguard.Validate("   \n "))
}

func TestValidate_TableHiddenInCommentDoesNotCount(t *testing.T) {
	// The only allow-listed table reference lives inside a comment; after
	// tokenization the statement references "Users" alone.
	err := sqlguard.Validate(`SELECT * FROM /* "SalesFact" */ "Users"`)

	var rejection *sqlguard.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Contains(t, rejection.Reason, "users")
}

func TestValidate_KeywordInLineCommentIgnored(t *testing.T) {
	sql := "SELECT * FROM \"SalesFact\" -- drop nothing\n"
	assert.NoError(t, sqlguard.Validate(sql))
}

func TestEnsureLimit(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "appends default limit",
			sql:  `SELECT * FROM "SalesFact"`,
			want: `SELECT * FROM "SalesFact" LIMIT 200;`,
		},
		{
			name: "strips trailing separator before appending",
			sql:  `SELECT * FROM "SalesFact";`,
			want: `SELECT * FROM "SalesFact" LIMIT 200;`,
		},
		{
			name: "keeps existing limit",
			sql:  `SELECT * FROM "SalesFact" LIMIT 10;`,
			want: `SELECT * FROM "SalesFact" LIMIT 10;`,
		},
		{
			name: "terminates existing limit",
			sql:  `SELECT * FROM "SalesFact" limit 10`,
			want: `SELECT * FROM "SalesFact" limit 10;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqlguard.EnsureLimit(tt.sql))
		})
	}
}
