package report_test

import (
	"testing"
	"time"

	"github.com/retailpulse/bi_backend/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromStrings builds a cell grid the way the ingestion decoder does,
// one classified cell per raw string.
func gridFromStrings(rows [][]string) [][]report.Cell {
	grid := make([][]report.Cell, len(rows))
	for i, row := range rows {
		cells := make([]report.Cell, len(row))
		for j, raw := range row {
			cells[j] = report.CellFromRaw(raw)
		}
		grid[i] = cells
	}
	return grid
}

func TestCellFromRaw(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want report.Cell
	}{
		{
			name: "empty string",
			raw:  "",
			want: report.Cell{Kind: report.CellEmpty},
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: report.Cell{Kind: report.CellEmpty},
		},
		{
			name: "integer",
			raw:  "42",
			want: report.Cell{Kind: report.CellNumber, Raw: "42", Number: 42},
		},
		{
			name: "day serial with fraction",
			raw:  "45123.5",
			want: report.Cell{Kind: report.CellNumber, Raw: "45123.5", Number: 45123.5},
		},
		{
			name: "text",
			raw:  " Acme Traders ",
			want: report.Cell{Kind: report.CellText, Raw: "Acme Traders"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.CellFromRaw(tt.raw))
		})
	}
}

func TestParseSales_NoHeaderRow(t *testing.T) {
	grid := gridFromStrings([][]string{
		{"Sales Day Book"},
		{"Acme Traders", "100"},
	})

	facts := report.ParseSales(grid)

	assert.Empty(t, facts)
}

func TestParseSales_SkipsPreamble(t *testing.T) {
	grid := gridFromStrings([][]string{
		{"Sales Day Book"},
		{"From 01-07-2025 To 31-07-2025"},
		{},
		{"Date", "Voucher name", "Customer Account Name", "Item Name", "Quantity", "Rate", "Gross"},
		{"2025-07-14", "Sales", "Acme Traders", "Widget", "3", "50", "150"},
	})

	facts := report.ParseSales(grid)

	require.Len(t, facts, 1)
	require.NotNil(t, facts[0].CustomerName)
	assert.Equal(t, "Acme Traders", *facts[0].CustomerName)
	assert.True(t, facts[0].Gross.Equal(decimal.NewFromInt(150)))
}

func TestParseSales_DropsTrailingTotalRow(t *testing.T) {
	grid := gridFromStrings([][]string{
		{"Date", "Customer Account Name", "Gross"},
		{"2025-07-01", "Acme Traders", "150"},
		{"2025-07-02", "Binary Mart", "75"},
		{"", "Grand Total", "225"},
	})

	facts := report.ParseSales(grid)

	require.Len(t, facts, 2)
	assert.Equal(t, "Binary Mart", *facts[1].CustomerName)
}

func TestParseSales_DaySerialDate(t *testing.T) {
	// 45852 days past 1899-12-30 is 2025-07-14.
	grid := gridFromStrings([][]string{
		{"Date", "Customer Account Name", "Gross"},
		{"45852.25", "Acme Traders", "150"},
	})

	facts := report.ParseSales(grid)

	require.Len(t, facts, 1)
	require.NotNil(t, facts[0].Date)
	assert.Equal(t, time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC), *facts[0].Date)
}

func TestParseSales_UnparseableDateIsNil(t *testing.T) {
	grid := gridFromStrings([][]string{
		{"Date", "Customer Account Name", "Gross"},
		{"sometime in July", "Acme Traders", "150"},
	})

	facts := report.ParseSales(grid)

	require.Len(t, facts, 1)
	assert.Nil(t, facts[0].Date)
}

func TestParseSales_MalformedNumbersDefaultToZero(t *testing.T) {
	grid := gridFromStrings([][]string{
		{"Date", "Customer Account Name", "Quantity", "Rate", "Gross"},
		{"2025-07-01", "Acme Traders", "n/a", "", "abc"},
	})

	facts := report.ParseSales(grid)

	require.Len(t, facts, 1)
	assert.True(t, facts[0].Quantity.IsZero())
	assert.True(t, facts[0].Rate.IsZero())
	assert.True(t, facts[0].Gross.IsZero())
}

func TestParseSales_ShortRowPaddedWithEmpty(t *testing.T) {
	grid := gridFromStrings([][]string{
		{"Date", "Customer Account Name", "Item Name", "Gross"},
		{"2025-07-01", "Acme Traders"},
	})

	facts := report.ParseSales(grid)

	require.Len(t, facts, 1)
	assert.Nil(t, facts[0].ItemName)
	assert.True(t, facts[0].Gross.IsZero())
}

func TestParseProfit_PercentSuffixStripped(t *testing.T) {
	grid := gridFromStrings([][]string{
		{"Date", "CustomerAC.Name", "Gross", "Gross Profit", "GP Margin%"},
		{"2025-07-01", "Acme Traders", "200", "50", "25%"},
	})

	facts := report.ParseProfit(grid)

	require.Len(t, facts, 1)
	assert.True(t, facts[0].GpMarginPct.Equal(decimal.NewFromInt(25)))
	assert.True(t, facts[0].GrossProfit.Equal(decimal.NewFromInt(50)))
}

func TestParseStock_Buckets(t *testing.T) {
	grid := gridFromStrings([][]string{
		{"Particulars", "Warehouse", "Total Quantity", "Total Value", "0-30 Quantity", "0-30 Value", "> 360 Quantity", "> 360 Value"},
		{"Widget", "Main", "10", "500", "4", "200", "1", "50"},
		{"Total", "", "10", "500", "4", "200", "1", "50"},
	})

	facts := report.ParseStock(grid)

	require.Len(t, facts, 1)
	assert.Equal(t, "Widget", *facts[0].Particulars)
	assert.True(t, facts[0].Age0to30.Quantity.Equal(decimal.NewFromInt(4)))
	assert.True(t, facts[0].Age0to30.Value.Equal(decimal.NewFromInt(200)))
	assert.True(t, facts[0].AgeOver360.Value.Equal(decimal.NewFromInt(50)))
	assert.True(t, facts[0].Age31to60.Quantity.IsZero())
}
