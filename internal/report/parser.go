// Package report turns raw spreadsheet grids into typed fact records.
//
// Exported monthly reports carry title and metadata rows above the real
// header, inconsistent column counts and a trailing grand-total row. The
// parser is lenient by design: it locates the header row by its anchor
// column, aligns every later row against the header labels and coerces
// field values with safe defaults instead of failing.
package report

import (
	"strings"

	"github.com/retailpulse/bi_backend/internal/core/domain"
)

const (
	anchorDate        = "Date"
	anchorParticulars = "Particulars"
)

// record is one data row rebuilt as a header-label → cell mapping.
type record map[string]Cell

// field looks a value up by trimmed header label, returning an empty cell
// when the column is absent from this report layout.
func (r record) field(label string) Cell {
	if c, ok := r[label]; ok {
		return c
	}
	return Cell{Kind: CellEmpty}
}

// buildRecords scans the grid top-down for the first row containing the
// anchor label, then maps every subsequent row positionally onto the header
// labels. Rows above the header (report titles, filters, metadata) are
// discarded. When no header row exists the result is empty, never an error:
// the caller treats zero records as "nothing to ingest".
//
// A trailing row whose joined cell text contains "total" (case-insensitive)
// is dropped; exports append a grand-total row that must not become data.
func buildRecords(grid [][]Cell, anchor string) []record {
	headerIdx := -1
	var labels []string
	for i, row := range grid {
		for _, c := range row {
			if strings.TrimSpace(c.String()) == anchor {
				headerIdx = i
				break
			}
		}
		if headerIdx >= 0 {
			labels = make([]string, len(grid[i]))
			for j, c := range grid[i] {
				labels[j] = strings.TrimSpace(c.String())
			}
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	var records []record
	for _, row := range grid[headerIdx+1:] {
		rec := make(record, len(labels))
		for j, label := range labels {
			if label == "" {
				continue
			}
			if j < len(row) {
				rec[label] = row[j]
			} else {
				rec[label] = Cell{Kind: CellEmpty}
			}
		}
		records = append(records, rec)
	}

	if n := len(records); n > 0 && isTotalRow(records[n-1]) {
		records = records[:n-1]
	}
	return records
}

func isTotalRow(rec record) bool {
	var parts []string
	for _, c := range rec {
		if s := c.String(); s != "" {
			parts = append(parts, s)
		}
	}
	joined := strings.ToLower(strings.Join(parts, " "))
	return strings.Contains(joined, "total")
}

// ParseSales parses a sales day book grid. PeriodMonth and PeriodYear are
// left zero; the ingestion batch stamps them.
func ParseSales(grid [][]Cell) []domain.SalesFact {
	records := buildRecords(grid, anchorDate)
	facts := make([]domain.SalesFact, 0, len(records))
	for _, rec := range records {
		facts = append(facts, domain.SalesFact{
			Date:             toDate(rec.field("Date")),
			VoucherName:      toText(rec.field("Voucher name")),
			Voucher:          toText(rec.field("Voucher")),
			CustomerName:     toText(rec.field("Customer Account Name")),
			ItemName:         toText(rec.field("Item Name")),
			Quantity:         toDecimal(rec.field("Quantity")),
			Rate:             toDecimal(rec.field("Rate")),
			Gross:            toDecimal(rec.field("Gross")),
			TaxableValue:     toDecimal(rec.field("Taxable Value")),
			AvgPurchasePrice: toDecimal(rec.field("Avg Purchase Price")),
			AvgPPGross:       toDecimal(rec.field("AVG PP Gross")),
			ProfitMargin:     toDecimal(rec.field("Profit Margin")),
		})
	}
	return facts
}

// ParseProfit parses a profit margin report grid.
func ParseProfit(grid [][]Cell) []domain.ProfitMarginFact {
	records := buildRecords(grid, anchorDate)
	facts := make([]domain.ProfitMarginFact, 0, len(records))
	for _, rec := range records {
		facts = append(facts, domain.ProfitMarginFact{
			Date:             toDate(rec.field("Date")),
			CustomerName:     toText(rec.field("CustomerAC.Name")),
			DocNo:            toText(rec.field("DocNo")),
			ItemName:         toText(rec.field("Item.Name")),
			UnitName:         toText(rec.field("Unit.Name")),
			Quantity:         toDecimal(rec.field("Quantity")),
			Rate:             toDecimal(rec.field("Rate")),
			Gross:            toDecimal(rec.field("Gross")),
			TaxableValue:     toDecimal(rec.field("Taxable Value")),
			AvgPurchasePrice: toDecimal(rec.field("Avg Purchase Price")),
			AppGross:         toDecimal(rec.field("APP Gross")),
			GrossProfit:      toDecimal(rec.field("Gross Profit")),
			GpMarginPct:      toPercent(rec.field("GP Margin%")),
		})
	}
	return facts
}

// ParseStock parses a stock ageing analysis grid.
func ParseStock(grid [][]Cell) []domain.StockAgeingFact {
	records := buildRecords(grid, anchorParticulars)
	facts := make([]domain.StockAgeingFact, 0, len(records))
	for _, rec := range records {
		facts = append(facts, domain.StockAgeingFact{
			Particulars: toText(rec.field("Particulars")),
			Warehouse:   toText(rec.field("Warehouse")),
			TotalQty:    toDecimal(rec.field("Total Quantity")),
			TotalValue:  toDecimal(rec.field("Total Value")),
			Age0to30:    bucket(rec, "0-30"),
			Age31to60:   bucket(rec, "31-60"),
			Age61to90:   bucket(rec, "61-90"),
			Age91to120:  bucket(rec, "91-120"),
			Age121to150: bucket(rec, "121-150"),
			Age151to180: bucket(rec, "151-180"),
			Age181to360: bucket(rec, "181-360"),
			AgeOver360:  bucket(rec, "> 360"),
		})
	}
	return facts
}

func bucket(rec record, band string) domain.AgeBucket {
	return domain.AgeBucket{
		Quantity: toDecimal(rec.field(band + " Quantity")),
		Value:    toDecimal(rec.field(band + " Value")),
	}
}
