package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CellKind discriminates the tagged union of spreadsheet cell values.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

// Cell is one spreadsheet cell after decoding. Number is only meaningful when
// Kind is CellNumber; Raw always holds the original text of the cell.
type Cell struct {
	Kind   CellKind
	Raw    string
	Number float64
}

// CellFromRaw classifies a raw cell string as produced by excelize with
// RawCellValue enabled. Excel stores dates as numeric day serials, so a
// date-styled cell arrives here as a CellNumber.
func CellFromRaw(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellEmpty}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Raw: trimmed, Number: n}
	}
	return Cell{Kind: CellText, Raw: trimmed}
}

// String returns the textual content of the cell, empty for CellEmpty.
func (c Cell) String() string {
	return c.Raw
}

// excelEpoch is the day-serial origin used by spreadsheet files.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// toDecimal coerces a cell to a decimal, yielding zero for empty, textual or
// otherwise non-numeric input. It never fails: malformed spreadsheet cells
// degrade to a default instead of aborting the batch.
func toDecimal(c Cell) decimal.Decimal {
	if c.Kind == CellEmpty {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(c.Raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// toPercent strips a trailing "%" before numeric coercion.
func toPercent(c Cell) decimal.Decimal {
	if c.Kind == CellText {
		c = CellFromRaw(strings.TrimSuffix(c.Raw, "%"))
	}
	return toDecimal(c)
}

// toText returns the cell text, nil when the cell is empty.
func toText(c Cell) *string {
	if c.Kind == CellEmpty {
		return nil
	}
	s := c.Raw
	return &s
}

// dateLayouts are the textual date shapes seen in exported reports.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"01/02/2006",
	"2-Jan-2006",
	"2-Jan-06",
	time.RFC3339,
}

// toDate coerces a cell to a date. Numeric cells are treated as day serials
// from the 1899-12-30 epoch with any fractional time-of-day ignored; textual
// cells are tried against the known layouts. Unparseable input yields nil.
func toDate(c Cell) *time.Time {
	switch c.Kind {
	case CellNumber:
		t := excelEpoch.AddDate(0, 0, int(c.Number))
		return &t
	case CellText:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, c.Raw); err == nil {
				t = t.UTC()
				return &t
			}
		}
	}
	return nil
}
