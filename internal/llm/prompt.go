package llm

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// schemaContext describes the three fact tables with their exact quoted
// identifiers. It is the fixed, allow-listed schema the model may query.
const schemaContext = `
Tables (PostgreSQL - identifiers are case-sensitive when quoted):

1) "SalesFact"(
  "id", "periodMonth", "periodYear", "date", "voucherName", "voucher", "customerName",
  "itemName", "quantity", "rate", "gross", "taxableValue", "avgPurchasePrice", "avgPPGross", "profitMargin"
)

2) "ProfitMarginFact"(
  "id", "periodMonth", "periodYear", "date", "customerName", "docNo", "itemName", "unitName",
  "quantity", "rate", "gross", "taxableValue", "avgPurchasePrice", "appGross", "grossProfit", "gpMarginPct"
)

3) "StockAgeingFact"(
  "id", "periodMonth", "periodYear", "warehouse", "particulars", "totalQty", "totalValue",
  "q0_30", "v0_30", "q31_60", "v31_60", "q61_90", "v61_90", "q91_120", "v91_120",
  "q121_150", "v121_150", "q151_180", "v151_180", "q181_360", "v181_360", "q_gt_360", "v_gt_360"
)

Rules:
- ALWAYS wrap table names AND column names in double quotes exactly as shown.
- Prefer filtering by "periodMonth" / "periodYear" (not EXTRACT on "date").
- If the user specifies a month name and/or a year (e.g., "July 2025"), convert month to 1..12
  and include WHERE "periodMonth" = <m> AND "periodYear" = <y>.
- For "this month" / "previous month", use the provided temporal hints.
- Return ONLY ONE valid PostgreSQL SELECT statement. No prose. No code fences.
- Provide explicit aliases for aggregates (e.g., AS total_sales, AS total_profit).
`

var monthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var yearRe = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
var wordRe = regexp.MustCompile(`[a-zA-Z]+`)

// ExtractMonthYear pulls an explicit (month, year) pair out of free text,
// recognizing English month names plus a 4-digit 19xx/20xx year. Either
// result is nil when absent.
func ExtractMonthYear(text string) (*int, *int) {
	var month, year *int
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if m, ok := monthNames[w]; ok {
			month = &m
			break
		}
	}
	if y := yearRe.FindString(text); y != "" {
		var v int
		fmt.Sscanf(y, "%d", &v)
		year = &v
	}
	return month, year
}

// BuildSystemPrompt assembles the generation context: the fixed schema,
// temporal hints derived from now, and a pinned period filter when the
// question names an explicit month and year.
func BuildSystemPrompt(now time.Time, question string) string {
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	hints := fmt.Sprintf("Today=%s; thisMonth=%d; thisYear=%d; prevMonth=%d; prevYear=%d;",
		now.Format("2006-01-02"), int(now.Month()), now.Year(), int(prev.Month()), prev.Year())

	month, year := ExtractMonthYear(question)
	periodHint := `If month/year are mentioned, include WHERE "periodMonth"=<m> AND "periodYear"=<y>.`
	if month != nil && year != nil {
		periodHint = fmt.Sprintf(`User explicitly asked for month=%d and year=%d. Include WHERE "periodMonth"=%d AND "periodYear"=%d.`,
			*month, *year, *month, *year)
	}

	return strings.Join([]string{
		"You convert natural language to SQL for our BI app.",
		schemaContext,
		hints,
		periodHint,
	}, "\n")
}
