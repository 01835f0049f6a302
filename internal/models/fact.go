package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesFact mirrors the "SalesFact" table. Column identifiers are mixed-case
// and quoted in SQL.
type SalesFact struct {
	ID               int64
	PeriodMonth      int
	PeriodYear       int
	Date             *time.Time
	VoucherName      *string
	Voucher          *string
	CustomerName     *string
	ItemName         *string
	Quantity         decimal.Decimal
	Rate             decimal.Decimal
	Gross            decimal.Decimal
	TaxableValue     decimal.Decimal
	AvgPurchasePrice decimal.Decimal
	AvgPPGross       decimal.Decimal
	ProfitMargin     decimal.Decimal
}

// ProfitMarginFact mirrors the "ProfitMarginFact" table.
type ProfitMarginFact struct {
	ID               int64
	PeriodMonth      int
	PeriodYear       int
	Date             *time.Time
	CustomerName     *string
	DocNo            *string
	ItemName         *string
	UnitName         *string
	Quantity         decimal.Decimal
	Rate             decimal.Decimal
	Gross            decimal.Decimal
	TaxableValue     decimal.Decimal
	AvgPurchasePrice decimal.Decimal
	AppGross         decimal.Decimal
	GrossProfit      decimal.Decimal
	GpMarginPct      decimal.Decimal
}

// StockAgeingFact mirrors the "StockAgeingFact" table, with the age buckets
// flattened into the q*/v* column pairs the table declares.
type StockAgeingFact struct {
	ID          int64
	PeriodMonth int
	PeriodYear  int
	Particulars *string
	Warehouse   *string
	TotalQty    decimal.Decimal
	TotalValue  decimal.Decimal
	Q0to30      decimal.Decimal
	V0to30      decimal.Decimal
	Q31to60     decimal.Decimal
	V31to60     decimal.Decimal
	Q61to90     decimal.Decimal
	V61to90     decimal.Decimal
	Q91to120    decimal.Decimal
	V91to120    decimal.Decimal
	Q121to150   decimal.Decimal
	V121to150   decimal.Decimal
	Q151to180   decimal.Decimal
	V151to180   decimal.Decimal
	Q181to360   decimal.Decimal
	V181to360   decimal.Decimal
	QOver360    decimal.Decimal
	VOver360    decimal.Decimal
}
