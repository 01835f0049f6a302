package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportKind identifies which monthly report a spreadsheet belongs to.
type ReportKind string

const (
	ReportSales   ReportKind = "sales"
	ReportProfit  ReportKind = "profit"
	ReportStock   ReportKind = "stock"
	ReportUnknown ReportKind = "unknown"
)

// PeriodFilter narrows dashboard reads to a reporting period.
// Nil fields mean "no filter on that dimension".
type PeriodFilter struct {
	Month *int
	Year  *int
}

// SalesFact is one row of the sales day book report. The reporting period
// (PeriodMonth, PeriodYear) is stamped from the upload batch, never derived
// from Date.
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

// ProfitMarginFact is one row of the profit margin report.
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

// AgeBucket is one (quantity, value) pair of the stock ageing report.
type AgeBucket struct {
	Quantity decimal.Decimal
	Value    decimal.Decimal
}

// StockAgeingFact is one row of the stock ageing analysis report, with eight
// fixed age bands.
type StockAgeingFact struct {
	ID          int64
	PeriodMonth int
	PeriodYear  int
	Particulars *string
	Warehouse   *string
	TotalQty    decimal.Decimal
	TotalValue  decimal.Decimal
	Age0to30    AgeBucket
	Age31to60   AgeBucket
	Age61to90   AgeBucket
	Age91to120  AgeBucket
	Age121to150 AgeBucket
	Age151to180 AgeBucket
	Age181to360 AgeBucket
	AgeOver360  AgeBucket
}

// CustomerGross is one entry of the top-customers ranking. Customer is nil
// when the underlying sales rows carry no customer name.
type CustomerGross struct {
	Customer *string
	Amount   decimal.Decimal
}
