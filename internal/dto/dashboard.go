package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/retailpulse/bi_backend/internal/core/domain"
)

// isoDate normalizes a stored date to canonical RFC 3339 text, nil when the
// row has no date.
func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// SalesRowResponse is one sales fact row as served to the dashboard.
type SalesRowResponse struct {
	ID               int64           `json:"id"`
	PeriodMonth      int             `json:"periodMonth"`
	PeriodYear       int             `json:"periodYear"`
	Date             *string         `json:"date"`
	VoucherName      *string         `json:"voucherName"`
	Voucher          *string         `json:"voucher"`
	CustomerName     *string         `json:"customerName"`
	ItemName         *string         `json:"itemName"`
	Quantity         decimal.Decimal `json:"quantity"`
	Rate             decimal.Decimal `json:"rate"`
	Gross            decimal.Decimal `json:"gross"`
	TaxableValue     decimal.Decimal `json:"taxableValue"`
	AvgPurchasePrice decimal.Decimal `json:"avgPurchasePrice"`
	AvgPPGross       decimal.Decimal `json:"avgPPGross"`
	ProfitMargin     decimal.Decimal `json:"profitMargin"`
}

// SalesDashboardResponse envelopes the sales monthly table read.
type SalesDashboardResponse struct {
	Data []SalesRowResponse `json:"data"`
}

// ToSalesDashboardResponse converts domain sales facts to the response DTO.
func ToSalesDashboardResponse(facts []domain.SalesFact) SalesDashboardResponse {
	rows := make([]SalesRowResponse, len(facts))
	for i, f := range facts {
		rows[i] = SalesRowResponse{
			ID:               f.ID,
			PeriodMonth:      f.PeriodMonth,
			PeriodYear:       f.PeriodYear,
			Date:             isoDate(f.Date),
			VoucherName:      f.VoucherName,
			Voucher:          f.Voucher,
			CustomerName:     f.CustomerName,
			ItemName:         f.ItemName,
			Quantity:         f.Quantity,
			Rate:             f.Rate,
			Gross:            f.Gross,
			TaxableValue:     f.TaxableValue,
			AvgPurchasePrice: f.AvgPurchasePrice,
			AvgPPGross:       f.AvgPPGross,
			ProfitMargin:     f.ProfitMargin,
		}
	}
	return SalesDashboardResponse{Data: rows}
}

// ProfitRowResponse is one profit margin fact row as served to the dashboard.
type ProfitRowResponse struct {
	ID               int64           `json:"id"`
	PeriodMonth      int             `json:"periodMonth"`
	PeriodYear       int             `json:"periodYear"`
	Date             *string         `json:"date"`
	CustomerName     *string         `json:"customerName"`
	DocNo            *string         `json:"docNo"`
	ItemName         *string         `json:"itemName"`
	UnitName         *string         `json:"unitName"`
	Quantity         decimal.Decimal `json:"quantity"`
	Rate             decimal.Decimal `json:"rate"`
	Gross            decimal.Decimal `json:"gross"`
	TaxableValue     decimal.Decimal `json:"taxableValue"`
	AvgPurchasePrice decimal.Decimal `json:"avgPurchasePrice"`
	AppGross         decimal.Decimal `json:"appGross"`
	GrossProfit      decimal.Decimal `json:"grossProfit"`
	GpMarginPct      decimal.Decimal `json:"gpMarginPct"`
}

// ProfitDashboardResponse envelopes the profit monthly table read.
type ProfitDashboardResponse struct {
	Data []ProfitRowResponse `json:"data"`
}

// ToProfitDashboardResponse converts domain profit facts to the response DTO.
func ToProfitDashboardResponse(facts []domain.ProfitMarginFact) ProfitDashboardResponse {
	rows := make([]ProfitRowResponse, len(facts))
	for i, f := range facts {
		rows[i] = ProfitRowResponse{
			ID:               f.ID,
			PeriodMonth:      f.PeriodMonth,
			PeriodYear:       f.PeriodYear,
			Date:             isoDate(f.Date),
			CustomerName:     f.CustomerName,
			DocNo:            f.DocNo,
			ItemName:         f.ItemName,
			UnitName:         f.UnitName,
			Quantity:         f.Quantity,
			Rate:             f.Rate,
			Gross:            f.Gross,
			TaxableValue:     f.TaxableValue,
			AvgPurchasePrice: f.AvgPurchasePrice,
			AppGross:         f.AppGross,
			GrossProfit:      f.GrossProfit,
			GpMarginPct:      f.GpMarginPct,
		}
	}
	return ProfitDashboardResponse{Data: rows}
}

// StockRowResponse is one stock ageing fact row as served to the dashboard,
// with the age bands flattened to the stored column names.
type StockRowResponse struct {
	ID          int64           `json:"id"`
	PeriodMonth int             `json:"periodMonth"`
	PeriodYear  int             `json:"periodYear"`
	Particulars *string         `json:"particulars"`
	Warehouse   *string         `json:"warehouse"`
	TotalQty    decimal.Decimal `json:"totalQty"`
	TotalValue  decimal.Decimal `json:"totalValue"`
	Q0to30      decimal.Decimal `json:"q0_30"`
	V0to30      decimal.Decimal `json:"v0_30"`
	Q31to60     decimal.Decimal `json:"q31_60"`
	V31to60     decimal.Decimal `json:"v31_60"`
	Q61to90     decimal.Decimal `json:"q61_90"`
	V61to90     decimal.Decimal `json:"v61_90"`
	Q91to120    decimal.Decimal `json:"q91_120"`
	V91to120    decimal.Decimal `json:"v91_120"`
	Q121to150   decimal.Decimal `json:"q121_150"`
	V121to150   decimal.Decimal `json:"v121_150"`
	Q151to180   decimal.Decimal `json:"q151_180"`
	V151to180   decimal.Decimal `json:"v151_180"`
	Q181to360   decimal.Decimal `json:"q181_360"`
	V181to360   decimal.Decimal `json:"v181_360"`
	QOver360    decimal.Decimal `json:"q_gt_360"`
	VOver360    decimal.Decimal `json:"v_gt_360"`
}

// StockDashboardResponse envelopes the stock monthly table read.
type StockDashboardResponse struct {
	Data []StockRowResponse `json:"data"`
}

// ToStockDashboardResponse converts domain stock facts to the response DTO.
func ToStockDashboardResponse(facts []domain.StockAgeingFact) StockDashboardResponse {
	rows := make([]StockRowResponse, len(facts))
	for i, f := range facts {
		rows[i] = StockRowResponse{
			ID:          f.ID,
			PeriodMonth: f.PeriodMonth,
			PeriodYear:  f.PeriodYear,
			Particulars: f.Particulars,
			Warehouse:   f.Warehouse,
			TotalQty:    f.TotalQty,
			TotalValue:  f.TotalValue,
			Q0to30:      f.Age0to30.Quantity,
			V0to30:      f.Age0to30.Value,
			Q31to60:     f.Age31to60.Quantity,
			V31to60:     f.Age31to60.Value,
			Q61to90:     f.Age61to90.Quantity,
			V61to90:     f.Age61to90.Value,
			Q91to120:    f.Age91to120.Quantity,
			V91to120:    f.Age91to120.Value,
			Q121to150:   f.Age121to150.Quantity,
			V121to150:   f.Age121to150.Value,
			Q151to180:   f.Age151to180.Quantity,
			V151to180:   f.Age151to180.Value,
			Q181to360:   f.Age181to360.Quantity,
			V181to360:   f.Age181to360.Value,
			QOver360:    f.AgeOver360.Quantity,
			VOver360:    f.AgeOver360.Value,
		}
	}
	return StockDashboardResponse{Data: rows}
}

// TopCustomerEntry is one (customer, amount) pair of the ranking.
type TopCustomerEntry struct {
	Customer string          `json:"customer"`
	Amount   decimal.Decimal `json:"amount"`
}

// TopCustomersResponse envelopes the top-customers ranking.
type TopCustomersResponse struct {
	Data []TopCustomerEntry `json:"data"`
}

// ToTopCustomersResponse converts the domain ranking to the response DTO.
func ToTopCustomersResponse(ranking []domain.CustomerGross) TopCustomersResponse {
	rows := make([]TopCustomerEntry, len(ranking))
	for i, entry := range ranking {
		customer := "Unknown"
		if entry.Customer != nil && *entry.Customer != "" {
			customer = *entry.Customer
		}
		rows[i] = TopCustomerEntry{Customer: customer, Amount: entry.Amount}
	}
	return TopCustomersResponse{Data: rows}
}
