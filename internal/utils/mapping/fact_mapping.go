package mapping

import (
	"github.com/retailpulse/bi_backend/internal/core/domain"
	"github.com/retailpulse/bi_backend/internal/models"
)

// ToModelSalesFact converts a domain.SalesFact to its DB model.
func ToModelSalesFact(f domain.SalesFact) models.SalesFact {
	return models.SalesFact{
		ID:               f.ID,
		PeriodMonth:      f.PeriodMonth,
		PeriodYear:       f.PeriodYear,
		Date:             f.Date,
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

// ToDomainSalesFact converts a DB model back to the domain type.
func ToDomainSalesFact(m models.SalesFact) domain.SalesFact {
	return domain.SalesFact{
		ID:               m.ID,
		PeriodMonth:      m.PeriodMonth,
		PeriodYear:       m.PeriodYear,
		Date:             m.Date,
		VoucherName:      m.VoucherName,
		Voucher:          m.Voucher,
		CustomerName:     m.CustomerName,
		ItemName:         m.ItemName,
		Quantity:         m.Quantity,
		Rate:             m.Rate,
		Gross:            m.Gross,
		TaxableValue:     m.TaxableValue,
		AvgPurchasePrice: m.AvgPurchasePrice,
		AvgPPGross:       m.AvgPPGross,
		ProfitMargin:     m.ProfitMargin,
	}
}

// ToDomainSalesFactSlice converts a slice of sales fact models.
func ToDomainSalesFactSlice(ms []models.SalesFact) []domain.SalesFact {
	out := make([]domain.SalesFact, len(ms))
	for i, m := range ms {
		out[i] = ToDomainSalesFact(m)
	}
	return out
}

// ToModelProfitMarginFact converts a domain.ProfitMarginFact to its DB model.
func ToModelProfitMarginFact(f domain.ProfitMarginFact) models.ProfitMarginFact {
	return models.ProfitMarginFact{
		ID:               f.ID,
		PeriodMonth:      f.PeriodMonth,
		PeriodYear:       f.PeriodYear,
		Date:             f.Date,
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

// ToDomainProfitMarginFact converts a DB model back to the domain type.
func ToDomainProfitMarginFact(m models.ProfitMarginFact) domain.ProfitMarginFact {
	return domain.ProfitMarginFact{
		ID:               m.ID,
		PeriodMonth:      m.PeriodMonth,
		PeriodYear:       m.PeriodYear,
		Date:             m.Date,
		CustomerName:     m.CustomerName,
		DocNo:            m.DocNo,
		ItemName:         m.ItemName,
		UnitName:         m.UnitName,
		Quantity:         m.Quantity,
		Rate:             m.Rate,
		Gross:            m.Gross,
		TaxableValue:     m.TaxableValue,
		AvgPurchasePrice: m.AvgPurchasePrice,
		AppGross:         m.AppGross,
		GrossProfit:      m.GrossProfit,
		GpMarginPct:      m.GpMarginPct,
	}
}

// ToDomainProfitMarginFactSlice converts a slice of profit margin fact models.
func ToDomainProfitMarginFactSlice(ms []models.ProfitMarginFact) []domain.ProfitMarginFact {
	out := make([]domain.ProfitMarginFact, len(ms))
	for i, m := range ms {
		out[i] = ToDomainProfitMarginFact(m)
	}
	return out
}

// ToModelStockAgeingFact flattens the domain age buckets into the q*/v*
// column pairs of the "StockAgeingFact" table.
func ToModelStockAgeingFact(f domain.StockAgeingFact) models.StockAgeingFact {
	return models.StockAgeingFact{
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

// ToDomainStockAgeingFact converts a DB model back to the domain type.
func ToDomainStockAgeingFact(m models.StockAgeingFact) domain.StockAgeingFact {
	return domain.StockAgeingFact{
		ID:          m.ID,
		PeriodMonth: m.PeriodMonth,
		PeriodYear:  m.PeriodYear,
		Particulars: m.Particulars,
		Warehouse:   m.Warehouse,
		TotalQty:    m.TotalQty,
		TotalValue:  m.TotalValue,
		Age0to30:    domain.AgeBucket{Quantity: m.Q0to30, Value: m.V0to30},
		Age31to60:   domain.AgeBucket{Quantity: m.Q31to60, Value: m.V31to60},
		Age61to90:   domain.AgeBucket{Quantity: m.Q61to90, Value: m.V61to90},
		Age91to120:  domain.AgeBucket{Quantity: m.Q91to120, Value: m.V91to120},
		Age121to150: domain.AgeBucket{Quantity: m.Q121to150, Value: m.V121to150},
		Age151to180: domain.AgeBucket{Quantity: m.Q151to180, Value: m.V151to180},
		Age181to360: domain.AgeBucket{Quantity: m.Q181to360, Value: m.V181to360},
		AgeOver360:  domain.AgeBucket{Quantity: m.QOver360, Value: m.VOver360},
	}
}

// ToDomainStockAgeingFactSlice converts a slice of stock ageing fact models.
func ToDomainStockAgeingFactSlice(ms []models.StockAgeingFact) []domain.StockAgeingFact {
	out := make([]domain.StockAgeingFact, len(ms))
	for i, m := range ms {
		out[i] = ToDomainStockAgeingFact(m)
	}
	return out
}
