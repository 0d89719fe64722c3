package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/internal/domain"
	"github.com/gonzalestax/taxengine/pkg/money"
)

// GrossIncome sums every income source on the return (IRC Section 61). A
// pure function over the raw fields: absent sources contribute zero, and
// self-employment losses reduce the total. Social Security benefits are
// statutorily tax-exempt and contribute zero regardless of amount.
func GrossIncome(ret *domain.TaxReturn) decimal.Decimal {
	total := ret.TotalW2Wages().
		Add(ret.SelfEmploymentNetProfit()).
		Add(ret.TipIncome).
		Add(ret.OvertimeIncome).
		Add(ret.Income1099(domain.Form1099INT)).
		Add(ret.Income1099(domain.Form1099DIV)).
		Add(ret.Other1099Income()).
		Add(ret.CapitalGainsShort).
		Add(ret.CapitalGainsLong).
		Add(ret.RentalIncome).
		Add(ret.OtherIncome)
	return money.Round(total)
}

// InvestmentIncome is the net-investment-income-tax base: interest,
// dividends, both capital gain components, and rental income.
func InvestmentIncome(ret *domain.TaxReturn) decimal.Decimal {
	return ret.Income1099(domain.Form1099INT).
		Add(ret.Income1099(domain.Form1099DIV)).
		Add(ret.CapitalGainsShort).
		Add(ret.CapitalGainsLong).
		Add(ret.RentalIncome)
}

// EarnedIncome is W-2 wages plus self-employment net profit, the base for
// the earned income credit and the additional Medicare tax.
func EarnedIncome(ret *domain.TaxReturn) decimal.Decimal {
	return ret.TotalW2Wages().Add(ret.SelfEmploymentNetProfit())
}
