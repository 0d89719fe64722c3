package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/internal/config"
	"github.com/gonzalestax/taxengine/internal/domain"
	"github.com/gonzalestax/taxengine/pkg/money"
)

// AdjustmentCalculator computes above-the-line reductions to gross income.
type AdjustmentCalculator struct {
	Config *config.TaxYearConfig
}

// NewAdjustmentCalculator creates an adjustment calculator for one tax year.
func NewAdjustmentCalculator(cfg *config.TaxYearConfig) *AdjustmentCalculator {
	return &AdjustmentCalculator{Config: cfg}
}

// TipsDeduction applies the no-tax-on-tips provision: the deduction is tip
// income capped at the statutory maximum, reduced by 10% of the amount by
// which gross income exceeds the filing-status threshold, floored at zero.
func (ac *AdjustmentCalculator) TipsDeduction(tipIncome, grossIncome decimal.Decimal, fs domain.FilingStatus) (decimal.Decimal, error) {
	if tipIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	threshold, err := ac.Config.TipsPhaseoutThreshold.For(fs)
	if err != nil {
		return decimal.Zero, err
	}

	deduction := decimal.Min(tipIncome, ac.Config.TipsDeductionMax)
	if grossIncome.GreaterThan(threshold) {
		excess := grossIncome.Sub(threshold)
		phaseout := money.Round(excess.Mul(ac.Config.TipsPhaseoutRate))
		deduction = decimal.Max(deduction.Sub(phaseout), decimal.Zero)
	}

	return money.Round(deduction), nil
}

// OvertimeDeduction applies the no-tax-on-overtime provision. Filers whose
// total W-2 wages reach the wage cliff get nothing at all; this is a hard
// cliff in the statute, not a smooth phaseout.
func (ac *AdjustmentCalculator) OvertimeDeduction(overtimeIncome, totalW2Wages decimal.Decimal) decimal.Decimal {
	if overtimeIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if totalW2Wages.GreaterThanOrEqual(ac.Config.OvertimeWageCliff) {
		return decimal.Zero
	}
	return money.Round(decimal.Min(overtimeIncome, ac.Config.OvertimeDeductionMax))
}

// Adjustments totals the above-the-line deductions. The SE tax and the two
// OBBBA deductions are passed in because earlier pipeline stages already
// computed them; half of the SE tax is deductible.
func (ac *AdjustmentCalculator) Adjustments(ret *domain.TaxReturn, seTax, tipsDeduction, overtimeDeduction decimal.Decimal) decimal.Decimal {
	total := decimal.Min(ret.EducatorExpenses, ac.Config.EducatorExpenseCap).
		Add(ret.HSADeduction).
		Add(money.Round(seTax.Mul(decimal.NewFromFloat(0.5)))).
		Add(ret.SelfEmploymentHealthInsurance).
		Add(ret.SEPSimpleQualified).
		Add(decimal.Min(ret.StudentLoanInterest, ac.Config.StudentLoanInterestCap)).
		Add(ret.IRADeduction).
		Add(tipsDeduction).
		Add(overtimeDeduction)
	return money.Round(total)
}
