package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/internal/config"
	"github.com/gonzalestax/taxengine/internal/domain"
	"github.com/gonzalestax/taxengine/pkg/money"
)

// LiabilityCalculator computes the four additive pieces of total tax:
// bracket tax, self-employment tax, preferential capital-gains tax, and the
// two surtaxes (NIIT and additional Medicare).
type LiabilityCalculator struct {
	Config *config.TaxYearConfig
}

// NewLiabilityCalculator creates a liability calculator for one tax year.
func NewLiabilityCalculator(cfg *config.TaxYearConfig) *LiabilityCalculator {
	return &LiabilityCalculator{Config: cfg}
}

// BracketTax walks the progressive schedule. Each bracket's contribution is
// rounded before accumulating; rounding only the final sum can differ by a
// cent at bracket boundaries.
func (lc *LiabilityCalculator) BracketTax(taxableIncome decimal.Decimal, fs domain.FilingStatus) (decimal.Decimal, error) {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	schedule, err := lc.Config.Brackets.For(fs)
	if err != nil {
		return decimal.Zero, err
	}

	tax := decimal.Zero
	previousBound := decimal.Zero
	for _, bracket := range schedule {
		if taxableIncome.LessThanOrEqual(previousBound) {
			break
		}
		upper := bracket.UpperBound
		if upper.IsZero() {
			upper = taxableIncome // terminal bracket
		}
		inBracket := decimal.Min(taxableIncome, upper).Sub(previousBound)
		if inBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(money.Round(inBracket.Mul(bracket.Rate)))
		}
		previousBound = upper
	}

	return money.Round(tax), nil
}

// SelfEmploymentTax is Social Security plus Medicare on net self-employment
// earnings (92.35% of net profit). The Social Security portion is capped at
// the wage base; Medicare is not. Each piece is rounded before summing.
// A net loss across all businesses owes nothing.
func (lc *LiabilityCalculator) SelfEmploymentTax(ret *domain.TaxReturn) decimal.Decimal {
	profit := ret.SelfEmploymentNetProfit()
	if profit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	netSEEarnings := money.Round(profit.Mul(lc.Config.SENetEarningsRate))
	ssBase := decimal.Min(netSEEarnings, lc.Config.SESocialSecurityWageBase)
	ssTax := money.Round(ssBase.Mul(lc.Config.SESocialSecurityRate))
	medicareTax := money.Round(netSEEarnings.Mul(lc.Config.SEMedicareRate))

	return money.Round(ssTax.Add(medicareTax))
}

// CapitalGainsTax applies the 0/15/20% preferential rate to long-term gains.
// The applicable rate is a step function of taxable income against the
// filing-status tiers, not a blend across them.
func (lc *LiabilityCalculator) CapitalGainsTax(longTermGains, taxableIncome decimal.Decimal, fs domain.FilingStatus) (decimal.Decimal, error) {
	if longTermGains.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	tiers, err := lc.Config.CapitalGains.For(fs)
	if err != nil {
		return decimal.Zero, err
	}

	switch {
	case taxableIncome.LessThanOrEqual(tiers.ZeroRateMax):
		return decimal.Zero, nil
	case taxableIncome.LessThanOrEqual(tiers.FifteenRateMax):
		return money.Round(longTermGains.Mul(lc.Config.CapitalGainsMidRate)), nil
	default:
		return money.Round(longTermGains.Mul(lc.Config.CapitalGainsTopRate)), nil
	}
}

// NIIT is 3.8% of the lesser of net investment income and the AGI excess
// over the filing-status threshold; zero when AGI is at or below it.
func (lc *LiabilityCalculator) NIIT(ret *domain.TaxReturn, agi decimal.Decimal) (decimal.Decimal, error) {
	threshold, err := lc.Config.NIITThreshold.For(ret.FilingStatus)
	if err != nil {
		return decimal.Zero, err
	}
	if agi.LessThanOrEqual(threshold) {
		return decimal.Zero, nil
	}

	excess := agi.Sub(threshold)
	base := decimal.Min(InvestmentIncome(ret), excess)
	return money.Round(base.Mul(lc.Config.NIITRate)), nil
}

// AdditionalMedicareTax is 0.9% of earned income (W-2 wages plus SE net
// profit) above the filing-status threshold.
func (lc *LiabilityCalculator) AdditionalMedicareTax(ret *domain.TaxReturn) (decimal.Decimal, error) {
	threshold, err := lc.Config.AdditionalMedicareThreshold.For(ret.FilingStatus)
	if err != nil {
		return decimal.Zero, err
	}

	earned := EarnedIncome(ret)
	if earned.LessThanOrEqual(threshold) {
		return decimal.Zero, nil
	}

	return money.Round(earned.Sub(threshold).Mul(lc.Config.AdditionalMedicareRate)), nil
}

// TaxLiability sums the independently computed pieces. The SE tax is passed
// in because the adjustment stage already computed it for the half-deduction.
func (lc *LiabilityCalculator) TaxLiability(ret *domain.TaxReturn, taxableIncome, agi, seTax decimal.Decimal) (decimal.Decimal, error) {
	bracketTax, err := lc.BracketTax(taxableIncome, ret.FilingStatus)
	if err != nil {
		return decimal.Zero, err
	}
	capGainsTax, err := lc.CapitalGainsTax(ret.CapitalGainsLong, taxableIncome, ret.FilingStatus)
	if err != nil {
		return decimal.Zero, err
	}
	niit, err := lc.NIIT(ret, agi)
	if err != nil {
		return decimal.Zero, err
	}
	additionalMedicare, err := lc.AdditionalMedicareTax(ret)
	if err != nil {
		return decimal.Zero, err
	}

	total := bracketTax.Add(seTax).Add(capGainsTax).Add(niit).Add(additionalMedicare)
	return money.Round(total), nil
}
