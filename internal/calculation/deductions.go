package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/internal/config"
	"github.com/gonzalestax/taxengine/internal/domain"
	"github.com/gonzalestax/taxengine/pkg/money"
)

// DeductionCalculator computes the standard/itemized choice and the QBI
// deduction.
type DeductionCalculator struct {
	Config *config.TaxYearConfig
}

// NewDeductionCalculator creates a deduction calculator for one tax year.
func NewDeductionCalculator(cfg *config.TaxYearConfig) *DeductionCalculator {
	return &DeductionCalculator{Config: cfg}
}

// StandardDeduction is the base table amount plus age/blindness add-ons for
// taxpayer and spouse, plus the flat senior add-on for filers 65 and older
// who are not itemizing.
func (dc *DeductionCalculator) StandardDeduction(ret *domain.TaxReturn) (decimal.Decimal, error) {
	base, err := dc.Config.StandardDeduction.For(ret.FilingStatus)
	if err != nil {
		return decimal.Zero, err
	}

	addOn := dc.Config.AdditionalStandardDeduction.For(ret.FilingStatus)
	additional := decimal.Zero

	if ret.Taxpayer.AgeAtYearEnd(ret.TaxYear) >= dc.Config.SeniorAge {
		additional = additional.Add(addOn)
	}
	if ret.Taxpayer.IsBlind {
		additional = additional.Add(addOn)
	}

	// Spouse add-ons apply only on a joint return.
	if ret.Spouse != nil && ret.FilingStatus == domain.MarriedFilingJointly {
		married := dc.Config.AdditionalStandardDeduction.Married
		if ret.Spouse.AgeAtYearEnd(ret.TaxYear) >= dc.Config.SeniorAge {
			additional = additional.Add(married)
		}
		if ret.Spouse.IsBlind {
			additional = additional.Add(married)
		}
	}

	if ret.Taxpayer.AgeAtYearEnd(ret.TaxYear) >= dc.Config.SeniorAge {
		additional = additional.Add(dc.Config.SeniorDeduction)
	}

	return money.Round(base.Add(additional)), nil
}

// ItemizedTotal applies the per-category limitations: the 7.5%-of-AGI
// medical floor, the SALT cap, the auto-loan interest sub-cap, and the
// 60%-of-AGI charitable ceiling.
func (dc *DeductionCalculator) ItemizedTotal(itemized *domain.ItemizedDeductions, agi decimal.Decimal) decimal.Decimal {
	medicalFloor := money.Round(agi.Mul(dc.Config.MedicalAGIFloorRate))
	medical := decimal.Max(itemized.MedicalDentalExpenses.Sub(medicalFloor), decimal.Zero)

	maxCharitable := money.Round(agi.Mul(dc.Config.CharitableAGILimitRate))
	charitable := decimal.Min(itemized.TotalCharitable(), maxCharitable)

	total := medical.
		Add(itemized.SALTDeduction(dc.Config.SALTCap)).
		Add(itemized.InterestDeduction(dc.Config.AutoLoanInterestCap)).
		Add(charitable).
		Add(itemized.CasualtyTheftLosses).
		Add(itemized.GamblingLosses).
		Add(itemized.OtherDeductions)

	return money.Round(total)
}

// Deduction picks the larger of standard and itemized. Itemized wins only
// when itemized deductions were actually supplied and strictly exceed the
// standard amount; ties go to standard.
func (dc *DeductionCalculator) Deduction(ret *domain.TaxReturn, agi decimal.Decimal) (decimal.Decimal, domain.DeductionKind, error) {
	standard, err := dc.StandardDeduction(ret)
	if err != nil {
		return decimal.Zero, "", err
	}

	if ret.ItemizedDeductions != nil {
		itemized := dc.ItemizedTotal(ret.ItemizedDeductions, agi)
		if itemized.GreaterThan(standard) {
			return itemized, domain.DeductionItemized, nil
		}
	}

	return standard, domain.DeductionStandard, nil
}

// QBIDeduction is 20% of the positive self-employment net profits (Section
// 199A pass-through income). The statutory high-income phaseout above the
// per-status thresholds is intentionally not implemented; the thresholds
// are carried in the rate tables for when it is.
func (dc *DeductionCalculator) QBIDeduction(ret *domain.TaxReturn) decimal.Decimal {
	qbi := ret.QualifiedBusinessIncome()
	if qbi.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return money.Round(qbi.Mul(dc.Config.QBIRate))
}
