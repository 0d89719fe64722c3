package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/internal/config"
	"github.com/gonzalestax/taxengine/internal/domain"
	"github.com/gonzalestax/taxengine/pkg/money"
)

// CreditCalculator computes the engine-derived credits and passes the
// caller-supplied line items through unchanged.
type CreditCalculator struct {
	Config *config.TaxYearConfig
}

// NewCreditCalculator creates a credit calculator for one tax year.
func NewCreditCalculator(cfg *config.TaxYearConfig) *CreditCalculator {
	return &CreditCalculator{Config: cfg}
}

// ChildTaxCredit returns the total credit and its refundable portion. Above
// the filing-status AGI threshold the total is reduced by $50 for each
// $1,000 (or part thereof) of excess, floored at zero, and the refundable
// portion is capped at the reduced total.
func (cc *CreditCalculator) ChildTaxCredit(qualifyingChildren int, fs domain.FilingStatus, agi decimal.Decimal) (total, refundable decimal.Decimal, err error) {
	if qualifyingChildren == 0 {
		return decimal.Zero, decimal.Zero, nil
	}

	threshold, err := cc.Config.CTCPhaseoutThreshold.For(fs)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	count := decimal.NewFromInt(int64(qualifyingChildren))
	total = cc.Config.CTCPerChild.Mul(count)
	refundable = cc.Config.CTCRefundablePerChild.Mul(count)

	if agi.GreaterThan(threshold) {
		excess := agi.Sub(threshold)
		steps := excess.Div(decimal.NewFromInt(1000)).Ceil()
		reduction := money.Round(steps.Mul(cc.Config.CTCPhaseoutPer1000))
		total = decimal.Max(total.Sub(reduction), decimal.Zero)
		refundable = decimal.Min(refundable, total)
	}

	return money.Round(total), money.Round(refundable), nil
}

// EarnedIncomeCredit is the simplified linear approximation of the IRS
// lookup table: zero above the child-count/filing-status ceiling, otherwise
// the maximum credit scaled down in proportion to AGI. Filers with no
// earned income get nothing.
func (cc *CreditCalculator) EarnedIncomeCredit(ret *domain.TaxReturn, agi decimal.Decimal) decimal.Decimal {
	if EarnedIncome(ret).LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	// An absent table row has a zero ceiling; no credit, and no division
	// by zero below.
	params := cc.Config.EIC.For(ret.FilingStatus, ret.QualifyingChildrenCount())
	if !params.MaxAGI.GreaterThan(decimal.Zero) || agi.GreaterThan(params.MaxAGI) {
		return decimal.Zero
	}

	fraction := decimal.NewFromInt(1).Sub(agi.Div(params.MaxAGI))
	return money.Round(params.MaxCredit.Mul(fraction))
}

// Credits builds the full credit set for a return: the child tax credit
// split into nonrefundable and refundable portions, the flat other-dependent
// credit, the simplified earned income credit, and every caller-supplied
// line item copied through unchanged.
func (cc *CreditCalculator) Credits(ret *domain.TaxReturn, agi decimal.Decimal) (*domain.TaxCredits, error) {
	ctcTotal, ctcRefundable, err := cc.ChildTaxCredit(ret.QualifyingChildrenCount(), ret.FilingStatus, agi)
	if err != nil {
		return nil, err
	}

	credits := ret.Credits // copies the caller-supplied line items
	credits.ChildTaxCredit = ctcTotal.Sub(ctcRefundable)
	credits.ChildTaxCreditRefundable = ctcRefundable
	credits.OtherDependentCredit = money.Round(cc.Config.ODCPerDependent.Mul(decimal.NewFromInt(int64(ret.OtherDependentsCount()))))
	credits.EarnedIncomeCredit = cc.EarnedIncomeCredit(ret, agi)

	return &credits, nil
}
