package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonzalestax/taxengine/internal/config"
	"github.com/gonzalestax/taxengine/internal/domain"
)

func TestChildTaxCredit_BelowThreshold(t *testing.T) {
	cc := NewCreditCalculator(config.TaxYear2025())

	// 350,000 AGI is still under the 400,000 joint threshold.
	total, refundable, err := cc.ChildTaxCredit(2, domain.MarriedFilingJointly, decimal.NewFromInt(350000))
	require.NoError(t, err)
	assert.Equal(t, "4400.00", total.StringFixed(2))
	assert.Equal(t, "3400.00", refundable.StringFixed(2))
}

func TestChildTaxCredit_Phaseout(t *testing.T) {
	cc := NewCreditCalculator(config.TaxYear2025())

	// AGI 50,000 over the joint threshold: 50 steps of $50.
	total, refundable, err := cc.ChildTaxCredit(2, domain.MarriedFilingJointly, decimal.NewFromInt(450000))
	require.NoError(t, err)
	assert.Equal(t, "1900.00", total.StringFixed(2))
	assert.Equal(t, "1900.00", refundable.StringFixed(2), "Refundable portion caps at the reduced total")
}

func TestChildTaxCredit_PartialThousandRoundsUp(t *testing.T) {
	cc := NewCreditCalculator(config.TaxYear2025())

	// One dollar over the threshold still costs a full $50 step.
	total, _, err := cc.ChildTaxCredit(1, domain.Single, decimal.NewFromInt(200001))
	require.NoError(t, err)
	assert.Equal(t, "2150.00", total.StringFixed(2))
}

func TestChildTaxCredit_FullyPhasedOut(t *testing.T) {
	cc := NewCreditCalculator(config.TaxYear2025())

	total, refundable, err := cc.ChildTaxCredit(1, domain.Single, decimal.NewFromInt(500000))
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.True(t, refundable.IsZero())
}

func TestChildTaxCredit_NoChildren(t *testing.T) {
	cc := NewCreditCalculator(config.TaxYear2025())

	total, refundable, err := cc.ChildTaxCredit(0, domain.Single, decimal.NewFromInt(50000))
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.True(t, refundable.IsZero())
}

func TestEarnedIncomeCredit_LinearScaling(t *testing.T) {
	cc := NewCreditCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		FilingStatus: domain.Single,
		W2Income: []domain.W2Income{
			{Box1Wages: decimal.NewFromInt(23280)},
		},
		Dependents: []domain.Dependent{
			{QualifiesForChildCredit: true},
		},
	}

	// AGI at exactly half the one-child ceiling yields half the maximum.
	got := cc.EarnedIncomeCredit(ret, decimal.NewFromInt(23280))
	assert.Equal(t, "2106.50", got.StringFixed(2))
}

func TestEarnedIncomeCredit_AboveCeiling(t *testing.T) {
	cc := NewCreditCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		FilingStatus: domain.Single,
		W2Income: []domain.W2Income{
			{Box1Wages: decimal.NewFromInt(60000)},
		},
	}

	got := cc.EarnedIncomeCredit(ret, decimal.NewFromInt(60000))
	assert.True(t, got.IsZero())
}

func TestEarnedIncomeCredit_MissingTableRow(t *testing.T) {
	cfg := config.TaxYear2025()
	cfg.EIC = config.EICTable{}
	cc := NewCreditCalculator(cfg)

	ret := &domain.TaxReturn{
		FilingStatus: domain.Single,
		W2Income: []domain.W2Income{
			{Box1Wages: decimal.NewFromInt(5000)},
		},
	}

	// Zero AGI against a zero ceiling must yield no credit, not a
	// division by zero.
	got := cc.EarnedIncomeCredit(ret, decimal.Zero)
	assert.True(t, got.IsZero())
}

func TestEarnedIncomeCredit_RequiresEarnedIncome(t *testing.T) {
	cc := NewCreditCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		FilingStatus: domain.Single,
		RentalIncome: decimal.NewFromInt(10000),
	}

	got := cc.EarnedIncomeCredit(ret, decimal.NewFromInt(10000))
	assert.True(t, got.IsZero(), "Investment-only filers get no earned income credit")
}

func TestCredits_BuildsFullSet(t *testing.T) {
	cc := NewCreditCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		FilingStatus: domain.MarriedFilingJointly,
		W2Income: []domain.W2Income{
			{Box1Wages: decimal.NewFromInt(150000)},
		},
		Dependents: []domain.Dependent{
			{QualifiesForChildCredit: true},
			{QualifiesForChildCredit: true},
			{QualifiesForOtherDepCredit: true},
		},
		Credits: domain.TaxCredits{
			ForeignTaxCredit: decimal.NewFromInt(250),
		},
	}

	credits, err := cc.Credits(ret, decimal.NewFromInt(150000))
	require.NoError(t, err)

	assert.Equal(t, "1000.00", credits.ChildTaxCredit.StringFixed(2), "Nonrefundable remainder of the CTC")
	assert.Equal(t, "3400.00", credits.ChildTaxCreditRefundable.StringFixed(2))
	assert.Equal(t, "500.00", credits.OtherDependentCredit.StringFixed(2))
	assert.Equal(t, "250.00", credits.ForeignTaxCredit.StringFixed(2), "Caller-supplied items pass through")
	assert.True(t, credits.EarnedIncomeCredit.IsZero(), "AGI above the EIC ceiling")
}
