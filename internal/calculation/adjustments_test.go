package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonzalestax/taxengine/internal/config"
	"github.com/gonzalestax/taxengine/internal/domain"
)

func TestTipsDeduction_CappedAtMax(t *testing.T) {
	ac := NewAdjustmentCalculator(config.TaxYear2025())

	got, err := ac.TipsDeduction(decimal.NewFromInt(30000), decimal.NewFromInt(150000), domain.Single)
	require.NoError(t, err)
	assert.Equal(t, "25000.00", got.StringFixed(2), "Tips deduction caps at 25,000")
}

func TestTipsDeduction_Phaseout(t *testing.T) {
	ac := NewAdjustmentCalculator(config.TaxYear2025())

	// Gross income 40,000 over the single threshold: 10% reduction.
	got, err := ac.TipsDeduction(decimal.NewFromInt(20000), decimal.NewFromInt(200000), domain.Single)
	require.NoError(t, err)
	assert.Equal(t, "16000.00", got.StringFixed(2))
}

func TestTipsDeduction_PhasedOutEntirely(t *testing.T) {
	ac := NewAdjustmentCalculator(config.TaxYear2025())

	got, err := ac.TipsDeduction(decimal.NewFromInt(10000), decimal.NewFromInt(300000), domain.Single)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "Deduction floors at zero, got %s", got)
}

func TestTipsDeduction_JointThreshold(t *testing.T) {
	ac := NewAdjustmentCalculator(config.TaxYear2025())

	// 200,000 gross is under the joint threshold, so no phaseout.
	got, err := ac.TipsDeduction(decimal.NewFromInt(20000), decimal.NewFromInt(200000), domain.MarriedFilingJointly)
	require.NoError(t, err)
	assert.Equal(t, "20000.00", got.StringFixed(2))
}

func TestTipsDeduction_NoTips(t *testing.T) {
	ac := NewAdjustmentCalculator(config.TaxYear2025())

	got, err := ac.TipsDeduction(decimal.Zero, decimal.NewFromInt(50000), domain.Single)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestOvertimeDeduction_Cliff(t *testing.T) {
	ac := NewAdjustmentCalculator(config.TaxYear2025())

	overtime := decimal.NewFromInt(5000)

	below := ac.OvertimeDeduction(overtime, decimal.NewFromInt(99999))
	assert.Equal(t, "5000.00", below.StringFixed(2), "Just below the cliff keeps the deduction")

	at := ac.OvertimeDeduction(overtime, decimal.NewFromInt(100000))
	assert.True(t, at.IsZero(), "At the cliff the deduction vanishes entirely")
}

func TestOvertimeDeduction_CappedAtMax(t *testing.T) {
	ac := NewAdjustmentCalculator(config.TaxYear2025())

	got := ac.OvertimeDeduction(decimal.NewFromInt(15000), decimal.NewFromInt(50000))
	assert.Equal(t, "10000.00", got.StringFixed(2))
}

func TestAdjustments_CappedLineItems(t *testing.T) {
	ac := NewAdjustmentCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		EducatorExpenses:    decimal.NewFromInt(500),
		StudentLoanInterest: decimal.NewFromInt(3000),
	}
	seTax := decimal.NewFromInt(1000)

	got := ac.Adjustments(ret, seTax, decimal.Zero, decimal.Zero)
	// 300 (educator cap) + 500 (half SE tax) + 2500 (student loan cap).
	assert.Equal(t, "3300.00", got.StringFixed(2))
}

func TestAdjustments_IncludesOBBBADeductions(t *testing.T) {
	ac := NewAdjustmentCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		HSADeduction: decimal.NewFromInt(4000),
		IRADeduction: decimal.NewFromInt(7000),
	}

	got := ac.Adjustments(ret, decimal.Zero, decimal.NewFromInt(25000), decimal.NewFromInt(10000))
	assert.Equal(t, "46000.00", got.StringFixed(2))
}
