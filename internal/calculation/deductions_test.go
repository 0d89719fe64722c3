package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonzalestax/taxengine/internal/config"
	"github.com/gonzalestax/taxengine/internal/domain"
)

func birthYear(year int) time.Time {
	return time.Date(year, time.May, 15, 0, 0, 0, 0, time.UTC)
}

func TestStandardDeduction_Base(t *testing.T) {
	dc := NewDeductionCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		TaxYear:      2025,
		FilingStatus: domain.Single,
		Taxpayer:     domain.TaxpayerProfile{BirthDate: birthYear(1990)},
	}

	got, err := dc.StandardDeduction(ret)
	require.NoError(t, err)
	assert.Equal(t, "14600.00", got.StringFixed(2))
}

func TestStandardDeduction_SeniorSingle(t *testing.T) {
	dc := NewDeductionCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		TaxYear:      2025,
		FilingStatus: domain.Single,
		Taxpayer:     domain.TaxpayerProfile{BirthDate: birthYear(1950)},
	}

	got, err := dc.StandardDeduction(ret)
	require.NoError(t, err)
	// 14600 base + 1950 age add-on + 6000 senior deduction.
	assert.Equal(t, "22550.00", got.StringFixed(2))
}

func TestStandardDeduction_SeniorBornDecember31(t *testing.T) {
	dc := NewDeductionCalculator(config.TaxYear2025())

	// 1960 is a leap year; the December 31 birthday must still count as
	// reached by year end, keeping the age-65 add-ons.
	ret := &domain.TaxReturn{
		TaxYear:      2025,
		FilingStatus: domain.Single,
		Taxpayer:     domain.TaxpayerProfile{BirthDate: time.Date(1960, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}

	got, err := dc.StandardDeduction(ret)
	require.NoError(t, err)
	assert.Equal(t, "22550.00", got.StringFixed(2))
}

func TestStandardDeduction_JointSeniorCouple(t *testing.T) {
	dc := NewDeductionCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		TaxYear:      2025,
		FilingStatus: domain.MarriedFilingJointly,
		Taxpayer:     domain.TaxpayerProfile{BirthDate: birthYear(1955)},
		Spouse:       &domain.TaxpayerProfile{BirthDate: birthYear(1955)},
	}

	got, err := dc.StandardDeduction(ret)
	require.NoError(t, err)
	// 29200 base + 1550 each age add-on + 6000 senior deduction.
	assert.Equal(t, "38300.00", got.StringFixed(2))
}

func TestStandardDeduction_Blindness(t *testing.T) {
	dc := NewDeductionCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		TaxYear:      2025,
		FilingStatus: domain.Single,
		Taxpayer:     domain.TaxpayerProfile{BirthDate: birthYear(1990), IsBlind: true},
	}

	got, err := dc.StandardDeduction(ret)
	require.NoError(t, err)
	assert.Equal(t, "16550.00", got.StringFixed(2))
}

func TestItemizedTotal_AppliesLimitations(t *testing.T) {
	dc := NewDeductionCalculator(config.TaxYear2025())

	itemized := &domain.ItemizedDeductions{
		MedicalDentalExpenses: decimal.NewFromInt(10000),
		StateLocalIncomeTax:   decimal.NewFromInt(30000),
		RealEstateTaxes:       decimal.NewFromInt(15000),
		MortgageInterest:      decimal.NewFromInt(10000),
		CashContributions:     decimal.NewFromInt(70000),
	}
	agi := decimal.NewFromInt(100000)

	got := dc.ItemizedTotal(itemized, agi)
	// Medical above the 7.5% floor: 2500. SALT capped: 40000.
	// Interest: 10000. Charitable capped at 60% of AGI: 60000.
	assert.Equal(t, "112500.00", got.StringFixed(2))
}

func TestDeduction_TieGoesToStandard(t *testing.T) {
	dc := NewDeductionCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		TaxYear:      2025,
		FilingStatus: domain.Single,
		Taxpayer:     domain.TaxpayerProfile{BirthDate: birthYear(1990)},
		ItemizedDeductions: &domain.ItemizedDeductions{
			OtherDeductions: decimal.NewFromInt(14600),
		},
	}

	amount, kind, err := dc.Deduction(ret, decimal.NewFromInt(50000))
	require.NoError(t, err)
	assert.Equal(t, domain.DeductionStandard, kind, "Equal amounts should choose standard")
	assert.Equal(t, "14600.00", amount.StringFixed(2))
}

func TestDeduction_ItemizedWhenLarger(t *testing.T) {
	dc := NewDeductionCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		TaxYear:      2025,
		FilingStatus: domain.Single,
		Taxpayer:     domain.TaxpayerProfile{BirthDate: birthYear(1990)},
		ItemizedDeductions: &domain.ItemizedDeductions{
			MortgageInterest:    decimal.NewFromInt(18000),
			StateLocalIncomeTax: decimal.NewFromInt(9000),
		},
	}

	amount, kind, err := dc.Deduction(ret, decimal.NewFromInt(120000))
	require.NoError(t, err)
	assert.Equal(t, domain.DeductionItemized, kind)
	assert.Equal(t, "27000.00", amount.StringFixed(2))
}

func TestQBIDeduction(t *testing.T) {
	dc := NewDeductionCalculator(config.TaxYear2025())

	ret := &domain.TaxReturn{
		SelfEmployment: []domain.SelfEmploymentIncome{
			{GrossReceipts: decimal.NewFromInt(50000)},
		},
	}
	assert.Equal(t, "10000.00", dc.QBIDeduction(ret).StringFixed(2))

	loss := &domain.TaxReturn{
		SelfEmployment: []domain.SelfEmploymentIncome{
			{GrossReceipts: decimal.NewFromInt(5000), ContractLabor: decimal.NewFromInt(9000)},
		},
	}
	assert.True(t, dc.QBIDeduction(loss).IsZero(), "No QBI deduction on a net loss")
}
