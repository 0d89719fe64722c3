package domain

import (
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/pkg/money"
)

// TaxCredits carries the caller-supplied credit line items plus the two
// fields the engine computes itself (the child tax credit split). The child
// tax credit field holds only the nonrefundable remainder; the refundable
// portion lives in ChildTaxCreditRefundable.
type TaxCredits struct {
	ChildTaxCredit           decimal.Decimal `yaml:"child_tax_credit" json:"child_tax_credit"`
	ChildTaxCreditRefundable decimal.Decimal `yaml:"child_tax_credit_refundable" json:"child_tax_credit_refundable"`

	OtherDependentCredit decimal.Decimal `yaml:"other_dependent_credit" json:"other_dependent_credit"`
	EarnedIncomeCredit   decimal.Decimal `yaml:"earned_income_credit" json:"earned_income_credit"`

	AmericanOpportunityCredit decimal.Decimal `yaml:"american_opportunity_credit" json:"american_opportunity_credit"`
	LifetimeLearningCredit    decimal.Decimal `yaml:"lifetime_learning_credit" json:"lifetime_learning_credit"`
	RetirementSavingsCredit   decimal.Decimal `yaml:"retirement_savings_credit" json:"retirement_savings_credit"`
	ChildDependentCareCredit  decimal.Decimal `yaml:"child_dependent_care_credit" json:"child_dependent_care_credit"`
	ForeignTaxCredit          decimal.Decimal `yaml:"foreign_tax_credit" json:"foreign_tax_credit"`
	ResidentialEnergyCredit   decimal.Decimal `yaml:"residential_energy_credit" json:"residential_energy_credit"`
	ElectricVehicleCredit     decimal.Decimal `yaml:"electric_vehicle_credit" json:"electric_vehicle_credit"`
	OtherCredits              decimal.Decimal `yaml:"other_credits" json:"other_credits"`
}

// TotalNonrefundable sums the credits that may only reduce liability to zero.
func (c TaxCredits) TotalNonrefundable() decimal.Decimal {
	return money.Round(c.ChildTaxCredit.
		Add(c.OtherDependentCredit).
		Add(c.AmericanOpportunityCredit).
		Add(c.LifetimeLearningCredit).
		Add(c.RetirementSavingsCredit).
		Add(c.ChildDependentCareCredit).
		Add(c.ForeignTaxCredit).
		Add(c.ResidentialEnergyCredit).
		Add(c.ElectricVehicleCredit).
		Add(c.OtherCredits))
}

// TotalRefundable sums the credits paid out even past zero liability. The
// American Opportunity credit is 40% refundable.
func (c TaxCredits) TotalRefundable() decimal.Decimal {
	return money.Round(c.ChildTaxCreditRefundable.
		Add(c.EarnedIncomeCredit).
		Add(c.AmericanOpportunityCredit.Mul(decimal.NewFromFloat(0.40))))
}
