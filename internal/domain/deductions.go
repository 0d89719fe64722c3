package domain

import (
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/pkg/money"
)

// DeductionKind records which deduction the selector chose.
type DeductionKind string

const (
	DeductionStandard DeductionKind = "standard"
	DeductionItemized DeductionKind = "itemized"
)

// ItemizedDeductions holds the raw Schedule A amounts. The capped totals are
// derived on demand so the statutory caps stay in the rate configuration and
// the raw inputs are never overwritten.
type ItemizedDeductions struct {
	MedicalDentalExpenses decimal.Decimal `yaml:"medical_dental_expenses" json:"medical_dental_expenses"`

	StateLocalIncomeTax   decimal.Decimal `yaml:"state_local_income_tax" json:"state_local_income_tax"`
	StateLocalSalesTax    decimal.Decimal `yaml:"state_local_sales_tax" json:"state_local_sales_tax"`
	RealEstateTaxes       decimal.Decimal `yaml:"real_estate_taxes" json:"real_estate_taxes"`
	PersonalPropertyTaxes decimal.Decimal `yaml:"personal_property_taxes" json:"personal_property_taxes"`
	OtherTaxes            decimal.Decimal `yaml:"other_taxes" json:"other_taxes"`

	MortgageInterest   decimal.Decimal `yaml:"mortgage_interest" json:"mortgage_interest"`
	MortgagePoints     decimal.Decimal `yaml:"mortgage_points" json:"mortgage_points"`
	InvestmentInterest decimal.Decimal `yaml:"investment_interest" json:"investment_interest"`
	AutoLoanInterest   decimal.Decimal `yaml:"auto_loan_interest" json:"auto_loan_interest"`

	CashContributions      decimal.Decimal `yaml:"cash_contributions" json:"cash_contributions"`
	NoncashContributions   decimal.Decimal `yaml:"noncash_contributions" json:"noncash_contributions"`
	CarryoverContributions decimal.Decimal `yaml:"carryover_contributions" json:"carryover_contributions"`

	CasualtyTheftLosses decimal.Decimal `yaml:"casualty_theft_losses" json:"casualty_theft_losses"`
	GamblingLosses      decimal.Decimal `yaml:"gambling_losses" json:"gambling_losses"`
	OtherDeductions     decimal.Decimal `yaml:"other_deductions" json:"other_deductions"`
}

// SALTDeduction totals state and local taxes, capped at the statutory ceiling.
func (d ItemizedDeductions) SALTDeduction(cap decimal.Decimal) decimal.Decimal {
	total := money.Round(d.StateLocalIncomeTax.
		Add(d.StateLocalSalesTax).
		Add(d.RealEstateTaxes).
		Add(d.PersonalPropertyTaxes))
	return decimal.Min(total, cap)
}

// InterestDeduction totals deductible interest with the auto-loan sub-cap.
func (d ItemizedDeductions) InterestDeduction(autoLoanCap decimal.Decimal) decimal.Decimal {
	return money.Round(d.MortgageInterest.
		Add(d.MortgagePoints).
		Add(d.InvestmentInterest).
		Add(decimal.Min(d.AutoLoanInterest, autoLoanCap)))
}

// TotalCharitable is uncapped here; the AGI-percentage limit is applied by
// the deduction selector, which knows the filer's AGI.
func (d ItemizedDeductions) TotalCharitable() decimal.Decimal {
	return money.Round(d.CashContributions.
		Add(d.NoncashContributions).
		Add(d.CarryoverContributions))
}
