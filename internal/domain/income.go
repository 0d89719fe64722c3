package domain

import (
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/pkg/money"
)

// Recognized 1099 form types. Any other type is aggregated as "other" income.
const (
	Form1099INT  = "1099-INT"
	Form1099DIV  = "1099-DIV"
	Form1099NEC  = "1099-NEC"
	Form1099MISC = "1099-MISC"
)

// W2Income is a single Form W-2 Wage and Tax Statement.
type W2Income struct {
	EmployerName            string          `yaml:"employer_name" json:"employer_name"`
	EmployerEIN             string          `yaml:"employer_ein,omitempty" json:"employer_ein,omitempty"`
	Box1Wages               decimal.Decimal `yaml:"box_1_wages" json:"box_1_wages"`
	Box2FederalWithheld     decimal.Decimal `yaml:"box_2_federal_withheld" json:"box_2_federal_withheld"`
	Box3SocialSecurityWages decimal.Decimal `yaml:"box_3_social_security_wages,omitempty" json:"box_3_social_security_wages,omitempty"`
	Box5MedicareWages       decimal.Decimal `yaml:"box_5_medicare_wages,omitempty" json:"box_5_medicare_wages,omitempty"`
}

// Form1099 is a generic information return; the form type decides which
// income bucket the amount lands in.
type Form1099 struct {
	FormType        string          `yaml:"form_type" json:"form_type"`
	PayerName       string          `yaml:"payer_name" json:"payer_name"`
	Amount          decimal.Decimal `yaml:"amount" json:"amount"`
	FederalWithheld decimal.Decimal `yaml:"federal_withheld" json:"federal_withheld"`
}

// SelfEmploymentIncome is a Schedule C ledger for one business. Net profit is
// derived, never stored: gross income minus total expenses, where meals are
// 50% deductible and the home-office amount counts as an expense.
type SelfEmploymentIncome struct {
	BusinessName          string `yaml:"business_name,omitempty" json:"business_name,omitempty"`
	PrincipalBusinessCode string `yaml:"principal_business_code,omitempty" json:"principal_business_code,omitempty"`

	GrossReceipts        decimal.Decimal `yaml:"gross_receipts" json:"gross_receipts"`
	ReturnsAndAllowances decimal.Decimal `yaml:"returns_and_allowances" json:"returns_and_allowances"`
	OtherIncome          decimal.Decimal `yaml:"other_income" json:"other_income"`
	CostOfGoodsSold      decimal.Decimal `yaml:"cost_of_goods_sold" json:"cost_of_goods_sold"`

	Advertising        decimal.Decimal `yaml:"advertising" json:"advertising"`
	CarAndTruck        decimal.Decimal `yaml:"car_and_truck" json:"car_and_truck"`
	ContractLabor      decimal.Decimal `yaml:"contract_labor" json:"contract_labor"`
	Depreciation       decimal.Decimal `yaml:"depreciation" json:"depreciation"`
	Insurance          decimal.Decimal `yaml:"insurance" json:"insurance"`
	LegalProfessional  decimal.Decimal `yaml:"legal_professional" json:"legal_professional"`
	OfficeExpense      decimal.Decimal `yaml:"office_expense" json:"office_expense"`
	RepairsMaintenance decimal.Decimal `yaml:"repairs_maintenance" json:"repairs_maintenance"`
	Supplies           decimal.Decimal `yaml:"supplies" json:"supplies"`
	TaxesLicenses      decimal.Decimal `yaml:"taxes_licenses" json:"taxes_licenses"`
	Travel             decimal.Decimal `yaml:"travel" json:"travel"`
	Meals              decimal.Decimal `yaml:"meals" json:"meals"`
	Utilities          decimal.Decimal `yaml:"utilities" json:"utilities"`
	Wages              decimal.Decimal `yaml:"wages" json:"wages"`
	OtherExpenses      decimal.Decimal `yaml:"other_expenses" json:"other_expenses"`

	HomeOfficeDeduction decimal.Decimal `yaml:"home_office_deduction" json:"home_office_deduction"`
}

// GrossIncome is receipts less returns plus other income, less cost of goods.
func (se SelfEmploymentIncome) GrossIncome() decimal.Decimal {
	return money.Round(se.GrossReceipts.
		Sub(se.ReturnsAndAllowances).
		Add(se.OtherIncome).
		Sub(se.CostOfGoodsSold))
}

// TotalExpenses sums the expense ledger. Meals enter at 50%.
func (se SelfEmploymentIncome) TotalExpenses() decimal.Decimal {
	total := se.Advertising.
		Add(se.CarAndTruck).
		Add(se.ContractLabor).
		Add(se.Depreciation).
		Add(se.Insurance).
		Add(se.LegalProfessional).
		Add(se.OfficeExpense).
		Add(se.RepairsMaintenance).
		Add(se.Supplies).
		Add(se.TaxesLicenses).
		Add(se.Travel).
		Add(se.Meals.Mul(decimal.NewFromFloat(0.50))).
		Add(se.Utilities).
		Add(se.Wages).
		Add(se.OtherExpenses).
		Add(se.HomeOfficeDeduction)
	return money.Round(total)
}

// NetProfit may be negative; a loss flows through to gross income as-is.
func (se SelfEmploymentIncome) NetProfit() decimal.Decimal {
	return money.Round(se.GrossIncome().Sub(se.TotalExpenses()))
}
