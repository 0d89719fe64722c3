package domain

import (
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/pkg/money"
)

// TaxReturn is the root aggregate the engine reads. The engine writes only
// the derived block at the bottom; raw input fields are never mutated. The
// aggregate is constructed by the persistence layer and passed by reference
// into the pipeline on every recalculation.
type TaxReturn struct {
	TaxYear      int          `yaml:"tax_year" json:"tax_year"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`

	Taxpayer   TaxpayerProfile  `yaml:"taxpayer" json:"taxpayer"`
	Spouse     *TaxpayerProfile `yaml:"spouse,omitempty" json:"spouse,omitempty"`
	Dependents []Dependent      `yaml:"dependents,omitempty" json:"dependents,omitempty"`

	W2Income       []W2Income             `yaml:"w2_income,omitempty" json:"w2_income,omitempty"`
	Form1099s      []Form1099             `yaml:"form_1099s,omitempty" json:"form_1099s,omitempty"`
	SelfEmployment []SelfEmploymentIncome `yaml:"self_employment,omitempty" json:"self_employment,omitempty"`

	TipIncome            decimal.Decimal `yaml:"tip_income" json:"tip_income"`
	OvertimeIncome       decimal.Decimal `yaml:"overtime_income" json:"overtime_income"`
	SocialSecurityIncome decimal.Decimal `yaml:"social_security_income" json:"social_security_income"`
	CapitalGainsShort    decimal.Decimal `yaml:"capital_gains_short" json:"capital_gains_short"`
	CapitalGainsLong     decimal.Decimal `yaml:"capital_gains_long" json:"capital_gains_long"`
	RentalIncome         decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	OtherIncome          decimal.Decimal `yaml:"other_income" json:"other_income"`

	EducatorExpenses              decimal.Decimal `yaml:"educator_expenses" json:"educator_expenses"`
	HSADeduction                  decimal.Decimal `yaml:"hsa_deduction" json:"hsa_deduction"`
	SelfEmploymentHealthInsurance decimal.Decimal `yaml:"self_employment_health_insurance" json:"self_employment_health_insurance"`
	SEPSimpleQualified            decimal.Decimal `yaml:"sep_simple_qualified" json:"sep_simple_qualified"`
	StudentLoanInterest           decimal.Decimal `yaml:"student_loan_interest" json:"student_loan_interest"`
	IRADeduction                  decimal.Decimal `yaml:"ira_deduction" json:"ira_deduction"`

	ItemizedDeductions *ItemizedDeductions `yaml:"itemized_deductions,omitempty" json:"itemized_deductions,omitempty"`

	Credits TaxCredits `yaml:"credits" json:"credits"`

	EstimatedPayments       decimal.Decimal `yaml:"estimated_payments" json:"estimated_payments"`
	AmountPaidWithExtension decimal.Decimal `yaml:"amount_paid_with_extension" json:"amount_paid_with_extension"`

	// Derived fields, overwritten by the engine on every calculation.
	GrossIncome         decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	Adjustments         decimal.Decimal `yaml:"adjustments" json:"adjustments"`
	AdjustedGrossIncome decimal.Decimal `yaml:"adjusted_gross_income" json:"adjusted_gross_income"`
	DeductionAmount     decimal.Decimal `yaml:"deduction_amount" json:"deduction_amount"`
	DeductionKind       DeductionKind   `yaml:"deduction_kind" json:"deduction_kind"`
	TaxableIncome       decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	TaxLiability        decimal.Decimal `yaml:"tax_liability" json:"tax_liability"`
	TotalCredits        decimal.Decimal `yaml:"total_credits" json:"total_credits"`
	TotalPayments       decimal.Decimal `yaml:"total_payments" json:"total_payments"`
	RefundAmount        decimal.Decimal `yaml:"refund_amount" json:"refund_amount"`
	AmountOwed          decimal.Decimal `yaml:"amount_owed" json:"amount_owed"`
}

// TotalW2Wages sums box 1 across all W-2s.
func (tr *TaxReturn) TotalW2Wages() decimal.Decimal {
	total := decimal.Zero
	for _, w2 := range tr.W2Income {
		total = total.Add(w2.Box1Wages)
	}
	return money.Round(total)
}

// TotalFederalWithheld sums W-2 box 2 and 1099 federal withholding.
func (tr *TaxReturn) TotalFederalWithheld() decimal.Decimal {
	total := decimal.Zero
	for _, w2 := range tr.W2Income {
		total = total.Add(w2.Box2FederalWithheld)
	}
	for _, f := range tr.Form1099s {
		total = total.Add(f.FederalWithheld)
	}
	return money.Round(total)
}

// SelfEmploymentNetProfit sums net profit across all businesses; individual
// losses reduce the total.
func (tr *TaxReturn) SelfEmploymentNetProfit() decimal.Decimal {
	total := decimal.Zero
	for _, se := range tr.SelfEmployment {
		total = total.Add(se.NetProfit())
	}
	return total
}

// QualifiedBusinessIncome sums only the profitable businesses; losses do not
// offset other businesses' qualified income here.
func (tr *TaxReturn) QualifiedBusinessIncome() decimal.Decimal {
	total := decimal.Zero
	for _, se := range tr.SelfEmployment {
		if profit := se.NetProfit(); profit.GreaterThan(decimal.Zero) {
			total = total.Add(profit)
		}
	}
	return total
}

// Income1099 returns the total 1099 amount for the given form type.
func (tr *TaxReturn) Income1099(formType string) decimal.Decimal {
	total := decimal.Zero
	for _, f := range tr.Form1099s {
		if f.FormType == formType {
			total = total.Add(f.Amount)
		}
	}
	return total
}

// Other1099Income totals 1099 amounts that are neither interest nor dividends.
func (tr *TaxReturn) Other1099Income() decimal.Decimal {
	total := decimal.Zero
	for _, f := range tr.Form1099s {
		if f.FormType != Form1099INT && f.FormType != Form1099DIV {
			total = total.Add(f.Amount)
		}
	}
	return total
}

// QualifyingChildrenCount counts dependents flagged for the child tax credit.
func (tr *TaxReturn) QualifyingChildrenCount() int {
	n := 0
	for _, d := range tr.Dependents {
		if d.QualifiesForChildCredit {
			n++
		}
	}
	return n
}

// OtherDependentsCount counts dependents flagged for the other-dependent credit.
func (tr *TaxReturn) OtherDependentsCount() int {
	n := 0
	for _, d := range tr.Dependents {
		if d.QualifiesForOtherDepCredit {
			n++
		}
	}
	return n
}
