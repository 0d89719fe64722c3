package domain

import "github.com/shopspring/decimal"

// TaxResult is the full computed outcome for one return. The output
// formatters consume it as plain named decimal fields; the OBBBA amounts are
// broken out because downstream consumers need them separately from the
// aggregated totals.
type TaxResult struct {
	TaxYear      int          `json:"tax_year" yaml:"tax_year"`
	FilingStatus FilingStatus `json:"filing_status" yaml:"filing_status"`

	GrossIncome         decimal.Decimal `json:"gross_income" yaml:"gross_income"`
	Adjustments         decimal.Decimal `json:"adjustments" yaml:"adjustments"`
	AdjustedGrossIncome decimal.Decimal `json:"adjusted_gross_income" yaml:"adjusted_gross_income"`
	DeductionAmount     decimal.Decimal `json:"deduction_amount" yaml:"deduction_amount"`
	DeductionKind       DeductionKind   `json:"deduction_kind" yaml:"deduction_kind"`
	QBIDeduction        decimal.Decimal `json:"qbi_deduction" yaml:"qbi_deduction"`
	TaxableIncome       decimal.Decimal `json:"taxable_income" yaml:"taxable_income"`
	TaxLiability        decimal.Decimal `json:"tax_liability" yaml:"tax_liability"`

	TotalNonrefundableCredits decimal.Decimal `json:"total_nonrefundable_credits" yaml:"total_nonrefundable_credits"`
	TotalRefundableCredits    decimal.Decimal `json:"total_refundable_credits" yaml:"total_refundable_credits"`
	TaxAfterCredits           decimal.Decimal `json:"tax_after_credits" yaml:"tax_after_credits"`

	FederalWithheld   decimal.Decimal `json:"federal_withheld" yaml:"federal_withheld"`
	EstimatedPayments decimal.Decimal `json:"estimated_payments" yaml:"estimated_payments"`
	TotalPayments     decimal.Decimal `json:"total_payments" yaml:"total_payments"`
	RefundAmount      decimal.Decimal `json:"refund_amount" yaml:"refund_amount"`
	AmountOwed        decimal.Decimal `json:"amount_owed" yaml:"amount_owed"`

	// OBBBA break-outs.
	TipsDeduction     decimal.Decimal `json:"tips_deduction" yaml:"tips_deduction"`
	OvertimeDeduction decimal.Decimal `json:"overtime_deduction" yaml:"overtime_deduction"`
	ChildTaxCredit    decimal.Decimal `json:"child_tax_credit" yaml:"child_tax_credit"`

	Credits TaxCredits `json:"credits" yaml:"credits"`
}

// Breakdown flattens the numeric fields into the named-decimal map the
// downstream builders consume. The non-decimal fields (TaxYear,
// FilingStatus, DeductionKind) travel on the struct itself; formatters emit
// them alongside the map.
func (r *TaxResult) Breakdown() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"gross_income":                r.GrossIncome,
		"adjustments":                 r.Adjustments,
		"adjusted_gross_income":       r.AdjustedGrossIncome,
		"deduction_amount":            r.DeductionAmount,
		"qbi_deduction":               r.QBIDeduction,
		"taxable_income":              r.TaxableIncome,
		"tax_liability":               r.TaxLiability,
		"total_nonrefundable_credits": r.TotalNonrefundableCredits,
		"total_refundable_credits":    r.TotalRefundableCredits,
		"tax_after_credits":           r.TaxAfterCredits,
		"federal_withheld":            r.FederalWithheld,
		"estimated_payments":          r.EstimatedPayments,
		"total_payments":              r.TotalPayments,
		"refund_amount":               r.RefundAmount,
		"amount_owed":                 r.AmountOwed,
		"tips_deduction":              r.TipsDeduction,
		"overtime_deduction":          r.OvertimeDeduction,
		"child_tax_credit":            r.ChildTaxCredit,
	}
}
