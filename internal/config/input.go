package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/gonzalestax/taxengine/internal/domain"
)

// ReturnParser handles parsing of tax-return input files.
type ReturnParser struct{}

// NewReturnParser creates a new return parser.
func NewReturnParser() *ReturnParser {
	return &ReturnParser{}
}

// LoadFromFile loads a tax return from a YAML file and validates it.
func (rp *ReturnParser) LoadFromFile(filename string) (*domain.TaxReturn, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var ret domain.TaxReturn
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ValidateReturn(&ret); err != nil {
		return nil, fmt.Errorf("return validation failed: %w", err)
	}

	return &ret, nil
}

// ValidateReturn checks a return record for structurally impossible input.
// The engine calls this before computing, so records arriving from the
// persistence layer get the same checks as records loaded from files.
func ValidateReturn(ret *domain.TaxReturn) error {
	if !ret.FilingStatus.Valid() {
		return &InvalidInputError{Field: "filing_status", Reason: fmt.Sprintf("unknown filing status %q", ret.FilingStatus)}
	}
	if ret.FilingStatus.RequiresSpouse() && ret.Spouse == nil {
		return &InvalidInputError{Field: "spouse", Reason: fmt.Sprintf("filing status %q requires a spouse profile", ret.FilingStatus)}
	}
	if ret.Taxpayer.BirthDate.IsZero() {
		return &InvalidInputError{Field: "taxpayer.birth_date", Reason: "birth date is required"}
	}
	if ret.Spouse != nil && ret.Spouse.BirthDate.IsZero() {
		return &InvalidInputError{Field: "spouse.birth_date", Reason: "birth date is required"}
	}

	for i, w2 := range ret.W2Income {
		if w2.Box2FederalWithheld.LessThan(decimal.Zero) {
			return &InvalidInputError{Field: fmt.Sprintf("w2_income[%d].box_2_federal_withheld", i), Reason: "withholding cannot be negative"}
		}
	}
	for i, f := range ret.Form1099s {
		if f.FederalWithheld.LessThan(decimal.Zero) {
			return &InvalidInputError{Field: fmt.Sprintf("form_1099s[%d].federal_withheld", i), Reason: "withholding cannot be negative"}
		}
	}
	if ret.EstimatedPayments.LessThan(decimal.Zero) {
		return &InvalidInputError{Field: "estimated_payments", Reason: "payments cannot be negative"}
	}
	if ret.AmountPaidWithExtension.LessThan(decimal.Zero) {
		return &InvalidInputError{Field: "amount_paid_with_extension", Reason: "payments cannot be negative"}
	}

	for i, d := range ret.Dependents {
		if d.MonthsLivedWithTaxpayer < 0 || d.MonthsLivedWithTaxpayer > 12 {
			return &InvalidInputError{Field: fmt.Sprintf("dependents[%d].months_lived_with_taxpayer", i), Reason: "must be between 0 and 12"}
		}
	}

	return nil
}
