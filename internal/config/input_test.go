package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonzalestax/taxengine/internal/domain"
)

func validReturn() *domain.TaxReturn {
	return &domain.TaxReturn{
		TaxYear:      2025,
		FilingStatus: domain.Single,
		Taxpayer: domain.TaxpayerProfile{
			FirstName: "Maria",
			LastName:  "Gonzales",
			BirthDate: time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
		},
		W2Income: []domain.W2Income{
			{Box1Wages: decimal.NewFromInt(50000), Box2FederalWithheld: decimal.NewFromInt(6000)},
		},
	}
}

func TestValidateReturn_Valid(t *testing.T) {
	assert.NoError(t, ValidateReturn(validReturn()))
}

func TestValidateReturn_UnknownFilingStatus(t *testing.T) {
	ret := validReturn()
	ret.FilingStatus = "married"

	err := ValidateReturn(ret)
	var inputErr *InvalidInputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "filing_status", inputErr.Field)
}

func TestValidateReturn_SpouseRequired(t *testing.T) {
	ret := validReturn()
	ret.FilingStatus = domain.MarriedFilingJointly

	err := ValidateReturn(ret)
	var inputErr *InvalidInputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "spouse", inputErr.Field)

	ret.Spouse = &domain.TaxpayerProfile{BirthDate: time.Date(1991, time.March, 2, 0, 0, 0, 0, time.UTC)}
	assert.NoError(t, ValidateReturn(ret))
}

func TestValidateReturn_NegativeWithholding(t *testing.T) {
	ret := validReturn()
	ret.W2Income[0].Box2FederalWithheld = decimal.NewFromInt(-100)

	err := ValidateReturn(ret)
	var inputErr *InvalidInputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Field, "box_2_federal_withheld")
}

func TestValidateReturn_NegativePayments(t *testing.T) {
	ret := validReturn()
	ret.EstimatedPayments = decimal.NewFromInt(-1)
	assert.Error(t, ValidateReturn(ret))

	ret = validReturn()
	ret.AmountPaidWithExtension = decimal.NewFromInt(-1)
	assert.Error(t, ValidateReturn(ret))
}

func TestValidateReturn_DependentMonths(t *testing.T) {
	ret := validReturn()
	ret.Dependents = []domain.Dependent{{MonthsLivedWithTaxpayer: 13}}
	assert.Error(t, ValidateReturn(ret))
}

func TestReturnParser_LoadFromFile(t *testing.T) {
	content := `
tax_year: 2025
filing_status: single
taxpayer:
  first_name: Maria
  last_name: Gonzales
  birth_date: 1990-05-15T00:00:00Z
w2_income:
  - employer_name: Acme Corp
    box_1_wages: 50000
    box_2_federal_withheld: 6000
`
	filename := filepath.Join(t.TempDir(), "return.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))

	parser := NewReturnParser()
	ret, err := parser.LoadFromFile(filename)
	require.NoError(t, err)

	assert.Equal(t, 2025, ret.TaxYear)
	assert.Equal(t, domain.Single, ret.FilingStatus)
	require.Len(t, ret.W2Income, 1)
	assert.Equal(t, "50000.00", ret.W2Income[0].Box1Wages.StringFixed(2))
	assert.Equal(t, "6000.00", ret.TotalFederalWithheld().StringFixed(2))
}

func TestReturnParser_LoadFromFile_Missing(t *testing.T) {
	parser := NewReturnParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReturnParser_LoadFromFile_InvalidReturn(t *testing.T) {
	content := `
tax_year: 2025
filing_status: married_filing_jointly
taxpayer:
  birth_date: 1990-05-15T00:00:00Z
`
	filename := filepath.Join(t.TempDir(), "return.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))

	parser := NewReturnParser()
	_, err := parser.LoadFromFile(filename)
	require.Error(t, err)

	var inputErr *InvalidInputError
	assert.True(t, errors.As(err, &inputErr), "Validation error should unwrap")
}
