package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonzalestax/taxengine/internal/domain"
)

func sampleResult() *domain.TaxResult {
	return &domain.TaxResult{
		TaxYear:             2025,
		FilingStatus:        domain.Single,
		GrossIncome:         decimal.NewFromInt(50000),
		AdjustedGrossIncome: decimal.NewFromInt(50000),
		DeductionAmount:     decimal.NewFromInt(14600),
		DeductionKind:       domain.DeductionStandard,
		TaxableIncome:       decimal.NewFromInt(35400),
		TaxLiability:        decimal.RequireFromString("4016.00"),
		TaxAfterCredits:     decimal.RequireFromString("4016.00"),
		FederalWithheld:     decimal.NewFromInt(6000),
		TotalPayments:       decimal.NewFromInt(6000),
		RefundAmount:        decimal.RequireFromString("1984.00"),
	}
}

func TestGetFormatterByName(t *testing.T) {
	f, err := GetFormatterByName("json")
	require.NoError(t, err)
	assert.Equal(t, "json", f.Name())

	f, err = GetFormatterByName("csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", f.Name())

	f, err = GetFormatterByName("")
	require.NoError(t, err)
	assert.Equal(t, "console", f.Name(), "Empty name defaults to console")

	_, err = GetFormatterByName("html")
	assert.Error(t, err)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1984.00", FormatCurrency(decimal.RequireFromString("1984")))
	assert.Equal(t, "$-50.25", FormatCurrency(decimal.RequireFromString("-50.25")))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "FEDERAL TAX SUMMARY")
	assert.Contains(t, out, "$50000.00")
	assert.Contains(t, out, "REFUND")
	assert.Contains(t, out, "$1984.00")
	assert.NotContains(t, out, "AMOUNT OWED")
}

func TestConsoleFormatter_AmountOwed(t *testing.T) {
	result := sampleResult()
	result.RefundAmount = decimal.Zero
	result.AmountOwed = decimal.RequireFromString("1016.00")

	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AMOUNT OWED")
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(2025), decoded["tax_year"])
	assert.Equal(t, "single", decoded["filing_status"])
	assert.Equal(t, "1984", decoded["refund_amount"])
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"field", "value"}, records[0])

	rows := make(map[string]string, len(records))
	for _, rec := range records[1:] {
		require.Len(t, rec, 2)
		rows[rec[0]] = rec[1]
	}
	assert.Equal(t, "50000.00", rows["gross_income"])
	assert.Equal(t, "1984.00", rows["refund_amount"])
	assert.Equal(t, "standard", rows["deduction_kind"])
	assert.Equal(t, "single", rows["filing_status"])
}
