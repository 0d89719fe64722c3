package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/gonzalestax/taxengine/internal/domain"
)

// CSVFormatter emits one field-value row per breakdown entry, sorted by
// field name so the output is stable across runs.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"field", "value"}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"tax_year", strconv.Itoa(result.TaxYear)}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"filing_status", string(result.FilingStatus)}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"deduction_kind", string(result.DeductionKind)}); err != nil {
		return nil, err
	}

	breakdown := result.Breakdown()
	fields := make([]string, 0, len(breakdown))
	for field := range breakdown {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if err := w.Write([]string{field, breakdown[field].StringFixed(2)}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
