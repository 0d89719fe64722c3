package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/internal/domain"
)

// Formatter renders a computed tax result for one output target.
type Formatter interface {
	Name() string
	Format(result *domain.TaxResult) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under the given name.
func GetFormatterByName(name string) (Formatter, error) {
	switch name {
	case "console", "":
		return ConsoleFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "csv":
		return CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want console, json, or csv)", name)
	}
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
