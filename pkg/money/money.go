// Package money provides the fixed-point rounding primitive shared by the
// whole calculation pipeline. Every derived monetary value must pass through
// Round before it is stored or fed into a later stage.
package money

import "github.com/shopspring/decimal"

// Round applies half-up rounding at two decimal places. Ties round away from
// zero, so -2.345 becomes -2.35 just as 2.345 becomes 2.35.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
