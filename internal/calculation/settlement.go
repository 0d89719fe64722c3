package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/pkg/money"
)

// Settle nets tax after nonrefundable credits against total payments. At
// most one of the two outputs is nonzero.
func Settle(taxAfterCredits, totalPayments decimal.Decimal) (refund, owed decimal.Decimal) {
	if totalPayments.GreaterThanOrEqual(taxAfterCredits) {
		return money.Round(totalPayments.Sub(taxAfterCredits)), decimal.Zero
	}
	return decimal.Zero, money.Round(taxAfterCredits.Sub(totalPayments))
}
