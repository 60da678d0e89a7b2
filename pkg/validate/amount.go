package validate

import "github.com/shopspring/decimal"

// MaxAmount is the largest value a NUMERIC(12,2) money column holds.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// AmountFits reports whether amount, rounded to cents, is storable.
func AmountFits(amount decimal.Decimal) bool {
	return amount.Round(2).LessThanOrEqual(MaxAmount)
}
