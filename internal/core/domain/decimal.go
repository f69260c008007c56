package domain

import (
	"github.com/shopspring/decimal"
)

// Monetary values are fixed-point decimals: at most MaxValueDigits significant
// digits in total, of which at most ValueDecimalPlaces may be fractional.
const (
	MaxValueDigits     = 13
	ValueDecimalPlaces = 2
)

// DecimalInBounds reports whether d fits the monetary precision constraints.
// The check mirrors a DECIMAL(13,2) column, which stores every value at scale
// 2: at most MaxValueDigits-ValueDecimalPlaces whole digits and at most
// ValueDecimalPlaces fractional digits. A value such as 123456789.123 fails
// on fractional digits, and a 12-digit integer fails because it would need 14
// digits of precision once rescaled.
func DecimalInBounds(d decimal.Decimal) bool {
	abs := d.Abs()
	exp := abs.Exponent()
	if exp < -ValueDecimalPlaces {
		return false
	}
	wholeDigits := int32(len(abs.Coefficient().String())) + exp
	return wholeDigits <= MaxValueDigits-ValueDecimalPlaces
}
