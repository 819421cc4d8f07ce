package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer cents. All arithmetic happens on
// cents; decimal conversion is reserved for parsing and display so no
// intermediate result ever carries binary rounding drift.
type Cents int64

// Mul multiplies a unit amount by a quantity.
func (c Cents) Mul(qty int64) Cents {
	return c * Cents(qty)
}

// String formats the amount with two decimal places, e.g. 3650 -> "36.50".
func (c Cents) String() string {
	return decimal.New(int64(c), -2).StringFixed(2)
}

// Decimal returns the amount as a decimal value in currency units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// ParseAmount parses a plain decimal amount string into cents.
// Examples: "36.50" -> 3650, "19.99" -> 1999, "12" -> 1200.
// Sub-cent precision is rounded half-up, applied once at the boundary.
func ParseAmount(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}

	return FromDecimal(d), nil
}

// FromDecimal converts a decimal currency amount to cents, rounding half-up.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}
