package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount held at cent precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a float64 rounded to cents. Rounding works
// on the shortest decimal form of the float, ties away from zero, so 1.005
// becomes 1.01 the way Intl.NumberFormat renders it.
// The value must be finite.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}.Round()
}

// Fixed rounds the exact binary value of a float64 to the given number of
// decimal places, ties away from zero. 1.005 is stored as 1.00499... and
// becomes 1.00; 0.125 is exact and becomes 0.13. This is what toFixed does.
// The value must be finite.
func Fixed(value float64, places int32) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(value, -places)
}

// Round rounds the money amount to cents, ties away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Abs returns the absolute amount
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Float64 returns the nearest float64. For amounts below 2^53 cents the
// shortest representation of the result has at most two decimals.
func (m Money) Float64() float64 {
	return m.Decimal.InexactFloat64()
}

// String returns the amount with exactly two decimals, e.g. "1092.50"
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
