package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money is an option premium or price level held at decimal precision for
// presentation. Simulation arithmetic stays in float64; Money is only built
// from finished numbers.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a finite float64. ok is false for NaN and
// ±Inf, which have no decimal form.
func NewMoney(value float64) (m Money, ok bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, false
	}
	return Money{decimal.NewFromFloat(value)}, true
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to places decimal digits (half away from zero).
func (m Money) Round(places int32) Money {
	return Money{m.Decimal.Round(places)}
}

// PerContract scales a per-unit premium by a contract multiplier.
func (m Money) PerContract(multiplier int64) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(multiplier))}
}

// String returns the amount with four decimals, the usual quoting precision
// for option premia.
func (m Money) String() string {
	return m.Decimal.StringFixed(4)
}

// Format renders the amount as currency with cents.
func (m Money) Format() string {
	return "$" + m.Decimal.StringFixed(2)
}
