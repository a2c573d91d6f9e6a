package money

import (
	"errors"
	"math"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an amount in cents.
type Money struct {
	cents int64
}

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromDecimal converts a decimal amount (e.g. 129.99) to cents, rounding half away from zero.
func FromDecimal(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
