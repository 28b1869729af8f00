package appointment

import "errors"

var ErrNegativePrice = errors.New("price cannot be negative")

// Money is a fixed-point amount in cents. priceAtBooking is captured once at
// reservation time and never changes afterwards.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}
