package kernel

import (
	"fmt"
	"math"

	"qrave/internal/pkg/errs"
)

// Money is a non-negative amount in minor currency units (cents, paise).
//
// Money is an immutable value object: arithmetic returns a new value and
// fails instead of overflowing. The zero value is a valid zero amount.
// Prices and totals are kept in minor units end to end, so no floating
// point rounding ever applies.
type Money struct {
	minor int64
}

// NewMoney builds an amount from minor units.
//
// Returns:
//   - (Money, nil) for minor >= 0
//   - (Money{}, error) wrapping errs.ErrValueIsOutOfRange for negative amounts
//
// Example:
//
//	price, err := kernel.NewMoney(1050) // 10.50
func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", minor, 0, int64(math.MaxInt64))
	}
	return Money{minor: minor}, nil
}

// MustMoney is NewMoney for literals known to be valid; it panics otherwise.
func MustMoney(minor int64) Money {
	m, err := NewMoney(minor)
	if err != nil {
		panic(err)
	}
	return m
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 {
	return m.minor
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.minor == 0
}

// IsPositive reports whether the amount is above zero. Menu prices must be.
func (m Money) IsPositive() bool {
	return m.minor > 0
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.minor == other.minor
}

// Add returns the sum of two amounts.
//
// Returns:
//   - (m + other, nil) on success
//   - (Money{}, error) wrapping errs.ErrValueIsInvalid if the sum overflows int64
func (m Money) Add(other Money) (Money, error) {
	if other.minor > math.MaxInt64-m.minor {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d + %d overflows", m.minor, other.minor))
	}
	return Money{minor: m.minor + other.minor}, nil
}

// Multiply returns the amount of qty units, e.g. a line subtotal.
//
// Returns:
//   - (m * qty, nil) on success; a zero qty gives zero
//   - (Money{}, error) wrapping errs.ErrValueIsOutOfRange for a negative qty
//   - (Money{}, error) wrapping errs.ErrValueIsInvalid on overflow
//
// Example:
//
//	subtotal, err := kernel.MustMoney(1000).Multiply(2) // 20.00
func (m Money) Multiply(qty int) (Money, error) {
	if qty < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", qty, 0, math.MaxInt)
	}
	if qty != 0 && m.minor > math.MaxInt64/int64(qty) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d * %d overflows", m.minor, qty))
	}
	return Money{minor: m.minor * int64(qty)}, nil
}

// String renders the amount with two decimals, e.g. 2500 -> "25.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minor/100, m.minor%100)
}
