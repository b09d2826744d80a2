package kernel

import (
	"fmt"
	"strconv"

	"dealership/internal/pkg/errs"
)

// Money is a fixed-point monetary amount in minor currency units.
// Amounts compare and add as plain integers; there is deliberately no
// floating-point constructor.
type Money int64

// NewMoney creates a validated non-negative amount.
func NewMoney(value int64) (Money, error) {
	m := Money(value)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m, nil
}

// Validate checks that the amount is not negative.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", int64(m)))
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Int64 returns the raw amount in minor units.
func (m Money) Int64() int64 {
	return int64(m)
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return strconv.FormatInt(int64(m), 10)
}

// discountScale is the basis-point denominator: 10000 basis points = 100%.
const discountScale = 10000

// Discount is a percentage discount expressed in basis points (1/100 of a
// percent), so 1500 means 15%. Integer basis points keep line-total arithmetic
// exact where a float percentage would not.
type Discount int64

// NewDiscount creates a validated discount between 0 and 10000 basis points.
func NewDiscount(basisPoints int64) (Discount, error) {
	d := Discount(basisPoints)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// Validate checks that the discount is within 0..10000 basis points.
func (d Discount) Validate() error {
	if d < 0 || d > discountScale {
		return errs.NewValueIsOutOfRangeError("discount", int64(d), 0, discountScale)
	}
	return nil
}

// BasisPoints returns the raw basis-point value.
func (d Discount) BasisPoints() int64 {
	return int64(d)
}

// ApplyTo returns the amount after subtracting the discount, truncating any
// fractional minor unit toward zero.
func (d Discount) ApplyTo(amount Money) Money {
	return Money(int64(amount) * (discountScale - int64(d)) / discountScale)
}
