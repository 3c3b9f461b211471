package kernel

import (
	"fmt"
	"strconv"

	"hotelpos/internal/pkg/errs"
)

const (
	// BasisPointsPerUnit is the number of basis points in a rate of 1 (100%).
	BasisPointsPerUnit = 10_000

	// DefaultTaxRate is the 8% rate of the reference behaviour.
	DefaultTaxRate TaxRate = 800
)

// Money is an amount in integer minor currency units (whole Kenyan shillings in
// the reference data). It is never fractional; every computation that could
// produce a fraction goes through TaxRate.Apply and its rounding policy.
type Money int64

// NewMoney validates that amount is not negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}
	return Money(amount), nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Times returns m multiplied by a quantity.
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m == 0
}

// Int64 returns the amount in minor units, the form used on the wire.
func (m Money) Int64() int64 {
	return int64(m)
}

func (m Money) String() string {
	return strconv.FormatInt(int64(m), 10)
}

// TaxRate is a tax rate in basis points (1/100 of a percent). 800 is 8%.
type TaxRate int

// NewTaxRate validates a rate between 0% and 100%.
func NewTaxRate(basisPoints int) (TaxRate, error) {
	if basisPoints < 0 || basisPoints > BasisPointsPerUnit {
		return 0, errs.NewValueIsOutOfRangeError("tax rate", basisPoints, 0, BasisPointsPerUnit)
	}
	return TaxRate(basisPoints), nil
}

// BasisPoints returns the rate in basis points.
func (r TaxRate) BasisPoints() int {
	return int(r)
}

// Apply computes the tax due on amount.
//
// Rounding policy: the exact product amount × rate is rounded half away from
// zero to the nearest minor unit. The computation stays in integers so no
// fractional total can ever appear.
//
//	DefaultTaxRate.Apply(2300) // 184
//	DefaultTaxRate.Apply(1250) // 100
//	DefaultTaxRate.Apply(1)    // 0   (0.08)
//	DefaultTaxRate.Apply(7)    // 1   (0.56)
func (r TaxRate) Apply(amount Money) Money {
	product := int64(amount) * int64(r)
	half := int64(BasisPointsPerUnit / 2)
	if product < 0 {
		return Money((product - half) / BasisPointsPerUnit)
	}
	return Money((product + half) / BasisPointsPerUnit)
}

func (r TaxRate) String() string {
	return fmt.Sprintf("%d.%02d%%", int(r)/100, int(r)%100)
}
