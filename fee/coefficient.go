// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"errors"
	"fmt"
)

// PerBill is the fixed denominator of all fractional coefficients. A fraction
// numerator of PerBill/4 encodes one quarter.
const PerBill uint32 = 1_000_000_000

var errFractionTooLarge = errors.New("fraction numerator must be less than PerBill")

// Coefficient is a signed fixed-point price per unit of weight: an integer
// number of balance units plus a fraction on the PerBill denominator. The
// fraction retains sub-unit precision that an integer coefficient alone would
// round away.
type Coefficient struct {
	Integer Balance

	// FracNumerator is the numerator of the fractional part, over PerBill.
	FracNumerator uint32

	// Negative makes this coefficient subtract from the accumulated fee.
	Negative bool
}

// NewCoefficient returns a verified coefficient.
func NewCoefficient(integer Balance, fracNumerator uint32, negative bool) (Coefficient, error) {
	c := Coefficient{
		Integer:       integer,
		FracNumerator: fracNumerator,
		Negative:      negative,
	}
	return c, c.Verify()
}

func (c Coefficient) Verify() error {
	if c.FracNumerator >= PerBill {
		return fmt.Errorf("%w: %d", errFractionTooLarge, c.FracNumerator)
	}
	return nil
}
