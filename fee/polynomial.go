// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"errors"
	"fmt"
)

// MaxDegree bounds the degree of any polynomial term. A bounded degree keeps
// evaluation constant-time regardless of the weight being priced.
const MaxDegree uint8 = 3

var (
	errEmptyPolynomial     = errors.New("polynomial must have at least one term")
	errDegreeTooLarge      = errors.New("term degree above maximum")
	errZeroReferenceWeight = errors.New("reference weight must be non-zero")
)

// Term is one (degree, coefficient) entry of a fee polynomial.
type Term struct {
	Degree      uint8
	Coefficient Coefficient
}

func (t Term) Verify() error {
	if t.Degree > MaxDegree {
		return fmt.Errorf("%w: %d > %d", errDegreeTooLarge, t.Degree, MaxDegree)
	}
	return t.Coefficient.Verify()
}

// Polynomial is an ordered, non-empty collection of terms. Degrees need not
// be unique or sorted; in practice deployments configure a single linear term.
type Polynomial []Term

func (p Polynomial) Verify() error {
	if len(p) == 0 {
		return errEmptyPolynomial
	}
	for i, t := range p {
		if err := t.Verify(); err != nil {
			return fmt.Errorf("term %d: %w", i, err)
		}
	}
	return nil
}

// LinearPolynomial derives the single degree-1 polynomial that maps
// [refWeight] to [targetFee] as closely as integer arithmetic allows:
//
//	Integer       = targetFee / refWeight
//	FracNumerator = (targetFee % refWeight) * PerBill / refWeight
//
// The relative error of evaluating the result at [refWeight] versus the ideal
// real-valued fee is below one part in PerBill of one weight unit's
// contribution. Returns an error iff [refWeight] is zero, since the reference
// weight is used as a divisor; this is a configuration error, detected before
// any fee can be computed.
func LinearPolynomial(targetFee Balance, refWeight Weight) (Polynomial, error) {
	if refWeight == 0 {
		return nil, errZeroReferenceWeight
	}

	q := NewBalance(uint64(refWeight))
	integer, rem := targetFee.DivMod(q)

	// rem < refWeight, so the floored quotient is always below PerBill and
	// narrows to uint32 without truncation.
	fracNumerator := rem.SaturatingMulDiv(uint64(PerBill), uint64(refWeight))

	coeff, err := NewCoefficient(integer, uint32(fracNumerator.Uint64()), false)
	if err != nil {
		return nil, err
	}
	return Polynomial{{Degree: 1, Coefficient: coeff}}, nil
}
