// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

// Calculator evaluates one verified fee polynomial. It owns no mutable state,
// so a single Calculator may serve any number of concurrent callers.
type Calculator struct {
	poly Polynomial
}

// NewCalculator returns a Calculator bound to [poly]. The polynomial is
// verified here so that Calc never has to fail.
func NewCalculator(poly Polynomial) (*Calculator, error) {
	if err := poly.Verify(); err != nil {
		return nil, err
	}
	return &Calculator{poly: poly}, nil
}

// Calc returns the fee charged for [weight]. It is pure, total and
// deterministic: identical inputs produce the identical Balance on every
// platform. All arithmetic saturates, negative totals clamp to zero.
func (c *Calculator) Calc(weight Weight) Balance {
	var total signedBalance
	for _, t := range c.poly {
		base := NewBalance(uint64(weight)).SaturatingPow(t.Degree)

		integerPart := base.SaturatingMul(t.Coefficient.Integer)
		fracPart := base.SaturatingMulDiv(
			uint64(t.Coefficient.FracNumerator),
			uint64(PerBill),
		)

		total.accumulate(integerPart.SaturatingAdd(fracPart), t.Coefficient.Negative)
	}
	return total.balance()
}

// signedBalance accumulates term values as a (magnitude, sign) pair so that
// negative coefficients can cancel positive ones before the final clamp.
type signedBalance struct {
	mag Balance
	neg bool
}

func (s *signedBalance) accumulate(v Balance, negative bool) {
	if s.neg == negative {
		s.mag = s.mag.SaturatingAdd(v)
		return
	}
	if s.mag.Cmp(v) >= 0 {
		s.mag = s.mag.SaturatingSub(v)
	} else {
		s.mag = v.SaturatingSub(s.mag)
		s.neg = negative
	}
	if s.mag.IsZero() {
		s.neg = false
	}
}

// balance floors negative totals at zero; balances are unsigned.
func (s *signedBalance) balance() Balance {
	if s.neg {
		return Balance{}
	}
	return s.mag
}
