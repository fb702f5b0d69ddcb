// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/weightfee/utils/units"
)

const (
	// the minimal chargeable unit of work in the default deployment
	referenceWeight Weight = 125_000_000
	maxBlockWeight  Weight = 2_000_000_000_000
)

func defaultCalculator(t *testing.T) *Calculator {
	t.Helper()

	// the reference weight is priced at a tenth of a cent
	poly, err := LinearPolynomial(NewBalance(units.Cent/10), referenceWeight)
	require.NoError(t, err)

	calc, err := NewCalculator(poly)
	require.NoError(t, err)
	return calc
}

func requireWithin(t *testing.T, expected, actual, tolerance Balance) {
	t.Helper()

	diff := expected.SaturatingSub(actual).SaturatingAdd(actual.SaturatingSub(expected))
	require.Truef(t, diff.Cmp(tolerance) < 0,
		"|%s - %s| = %s, above tolerance %s", expected, actual, diff, tolerance)
}

func TestReferenceWeightFeeIsCorrect(t *testing.T) {
	calc := defaultCalculator(t)

	requireWithin(t,
		NewBalance(units.Cent/10),
		calc.Calc(referenceWeight),
		NewBalance(units.MilliCent),
	)
}

func TestMaxBlockWeightFeeIsCorrect(t *testing.T) {
	// a full block costs sixteen dollars
	calc := defaultCalculator(t)

	requireWithin(t,
		NewBalance(16*units.Dollar),
		calc.Calc(maxBlockWeight),
		NewBalance(units.MilliCent),
	)
}

func TestCalcIsDeterministic(t *testing.T) {
	require := require.New(t)

	calc := defaultCalculator(t)
	first := calc.Calc(maxBlockWeight)
	for i := 0; i < 100; i++ {
		require.Equal(first, calc.Calc(maxBlockWeight))
	}
}

func TestCalcZeroWeight(t *testing.T) {
	require := require.New(t)

	calc, err := NewCalculator(Polynomial{
		{Degree: 0, Coefficient: Coefficient{Integer: NewBalance(7)}},
		{Degree: 1, Coefficient: Coefficient{Integer: NewBalance(1_000)}},
		{Degree: 2, Coefficient: Coefficient{FracNumerator: PerBill - 1}},
	})
	require.NoError(err)

	// weight^0 == 1, so only the constant term survives
	require.Equal(NewBalance(7), calc.Calc(0))
}

func TestCalcRejectsMalformedPolynomial(t *testing.T) {
	require := require.New(t)

	_, err := NewCalculator(nil)
	require.ErrorIs(err, errEmptyPolynomial)

	_, err = NewCalculator(Polynomial{{Degree: MaxDegree + 1}})
	require.ErrorIs(err, errDegreeTooLarge)
}

func TestCalcSaturatesWithoutWrapping(t *testing.T) {
	require := require.New(t)

	calc, err := NewCalculator(Polynomial{
		{Degree: 3, Coefficient: Coefficient{Integer: MaxBalance()}},
	})
	require.NoError(err)

	require.Equal(MaxBalance(), calc.Calc(math.MaxUint64))
	require.True(calc.Calc(0).IsZero())
}

func TestCalcFractionUsesWidenedIntermediate(t *testing.T) {
	require := require.New(t)

	// (MaxUint64 * (PerBill-1)) overflows 64 bits; the widened intermediate
	// must keep the quotient exact.
	calc, err := NewCalculator(Polynomial{
		{Degree: 1, Coefficient: Coefficient{FracNumerator: PerBill - 1}},
	})
	require.NoError(err)

	expected := NewBalance(math.MaxUint64).SaturatingMulDiv(uint64(PerBill-1), uint64(PerBill))
	require.Equal(expected, calc.Calc(math.MaxUint64))
	require.NotEqual(MaxBalance(), expected)
}

func TestCalcNegativeTotalClampsToZero(t *testing.T) {
	require := require.New(t)

	calc, err := NewCalculator(Polynomial{
		{Degree: 1, Coefficient: Coefficient{Integer: NewBalance(5), Negative: true}},
	})
	require.NoError(err)

	require.True(calc.Calc(0).IsZero())
	require.True(calc.Calc(math.MaxUint64).IsZero())
}

func TestCalcSignedAccumulation(t *testing.T) {
	require := require.New(t)

	calc, err := NewCalculator(Polynomial{
		{Degree: 1, Coefficient: Coefficient{Integer: NewBalance(10)}},
		{Degree: 1, Coefficient: Coefficient{Integer: NewBalance(3), Negative: true}},
	})
	require.NoError(err)

	// (10 - 3) per unit of weight
	require.Equal(NewBalance(7_000), calc.Calc(1_000))

	calc, err = NewCalculator(Polynomial{
		{Degree: 1, Coefficient: Coefficient{Integer: NewBalance(3)}},
		{Degree: 2, Coefficient: Coefficient{Integer: NewBalance(1), Negative: true}},
	})
	require.NoError(err)

	// 3w - w^2: positive below w=3, clamped to zero beyond
	require.Equal(NewBalance(2), calc.Calc(1))
	require.Equal(NewBalance(2), calc.Calc(2))
	require.True(calc.Calc(3).IsZero())
	require.True(calc.Calc(1_000).IsZero())
}

func TestCalcTermOrderIsIrrelevant(t *testing.T) {
	require := require.New(t)

	terms := Polynomial{
		{Degree: 0, Coefficient: Coefficient{Integer: NewBalance(11)}},
		{Degree: 1, Coefficient: Coefficient{Integer: NewBalance(2), Negative: true}},
		{Degree: 2, Coefficient: Coefficient{FracNumerator: PerBill / 2}},
	}
	reversed := Polynomial{terms[2], terms[1], terms[0]}

	forward, err := NewCalculator(terms)
	require.NoError(err)
	backward, err := NewCalculator(reversed)
	require.NoError(err)

	for _, w := range []Weight{0, 1, 5, 1_000, math.MaxUint64} {
		require.Equal(forward.Calc(w), backward.Calc(w))
	}
}
