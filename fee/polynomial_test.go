// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolynomialVerify(t *testing.T) {
	tests := []struct {
		name        string
		poly        Polynomial
		expectedErr error
	}{
		{
			name:        "empty",
			poly:        Polynomial{},
			expectedErr: errEmptyPolynomial,
		},
		{
			name: "degree too large",
			poly: Polynomial{
				{Degree: MaxDegree + 1},
			},
			expectedErr: errDegreeTooLarge,
		},
		{
			name: "fraction numerator at denominator",
			poly: Polynomial{
				{Degree: 1, Coefficient: Coefficient{FracNumerator: PerBill}},
			},
			expectedErr: errFractionTooLarge,
		},
		{
			name: "valid multi term",
			poly: Polynomial{
				{Degree: 0, Coefficient: Coefficient{Integer: NewBalance(5)}},
				{Degree: 1, Coefficient: Coefficient{FracNumerator: PerBill - 1, Negative: true}},
				{Degree: 1, Coefficient: Coefficient{Integer: NewBalance(1)}}, // duplicate degree is fine
			},
			expectedErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.poly.Verify(), tt.expectedErr)
		})
	}
}

func TestNewCoefficientRejectsFractionOverflow(t *testing.T) {
	require := require.New(t)

	_, err := NewCoefficient(NewBalance(1), PerBill, false)
	require.ErrorIs(err, errFractionTooLarge)

	_, err = NewCoefficient(NewBalance(1), PerBill-1, true)
	require.NoError(err)
}

func TestLinearPolynomialZeroReferenceWeight(t *testing.T) {
	_, err := LinearPolynomial(NewBalance(1), 0)
	require.ErrorIs(t, err, errZeroReferenceWeight)
}

func TestLinearPolynomialDerivation(t *testing.T) {
	require := require.New(t)

	// targetFee = 10^9, refWeight = 3*10^8:
	// integer = 3, remainder 10^8 becomes 333_333_333 parts per billion
	poly, err := LinearPolynomial(NewBalance(1_000_000_000), 300_000_000)
	require.NoError(err)
	require.Len(poly, 1)

	term := poly[0]
	require.Equal(uint8(1), term.Degree)
	require.False(term.Coefficient.Negative)
	require.Equal(NewBalance(3), term.Coefficient.Integer)
	require.Equal(uint32(333_333_333), term.Coefficient.FracNumerator)
}

func TestLinearPolynomialExactDivision(t *testing.T) {
	require := require.New(t)

	poly, err := LinearPolynomial(NewBalance(1_000_000_000), 125_000_000)
	require.NoError(err)

	term := poly[0]
	require.Equal(NewBalance(8), term.Coefficient.Integer)
	require.Zero(term.Coefficient.FracNumerator)
}

func TestLinearPolynomialSubIntegerPrice(t *testing.T) {
	require := require.New(t)

	// target smaller than the reference weight: pure fractional coefficient
	poly, err := LinearPolynomial(NewBalance(1), 4)
	require.NoError(err)

	term := poly[0]
	require.True(term.Coefficient.Integer.IsZero())
	require.Equal(PerBill/4, term.Coefficient.FracNumerator)
}
