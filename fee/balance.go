// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import "github.com/holiman/uint256"

// Balance counts the smallest indivisible unit of the currency. It is a
// fixed-width 256-bit unsigned integer so that fee arithmetic is bit-identical
// across platforms and wide enough to hold any realistic total supply.
//
// All arithmetic on Balance saturates: results clamp at MaxBalance instead of
// wrapping and at zero instead of going negative. Fee computation embedded in
// a settlement path must be total, so there is no failing variant.
type Balance struct {
	v uint256.Int
}

// NewBalance returns the Balance holding [v] indivisible units.
func NewBalance(v uint64) Balance {
	var b Balance
	b.v.SetUint64(v)
	return b
}

// MaxBalance returns the largest representable Balance.
func MaxBalance() Balance {
	var b Balance
	b.v.SetAllOne()
	return b
}

func (b Balance) IsZero() bool {
	return b.v.IsZero()
}

// Cmp returns -1, 0 or 1 depending on whether b is smaller, equal to or
// larger than [o].
func (b Balance) Cmp(o Balance) int {
	return b.v.Cmp(&o.v)
}

// Uint64 narrows b to 64 bits, saturating at MaxUint64.
func (b Balance) Uint64() uint64 {
	if !b.v.IsUint64() {
		return ^uint64(0)
	}
	return b.v.Uint64()
}

// String returns the decimal representation of b.
func (b Balance) String() string {
	return b.v.Dec()
}

// SaturatingAdd returns b + o, clamped at MaxBalance.
func (b Balance) SaturatingAdd(o Balance) Balance {
	var res Balance
	if _, overflow := res.v.AddOverflow(&b.v, &o.v); overflow {
		return MaxBalance()
	}
	return res
}

// SaturatingSub returns b - o, clamped at zero.
func (b Balance) SaturatingSub(o Balance) Balance {
	var res Balance
	if _, underflow := res.v.SubOverflow(&b.v, &o.v); underflow {
		return Balance{}
	}
	return res
}

// SaturatingMul returns b * o, clamped at MaxBalance.
func (b Balance) SaturatingMul(o Balance) Balance {
	var res Balance
	if _, overflow := res.v.MulOverflow(&b.v, &o.v); overflow {
		return MaxBalance()
	}
	return res
}

// SaturatingPow returns b^exp, clamped at MaxBalance. [exp] is expected to be
// a small bounded polynomial degree, so the loop runs in constant time with
// respect to the magnitude of b.
func (b Balance) SaturatingPow(exp uint8) Balance {
	res := NewBalance(1)
	for i := uint8(0); i < exp; i++ {
		res = res.SaturatingMul(b)
	}
	return res
}

// SaturatingMulDiv returns (b * num) / denom with the multiplication carried
// out in a 512-bit intermediate, so multiply-before-divide loses no precision.
// Division truncates toward zero. The result clamps at MaxBalance; a zero
// [denom] also clamps at MaxBalance to keep the operation total.
func (b Balance) SaturatingMulDiv(num, denom uint64) Balance {
	if denom == 0 {
		return MaxBalance()
	}
	var (
		res Balance
		n   = uint256.NewInt(num)
		d   = uint256.NewInt(denom)
	)
	if _, overflow := res.v.MulDivOverflow(&b.v, n, d); overflow {
		return MaxBalance()
	}
	return res
}

// DivMod returns the quotient and remainder of b / o. Both are zero when [o]
// is zero; callers that divide by configured values must validate them first.
func (b Balance) DivMod(o Balance) (Balance, Balance) {
	var quo, rem Balance
	quo.v.DivMod(&b.v, &o.v, &rem.v)
	return quo, rem
}
