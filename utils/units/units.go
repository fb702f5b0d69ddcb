// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package units

// Denominations of value, counted in the smallest indivisible unit of the
// currency. One major display unit is 10^12 indivisible units and is treated
// as one US dollar for fee-targeting purposes.
const (
	Unit uint64 = 1_000_000_000_000

	MilliCent uint64 = Unit / 100_000
	Cent      uint64 = 1000 * MilliCent
	Dollar    uint64 = 100 * Cent
)
