// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/spf13/pflag"

	"github.com/ava-labs/weightfee/fee"
	"github.com/ava-labs/weightfee/utils/units"
)

// Defaults reproduce a deployment where the reference weight costs a tenth of
// a cent and a full block costs sixteen dollars.
const (
	defaultReferenceWeight     = 125_000_000
	defaultMaxBlockWeight      = 2_000_000_000_000
	defaultSlotDurationMS      = 6000
	defaultEpochLengthBlocks   = 100 // ten minutes of six second slots
	defaultMaxCodeSizeBytes    = 3 * 1024 * 1024
	defaultTargetBlockFullness = fee.PerBill / 4
)

// BuildFlagSet returns the set of flags the evaluator understands, with
// defaults applied.
func BuildFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.String(ConfigFileKey, "", "path to an optional JSON config file; flags take precedence")
	fs.String(LogLevelKey, "info", "log level: debug, info, warn, error, fatal or off")

	fs.Uint64(CurrencyScaleKey, units.Unit, "indivisible balance units per major display unit")
	fs.Uint64(ReferenceWeightKey, defaultReferenceWeight, "weight of the minimal chargeable unit of work")
	fs.Uint64(TargetReferenceFeeKey, units.Cent/10, "fee targeted for an operation of exactly the reference weight")
	fs.Uint64(MaxBlockWeightKey, defaultMaxBlockWeight, "largest weight a single block may carry")
	fs.Uint64(StorageItemPriceKey, 20*units.Dollar, "balance reserved per stored item")
	fs.Uint64(StorageBytePriceKey, 100*units.MilliCent, "balance reserved per stored byte")
	fs.Uint64(SlotDurationKey, defaultSlotDurationMS, "real time per block in milliseconds")
	fs.Uint32(EpochLengthKey, defaultEpochLengthBlocks, "epoch length in blocks")
	fs.Uint32(MaxCodeSizeKey, defaultMaxCodeSizeBytes, "largest permitted code blob in bytes")
	fs.Uint32(TargetBlockFullnessKey, defaultTargetBlockFullness, "target block saturation as a fraction of PerBill")
	fs.String(PolicyKindKey, fee.PolicyPolynomial, "fee policy to build: polynomial or steps")

	return fs
}
