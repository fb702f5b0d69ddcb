// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey          = "config-file"
	LogLevelKey            = "log-level"
	CurrencyScaleKey       = "currency-scale"
	ReferenceWeightKey     = "reference-weight"
	TargetReferenceFeeKey  = "target-reference-fee"
	MaxBlockWeightKey      = "max-block-weight"
	StorageItemPriceKey    = "storage-item-price"
	StorageBytePriceKey    = "storage-byte-price"
	SlotDurationKey        = "slot-duration-ms"
	EpochLengthKey         = "epoch-length"
	MaxCodeSizeKey         = "max-code-size"
	TargetBlockFullnessKey = "target-block-fullness"
	PolicyKindKey          = "policy-kind"
	StepsKey               = "steps"
)
