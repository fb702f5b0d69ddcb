// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/weightfee/fee"
	"github.com/ava-labs/weightfee/utils/logging"
)

// BuildViper parses [args] against [fs] and layers an optional config file
// underneath the flag values, flags taking precedence.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

// GetLogLevel parses the configured log level.
func GetLogLevel(v *viper.Viper) (logging.Level, error) {
	return logging.ToLevel(v.GetString(LogLevelKey))
}

// GetConfig builds and validates the economic configuration defined in the
// [viper] environment.
func GetConfig(v *viper.Viper) (fee.Config, error) {
	cfg := fee.Config{
		CurrencyScale:       v.GetUint64(CurrencyScaleKey),
		ReferenceWeight:     v.GetUint64(ReferenceWeightKey),
		TargetReferenceFee:  v.GetUint64(TargetReferenceFeeKey),
		MaxBlockWeight:      v.GetUint64(MaxBlockWeightKey),
		StorageItemPrice:    v.GetUint64(StorageItemPriceKey),
		StorageBytePrice:    v.GetUint64(StorageBytePriceKey),
		SlotDurationMS:      v.GetUint64(SlotDurationKey),
		EpochLengthBlocks:   v.GetUint32(EpochLengthKey),
		MaxCodeSizeBytes:    v.GetUint32(MaxCodeSizeKey),
		TargetBlockFullness: v.GetUint32(TargetBlockFullnessKey),
		PolicyKind:          v.GetString(PolicyKindKey),
	}

	if v.IsSet(StepsKey) {
		if err := v.UnmarshalKey(StepsKey, &cfg.Steps); err != nil {
			return fee.Config{}, fmt.Errorf("couldn't parse fee steps: %w", err)
		}
	}

	return cfg, cfg.Validate()
}
