// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// weightfee evaluates a deployment's weight-to-fee policy from the command
// line: every positional argument is a weight, and the fee it would be
// charged is printed in indivisible balance units.
package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/ava-labs/weightfee/config"
	"github.com/ava-labs/weightfee/fee"
	"github.com/ava-labs/weightfee/utils/logging"
)

func main() {
	fs := config.BuildFlagSet("weightfee")
	v, err := config.BuildViper(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't parse flags: %s\n", err)
		os.Exit(1)
	}

	level, err := config.GetLogLevel(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	log := logging.NewLogger("weightfee", level)
	defer log.Stop()

	cfg, err := config.GetConfig(v)
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	policy, err := cfg.NewPolicy()
	if err != nil {
		log.Fatal("couldn't build fee policy", zap.Error(err))
	}

	times := cfg.Times()
	log.Debug("configuration loaded",
		zap.String("policy", cfg.PolicyKind),
		zap.Uint64("referenceWeight", cfg.ReferenceWeight),
		zap.Uint64("targetReferenceFee", cfg.TargetReferenceFee),
		zap.Duration("epochDuration", times.EpochDuration),
	)

	for _, arg := range fs.Args() {
		weight, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			log.Fatal("weights must be unsigned integers",
				zap.String("arg", arg),
				zap.Error(err),
			)
		}

		charge := policy.Calc(fee.Weight(weight))
		fmt.Printf("%d %s\n", weight, charge)
	}
}
