// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"errors"
	"fmt"
	"time"
)

// Kinds of fee policy a deployment may select.
const (
	PolicyPolynomial = "polynomial"
	PolicySteps      = "steps"
)

// One in four slots is expected to carry a primary block proposal.
const (
	PrimarySlotNumerator   uint64 = 1
	PrimarySlotDenominator uint64 = 4
)

var (
	errZeroCurrencyScale      = errors.New("currency scale must be non-zero")
	errZeroSlotDuration       = errors.New("slot duration must be non-zero")
	errZeroEpochLength        = errors.New("epoch length must be non-zero")
	errTargetFullnessTooBig   = errors.New("target block fullness above PerBill")
	errMaxBlockBelowRefWeight = errors.New("max block weight below reference weight")
	errUnknownPolicyKind      = errors.New("unknown fee policy kind")
)

// Config is the full economic configuration surface of a deployment. It is
// populated once at setup, validated, and never mutated afterwards; every
// consumer reads the same immutable value.
type Config struct {
	// Number of indivisible balance units composing one major display unit
	CurrencyScale uint64 `json:"currencyScale"`

	// Weight of the minimal chargeable unit of work, used to calibrate the
	// fee polynomial
	ReferenceWeight uint64 `json:"referenceWeight"`

	// Fee targeted for an operation of exactly ReferenceWeight
	TargetReferenceFee uint64 `json:"targetReferenceFee"`

	// Largest weight a single block may carry
	MaxBlockWeight uint64 `json:"maxBlockWeight"`

	// Balance reserved per stored item and per stored byte
	StorageItemPrice uint64 `json:"storageItemPrice"`
	StorageBytePrice uint64 `json:"storageBytePrice"`

	// Real time per block
	SlotDurationMS uint64 `json:"slotDurationMs"`

	// Epoch length in blocks
	EpochLengthBlocks uint32 `json:"epochLengthBlocks"`

	// Largest permitted code blob
	MaxCodeSizeBytes uint32 `json:"maxCodeSizeBytes"`

	// Block saturation level fee adjustment aims at, as a PerBill fraction
	TargetBlockFullness uint32 `json:"targetBlockFullness"`

	// Fee policy to build, one of PolicyPolynomial or PolicySteps
	PolicyKind string `json:"policyKind"`

	// Bands of the step policy; only read when PolicyKind is PolicySteps
	Steps []Step `json:"steps,omitempty"`
}

// Validate rejects malformed configurations before any fee can be computed.
// A deployment must never run with a policy that silently misprices work.
func (c *Config) Validate() error {
	switch {
	case c.CurrencyScale == 0:
		return errZeroCurrencyScale
	case c.ReferenceWeight == 0:
		return errZeroReferenceWeight
	case c.MaxBlockWeight < c.ReferenceWeight:
		return fmt.Errorf("%w: %d < %d", errMaxBlockBelowRefWeight, c.MaxBlockWeight, c.ReferenceWeight)
	case c.SlotDurationMS == 0:
		return errZeroSlotDuration
	case c.EpochLengthBlocks == 0:
		return errZeroEpochLength
	case c.TargetBlockFullness > PerBill:
		return fmt.Errorf("%w: %d", errTargetFullnessTooBig, c.TargetBlockFullness)
	}

	switch c.PolicyKind {
	case PolicyPolynomial, PolicySteps:
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownPolicyKind, c.PolicyKind)
	}
}

// NewPolicy builds the fee policy this configuration selects. The returned
// Policy never fails at evaluation time; all rejection happens here.
func (c *Config) NewPolicy() (Policy, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch c.PolicyKind {
	case PolicySteps:
		return NewStepTable(c.Steps)
	default:
		poly, err := LinearPolynomial(
			NewBalance(c.TargetReferenceFee),
			Weight(c.ReferenceWeight),
		)
		if err != nil {
			return nil, err
		}
		return NewCalculator(poly)
	}
}

// Deposit is the balance reserved for storing [items] entries totalling
// [bytes] bytes. Linear and additive; saturates at extreme inputs like all
// fee arithmetic.
func (c *Config) Deposit(items, bytes uint32) Balance {
	itemCost := NewBalance(uint64(items)).SaturatingMul(NewBalance(c.StorageItemPrice))
	byteCost := NewBalance(uint64(bytes)).SaturatingMul(NewBalance(c.StorageBytePrice))
	return itemCost.SaturatingAdd(byteCost)
}

// Times are block-count equivalents of wall-clock durations, computed once
// from the configured slot duration.
type Times struct {
	MinuteBlocks uint32
	HourBlocks   uint32
	DayBlocks    uint32

	SlotDuration  time.Duration
	EpochDuration time.Duration
}

// Times derives the time constants of a validated configuration.
func (c *Config) Times() Times {
	slot := time.Duration(c.SlotDurationMS) * time.Millisecond
	minuteBlocks := uint32(uint64(time.Minute.Milliseconds()) / c.SlotDurationMS)
	return Times{
		MinuteBlocks:  minuteBlocks,
		HourBlocks:    minuteBlocks * 60,
		DayBlocks:     minuteBlocks * 60 * 24,
		SlotDuration:  slot,
		EpochDuration: time.Duration(c.EpochLengthBlocks) * slot,
	}
}
