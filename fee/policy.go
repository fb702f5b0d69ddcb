// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"errors"
	"fmt"
	"sort"
)

var (
	_ Policy = (*Calculator)(nil)
	_ Policy = (*StepTable)(nil)

	errEmptyStepTable    = errors.New("step table must have at least one step")
	errUnsortedStepTable = errors.New("step table thresholds must be strictly increasing")
)

// Policy converts a weight to the fee charged for it. Implementations must be
// pure, total and deterministic; they are selected per deployment via
// configuration.
type Policy interface {
	Calc(Weight) Balance
}

// Step is one band of a StepTable: every weight up to and including UpTo is
// charged Fee.
type Step struct {
	UpTo Weight `json:"upTo"`
	Fee  uint64 `json:"fee"`
}

// StepTable is a piecewise-constant fee policy. Weights beyond the last
// band's threshold are charged the last band's fee.
type StepTable struct {
	steps []Step
}

// NewStepTable returns a StepTable over [steps]. Steps must be non-empty and
// sorted by strictly increasing threshold; this is verified here so that Calc
// never has to fail.
func NewStepTable(steps []Step) (*StepTable, error) {
	if len(steps) == 0 {
		return nil, errEmptyStepTable
	}
	for i := 1; i < len(steps); i++ {
		if steps[i].UpTo <= steps[i-1].UpTo {
			return nil, fmt.Errorf("%w: step %d", errUnsortedStepTable, i)
		}
	}
	return &StepTable{steps: steps}, nil
}

func (t *StepTable) Calc(weight Weight) Balance {
	i := sort.Search(len(t.steps), func(i int) bool {
		return weight <= t.steps[i].UpTo
	})
	if i == len(t.steps) {
		i = len(t.steps) - 1
	}
	return NewBalance(t.steps[i].Fee)
}
