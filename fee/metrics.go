// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Policy = (*meteredPolicy)(nil)

func newCounterMetric(namespace, name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}

// meteredPolicy wraps a Policy and counts how often it is evaluated and how
// often the result saturated at MaxBalance. Saturation is legal but a sign
// the deployment's coefficients are badly calibrated.
type meteredPolicy struct {
	policy Policy

	calcs,
	saturated prometheus.Counter
}

// NewMeteredPolicy wraps [policy] with prometheus instrumentation registered
// on [registerer].
func NewMeteredPolicy(
	namespace string,
	registerer prometheus.Registerer,
	policy Policy,
) (Policy, error) {
	m := &meteredPolicy{
		policy:    policy,
		calcs:     newCounterMetric(namespace, "calcs", "# of fee calculations"),
		saturated: newCounterMetric(namespace, "saturated_calcs", "# of fee calculations clamped at MaxBalance"),
	}

	err := errors.Join(
		registerer.Register(m.calcs),
		registerer.Register(m.saturated),
	)
	if err != nil {
		return nil, fmt.Errorf("failed registering fee metrics: %w", err)
	}
	return m, nil
}

func (m *meteredPolicy) Calc(weight Weight) Balance {
	fee := m.policy.Calc(weight)

	m.calcs.Inc()
	if fee == MaxBalance() {
		m.saturated.Inc()
	}
	return fee
}
