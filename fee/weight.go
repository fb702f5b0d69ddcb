// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fee

// Weight is a normalized, dimensionless measure of the computational and
// storage resources one operation consumes. This package treats it as an
// opaque scalar; how weights are measured is up to the embedding runtime.
type Weight uint64
