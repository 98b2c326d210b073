// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrOutOfRange   = errors.New("out of range")
)

// Weighted samples indices, with replacement, from a fixed weighted
// distribution.
type Weighted interface {
	// Len returns the number of categories that can be sampled.
	Len() int
	// Sample returns one index in [0, Len()).
	Sample() int
	// SampleN returns [count] indices drawn sequentially.
	SampleN(count int) ([]int, error)
}
