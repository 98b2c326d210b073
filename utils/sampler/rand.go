// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math/bits"
)

// Source is a uniform pseudo-random number generator.
type Source interface {
	// Uint32 returns a random number in [0, Max()] and advances the
	// generator's state.
	Uint32() uint32
	// Max returns the largest value Uint32 can return. It must not change over
	// the lifetime of the source.
	Max() uint32
}

// SourceFactory creates a deterministic Source from a seed.
type SourceFactory func(seed int64) Source

// rng derives die rolls and coin tosses from a Source. Every derived operation
// consumes exactly one draw from the underlying source.
//
// rng is not safe for concurrent use.
type rng struct {
	source Source
	// faces is Max()+1, held in 64 bits so that Max() == MaxUint32 does not
	// wrap to zero.
	faces uint64
	max   float64
}

func newRNG(source Source) (*rng, error) {
	maximum := source.Max()
	if maximum == 0 {
		return nil, fmt.Errorf("%w: source must produce more than one value", ErrInvalidInput)
	}
	return &rng{
		source: source,
		faces:  uint64(maximum) + 1,
		max:    float64(maximum),
	}, nil
}

// fairDie returns a uniformly chosen integer in [0, n).
//
// The result is floor(draw * n / (Max+1)). The product is computed with a
// 128-bit intermediate, so it can't overflow for any n.
//
// Assumes n > 0.
func (r *rng) fairDie(n int) int {
	draw := uint64(r.source.Uint32())
	hi, lo := bits.Mul64(draw, uint64(n))
	// draw < faces, so the quotient is < n and hi < faces always holds.
	quo, _ := bits.Div64(hi, lo, r.faces)
	return int(quo)
}

// coinToss returns true with probability p.
//
// p <= 0 never returns true and p >= 1 always returns true. A draw is consumed
// in either case so the stream stays aligned regardless of p.
func (r *rng) coinToss(p float64) bool {
	draw := r.source.Uint32()
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	default:
		return float64(draw)/r.max < p
	}
}
