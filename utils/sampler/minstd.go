// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

const (
	// minStdModulus is the Mersenne prime 2^31-1.
	minStdModulus = 1<<31 - 1
	// minStdMultiplier is the Park-Miller "minimal standard" multiplier.
	minStdMultiplier = 16807
)

var _ Source = (*minStd)(nil)

// minStd is the Park-Miller "minimal standard" Lehmer generator:
//
//	x[i+1] = 16807 * x[i] mod (2^31 - 1)
//
// The state lives in [1, 2^31-2]. Uint32 shifts it down by one so that
// results cover [0, 2^31-3] without gaps.
type minStd struct {
	state uint64
}

// NewMinimalStandard returns the 31-bit minimal standard generator seeded
// with [seed]. Seeds are reduced modulo 2^31-1; a seed that reduces to zero is
// replaced by one, as zero is a fixed point of the recurrence.
func NewMinimalStandard(seed int64) Source {
	s := &minStd{}
	s.Seed(seed)
	return s
}

func (s *minStd) Seed(seed int64) {
	s.state = uint64(seed) % minStdModulus
	if s.state == 0 {
		s.state = 1
	}
}

// next advances the recurrence and returns the raw state. The product fits in
// 46 bits so it is computed exactly.
func (s *minStd) next() uint64 {
	s.state = s.state * minStdMultiplier % minStdModulus
	return s.state
}

func (s *minStd) Uint32() uint32 {
	return uint32(s.next() - 1)
}

func (*minStd) Max() uint32 {
	return minStdModulus - 2
}
