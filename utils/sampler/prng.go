// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mathext/prng"
)

const (
	MinimalStandardName = "minstd"
	MT19937Name         = "mt19937"
	XoshiroName         = "xoshiro"
)

var (
	_ Source = (*mt19937)(nil)
	_ Source = (*xoshiro)(nil)
)

type mt19937 struct {
	rng *prng.MT19937
}

// NewMT19937 returns a 32-bit Mersenne Twister seeded with [seed].
func NewMT19937(seed int64) Source {
	source := prng.NewMT19937()
	source.Seed(uint64(seed))
	return &mt19937{rng: source}
}

func (s *mt19937) Uint32() uint32 { return s.rng.Uint32() }

func (*mt19937) Max() uint32 { return math.MaxUint32 }

type xoshiro struct {
	rng *prng.Xoshiro256starstar
}

// NewXoshiro returns a xoshiro256** generator seeded with [seed]. Only the high
// 32 bits of each output are used, as they have the best statistical quality.
func NewXoshiro(seed int64) Source {
	return &xoshiro{rng: prng.NewXoshiro256starstar(uint64(seed))}
}

func (s *xoshiro) Uint32() uint32 { return uint32(s.rng.Uint64() >> 32) }

func (*xoshiro) Max() uint32 { return math.MaxUint32 }

// SourceFactoryByName maps an engine name onto its constructor.
func SourceFactoryByName(name string) (SourceFactory, error) {
	switch strings.ToLower(name) {
	case MinimalStandardName:
		return NewMinimalStandard, nil
	case MT19937Name:
		return NewMT19937, nil
	case XoshiroName:
		return NewXoshiro, nil
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", ErrInvalidInput, name)
	}
}
