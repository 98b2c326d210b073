// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

var (
	_ SeedSource = CryptoSeed{}
	_ SeedSource = TimeSeed{}
	_ SeedSource = FixedSeed(0)
)

// SeedSource provides the seed for a sampler that wasn't given an explicit
// one. It is consulted exactly once, during construction.
type SeedSource interface {
	Seed() (int64, error)
}

// CryptoSeed reads the seed from the operating system's entropy pool.
type CryptoSeed struct{}

func (CryptoSeed) Seed() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

// TimeSeed uses the wall clock. Two samplers created within the same clock
// tick will produce identical streams.
type TimeSeed struct{}

func (TimeSeed) Seed() (int64, error) {
	return time.Now().UnixNano(), nil
}

// FixedSeed always returns itself.
type FixedSeed int64

func (s FixedSeed) Seed() (int64, error) {
	return int64(s), nil
}
