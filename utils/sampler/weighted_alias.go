// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/aliassampler/utils/logging"
)

var _ Weighted = (*Alias)(nil)

// Config describes how to build an Alias sampler.
type Config struct {
	// Weights defines the target distribution. Must hold at least one finite,
	// non-negative value and sum to a positive total.
	Weights []float64
	// ReuseWeights hands ownership of Weights to the sampler during
	// construction. The slice is overwritten and must not be used afterwards.
	ReuseWeights bool
	// Seed, if non-nil, seeds the engine deterministically.
	Seed *int64
	// SeedSource is consulted once when Seed is nil. Defaults to CryptoSeed.
	SeedSource SeedSource
	// NewSource creates the engine. Defaults to NewMinimalStandard.
	NewSource SourceFactory
	// Log defaults to logging.NoLog.
	Log logging.Logger
	// Metrics is optional.
	Metrics *Metrics
}

// Alias samples indices with replacement using Vose's alias method.
//
// Construction takes O(n) time and space, where n is the number of weights.
// Sampling takes O(1) time and consumes exactly two values from the engine,
// one die roll to pick a column and one coin toss to pick between the column
// and its alias.
//
// Alias is not safe for concurrent use. Callers that sample from multiple
// goroutines should either serialize access or create one Alias per goroutine.
type Alias struct {
	table   *AliasTable
	rng     *rng
	seed    int64
	metrics *Metrics
}

func NewAlias(config Config) (*Alias, error) {
	log := config.Log
	if log == nil {
		log = logging.NoLog{}
	}

	var (
		table    *AliasTable
		residual int
		err      error
	)
	if config.ReuseWeights {
		table, residual, err = buildAliasTable(config.Weights)
	} else {
		table, residual, err = buildAliasTable(append([]float64(nil), config.Weights...))
	}
	if err != nil {
		return nil, err
	}

	seed, err := chooseSeed(config)
	if err != nil {
		return nil, fmt.Errorf("couldn't choose seed: %w", err)
	}

	newSource := config.NewSource
	if newSource == nil {
		newSource = NewMinimalStandard
	}
	r, err := newRNG(newSource(seed))
	if err != nil {
		return nil, err
	}
	if uint64(table.Len()) > r.faces {
		return nil, fmt.Errorf("%w: %d categories exceeds the %d values the engine can produce",
			ErrInvalidInput,
			table.Len(),
			r.faces,
		)
	}

	log.Debug("built alias table",
		zap.Int("categories", table.Len()),
		zap.Int("residualColumns", residual),
		zap.Int64("seed", seed),
	)
	config.Metrics.observeBuild(table.Len(), residual)

	return &Alias{
		table:   table,
		rng:     r,
		seed:    seed,
		metrics: config.Metrics,
	}, nil
}

func chooseSeed(config Config) (int64, error) {
	if config.Seed != nil {
		return *config.Seed, nil
	}
	seedSource := config.SeedSource
	if seedSource == nil {
		seedSource = CryptoSeed{}
	}
	return seedSource.Seed()
}

func (s *Alias) Len() int {
	return s.table.Len()
}

// Table returns the underlying alias table.
func (s *Alias) Table() *AliasTable {
	return s.table
}

// Seed returns the seed the engine was initialized with, which allows a run
// that used a SeedSource to be replayed.
func (s *Alias) Seed() int64 {
	return s.seed
}

func (s *Alias) Sample() int {
	column := s.rng.fairDie(s.table.Len())
	if s.rng.coinToss(s.table.probability[column]) {
		s.metrics.observeDraw(false)
		return column
	}
	s.metrics.observeDraw(true)
	return s.table.alias[column]
}

// SampleN returns [count] sequential draws. For a fixed seed the returned
// sequence is reproducible.
func (s *Alias) SampleN(count int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative sample count %d", ErrInvalidInput, count)
	}
	indices := make([]int, count)
	for i := range indices {
		indices[i] = s.Sample()
	}
	return indices, nil
}

// SampleValues is SampleN, returning values[i] for every sampled index i.
// Returns ErrOutOfRange if [values] has fewer than s.Len() elements.
func SampleValues[T any](s *Alias, count int, values []T) ([]T, error) {
	if len(values) < s.Len() {
		return nil, fmt.Errorf("%w: %d values provided for %d categories",
			ErrOutOfRange,
			len(values),
			s.Len(),
		)
	}
	indices, err := s.SampleN(count)
	if err != nil {
		return nil, err
	}
	gathered := make([]T, count)
	for i, index := range indices {
		gathered[i] = values[index]
	}
	return gathered, nil
}

// SampleValue draws a single value. See SampleValues.
func SampleValue[T any](s *Alias, values []T) (T, error) {
	gathered, err := SampleValues(s, 1, values)
	if err != nil {
		var zero T
		return zero, err
	}
	return gathered[0], nil
}
