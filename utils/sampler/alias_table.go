// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// AliasTable is the precomputed form of a discrete distribution used by Vose's
// alias method.
//
// Column i is chosen uniformly. It then returns i itself with probability
// Probability(i) and Alias(i) otherwise.
//
// An AliasTable is immutable once built and is safe for concurrent reads.
type AliasTable struct {
	probability []float64
	alias       []int
}

// BuildAliasTable builds an alias table for the distribution proportional to
// [weights]. [weights] is not modified.
func BuildAliasTable(weights []float64) (*AliasTable, error) {
	table, _, err := buildAliasTable(append([]float64(nil), weights...))
	return table, err
}

// BuildAliasTableInPlace is BuildAliasTable without the defensive copy.
//
// Ownership of [weights] is transferred to the builder, which uses it as
// scratch space. Its contents are unspecified once this function returns and
// the caller must not read or reuse it.
func BuildAliasTableInPlace(weights []float64) (*AliasTable, error) {
	table, _, err := buildAliasTable(weights)
	return table, err
}

// buildAliasTable consumes [weights] and returns the table along with the
// number of columns left over in the worklists when pairing stopped.
func buildAliasTable(weights []float64) (*AliasTable, int, error) {
	n := len(weights)
	if n == 0 {
		return nil, 0, fmt.Errorf("%w: no weights provided", ErrInvalidInput)
	}
	for i, weight := range weights {
		switch {
		case math.IsNaN(weight) || math.IsInf(weight, 0):
			return nil, 0, fmt.Errorf("%w: weight %d is %v", ErrInvalidInput, i, weight)
		case weight < 0:
			return nil, 0, fmt.Errorf("%w: weight %d is negative (%v)", ErrInvalidInput, i, weight)
		}
	}
	total := floats.Sum(weights)
	switch {
	case total == 0:
		return nil, 0, fmt.Errorf("%w: total weight is zero", ErrInvalidInput)
	case math.IsInf(total, 0):
		return nil, 0, fmt.Errorf("%w: total weight overflows", ErrInvalidInput)
	}
	if inv := 1 / total; !math.IsInf(inv, 0) {
		floats.Scale(inv, weights)
	} else {
		// [total] is subnormal.
		for i := range weights {
			weights[i] /= total
		}
	}

	var (
		probability = make([]float64, n)
		alias       = make([]int, n)
		size        = float64(n)
		avg         = 1 / size
		small       = make([]int, 0, n)
		large       = make([]int, 0, n)
	)
	for i, weight := range weights {
		if weight < avg {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		less := small[len(small)-1]
		small = small[:len(small)-1]
		more := large[len(large)-1]
		large = large[:len(large)-1]

		probability[less] = weights[less] * size
		alias[less] = more

		// [more] donates the mass [less] is missing from its column.
		weights[more] += weights[less] - avg
		if weights[more] < avg {
			small = append(small, more)
		} else {
			large = append(large, more)
		}
	}

	// Without rounding error only [large] could be non-empty here, with every
	// remaining weight exactly avg. In practice either list may hold entries
	// that are within epsilon of avg.
	residual := len(small) + len(large)
	for _, idx := range large {
		probability[idx] = 1
		alias[idx] = idx
	}
	for _, idx := range small {
		probability[idx] = 1
		alias[idx] = idx
	}

	return &AliasTable{
		probability: probability,
		alias:       alias,
	}, residual, nil
}

// Len returns the number of categories.
func (t *AliasTable) Len() int {
	return len(t.probability)
}

// Probability returns the chance that column [i] returns [i] itself.
func (t *AliasTable) Probability(i int) float64 {
	return t.probability[i]
}

// Alias returns the index column [i] falls back to.
func (t *AliasTable) Alias(i int) int {
	return t.alias[i]
}

// Distribution returns the probability of drawing each index, as induced by
// the table. It equals the normalized input weights up to rounding error.
func (t *AliasTable) Distribution() []float64 {
	var (
		n    = len(t.probability)
		size = float64(n)
		dist = make([]float64, n)
	)
	for i, p := range t.probability {
		dist[i] += p / size
		dist[t.alias[i]] += (1 - p) / size
	}
	return dist
}
