// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

const massTolerance = 1e-9

func normalize(weights []float64) []float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / total
	}
	return normalized
}

// checkTable returns a description of the first violated invariant, or the
// empty string if [table] is a valid alias table for [weights].
func checkTable(table *AliasTable, weights []float64) string {
	if table.Len() != len(weights) {
		return fmt.Sprintf("expected %d categories, got %d", len(weights), table.Len())
	}
	for i := 0; i < table.Len(); i++ {
		if p := table.Probability(i); p < 0 || p > 1+massTolerance {
			return fmt.Sprintf("probability[%d] = %v out of [0, 1]", i, p)
		}
		if a := table.Alias(i); a < 0 || a >= table.Len() {
			return fmt.Sprintf("alias[%d] = %d out of range", i, a)
		}
	}
	expected := normalize(weights)
	for i, p := range table.Distribution() {
		if math.Abs(p-expected[i]) > massTolerance {
			return fmt.Sprintf("P(draw=%d) = %v, expected %v", i, p, expected[i])
		}
	}
	return ""
}

func TestBuildAliasTableMassConservation(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
	}{
		{
			name:    "single",
			weights: []float64{5},
		},
		{
			name:    "increasing",
			weights: []float64{1, 2, 3, 4},
		},
		{
			name:    "already normalized",
			weights: []float64{0.1, 0.2, 0.3, 0.4},
		},
		{
			name:    "zeros",
			weights: []float64{0, 3, 0, 1, 0},
		},
		{
			name:    "one dominant",
			weights: []float64{1e-12, 1e-12, 1e12, 1e-12},
		},
		{
			name:    "thirds",
			weights: []float64{1, 1, 1, 0.1, 0.2, 0.7},
		},
		{
			name:    "subnormal total",
			weights: []float64{5e-324, 5e-324},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			table, err := BuildAliasTable(test.weights)
			require.NoError(t, err)
			require.Empty(t, checkTable(table, test.weights))
		})
	}
}

func TestBuildAliasTableUniform(t *testing.T) {
	require := require.New(t)

	table, residual, err := buildAliasTable([]float64{1, 1, 1, 1})
	require.NoError(err)
	require.Equal(4, residual)
	for i := 0; i < table.Len(); i++ {
		require.Equal(1.0, table.Probability(i))
		require.Equal(i, table.Alias(i))
	}
}

func TestBuildAliasTablePairing(t *testing.T) {
	require := require.New(t)

	// Normalized to [0.25, 0.75]: column 0 keeps a quarter of its mass
	// share and borrows the rest from column 1.
	table, err := BuildAliasTable([]float64{1, 3})
	require.NoError(err)
	require.InDelta(0.5, table.Probability(0), massTolerance)
	require.Equal(1, table.Alias(0))
	require.Equal(1.0, table.Probability(1))
	require.Equal(1, table.Alias(1))
}

func TestBuildAliasTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
	}{
		{
			name:    "nil",
			weights: nil,
		},
		{
			name:    "empty",
			weights: []float64{},
		},
		{
			name:    "negative",
			weights: []float64{1, -1},
		},
		{
			name:    "NaN",
			weights: []float64{1, math.NaN()},
		},
		{
			name:    "infinite",
			weights: []float64{math.Inf(1), 1},
		},
		{
			name:    "all zero",
			weights: []float64{0, 0, 0},
		},
		{
			name:    "total overflows",
			weights: []float64{math.MaxFloat64, math.MaxFloat64},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := BuildAliasTable(test.weights)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestBuildAliasTableOwnership(t *testing.T) {
	require := require.New(t)

	weights := []float64{1, 3}
	_, err := BuildAliasTable(weights)
	require.NoError(err)
	require.Equal([]float64{1, 3}, weights)

	_, err = BuildAliasTableInPlace(weights)
	require.NoError(err)
	require.NotEqual([]float64{1, 3}, weights)
}

func TestAliasTableProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	weightGen := gen.OneGenOf(
		gen.Const(0.0),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1e6),
	)
	weightsGen := gen.IntRange(1, 128).FlatMap(
		func(v interface{}) gopter.Gen {
			return gen.SliceOfN(v.(int), weightGen)
		},
		reflect.TypeOf([]float64{}),
	).SuchThat(func(weights []float64) bool {
		for _, w := range weights {
			if w > 0 {
				return true
			}
		}
		return false
	})

	properties.Property("induced distribution matches normalized weights", prop.ForAll(
		func(weights []float64) string {
			table, err := BuildAliasTable(weights)
			if err != nil {
				return err.Error()
			}
			return checkTable(table, weights)
		},
		weightsGen,
	))

	properties.Property("zero weights are never sampled", prop.ForAll(
		func(weights []float64) string {
			table, err := BuildAliasTable(weights)
			if err != nil {
				return err.Error()
			}
			for i := 0; i < table.Len(); i++ {
				a := table.Alias(i)
				if weights[a] == 0 && table.Probability(i) < 1 {
					return fmt.Sprintf("column %d aliases zero-weight index %d", i, a)
				}
				if weights[i] == 0 && table.Probability(i) != 0 && a != i {
					return fmt.Sprintf("zero-weight column %d has probability %v", i, table.Probability(i))
				}
			}
			return ""
		},
		weightsGen,
	))

	properties.TestingRun(t)
}
