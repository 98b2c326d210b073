// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sample

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/aliassampler/utils/sampler"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := Command()
	c.SetArgs(args)
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	err := c.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommandSamplesValues(t *testing.T) {
	require := require.New(t)

	args := []string{
		"--weights=0.1,0.2,0.3,0.4",
		"--values=a,b,c,d",
		"--count=5",
		"--seed=42",
	}
	stdout, _, err := execute(t, args...)
	require.NoError(err)

	lines := strings.Fields(stdout)
	require.Len(lines, 5)
	for _, line := range lines {
		require.Contains([]string{"a", "b", "c", "d"}, line)
	}

	// Same seed, same output.
	again, _, err := execute(t, args...)
	require.NoError(err)
	require.Equal(stdout, again)

	seed := int64(42)
	s, err := sampler.NewAlias(sampler.Config{
		Weights: []float64{0.1, 0.2, 0.3, 0.4},
		Seed:    &seed,
	})
	require.NoError(err)
	expected, err := sampler.SampleValues(s, 5, []string{"a", "b", "c", "d"})
	require.NoError(err)
	require.Equal(expected, lines)
}

func TestCommandSamplesIndices(t *testing.T) {
	require := require.New(t)

	stdout, _, err := execute(t, "--weights=5", "--count=3", "--engine=xoshiro")
	require.NoError(err)
	require.Equal("0\n0\n0\n", stdout)
}

func TestCommandHistogram(t *testing.T) {
	require := require.New(t)

	stdout, _, err := execute(t,
		"--weights=1,0,3",
		"--values=x,y,z",
		"--count=1000",
		"--seed=1",
		"--histogram",
	)
	require.NoError(err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(lines, 4)
	require.True(strings.HasPrefix(lines[0], "VALUE"))

	// The zero-weight category is never drawn.
	y := strings.Fields(lines[2])
	require.Equal([]string{"y", "0", "0.000000", "0.000000"}, y)
}

func TestCommandExplainAndMetrics(t *testing.T) {
	require := require.New(t)

	stdout, stderr, err := execute(t,
		"--weights=1,3",
		"--count=0",
		"--seed=1",
		"--explain",
		"--print-metrics",
	)
	require.NoError(err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(lines, 3)
	require.Equal([]string{"0", "0.500000", "1", "0.250000"}, strings.Fields(lines[1]))
	require.Equal([]string{"1", "1.000000", "1", "0.750000"}, strings.Fields(lines[2]))

	require.Contains(stderr, "aliassample_tables_built 1")
	require.Contains(stderr, "aliassample_draws 0")
}

func TestCommandLogs(t *testing.T) {
	require := require.New(t)

	_, stderr, err := execute(t, "--weights=1,2", "--seed=9", "--log-level=debug")
	require.NoError(err)
	require.Contains(stderr, "built alias table")
	require.Contains(stderr, "sampling")
}

func TestCommandRejectsInvalidWeights(t *testing.T) {
	_, _, err := execute(t, "--weights=1,-1")
	require.ErrorIs(t, err, sampler.ErrInvalidInput)
}
