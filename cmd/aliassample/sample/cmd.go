// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sample

import (
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/aliassampler/utils/logging"
	"github.com/ava-labs/aliassampler/utils/sampler"
)

const metricsNamespace = "aliassample"

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:          "aliassample",
		Short:        "Draws weighted random samples using Vose's alias method",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         sampleFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func sampleFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	log := logging.NewLogger(
		metricsNamespace,
		logging.NewWrappedCore(config.LogLevel, nopCloser{c.ErrOrStderr()}, config.LogFormat.Encoder()),
	)
	defer log.Stop()

	return run(config, log, c.OutOrStdout(), c.ErrOrStderr())
}

func run(config *Config, log logging.Logger, out, errOut io.Writer) error {
	registry := prometheus.NewRegistry()
	metrics, err := sampler.NewMetrics(metricsNamespace, registry)
	if err != nil {
		return err
	}

	s, err := sampler.NewAlias(sampler.Config{
		Weights:      config.Weights,
		ReuseWeights: true,
		Seed:         config.Seed,
		NewSource:    config.Engine,
		Log:          log.With(zap.String("engine", config.EngineName)),
		Metrics:      metrics,
	})
	if err != nil {
		return err
	}
	log.Info("sampling",
		zap.Int("categories", s.Len()),
		zap.Int("count", config.Count),
		zap.Int64("seed", s.Seed()),
	)

	labels := config.Values
	if len(labels) == 0 {
		labels = make([]string, s.Len())
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}

	if config.Explain {
		if err := writeTable(out, s.Table(), labels); err != nil {
			return err
		}
	}

	if config.Histogram {
		indices, err := s.SampleN(config.Count)
		if err != nil {
			return err
		}
		if err := writeHistogram(out, s.Table(), labels, indices); err != nil {
			return err
		}
	} else {
		samples, err := sampler.SampleValues(s, config.Count, labels)
		if err != nil {
			return err
		}
		if err := writeSamples(out, samples); err != nil {
			return err
		}
	}

	if !config.PrintMetrics {
		return nil
	}
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(errOut, family); err != nil {
			return err
		}
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
