// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sample

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/aliassampler/utils/logging"
	"github.com/ava-labs/aliassampler/utils/sampler"
)

const (
	EnvPrefix = "aliassample"

	ConfigFileKey   = "config-file"
	WeightsKey      = "weights"
	ValuesKey       = "values"
	CountKey        = "count"
	SeedKey         = "seed"
	EngineKey       = "engine"
	HistogramKey    = "histogram"
	ExplainKey      = "explain"
	PrintMetricsKey = "print-metrics"
	LogLevelKey     = "log-level"
	LogFormatKey    = "log-format"
)

var (
	errNoWeights     = errors.New("no weights provided")
	errValuesLength  = errors.New("number of values must match number of weights")
	errNegativeCount = errors.New("count must be non-negative")
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(ConfigFileKey, "", "Optional config file providing any of the flags below")
	flags.String(WeightsKey, "", "Comma separated non-negative weights")
	flags.String(ValuesKey, "", "Comma separated labels to print instead of indices")
	flags.Int(CountKey, 1, "Number of samples to draw")
	flags.Int64(SeedKey, 0, "Seed for the random engine. A random seed is used if unset")
	flags.String(EngineKey, sampler.MinimalStandardName, fmt.Sprintf("Random engine, one of %q, %q or %q", sampler.MinimalStandardName, sampler.MT19937Name, sampler.XoshiroName))
	flags.Bool(HistogramKey, false, "Print per-category counts instead of individual samples")
	flags.Bool(ExplainKey, false, "Print the alias table before sampling")
	flags.Bool(PrintMetricsKey, false, "Write sampler metrics to stderr when done")
	flags.String(LogLevelKey, "info", "Log level")
	flags.String(LogFormatKey, "plain", "Log format, plain or json")
}

type Config struct {
	Weights      []float64
	Values       []string
	Count        int
	Seed         *int64
	Engine       sampler.SourceFactory
	EngineName   string
	Histogram    bool
	Explain      bool
	PrintMetrics bool
	LogLevel     logging.Level
	LogFormat    logging.Format
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

// ParseFlags resolves the configuration from, in decreasing priority, the
// command line, the environment and the config file.
func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v, err := newViper(flags)
	if err != nil {
		return nil, err
	}

	weights, err := parseWeights(v.GetString(WeightsKey))
	if err != nil {
		return nil, err
	}

	values := splitList(v.GetString(ValuesKey))
	if len(values) != 0 && len(values) != len(weights) {
		return nil, fmt.Errorf("%w: %d values, %d weights", errValuesLength, len(values), len(weights))
	}

	count := v.GetInt(CountKey)
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", errNegativeCount, count)
	}

	var seed *int64
	if v.IsSet(SeedKey) {
		s := v.GetInt64(SeedKey)
		seed = &s
	}

	engineName := v.GetString(EngineKey)
	engine, err := sampler.SourceFactoryByName(engineName)
	if err != nil {
		return nil, err
	}

	logLevel, err := logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return nil, err
	}

	logFormat, err := logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return nil, err
	}

	return &Config{
		Weights:      weights,
		Values:       values,
		Count:        count,
		Seed:         seed,
		Engine:       engine,
		EngineName:   strings.ToLower(engineName),
		Histogram:    v.GetBool(HistogramKey),
		Explain:      v.GetBool(ExplainKey),
		PrintMetrics: v.GetBool(PrintMetricsKey),
		LogLevel:     logLevel,
		LogFormat:    logFormat,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

func parseWeights(s string) ([]float64, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, errNoWeights
	}
	weights := make([]float64, len(fields))
	for i, field := range fields {
		weight, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse weight %d: %w", i, err)
		}
		weights[i] = weight
	}
	return weights, nil
}
