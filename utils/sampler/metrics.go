// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/aliassampler/utils/wrappers"
)

// Metrics reports how samplers are built and used. A single Metrics may be
// shared by many samplers.
type Metrics struct {
	tablesBuilt  prometheus.Counter
	categories   prometheus.Gauge
	residualCols prometheus.Counter
	draws        prometheus.Counter
	aliasDraws   prometheus.Counter
}

func NewMetrics(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		tablesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tables_built",
			Help:      "number of alias tables built",
		}),
		categories: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "categories",
			Help:      "number of categories in the most recently built alias table",
		}),
		residualCols: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "residual_columns",
			Help:      "number of columns left unpaired by rounding error and forced to probability 1",
		}),
		draws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws",
			Help:      "number of indices sampled",
		}),
		aliasDraws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alias_draws",
			Help:      "number of sampled indices that came from a column's alias",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.tablesBuilt),
		registerer.Register(m.categories),
		registerer.Register(m.residualCols),
		registerer.Register(m.draws),
		registerer.Register(m.aliasDraws),
	)
	return m, errs.Err
}

func (m *Metrics) observeBuild(categories, residual int) {
	if m == nil {
		return
	}
	m.tablesBuilt.Inc()
	m.categories.Set(float64(categories))
	m.residualCols.Add(float64(residual))
}

func (m *Metrics) observeDraw(fromAlias bool) {
	if m == nil {
		return
	}
	m.draws.Inc()
	if fromAlias {
		m.aliasDraws.Inc()
	}
}
