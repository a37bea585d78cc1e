/*
 * Copyright 2025 The netswitch Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metrics exposes daemon counters over Prometheus. A nil
// Collector is valid and records nothing, so call sites never need a
// guard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the daemon's Prometheus instruments.
type Collector struct {
	registry *prometheus.Registry

	ticks          prometheus.Counter
	refreshes      prometheus.Counter
	networkChanges prometheus.Counter
	matchHits      prometheus.Counter
	matchMisses    prometheus.Counter
	applies        *prometheus.CounterVec
}

// NewCollector registers the daemon instruments on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netswitch",
			Name:      "controller_ticks_total",
			Help:      "Controller loop iterations.",
		}),
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netswitch",
			Name:      "identity_refreshes_total",
			Help:      "Background identity probe cycles started.",
		}),
		networkChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netswitch",
			Name:      "network_changes_total",
			Help:      "Observed SSID or router MAC changes.",
		}),
		matchHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netswitch",
			Name:      "match_hits_total",
			Help:      "Auto-apply evaluations that selected a config.",
		}),
		matchMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netswitch",
			Name:      "match_misses_total",
			Help:      "Auto-apply evaluations that selected nothing.",
		}),
		applies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "netswitch",
			Name:      "applies_total",
			Help:      "Config applications by outcome.",
		}, []string{"outcome"}),
	}

	c.registry.MustRegister(
		c.ticks,
		c.refreshes,
		c.networkChanges,
		c.matchHits,
		c.matchMisses,
		c.applies,
	)

	return c
}

// Handler serves the registry over HTTP.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// IncTick counts one controller loop iteration.
func (c *Collector) IncTick() {
	if c == nil {
		return
	}

	c.ticks.Inc()
}

// IncRefresh counts one started probe cycle.
func (c *Collector) IncRefresh() {
	if c == nil {
		return
	}

	c.refreshes.Inc()
}

// IncNetworkChange counts one observed identity change.
func (c *Collector) IncNetworkChange() {
	if c == nil {
		return
	}

	c.networkChanges.Inc()
}

// IncMatch counts one auto-apply evaluation outcome.
func (c *Collector) IncMatch(hit bool) {
	if c == nil {
		return
	}

	if hit {
		c.matchHits.Inc()
	} else {
		c.matchMisses.Inc()
	}
}

// IncApply counts one config application by outcome.
func (c *Collector) IncApply(success bool) {
	if c == nil {
		return
	}

	outcome := "success"
	if !success {
		outcome = "failure"
	}

	c.applies.WithLabelValues(outcome).Inc()
}
