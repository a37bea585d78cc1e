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

// Package controller drives the detect-match-apply cycle: it reads the
// poller snapshot on a fixed cadence, reacts immediately to identity
// changes, and suppresses redundant re-application.
package controller

//go:generate mockgen -destination=mock_controller.go -package=controller github.com/netswitch/netswitch/pkg/controller IdentitySource,ConfigApplier

import (
	"context"
	"time"

	"github.com/netswitch/netswitch/pkg/applier"
	"github.com/netswitch/netswitch/pkg/logger"
	"github.com/netswitch/netswitch/pkg/match"
	"github.com/netswitch/netswitch/pkg/metrics"
	"github.com/netswitch/netswitch/pkg/models"
	"github.com/netswitch/netswitch/pkg/poller"
	"github.com/netswitch/netswitch/pkg/store"
)

// IdentitySource is the poller surface the controller consumes.
type IdentitySource interface {
	Refresh(ctx context.Context, service string) bool
	SnapshotView() poller.Snapshot
	Refreshing() bool
	Stop(ctx context.Context) error
}

// ConfigApplier is the applier surface the controller consumes.
type ConfigApplier interface {
	Apply(ctx context.Context, cfg models.NetworkConfig, fallbackService string) (applier.Result, error)
}

// Controller owns the foreground loop. The store is touched only here;
// background goroutines never see it.
type Controller struct {
	cfg     Config
	store   *store.Store
	source  IdentitySource
	applier ConfigApplier
	clock   Clock
	metrics *metrics.Collector
	logger  logger.Logger

	lastSSID    string
	lastMAC     string
	lastApplied string

	stop chan struct{}
	done chan struct{}
}

// New wires a controller. A nil clock uses the wall clock; a nil
// metrics collector records nothing; a nil logger discards.
func New(cfg Config, st *store.Store, source IdentitySource, app ConfigApplier,
	clock Clock, m *metrics.Collector, log logger.Logger) *Controller {
	if clock == nil {
		clock = realClock{}
	}

	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Controller{
		cfg:     cfg,
		store:   st,
		source:  source,
		applier: app,
		clock:   clock,
		metrics: m,
		logger:  log,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start runs the loop until ctx is done or Stop is called. It issues an
// initial refresh immediately, then re-evaluates every tick and issues
// a new refresh at most once per poll interval.
func (c *Controller) Start(ctx context.Context) error {
	defer close(c.done)

	c.logger.Info().
		Str("document", c.cfg.DocumentPath).
		Dur("poll_interval", c.cfg.PollInterval.Duration()).
		Msg("Controller starting")

	c.refresh(ctx)

	lastRefresh := c.clock.Now()

	for {
		timer := c.clock.Timer(c.tickInterval())

		select {
		case <-ctx.Done():
			timer.Stop()

			return ctx.Err()
		case <-c.stop:
			timer.Stop()

			return nil
		case <-timer.Chan():
		}

		c.metrics.IncTick()
		c.tick(ctx)

		if c.clock.Now().Sub(lastRefresh) >= c.cfg.PollInterval.Duration() {
			c.reloadStore()
			c.refresh(ctx)

			lastRefresh = c.clock.Now()
		}
	}
}

// Stop signals the loop and waits for it and any in-flight refresh,
// bounded by ctx.
func (c *Controller) Stop(ctx context.Context) error {
	close(c.stop)

	select {
	case <-c.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return c.source.Stop(ctx)
}

func (c *Controller) tickInterval() time.Duration {
	if c.source.Refreshing() {
		return c.cfg.BusyTickInterval.Duration()
	}

	return c.cfg.TickInterval.Duration()
}

// tick consumes the snapshot and runs the auto-apply decision when the
// observed identity changed since the last tick.
func (c *Controller) tick(ctx context.Context) {
	snap := c.source.SnapshotView()
	if snap.Loading {
		return
	}

	if snap.SSID == c.lastSSID && snap.RouterMAC == c.lastMAC {
		return
	}

	c.logger.Info().
		Str("ssid", snap.SSID).
		Str("router_mac", snap.RouterMAC).
		Msg("Network change detected")

	c.lastSSID = snap.SSID
	c.lastMAC = snap.RouterMAC
	c.metrics.IncNetworkChange()

	c.evaluate(ctx)
}

// evaluate runs one auto-apply decision against the current identity.
func (c *Controller) evaluate(ctx context.Context) {
	if !c.store.AutoSwitch() || c.lastSSID == "" {
		return
	}

	cfg, ok := match.FindAutoApply(c.store.ConfigMap(), c.lastSSID, c.lastMAC)
	c.metrics.IncMatch(ok)

	if !ok {
		c.lastApplied = ""

		return
	}

	if cfg.Name == c.lastApplied {
		return
	}

	result, err := c.applier.Apply(ctx, cfg, c.store.NetworkService())
	c.metrics.IncApply(err == nil)

	if err != nil {
		c.logger.Warn().Err(err).Str("config", cfg.Name).Msg("Auto-apply failed")

		return
	}

	c.logger.Info().Str("config", cfg.Name).Str("service", result.Service).Msg("Auto-applied config")

	c.lastApplied = cfg.Name

	// Re-probe so the snapshot reflects the just-applied settings.
	c.refreshService(ctx, result.Service)
}

func (c *Controller) refresh(ctx context.Context) {
	c.refreshService(ctx, c.targetService())
}

func (c *Controller) refreshService(ctx context.Context, service string) {
	if c.source.Refresh(ctx, service) {
		c.metrics.IncRefresh()
	}
}

func (c *Controller) targetService() string {
	if s := c.store.NetworkService(); s != "" {
		return s
	}

	return "Wi-Fi"
}

// reloadStore re-reads the document so profile edits made by the CLI
// process take effect without restarting the daemon.
func (c *Controller) reloadStore() {
	c.store = store.Load(c.cfg.DocumentPath, c.logger)
}
