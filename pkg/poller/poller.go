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

// Package poller decouples slow OS probes from the controller loop by
// publishing probe results into a mutex-guarded snapshot.
package poller

import (
	"context"
	"sync"

	"github.com/netswitch/netswitch/pkg/logger"
	"github.com/netswitch/netswitch/pkg/models"
	"github.com/netswitch/netswitch/pkg/probe"
)

// Snapshot is the shared cell bridging the refresh goroutine and the
// controller. SSID is the display form; wired networks render as
// "[wired] <service>".
type Snapshot struct {
	SSID      string
	RouterMAC string
	Settings  models.InterfaceSettings
	Loading   bool
}

// IdentityPoller runs at most one probe cycle at a time and publishes
// the result atomically. The mutex is never held across a probe call.
type IdentityPoller struct {
	probe  probe.Probe
	logger logger.Logger

	mu         sync.Mutex
	snap       Snapshot
	refreshing bool

	wg sync.WaitGroup
}

// New creates a poller. A nil logger discards.
func New(p probe.Probe, log logger.Logger) *IdentityPoller {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &IdentityPoller{probe: p, logger: log}
}

// Refresh starts one background probe cycle for the given service and
// reports whether it started. A refresh already in flight makes the
// call a no-op; probe failures degrade to empty snapshot fields and are
// never surfaced here.
func (p *IdentityPoller) Refresh(ctx context.Context, service string) bool {
	p.mu.Lock()
	if p.refreshing {
		p.mu.Unlock()

		return false
	}

	p.refreshing = true
	p.snap.Loading = true
	p.mu.Unlock()

	p.wg.Add(1)

	go func() {
		defer p.wg.Done()

		identity := p.probe.CurrentIdentity(ctx)
		settings := p.probe.ServiceSettings(ctx, service)

		p.mu.Lock()
		p.snap = Snapshot{
			SSID:      identity.DisplaySSID(),
			RouterMAC: identity.RouterMAC,
			Settings:  settings,
		}
		p.refreshing = false
		p.mu.Unlock()

		p.logger.Debug().
			Str("ssid", identity.DisplaySSID()).
			Str("router_mac", identity.RouterMAC).
			Msg("Network snapshot refreshed")
	}()

	return true
}

// SnapshotView returns a copy of the current snapshot.
func (p *IdentityPoller) SnapshotView() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snap
}

// Refreshing reports whether a probe cycle is in flight.
func (p *IdentityPoller) Refreshing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.refreshing
}

// Stop waits for an in-flight refresh to finish, bounded by ctx. The
// probe itself is not cancelled; it runs to completion.
func (p *IdentityPoller) Stop(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
