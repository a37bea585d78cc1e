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

// Package applier pushes a saved profile's settings to a network
// service in a fixed order: addressing first, DNS last. The first
// failing step aborts the sequence; completed steps are not reverted.
package applier

import (
	"context"
	"fmt"

	"github.com/netswitch/netswitch/pkg/actuator"
	"github.com/netswitch/netswitch/pkg/logger"
	"github.com/netswitch/netswitch/pkg/models"
)

// Static addressing falls back to these when a profile leaves a field
// blank, so an incomplete profile still produces a deterministic result.
const (
	defaultStaticIP     = "192.168.1.100"
	defaultStaticMask   = "255.255.255.0"
	defaultStaticRouter = "192.168.1.1"
)

// Result reports where a profile landed.
type Result struct {
	// Service is the resolved target service.
	Service string

	// Message is a short human-readable summary of what was applied.
	Message string
}

// Applier serializes profile application through the actuator.
type Applier struct {
	actuator actuator.Actuator
	logger   logger.Logger
}

// New creates an Applier. A nil logger discards.
func New(act actuator.Actuator, log logger.Logger) *Applier {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Applier{actuator: act, logger: log}
}

// Apply pushes a profile to its target service, falling back to
// fallbackService when the profile names none.
func (a *Applier) Apply(ctx context.Context, cfg models.NetworkConfig, fallbackService string) (Result, error) {
	service := cfg.TargetService
	if service == "" {
		service = fallbackService
	}

	a.logger.Info().
		Str("config", cfg.Name).
		Str("service", service).
		Bool("dhcp", cfg.UseDHCP).
		Msg("Applying network config")

	if cfg.UseDHCP {
		if err := a.actuator.SetDHCP(ctx, service); err != nil {
			return Result{Service: service}, err
		}
	} else {
		ip := stringOr(cfg.IPAddress, defaultStaticIP)
		mask := stringOr(cfg.SubnetMask, defaultStaticMask)
		router := stringOr(cfg.Router, defaultStaticRouter)

		if err := a.actuator.SetStatic(ctx, service, ip, mask, router); err != nil {
			return Result{Service: service}, err
		}
	}

	if err := a.actuator.SetDNSServers(ctx, service, cfg.DNSServers); err != nil {
		return Result{Service: service}, err
	}

	return Result{
		Service: service,
		Message: fmt.Sprintf("applied %q to %s", cfg.Name, service),
	}, nil
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}
