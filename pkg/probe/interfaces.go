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

// Package probe reads the host's current network identity and live
// interface settings from the operating system. All probe operations
// are read-only and absence-tolerant: a failed or unparseable command
// degrades to empty fields, never to an error surfaced to the caller.
package probe

//go:generate mockgen -destination=mock_probe.go -package=probe github.com/netswitch/netswitch/pkg/probe Probe,CommandRunner

import (
	"context"

	"github.com/netswitch/netswitch/pkg/models"
)

// Probe is the read-only view of the host's network state.
type Probe interface {
	// ListServices returns the configured network services in OS order.
	ListServices(ctx context.Context) []string

	// CurrentIdentity probes what network the host is on right now.
	CurrentIdentity(ctx context.Context) models.NetworkIdentity

	// ServiceSettings returns the live addressing state of a service.
	ServiceSettings(ctx context.Context, service string) models.InterfaceSettings
}

// CommandRunner executes an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}
