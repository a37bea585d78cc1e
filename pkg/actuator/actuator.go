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

// Package actuator mutates a network service's addressing state.
// Every operation is idempotent when reapplied with the same arguments.
package actuator

//go:generate mockgen -destination=mock_actuator.go -package=actuator github.com/netswitch/netswitch/pkg/actuator Actuator,CommandRunner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// dnsClearSentinel is the literal networksetup expects in place of a
// server list to remove all configured DNS servers.
const dnsClearSentinel = "Empty"

// ErrCommandFailed wraps a non-zero exit from networksetup.
var ErrCommandFailed = errors.New("command failed")

// Actuator is the write-only view of a network service.
type Actuator interface {
	SetDHCP(ctx context.Context, service string) error
	SetStatic(ctx context.Context, service, ip, mask, router string) error
	SetDNSServers(ctx context.Context, service string, servers []string) error
}

// CommandRunner executes an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// Run implements CommandRunner. On a non-zero exit the command's stderr
// is folded into the returned error.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s: %s", ErrCommandFailed, name,
				strings.TrimSpace(string(exitErr.Stderr)))
		}

		return "", fmt.Errorf("%w: %s: %w", ErrCommandFailed, name, err)
	}

	return string(out), nil
}

// NetworkSetup applies settings through the networksetup tool.
type NetworkSetup struct {
	runner CommandRunner
}

// NewNetworkSetup creates an actuator. A nil runner defaults to
// ExecRunner.
func NewNetworkSetup(runner CommandRunner) *NetworkSetup {
	if runner == nil {
		runner = ExecRunner{}
	}

	return &NetworkSetup{runner: runner}
}

// SetDHCP switches a service to DHCP addressing.
func (a *NetworkSetup) SetDHCP(ctx context.Context, service string) error {
	_, err := a.runner.Run(ctx, "networksetup", "-setdhcp", service)
	if err != nil {
		return fmt.Errorf("failed to enable DHCP on %q: %w", service, err)
	}

	return nil
}

// SetStatic switches a service to manual addressing.
func (a *NetworkSetup) SetStatic(ctx context.Context, service, ip, mask, router string) error {
	_, err := a.runner.Run(ctx, "networksetup", "-setmanual", service, ip, mask, router)
	if err != nil {
		return fmt.Errorf("failed to set static address on %q: %w", service, err)
	}

	return nil
}

// SetDNSServers replaces a service's DNS servers, clearing them when
// the list is empty.
func (a *NetworkSetup) SetDNSServers(ctx context.Context, service string, servers []string) error {
	args := []string{"-setdnsservers", service}
	if len(servers) == 0 {
		args = append(args, dnsClearSentinel)
	} else {
		args = append(args, servers...)
	}

	_, err := a.runner.Run(ctx, "networksetup", args...)
	if err != nil {
		return fmt.Errorf("failed to set DNS servers on %q: %w", service, err)
	}

	return nil
}
