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

package probe

import (
	"context"
	"strings"

	gopsnet "github.com/shirou/gopsutil/v3/net"

	"github.com/netswitch/netswitch/pkg/logger"
	"github.com/netswitch/netswitch/pkg/models"
)

// SystemProbe reads network state by shelling out to the OS tools.
type SystemProbe struct {
	runner CommandRunner
	logger logger.Logger
}

// NewSystemProbe creates a probe. A nil runner defaults to ExecRunner;
// a nil logger discards.
func NewSystemProbe(runner CommandRunner, log logger.Logger) *SystemProbe {
	if runner == nil {
		runner = ExecRunner{}
	}

	if log == nil {
		log = logger.NewTestLogger()
	}

	return &SystemProbe{runner: runner, logger: log}
}

// ListServices implements Probe. When networksetup is unavailable it
// falls back to enumerating up, non-loopback interfaces, and as a last
// resort assumes a single Wi-Fi service.
func (p *SystemProbe) ListServices(ctx context.Context) []string {
	out, err := p.runner.Run(ctx, "networksetup", "-listallnetworkservices")
	if err == nil {
		if services := parseServiceList(out); len(services) > 0 {
			return services
		}
	} else {
		p.logger.Debug().Err(err).Msg("networksetup unavailable, falling back to interface scan")
	}

	if names := interfaceNames(); len(names) > 0 {
		return names
	}

	return []string{"Wi-Fi"}
}

// interfaceNames lists up, non-loopback interfaces via gopsutil.
func interfaceNames() []string {
	ifaces, err := gopsnet.Interfaces()
	if err != nil {
		return nil
	}

	var names []string

	for _, iface := range ifaces {
		up, loopback := false, false

		for _, flag := range iface.Flags {
			switch flag {
			case "up":
				up = true
			case "loopback":
				loopback = true
			}
		}

		if up && !loopback {
			names = append(names, iface.Name)
		}
	}

	return names
}

// CurrentIdentity implements Probe. Wi-Fi wins over wired when both are
// present; every field degrades to empty on probe failure.
func (p *SystemProbe) CurrentIdentity(ctx context.Context) models.NetworkIdentity {
	routerMAC := p.routerMAC(ctx)

	if ssid := p.currentSSID(ctx); ssid != "" {
		return models.NetworkIdentity{SSID: ssid, RouterMAC: routerMAC}
	}

	if service := p.activeWiredService(ctx); service != "" {
		return models.NetworkIdentity{
			RouterMAC:        routerMAC,
			IsWired:          true,
			WiredServiceName: service,
		}
	}

	return models.NetworkIdentity{RouterMAC: routerMAC}
}

// currentSSID tries ioreg first because it is not subject to the OS
// privacy redaction, then networksetup, then system_profiler.
func (p *SystemProbe) currentSSID(ctx context.Context) string {
	if out, err := p.runner.Run(ctx, "ioreg", "-l"); err == nil {
		if ssid := parseIoregSSID(out); ssid != "" {
			return ssid
		}
	}

	if out, err := p.runner.Run(ctx, "networksetup", "-getairportnetwork", "en0"); err == nil {
		if ssid := parseAirportSSID(out); ssid != "" {
			return ssid
		}
	}

	if out, err := p.runner.Run(ctx, "system_profiler", "SPAirPortDataType"); err == nil {
		if ssid := parseSystemProfilerSSID(out); ssid != "" {
			return ssid
		}
	}

	return ""
}

// routerMAC resolves the default gateway and looks up its hardware
// address in the ARP table.
func (p *SystemProbe) routerMAC(ctx context.Context) string {
	out, err := p.runner.Run(ctx, "netstat", "-rn")
	if err != nil {
		return ""
	}

	gateway := parseDefaultGateway(out)
	if gateway == "" || strings.Contains(gateway, "link#") {
		return ""
	}

	arpOut, err := p.runner.Run(ctx, "arp", "-n", gateway)
	if err != nil {
		return ""
	}

	return parseARPMAC(arpOut)
}

// activeWiredService returns the first ethernet-like hardware port that
// currently holds an IP address.
func (p *SystemProbe) activeWiredService(ctx context.Context) string {
	out, err := p.runner.Run(ctx, "networksetup", "-listallhardwareports")
	if err != nil {
		return ""
	}

	for _, port := range parseHardwarePorts(out) {
		if !isEthernetPort(port) {
			continue
		}

		info, err := p.runner.Run(ctx, "networksetup", "-getinfo", port.service)
		if err != nil {
			continue
		}

		if parseGetInfo(info).IPAddress != "" {
			return port.service
		}
	}

	return ""
}

// ServiceSettings implements Probe. DNS comes from the service's
// configured servers when set, otherwise from the live resolver state.
func (p *SystemProbe) ServiceSettings(ctx context.Context, service string) models.InterfaceSettings {
	var settings models.InterfaceSettings

	if out, err := p.runner.Run(ctx, "networksetup", "-getinfo", service); err == nil {
		settings = parseGetInfo(out)
	}

	settings.DNSServers = p.dnsServers(ctx, service)

	return settings
}

func (p *SystemProbe) dnsServers(ctx context.Context, service string) []string {
	if out, err := p.runner.Run(ctx, "networksetup", "-getdnsservers", service); err == nil {
		if servers := parseDNSServers(out); len(servers) > 0 {
			return servers
		}
	}

	if out, err := p.runner.Run(ctx, "scutil", "--dns"); err == nil {
		if servers := parseScutilDNS(out); len(servers) > 0 {
			return servers
		}
	}

	return nil
}
