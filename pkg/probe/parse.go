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
	"strings"

	"github.com/netswitch/netswitch/pkg/models"
)

// Pure parsers over captured command output. Each takes the full text a
// command produced and returns structured fields, empty on no match.

// parseIoregSSID extracts the SSID from ioreg output. The relevant line
// has the shape: "IO80211SSID" = "NetworkName".
func parseIoregSSID(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "IO80211SSID") {
			continue
		}

		start := strings.Index(line, `= "`)
		if start < 0 {
			return ""
		}

		rest := line[start+3:]

		end := strings.IndexByte(rest, '"')
		if end < 0 {
			return ""
		}

		return rest[:end]
	}

	return ""
}

// parseAirportSSID extracts the SSID from
// `networksetup -getairportnetwork` output.
func parseAirportSSID(out string) string {
	if strings.Contains(out, "not associated") {
		return ""
	}

	rest, ok := strings.CutPrefix(out, "Current Wi-Fi Network: ")
	if !ok {
		return ""
	}

	return strings.TrimSpace(rest)
}

// parseSystemProfilerSSID extracts the SSID from
// `system_profiler SPAirPortDataType` output. The SSID appears as a
// bare "Name:" heading under "Current Network Information:".
func parseSystemProfilerSSID(out string) string {
	inCurrent := false

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "Current Network Information:" {
			inCurrent = true

			continue
		}

		if !inCurrent {
			continue
		}

		if strings.HasSuffix(trimmed, ":") && !strings.Contains(trimmed, "Network") {
			if ssid := strings.TrimSuffix(trimmed, ":"); ssid != "" {
				return ssid
			}
		}

		if strings.HasPrefix(trimmed, "PHY Mode") || strings.HasPrefix(trimmed, "Other") {
			break
		}
	}

	return ""
}

// parseDefaultGateway extracts the default route's gateway address from
// `netstat -rn` output.
func parseDefaultGateway(out string) string {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "default" {
			return fields[1]
		}
	}

	return ""
}

// parseARPMAC extracts the hardware address from `arp -n <ip>` output,
// shaped like: ? (192.168.1.1) at aa:bb:cc:dd:ee:ff on en0 ifscope [ethernet].
// Unresolved entries report "(incomplete)" and yield nothing.
func parseARPMAC(out string) string {
	atPos := strings.Index(out, " at ")
	if atPos < 0 {
		return ""
	}

	rest := out[atPos+4:]

	onPos := strings.Index(rest, " on ")
	if onPos < 0 {
		return ""
	}

	mac := strings.TrimSpace(rest[:onPos])
	if mac == "" || mac == "(incomplete)" {
		return ""
	}

	return strings.ToLower(mac)
}

// parseServiceList extracts service names from
// `networksetup -listallnetworkservices` output. The first line is a
// usage banner; a leading asterisk marks a disabled service.
func parseServiceList(out string) []string {
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return nil
	}

	var services []string

	for _, line := range lines[1:] {
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		services = append(services, line)
	}

	return services
}

// hardwarePort is one Hardware Port/Device pair from
// `networksetup -listallhardwareports`.
type hardwarePort struct {
	service string
	device  string
}

func parseHardwarePorts(out string) []hardwarePort {
	var (
		ports   []hardwarePort
		service string
		device  string
	)

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)

		if name, ok := strings.CutPrefix(trimmed, "Hardware Port: "); ok {
			service = name
		} else if dev, ok := strings.CutPrefix(trimmed, "Device: "); ok {
			device = dev
		}

		if service != "" && device != "" {
			ports = append(ports, hardwarePort{service: service, device: device})
			service, device = "", ""
		}
	}

	return ports
}

// isEthernetPort reports whether a hardware port looks like a wired
// interface worth checking for a live connection.
func isEthernetPort(p hardwarePort) bool {
	service := strings.ToLower(p.service)

	if strings.Contains(service, "wi-fi") ||
		strings.Contains(service, "bluetooth") ||
		strings.Contains(service, "thunderbolt bridge") {
		return false
	}

	return strings.Contains(service, "ethernet") ||
		strings.Contains(service, "lan") ||
		strings.Contains(service, "usb") ||
		strings.HasPrefix(p.device, "en")
}

// parseGetInfo extracts addressing state from
// `networksetup -getinfo <service>` output. A reported IP of "none"
// counts as no address.
func parseGetInfo(out string) models.InterfaceSettings {
	settings := models.InterfaceSettings{
		UseDHCP: strings.Contains(out, "DHCP Configuration"),
	}

	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, "IP address: "); ok {
			if v = strings.TrimSpace(v); v != "none" {
				settings.IPAddress = v
			}
		} else if v, ok := strings.CutPrefix(line, "Subnet mask: "); ok {
			settings.SubnetMask = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(line, "Router: "); ok {
			settings.Router = strings.TrimSpace(v)
		}
	}

	return settings
}

// parseDNSServers extracts configured servers from
// `networksetup -getdnsservers <service>` output. When no servers are
// configured the command prints a sentence instead of addresses.
func parseDNSServers(out string) []string {
	if strings.Contains(out, "There aren't any DNS Servers") {
		return nil
	}

	var servers []string

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "Error") {
			continue
		}

		servers = append(servers, line)
	}

	return servers
}

// parseScutilDNS extracts resolver addresses from `scutil --dns`
// output, shaped like: nameserver[0] : 8.8.8.8. VPN-injected 198.18.x.x
// resolvers are filtered, and duplicates collapse.
func parseScutilDNS(out string) []string {
	var servers []string

	seen := make(map[string]struct{})

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "nameserver") {
			continue
		}

		parts := strings.SplitN(trimmed, ":", 2)
		if len(parts) != 2 {
			continue
		}

		dns := strings.TrimSpace(parts[1])
		if dns == "" || strings.HasPrefix(dns, "198.18.") {
			continue
		}

		if _, dup := seen[dns]; dup {
			continue
		}

		seen[dns] = struct{}{}

		servers = append(servers, dns)
	}

	return servers
}
