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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIoregSSID(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{
			name: "present",
			out:  `    |   "IO80211SSID" = "HomeNet"` + "\n",
			want: "HomeNet",
		},
		{
			name: "ssid with spaces",
			out:  `"IO80211SSID" = "Cafe Guest 5G"`,
			want: "Cafe Guest 5G",
		},
		{
			name: "absent",
			out:  `"IOMatchCategory" = "IODefaultMatchCategory"`,
			want: "",
		},
		{
			name: "empty output",
			out:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIoregSSID(tt.out))
		})
	}
}

func TestParseAirportSSID(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{
			name: "associated",
			out:  "Current Wi-Fi Network: HomeNet\n",
			want: "HomeNet",
		},
		{
			name: "not associated",
			out:  "You are not associated with an AirPort network.\n",
			want: "",
		},
		{
			name: "garbage",
			out:  "en0 is not a Wi-Fi interface.\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAirportSSID(tt.out))
		})
	}
}

func TestParseSystemProfilerSSID(t *testing.T) {
	out := `Wi-Fi:

      Interfaces:

        en0:
          Card Type: Wi-Fi
          Status: Connected
          Current Network Information:
            HomeNet:
              PHY Mode: 802.11ax
              Channel: 44
`

	assert.Equal(t, "HomeNet", parseSystemProfilerSSID(out))
}

func TestParseSystemProfilerSSIDDisconnected(t *testing.T) {
	out := `Wi-Fi:

      Interfaces:

        en0:
          Card Type: Wi-Fi
          Status: Off
`

	assert.Empty(t, parseSystemProfilerSSID(out))
}

func TestParseDefaultGateway(t *testing.T) {
	out := `Routing tables

Internet:
Destination        Gateway            Flags           Netif Expire
default            192.168.1.1        UGScg             en0
127                127.0.0.1          UCS               lo0
`

	assert.Equal(t, "192.168.1.1", parseDefaultGateway(out))
	assert.Empty(t, parseDefaultGateway("Routing tables\n"))
}

func TestParseARPMAC(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{
			name: "resolved",
			out:  "? (192.168.1.1) at AA:BB:CC:DD:EE:FF on en0 ifscope [ethernet]\n",
			want: "aa:bb:cc:dd:ee:ff",
		},
		{
			name: "incomplete",
			out:  "? (192.168.1.1) at (incomplete) on en0 ifscope [ethernet]\n",
			want: "",
		},
		{
			name: "no entry",
			out:  "192.168.1.1 (192.168.1.1) -- no entry\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseARPMAC(tt.out))
		})
	}
}

func TestParseServiceList(t *testing.T) {
	out := `An asterisk (*) denotes that a network service is disabled.
Wi-Fi
Thunderbolt Ethernet
*Bluetooth PAN
`

	assert.Equal(t, []string{"Wi-Fi", "Thunderbolt Ethernet"}, parseServiceList(out))
	assert.Nil(t, parseServiceList(""))
}

func TestParseHardwarePorts(t *testing.T) {
	out := `Hardware Port: Wi-Fi
Device: en0
Ethernet Address: a0:b1:c2:d3:e4:f5

Hardware Port: Thunderbolt Ethernet
Device: en5
Ethernet Address: 11:22:33:44:55:66
`

	ports := parseHardwarePorts(out)
	assert.Equal(t, []hardwarePort{
		{service: "Wi-Fi", device: "en0"},
		{service: "Thunderbolt Ethernet", device: "en5"},
	}, ports)
}

func TestIsEthernetPort(t *testing.T) {
	tests := []struct {
		name string
		port hardwarePort
		want bool
	}{
		{"wifi excluded", hardwarePort{service: "Wi-Fi", device: "en0"}, false},
		{"bluetooth excluded", hardwarePort{service: "Bluetooth PAN", device: "en7"}, false},
		{"bridge excluded", hardwarePort{service: "Thunderbolt Bridge", device: "bridge0"}, false},
		{"ethernet", hardwarePort{service: "Thunderbolt Ethernet", device: "en5"}, true},
		{"usb lan", hardwarePort{service: "USB 10/100/1000 LAN", device: "en6"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isEthernetPort(tt.port))
		})
	}
}

func TestParseGetInfo(t *testing.T) {
	out := `DHCP Configuration
IP address: 192.168.1.42
Subnet mask: 255.255.255.0
Router: 192.168.1.1
Client ID:
IPv6: Automatic
`

	got := parseGetInfo(out)
	assert.True(t, got.UseDHCP)
	assert.Equal(t, "192.168.1.42", got.IPAddress)
	assert.Equal(t, "255.255.255.0", got.SubnetMask)
	assert.Equal(t, "192.168.1.1", got.Router)
}

func TestParseGetInfoStaticNoAddress(t *testing.T) {
	out := `Manual Configuration
IP address: none
Subnet mask: none
Router: none
`

	got := parseGetInfo(out)
	assert.False(t, got.UseDHCP)
	assert.Empty(t, got.IPAddress)
}

func TestParseDNSServers(t *testing.T) {
	assert.Equal(t, []string{"8.8.8.8", "1.1.1.1"}, parseDNSServers("8.8.8.8\n1.1.1.1\n"))
	assert.Nil(t, parseDNSServers("There aren't any DNS Servers set on Wi-Fi.\n"))
}

func TestParseScutilDNS(t *testing.T) {
	out := `DNS configuration

resolver #1
  nameserver[0] : 8.8.8.8
  nameserver[1] : 198.18.0.2
  nameserver[2] : 8.8.8.8
  nameserver[3] : 1.1.1.1
`

	assert.Equal(t, []string{"8.8.8.8", "1.1.1.1"}, parseScutilDNS(out))
}
