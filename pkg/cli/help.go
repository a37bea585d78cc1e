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

package cli

import (
	"fmt"
	"io"
)

// ShowHelp writes the usage message.
func ShowHelp(w io.Writer) {
	fmt.Fprint(w, `netswitch: saved network configuration switcher
Usage:
  netswitch status
  netswitch list
  netswitch add [options]
  netswitch remove -name <name>
  netswitch apply -name <name>
  netswitch auto -enable|-disable
  netswitch service -list | -name <service>
  netswitch set-password -new <password>

Commands:
  status          show the current network identity and live settings
  list            list saved configs
  add             add or replace a config
  remove          remove a config by name
  apply           apply a config now
  auto            toggle automatic application
  service         list services or select the target service
  set-password    set or remove the password gate

Options for add:
  -name string            config name (required)
  -ssid string            SSID to match; empty matches any network
  -type string            wifi or service (default "wifi")
  -router-mac string      pin to a router MAC (aa:bb:cc:dd:ee:ff)
  -auto-apply             apply automatically when the network is detected
  -target-service string  service to apply to (default: selected service)
  -dhcp                   use DHCP (default true)
  -ip/-mask/-router       static addressing when -dhcp=false
  -dns string             comma-separated DNS servers; empty clears

All mutating commands accept -password when a gate is set.

Examples:
  netswitch add -name Home -ssid HomeNet -router-mac aa:bb:cc:dd:ee:ff -auto-apply
  netswitch add -name Office -ssid OfficeNet -dhcp=false -ip 10.0.0.5 -mask 255.255.255.0 -router 10.0.0.1 -dns 10.0.0.1,1.1.1.1
  netswitch apply -name Home
  netswitch auto -enable
  netswitch service -name "Thunderbolt Ethernet"
`)
}
