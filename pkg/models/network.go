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

// Package models defines the core data types shared across netswitch.
package models

import "encoding/json"

// ConfigType classifies what kind of network a profile was created for.
// It records intent only; matching never consults it.
type ConfigType string

const (
	// ConfigTypeWifi marks a profile created for an SSID-identified network.
	ConfigTypeWifi ConfigType = "wifi"
	// ConfigTypeService marks a profile created for a wired network service.
	ConfigTypeService ConfigType = "service"
)

// NetworkConfig is a named profile binding a network identity to the
// interface settings that should be applied when that identity is seen.
type NetworkConfig struct {
	Name string     `json:"name"`
	Type ConfigType `json:"config_type"`

	// SSID is the Wi-Fi network name this profile matches. Empty means
	// the profile matches any network.
	SSID string `json:"ssid,omitempty"`

	// RouterMAC pins the profile to a specific gateway hardware address.
	// Compared case-insensitively against the probed MAC.
	RouterMAC string `json:"router_mac,omitempty"`

	// AutoApply marks the profile as a candidate for automatic
	// application when its network is detected.
	AutoApply bool `json:"auto_apply"`

	// TargetService overrides the network service the settings are
	// applied to. Empty means the currently selected service.
	TargetService string `json:"target_service,omitempty"`

	UseDHCP    bool   `json:"use_dhcp"`
	IPAddress  string `json:"ip_address,omitempty"`
	SubnetMask string `json:"subnet_mask,omitempty"`
	Router     string `json:"router,omitempty"`

	// DNSServers is never omitted: an empty non-nil list must survive a
	// save/load cycle distinct from an absent one.
	DNSServers []string `json:"dns_servers"`
}

// UnmarshalJSON defaults use_dhcp to true when the field is absent, so
// documents written before static addressing existed stay on DHCP.
func (c *NetworkConfig) UnmarshalJSON(data []byte) error {
	type alias NetworkConfig

	aux := struct {
		*alias

		UseDHCP *bool `json:"use_dhcp"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.UseDHCP == nil {
		c.UseDHCP = true
	} else {
		c.UseDHCP = *aux.UseDHCP
	}

	if c.Type == "" {
		c.Type = ConfigTypeWifi
	}

	return nil
}

// NewNetworkConfig returns a profile with the defaults a freshly created
// profile carries: DHCP on, no static fields, no DNS overrides.
func NewNetworkConfig(name, ssid string, configType ConfigType) NetworkConfig {
	if configType == "" {
		configType = ConfigTypeWifi
	}

	return NetworkConfig{
		Name:    name,
		Type:    configType,
		SSID:    ssid,
		UseDHCP: true,
	}
}

// NetworkIdentity is a snapshot of where the host currently is on the
// network. Created fresh on every probe and never persisted.
type NetworkIdentity struct {
	// SSID of the joined Wi-Fi network; empty when wired or unknown.
	SSID string `json:"ssid,omitempty"`

	// RouterMAC is the default gateway's hardware address, when the
	// ARP table could resolve it.
	RouterMAC string `json:"router_mac,omitempty"`

	IsWired bool `json:"is_wired"`

	// WiredServiceName is the active wired service, when IsWired.
	WiredServiceName string `json:"wired_service_name,omitempty"`
}

// DisplaySSID renders the identity for humans. Wired identities show
// the service name in brackets in place of an SSID.
func (n NetworkIdentity) DisplaySSID() string {
	if n.SSID != "" {
		return n.SSID
	}

	if n.IsWired && n.WiredServiceName != "" {
		return "[wired] " + n.WiredServiceName
	}

	return ""
}

// InterfaceSettings is the live addressing state of a named service as
// reported by the probe, or the state pushed by the actuator.
type InterfaceSettings struct {
	UseDHCP    bool     `json:"use_dhcp"`
	IPAddress  string   `json:"ip_address,omitempty"`
	SubnetMask string   `json:"subnet_mask,omitempty"`
	Router     string   `json:"router,omitempty"`
	DNSServers []string `json:"dns_servers,omitempty"`
}
