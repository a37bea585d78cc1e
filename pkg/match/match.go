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

// Package match decides which saved profile a probed network identity
// selects for automatic application.
package match

import (
	"sort"
	"strings"

	"github.com/netswitch/netswitch/pkg/models"
)

// Matches reports whether a profile's bindings cover the probed identity.
// An empty profile SSID is a wildcard that matches any network. A profile
// with a router MAC only matches when the probed MAC is present and equal
// (case-insensitive); an unverifiable MAC never matches.
func Matches(cfg models.NetworkConfig, ssid, routerMAC string) bool {
	if cfg.SSID == "" {
		return true
	}

	if cfg.SSID != ssid {
		return false
	}

	if cfg.RouterMAC != "" {
		if routerMAC == "" {
			return false
		}

		return strings.EqualFold(cfg.RouterMAC, routerMAC)
	}

	return true
}

// rank orders candidates by binding specificity. Lower wins.
func rank(cfg models.NetworkConfig) int {
	switch {
	case cfg.RouterMAC != "":
		return 0
	case cfg.SSID != "":
		return 1
	default:
		return 2
	}
}

// candidates returns the auto-apply profiles in evaluation order:
// MAC-bound before SSID-only before wildcard, names ascending within
// each group. The order is part of the contract; callers rely on the
// first hit being deterministic.
func candidates(configs map[string]models.NetworkConfig) []models.NetworkConfig {
	out := make([]models.NetworkConfig, 0, len(configs))

	for _, cfg := range configs {
		if cfg.AutoApply {
			out = append(out, cfg)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		if ri != rj {
			return ri < rj
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// FindAutoApply selects the profile to auto-apply for the probed
// identity, or false when none qualifies. Selection runs in two passes
// over the auto-apply profiles: the first profile whose bindings match,
// then a fallback for profiles saved before MAC binding existed, which
// match on a literal non-empty SSID with no MAC pinned. A wildcard
// profile is only eligible in the first pass.
func FindAutoApply(configs map[string]models.NetworkConfig, ssid, routerMAC string) (models.NetworkConfig, bool) {
	ordered := candidates(configs)

	for _, cfg := range ordered {
		if Matches(cfg, ssid, routerMAC) {
			return cfg, true
		}
	}

	for _, cfg := range ordered {
		if cfg.SSID != "" && cfg.SSID == ssid && cfg.RouterMAC == "" {
			return cfg, true
		}
	}

	return models.NetworkConfig{}, false
}
