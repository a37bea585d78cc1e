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

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netswitch/netswitch/pkg/models"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		cfg       models.NetworkConfig
		ssid      string
		routerMAC string
		want      bool
	}{
		{
			name: "empty ssid matches anything",
			cfg:  models.NetworkConfig{SSID: ""},
			ssid: "AnyNet",
			want: true,
		},
		{
			name: "empty ssid matches even with mac pinned",
			cfg:  models.NetworkConfig{SSID: "", RouterMAC: "aa:bb:cc:dd:ee:ff"},
			ssid: "AnyNet",
			want: true,
		},
		{
			name: "ssid mismatch",
			cfg:  models.NetworkConfig{SSID: "HomeNet"},
			ssid: "OfficeNet",
			want: false,
		},
		{
			name:      "mac match case insensitive",
			cfg:       models.NetworkConfig{SSID: "HomeNet", RouterMAC: "aa:bb:cc:dd:ee:ff"},
			ssid:      "HomeNet",
			routerMAC: "AA:BB:CC:DD:EE:FF",
			want:      true,
		},
		{
			name:      "mac mismatch",
			cfg:       models.NetworkConfig{SSID: "HomeNet", RouterMAC: "aa:bb:cc:dd:ee:ff"},
			ssid:      "HomeNet",
			routerMAC: "11:22:33:44:55:66",
			want:      false,
		},
		{
			name: "mac pinned but probe has none fails closed",
			cfg:  models.NetworkConfig{SSID: "HomeNet", RouterMAC: "aa:bb:cc:dd:ee:ff"},
			ssid: "HomeNet",
			want: false,
		},
		{
			name:      "ssid match without mac constraint",
			cfg:       models.NetworkConfig{SSID: "OfficeNet"},
			ssid:      "OfficeNet",
			routerMAC: "11:22:33:44:55:66",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.cfg, tt.ssid, tt.routerMAC))
		})
	}
}

func configsByName(cfgs ...models.NetworkConfig) map[string]models.NetworkConfig {
	out := make(map[string]models.NetworkConfig, len(cfgs))
	for _, c := range cfgs {
		out[c.Name] = c
	}

	return out
}

func TestFindAutoApplyMACBoundMatch(t *testing.T) {
	configs := configsByName(models.NetworkConfig{
		Name:      "Home",
		SSID:      "HomeNet",
		RouterMAC: "aa:bb:cc:dd:ee:ff",
		AutoApply: true,
	})

	got, ok := FindAutoApply(configs, "HomeNet", "AA:BB:CC:DD:EE:FF")
	require.True(t, ok)
	assert.Equal(t, "Home", got.Name)
}

func TestFindAutoApplyFailsClosedOnMissingMAC(t *testing.T) {
	configs := configsByName(models.NetworkConfig{
		Name:      "Home",
		SSID:      "HomeNet",
		RouterMAC: "aa:bb:cc:dd:ee:ff",
		AutoApply: true,
	})

	_, ok := FindAutoApply(configs, "HomeNet", "")
	assert.False(t, ok)
}

func TestFindAutoApplyLegacyConfigMatchesAnyMAC(t *testing.T) {
	configs := configsByName(models.NetworkConfig{
		Name:      "Office",
		SSID:      "OfficeNet",
		AutoApply: true,
	})

	got, ok := FindAutoApply(configs, "OfficeNet", "11:22:33:44:55:66")
	require.True(t, ok)
	assert.Equal(t, "Office", got.Name)
}

func TestFindAutoApplySkipsNonAutoApply(t *testing.T) {
	configs := configsByName(models.NetworkConfig{
		Name: "Manual",
		SSID: "HomeNet",
	})

	_, ok := FindAutoApply(configs, "HomeNet", "")
	assert.False(t, ok)
}

func TestFindAutoApplyWildcardNotALegacyFallback(t *testing.T) {
	// A MAC-pinned config that fails its MAC check must not fall back
	// to a pass-2 hit, and a wildcard config is pass-1 only.
	configs := configsByName(models.NetworkConfig{
		Name:      "Pinned",
		SSID:      "HomeNet",
		RouterMAC: "aa:bb:cc:dd:ee:ff",
		AutoApply: true,
	})

	_, ok := FindAutoApply(configs, "HomeNet", "11:22:33:44:55:66")
	assert.False(t, ok)
}

func TestFindAutoApplyPrefersMACBoundOverSSIDOnly(t *testing.T) {
	configs := configsByName(
		models.NetworkConfig{Name: "Loose", SSID: "HomeNet", AutoApply: true},
		models.NetworkConfig{Name: "Pinned", SSID: "HomeNet", RouterMAC: "aa:bb:cc:dd:ee:ff", AutoApply: true},
	)

	got, ok := FindAutoApply(configs, "HomeNet", "aa:bb:cc:dd:ee:ff")
	require.True(t, ok)
	assert.Equal(t, "Pinned", got.Name)
}

func TestFindAutoApplyPrefersSSIDOverWildcard(t *testing.T) {
	configs := configsByName(
		models.NetworkConfig{Name: "Anywhere", SSID: "", AutoApply: true},
		models.NetworkConfig{Name: "Home", SSID: "HomeNet", AutoApply: true},
	)

	got, ok := FindAutoApply(configs, "HomeNet", "")
	require.True(t, ok)
	assert.Equal(t, "Home", got.Name)
}

func TestFindAutoApplyTiesBreakByName(t *testing.T) {
	configs := configsByName(
		models.NetworkConfig{Name: "Zeta", SSID: "HomeNet", AutoApply: true},
		models.NetworkConfig{Name: "Alpha", SSID: "HomeNet", AutoApply: true},
	)

	got, ok := FindAutoApply(configs, "HomeNet", "")
	require.True(t, ok)
	assert.Equal(t, "Alpha", got.Name)
}

func TestFindAutoApplyIdempotent(t *testing.T) {
	configs := configsByName(
		models.NetworkConfig{Name: "Anywhere", SSID: "", AutoApply: true},
		models.NetworkConfig{Name: "Home", SSID: "HomeNet", AutoApply: true},
		models.NetworkConfig{Name: "Pinned", SSID: "HomeNet", RouterMAC: "aa:bb:cc:dd:ee:ff", AutoApply: true},
	)

	first, ok1 := FindAutoApply(configs, "HomeNet", "aa:bb:cc:dd:ee:ff")
	second, ok2 := FindAutoApply(configs, "HomeNet", "aa:bb:cc:dd:ee:ff")

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}
