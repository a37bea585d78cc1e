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
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/netswitch/netswitch/pkg/applier"
	"github.com/netswitch/netswitch/pkg/models"
	"github.com/netswitch/netswitch/pkg/probe"
	"github.com/netswitch/netswitch/pkg/store"
)

type applyFunc func(ctx context.Context, cfg models.NetworkConfig, fallbackService string) (applier.Result, error)

func (f applyFunc) Apply(ctx context.Context, cfg models.NetworkConfig, fallbackService string) (applier.Result, error) {
	return f(ctx, cfg, fallbackService)
}

func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()

	st := store.Load(filepath.Join(t.TempDir(), "config.json"), nil)

	var out bytes.Buffer

	c := New(st, nil, nil, &out)

	return c, &out
}

func TestAddAndList(t *testing.T) {
	c, out := newTestCLI(t)
	ctx := context.Background()

	err := c.Run(ctx, []string{"add", "-name", "Home", "-ssid", "HomeNet",
		"-router-mac", "AA:BB:CC:DD:EE:FF", "-auto-apply", "-dns", "8.8.8.8, 1.1.1.1"})
	require.NoError(t, err)

	got, err := c.Store.Get("Home")
	require.NoError(t, err)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", got.RouterMAC)
	assert.Equal(t, []string{"8.8.8.8", "1.1.1.1"}, got.DNSServers)
	assert.True(t, got.AutoApply)
	assert.True(t, got.UseDHCP)

	out.Reset()
	require.NoError(t, c.Run(ctx, []string{"list"}))
	assert.Contains(t, out.String(), "Home")
	assert.Contains(t, out.String(), "HomeNet")
}

func TestAddEmptyNameRejected(t *testing.T) {
	c, _ := newTestCLI(t)

	err := c.Run(context.Background(), []string{"add", "-ssid", "HomeNet"})
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestRemove(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx := context.Background()

	require.NoError(t, c.Run(ctx, []string{"add", "-name", "Home"}))
	require.NoError(t, c.Run(ctx, []string{"remove", "-name", "Home"}))

	_, err := c.Store.Get("Home")
	require.ErrorIs(t, err, store.ErrConfigNotFound)
}

func TestApplyByName(t *testing.T) {
	c, out := newTestCLI(t)
	ctx := context.Background()

	require.NoError(t, c.Store.SetNetworkService("Wi-Fi"))
	require.NoError(t, c.Run(ctx, []string{"add", "-name", "Home"}))

	var appliedTo string

	c.Applier = applyFunc(func(_ context.Context, cfg models.NetworkConfig, fallback string) (applier.Result, error) {
		appliedTo = fallback

		return applier.Result{Service: fallback, Message: "applied " + cfg.Name}, nil
	})

	require.NoError(t, c.Run(ctx, []string{"apply", "-name", "Home"}))
	assert.Equal(t, "Wi-Fi", appliedTo)
	assert.Contains(t, out.String(), "applied Home")
}

func TestApplyUnknownName(t *testing.T) {
	c, _ := newTestCLI(t)

	err := c.Run(context.Background(), []string{"apply", "-name", "Nope"})
	require.ErrorIs(t, err, store.ErrConfigNotFound)
}

func TestAutoToggle(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx := context.Background()

	require.NoError(t, c.Run(ctx, []string{"auto", "-enable"}))
	assert.True(t, c.Store.AutoSwitch())

	require.NoError(t, c.Run(ctx, []string{"auto", "-disable"}))
	assert.False(t, c.Store.AutoSwitch())

	err := c.Run(ctx, []string{"auto"})
	require.ErrorIs(t, err, ErrAutoFlagRequired)
}

func TestServiceList(t *testing.T) {
	c, out := newTestCLI(t)
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	p := probe.NewMockProbe(ctrl)
	p.EXPECT().ListServices(gomock.Any()).Return([]string{"Wi-Fi", "Thunderbolt Ethernet"})

	c.Probe = p
	require.NoError(t, c.Store.SetNetworkService("Wi-Fi"))

	require.NoError(t, c.Run(ctx, []string{"service", "-list"}))
	assert.Contains(t, out.String(), "Wi-Fi")
	assert.Contains(t, out.String(), "Thunderbolt Ethernet")
}

func TestPasswordGate(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, c.Store.SetPasswordHash(string(hash)))

	err = c.Run(ctx, []string{"add", "-name", "Home"})
	require.ErrorIs(t, err, ErrPasswordRequired)

	err = c.Run(ctx, []string{"add", "-name", "Home", "-password", "nope"})
	require.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, c.Run(ctx, []string{"add", "-name", "Home", "-password", "secret"}))

	_, err = c.Store.Get("Home")
	require.NoError(t, err)
}

func TestSetAndRemovePassword(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx := context.Background()

	require.NoError(t, c.Run(ctx, []string{"set-password", "-new", "secret"}))
	assert.NotEmpty(t, c.Store.PasswordHash())

	// Changing it again requires the current password.
	err := c.Run(ctx, []string{"set-password", "-new", "other"})
	require.ErrorIs(t, err, ErrPasswordRequired)

	require.NoError(t, c.Run(ctx, []string{"set-password", "-new", "", "-password", "secret"}))
	assert.Empty(t, c.Store.PasswordHash())
}

func TestUnknownCommand(t *testing.T) {
	c, _ := newTestCLI(t)

	err := c.Run(context.Background(), []string{"frobnicate"})
	require.ErrorIs(t, err, ErrUnknownCommand)
}
