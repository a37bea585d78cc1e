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

package poller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netswitch/netswitch/pkg/models"
	"github.com/netswitch/netswitch/pkg/probe"
)

func TestRefreshPublishesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := probe.NewMockProbe(ctrl)

	p.EXPECT().CurrentIdentity(gomock.Any()).
		Return(models.NetworkIdentity{SSID: "HomeNet", RouterMAC: "aa:bb:cc:dd:ee:ff"})
	p.EXPECT().ServiceSettings(gomock.Any(), "Wi-Fi").
		Return(models.InterfaceSettings{UseDHCP: true, IPAddress: "192.168.1.42"})

	ip := New(p, nil)

	require.True(t, ip.Refresh(context.Background(), "Wi-Fi"))
	require.NoError(t, ip.Stop(context.Background()))

	snap := ip.SnapshotView()
	assert.Equal(t, "HomeNet", snap.SSID)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", snap.RouterMAC)
	assert.Equal(t, "192.168.1.42", snap.Settings.IPAddress)
	assert.False(t, snap.Loading)
	assert.False(t, ip.Refreshing())
}

func TestRefreshWiredDisplaySSID(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := probe.NewMockProbe(ctrl)

	p.EXPECT().CurrentIdentity(gomock.Any()).
		Return(models.NetworkIdentity{IsWired: true, WiredServiceName: "Thunderbolt Ethernet"})
	p.EXPECT().ServiceSettings(gomock.Any(), "Thunderbolt Ethernet").
		Return(models.InterfaceSettings{})

	ip := New(p, nil)

	require.True(t, ip.Refresh(context.Background(), "Thunderbolt Ethernet"))
	require.NoError(t, ip.Stop(context.Background()))

	assert.Equal(t, "[wired] Thunderbolt Ethernet", ip.SnapshotView().SSID)
}

func TestRefreshAtMostOneInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := probe.NewMockProbe(ctrl)

	release := make(chan struct{})
	started := make(chan struct{})

	p.EXPECT().CurrentIdentity(gomock.Any()).DoAndReturn(
		func(context.Context) models.NetworkIdentity {
			close(started)
			<-release

			return models.NetworkIdentity{SSID: "HomeNet"}
		})
	p.EXPECT().ServiceSettings(gomock.Any(), "Wi-Fi").
		Return(models.InterfaceSettings{})

	ip := New(p, nil)

	require.True(t, ip.Refresh(context.Background(), "Wi-Fi"))
	<-started

	// While the first probe is blocked, further refreshes are no-ops.
	assert.False(t, ip.Refresh(context.Background(), "Wi-Fi"))
	assert.True(t, ip.Refreshing())
	assert.True(t, ip.SnapshotView().Loading)

	close(release)
	require.NoError(t, ip.Stop(context.Background()))

	assert.False(t, ip.Refreshing())
	assert.Equal(t, "HomeNet", ip.SnapshotView().SSID)
}

func TestRefreshProbeFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := probe.NewMockProbe(ctrl)

	p.EXPECT().CurrentIdentity(gomock.Any()).Return(models.NetworkIdentity{})
	p.EXPECT().ServiceSettings(gomock.Any(), "Wi-Fi").Return(models.InterfaceSettings{})

	ip := New(p, nil)

	require.True(t, ip.Refresh(context.Background(), "Wi-Fi"))
	require.NoError(t, ip.Stop(context.Background()))

	snap := ip.SnapshotView()
	assert.Empty(t, snap.SSID)
	assert.Empty(t, snap.RouterMAC)
	assert.False(t, snap.Loading)
}

func TestStopBoundedByContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := probe.NewMockProbe(ctrl)

	release := make(chan struct{})

	p.EXPECT().CurrentIdentity(gomock.Any()).DoAndReturn(
		func(context.Context) models.NetworkIdentity {
			<-release

			return models.NetworkIdentity{}
		})
	p.EXPECT().ServiceSettings(gomock.Any(), gomock.Any()).
		Return(models.InterfaceSettings{}).AnyTimes()

	ip := New(p, nil)
	require.True(t, ip.Refresh(context.Background(), "Wi-Fi"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := ip.Stop(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, ip.Stop(context.Background()))
}
