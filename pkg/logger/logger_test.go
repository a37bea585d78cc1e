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

package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
)

func TestNew_DefaultConfig(t *testing.T) {
	log, err := New(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(context.Background(), &Config{Level: "verbose"})
	require.Error(t, err)
}

func TestNew_DebugOverridesLevel(t *testing.T) {
	log, err := New(context.Background(), &Config{Level: "error", Debug: true})
	require.NoError(t, err)

	// Debug events must be enabled when Debug is set.
	assert.True(t, log.Debug().Enabled())
}

func TestNew_OTelRequiresEndpoint(t *testing.T) {
	_, err := NewOTELWriter(context.Background(), OTelConfig{Enabled: true})
	require.ErrorIs(t, err, ErrOTelEndpointRequired)

	_, err = NewOTELWriter(context.Background(), OTelConfig{})
	require.ErrorIs(t, err, ErrOTelLoggingDisabled)
}

func TestMapZerologLevelToOTEL(t *testing.T) {
	tests := []struct {
		level    string
		expected otellog.Severity
	}{
		{"trace", otellog.SeverityTrace},
		{"debug", otellog.SeverityDebug},
		{"info", otellog.SeverityInfo},
		{"warn", otellog.SeverityWarn},
		{"warning", otellog.SeverityWarn},
		{"error", otellog.SeverityError},
		{"fatal", otellog.SeverityFatal},
		{"panic", otellog.SeverityFatal},
		{"unknown", otellog.SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapZerologLevelToOTEL(tt.level))
		})
	}
}

func TestWithComponent(t *testing.T) {
	log := NewTestLogger()

	scoped := log.WithComponent("poller")
	// Disabled test loggers still return a usable zerolog.Logger.
	scoped.Info().Msg("no-op")
}
