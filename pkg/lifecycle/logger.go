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

package lifecycle

import (
	"context"

	"github.com/netswitch/netswitch/pkg/logger"
	"github.com/rs/zerolog"
)

// CreateLogger creates a logger from the provided configuration.
func CreateLogger(ctx context.Context, config *logger.Config) (logger.Logger, error) {
	return logger.New(ctx, config)
}

// CreateComponentLogger creates a logger tagged with a component name.
func CreateComponentLogger(ctx context.Context, component string, config *logger.Config) (logger.Logger, error) {
	base, err := logger.New(ctx, config)
	if err != nil {
		return nil, err
	}

	return &componentLogger{base: base, component: component}, nil
}

// componentLogger decorates every event with a component field.
type componentLogger struct {
	base      logger.Logger
	component string
}

func (c *componentLogger) event(e *zerolog.Event) *zerolog.Event {
	return e.Str("component", c.component)
}

func (c *componentLogger) Trace() *zerolog.Event { return c.event(c.base.Trace()) }
func (c *componentLogger) Debug() *zerolog.Event { return c.event(c.base.Debug()) }
func (c *componentLogger) Info() *zerolog.Event  { return c.event(c.base.Info()) }
func (c *componentLogger) Warn() *zerolog.Event  { return c.event(c.base.Warn()) }
func (c *componentLogger) Error() *zerolog.Event { return c.event(c.base.Error()) }
func (c *componentLogger) Fatal() *zerolog.Event { return c.event(c.base.Fatal()) }
func (c *componentLogger) Panic() *zerolog.Event { return c.event(c.base.Panic()) }

func (c *componentLogger) With() zerolog.Context {
	return c.base.With().Str("component", c.component)
}

func (c *componentLogger) WithComponent(component string) zerolog.Logger {
	return c.base.WithComponent(component)
}

func (c *componentLogger) SetLevel(level zerolog.Level) { c.base.SetLevel(level) }
func (c *componentLogger) SetDebug(debug bool)          { c.base.SetDebug(debug) }
