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

package controller

import (
	"time"

	"github.com/netswitch/netswitch/pkg/logger"
	"github.com/netswitch/netswitch/pkg/store"
)

const (
	defaultPollInterval     = 5 * time.Second
	defaultTickInterval     = time.Second
	defaultBusyTickInterval = 500 * time.Millisecond
)

// Config is the daemon configuration.
type Config struct {
	// DocumentPath locates the persisted config document. Empty means
	// the per-user default.
	DocumentPath string `json:"document_path,omitempty"`

	// PollInterval is how often a new identity probe is issued.
	PollInterval logger.Duration `json:"poll_interval,omitempty"`

	// TickInterval is how often the loop evaluates the snapshot.
	TickInterval logger.Duration `json:"tick_interval,omitempty"`

	// BusyTickInterval replaces TickInterval while a probe is in
	// flight, so completion is picked up promptly.
	BusyTickInterval logger.Duration `json:"busy_tick_interval,omitempty"`

	// ListenAddr, when set, serves Prometheus metrics over HTTP.
	ListenAddr string `json:"listen_addr,omitempty"`

	Logging *logger.Config `json:"logging,omitempty"`
}

// Validate fills in defaults; there is no invalid configuration beyond
// negative intervals, which reset to the defaults.
func (c *Config) Validate() error {
	if c.DocumentPath == "" {
		c.DocumentPath = store.DefaultDocumentPath()
	}

	if c.PollInterval <= 0 {
		c.PollInterval = logger.Duration(defaultPollInterval)
	}

	if c.TickInterval <= 0 {
		c.TickInterval = logger.Duration(defaultTickInterval)
	}

	if c.BusyTickInterval <= 0 {
		c.BusyTickInterval = logger.Duration(defaultBusyTickInterval)
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}

	return nil
}
