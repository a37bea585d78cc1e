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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/netswitch/netswitch/pkg/actuator"
	"github.com/netswitch/netswitch/pkg/applier"
	"github.com/netswitch/netswitch/pkg/config"
	"github.com/netswitch/netswitch/pkg/controller"
	"github.com/netswitch/netswitch/pkg/lifecycle"
	"github.com/netswitch/netswitch/pkg/metrics"
	"github.com/netswitch/netswitch/pkg/poller"
	"github.com/netswitch/netswitch/pkg/probe"
	"github.com/netswitch/netswitch/pkg/store"
)

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to daemon config file (optional)")
	flag.Parse()

	ctx := context.Background()

	var cfg controller.Config

	if *configPath != "" {
		cfgLoader := config.NewConfig(nil)
		if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
			return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
		}
	} else if err := cfg.Validate(); err != nil {
		return err
	}

	daemonLogger, err := lifecycle.CreateComponentLogger(ctx, "netswitchd", cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	st := store.Load(cfg.DocumentPath, daemonLogger)

	systemProbe := probe.NewSystemProbe(nil, daemonLogger)
	identityPoller := poller.New(systemProbe, daemonLogger)
	app := applier.New(actuator.NewNetworkSetup(nil), daemonLogger)

	var collector *metrics.Collector
	if cfg.ListenAddr != "" {
		collector = metrics.NewCollector()
	}

	ctrl := controller.New(cfg, st, identityPoller, app, nil, collector, daemonLogger)

	daemonLogger.Info().
		Str("document", cfg.DocumentPath).
		Int("configs", len(st.Configs())).
		Int("pid", os.Getpid()).
		Msg("netswitchd starting")

	return lifecycle.Run(ctx, &lifecycle.ServerOptions{
		Service:    ctrl,
		Logger:     daemonLogger,
		ListenAddr: cfg.ListenAddr,
		Handler:    collector.Handler(),
	})
}
