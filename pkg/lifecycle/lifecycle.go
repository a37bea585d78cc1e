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

// Package lifecycle runs long-lived services until interrupted.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/netswitch/netswitch/pkg/logger"
)

const (
	stopTimeout       = 10 * time.Second
	httpReadTimeout   = 10 * time.Second
	httpWriteTimeout  = 10 * time.Second
	shutdownHTTPGrace = 5 * time.Second
)

// Service is a long-running component driven by Run. Start must block
// until the context is canceled or Stop is called.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// ServerOptions configures Run.
type ServerOptions struct {
	Service Service
	Logger  logger.Logger

	// ListenAddr, when non-empty, serves Handler (the metrics
	// exposition endpoint) on a side HTTP listener.
	ListenAddr string
	Handler    http.Handler
}

// Run starts the service, serves the optional HTTP handler, and blocks
// until SIGINT/SIGTERM or context cancellation, then stops the service.
func Run(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 2)

	go func() {
		if err := opts.Service.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("service exited: %w", err)
			return
		}

		errCh <- nil
	}()

	var httpServer *http.Server

	if opts.ListenAddr != "" && opts.Handler != nil {
		httpServer = &http.Server{
			Addr:         opts.ListenAddr,
			Handler:      opts.Handler,
			ReadTimeout:  httpReadTimeout,
			WriteTimeout: httpWriteTimeout,
		}

		opts.Logger.Info().Str("addr", opts.ListenAddr).Msg("Serving metrics endpoint")

		go func() {
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("http server exited: %w", err)
			}
		}()
	}

	var runErr error

	select {
	case <-ctx.Done():
		opts.Logger.Info().Msg("Shutdown signal received")
	case err := <-errCh:
		runErr = err
	}

	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()

	if err := opts.Service.Stop(stopCtx); err != nil {
		opts.Logger.Error().Err(err).Msg("Error stopping service")

		if runErr == nil {
			runErr = err
		}
	}

	if httpServer != nil {
		httpCtx, httpCancel := context.WithTimeout(context.Background(), shutdownHTTPGrace)
		defer httpCancel()

		if err := httpServer.Shutdown(httpCtx); err != nil {
			opts.Logger.Warn().Err(err).Msg("Error shutting down http server")
		}
	}

	if err := logger.Shutdown(); err != nil {
		opts.Logger.Warn().Err(err).Msg("Error flushing logs")
	}

	return runErr
}
