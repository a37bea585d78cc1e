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

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/netswitch/netswitch/pkg/logger"
)

var (
	// ErrDstMustBeNonNilPointer indicates that the destination must be a non-nil pointer.
	ErrDstMustBeNonNilPointer = errors.New("dst must be a non-nil pointer")
	errConfigJSONNotSet       = errors.New("CONFIG_JSON environment variable is not set")
)

// EnvConfigLoader loads a complete JSON configuration from a single
// environment variable (<prefix>CONFIG_JSON). Useful for containerized
// deployments where mounting a config file is inconvenient.
type EnvConfigLoader struct {
	logger logger.Logger
	prefix string
}

// NewEnvConfigLoader creates a new environment variable config loader.
func NewEnvConfigLoader(log logger.Logger, prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{
		logger: log,
		prefix: prefix,
	}
}

// Load implements ConfigLoader by reading <prefix>CONFIG_JSON.
func (e *EnvConfigLoader) Load(_ context.Context, _ string, dst interface{}) error {
	if dst == nil {
		return ErrDstMustBeNonNilPointer
	}

	jsonConfig := os.Getenv(e.prefix + "CONFIG_JSON")
	if jsonConfig == "" {
		return fmt.Errorf("%w (prefix %q)", errConfigJSONNotSet, e.prefix)
	}

	if err := json.Unmarshal([]byte(jsonConfig), dst); err != nil {
		e.logger.Error().Err(err).Msg("Failed to unmarshal CONFIG_JSON")

		return fmt.Errorf("failed to unmarshal CONFIG_JSON: %w", err)
	}

	e.logger.Info().Msg("Loaded configuration from CONFIG_JSON environment variable")

	return nil
}
