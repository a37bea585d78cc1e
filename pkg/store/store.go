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

// Package store persists the saved profiles and process settings.
//
// The store is owned by the foreground: the controller and the CLI are
// the only mutators, and neither shares it with a background goroutine,
// so access needs no lock. Every mutation attempts a save; a failed
// save is returned to the caller but the in-memory mutation stands.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/netswitch/netswitch/pkg/logger"
	"github.com/netswitch/netswitch/pkg/models"
)

const (
	configDirName  = "netswitch"
	configFileName = "config.json"

	dirPerm  = 0o755
	filePerm = 0o600
)

// Store holds the persisted document and writes it back after every
// mutation.
type Store struct {
	path   string
	doc    models.Document
	logger logger.Logger
}

// DefaultDocumentPath returns the per-user document location,
// ~/.config/netswitch/config.json on most systems. Falls back to the
// working directory when the user config dir cannot be determined.
func DefaultDocumentPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}

	return filepath.Join(base, configDirName, configFileName)
}

// Load reads the document at path. A missing file or unparseable
// content falls back to the default document; loading never fails.
func Load(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewTestLogger()
	}

	s := &Store{
		path:   path,
		doc:    models.DefaultDocument(),
		logger: log,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Failed to read config document, using defaults")
		}

		return s
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to parse config document, using defaults")

		return s
	}

	if doc.Configs == nil {
		doc.Configs = make(map[string]models.NetworkConfig)
	}

	s.doc = doc

	return s
}

// Save writes the document back to disk, creating the parent directory
// as needed.
func (s *Store) Save() error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveFailed, err)
		}
	}

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	if err := os.WriteFile(s.path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	return nil
}

// Add inserts or replaces a profile by name and saves. An empty name is
// tolerated as a degenerate key. The mutation stands even when the save
// fails.
func (s *Store) Add(cfg models.NetworkConfig) error {
	s.doc.Configs[cfg.Name] = cfg

	return s.Save()
}

// Remove deletes a profile by name and saves. Removing an absent name
// is a no-op but still saves.
func (s *Store) Remove(name string) error {
	delete(s.doc.Configs, name)

	return s.Save()
}

// Get returns the profile with the given name.
func (s *Store) Get(name string) (models.NetworkConfig, error) {
	cfg, ok := s.doc.Configs[name]
	if !ok {
		return models.NetworkConfig{}, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}

	return cfg, nil
}

// Configs returns the profiles sorted by name.
func (s *Store) Configs() []models.NetworkConfig {
	out := make([]models.NetworkConfig, 0, len(s.doc.Configs))
	for _, cfg := range s.doc.Configs {
		out = append(out, cfg)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// ConfigMap returns the live profile map for match evaluation.
func (s *Store) ConfigMap() map[string]models.NetworkConfig {
	return s.doc.Configs
}

// AutoSwitch reports whether automatic application is enabled.
func (s *Store) AutoSwitch() bool { return s.doc.AutoSwitch }

// SetAutoSwitch toggles automatic application and saves.
func (s *Store) SetAutoSwitch(enabled bool) error {
	s.doc.AutoSwitch = enabled

	return s.Save()
}

// NetworkService returns the currently selected network service.
func (s *Store) NetworkService() string { return s.doc.NetworkService }

// SetNetworkService selects the service targeted by manual actions and
// saves.
func (s *Store) SetNetworkService(service string) error {
	s.doc.NetworkService = service

	return s.Save()
}

// PasswordHash returns the stored bcrypt hash, empty when no gate is set.
func (s *Store) PasswordHash() string { return s.doc.PasswordHash }

// SetPasswordHash stores a bcrypt hash gating mutating CLI commands and
// saves. An empty hash disables the gate.
func (s *Store) SetPasswordHash(hash string) error {
	s.doc.PasswordHash = hash

	return s.Save()
}

// Path returns the document location backing this store.
func (s *Store) Path() string { return s.path }
