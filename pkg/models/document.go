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

package models

// Document is the persisted on-disk state: saved profiles keyed by name
// plus the process-wide settings.
type Document struct {
	Configs map[string]NetworkConfig `json:"configs"`

	// AutoSwitch globally enables automatic application of matching
	// profiles.
	AutoSwitch bool `json:"auto_switch"`

	// NetworkService is the service targeted by manual actions and by
	// profiles that do not name a target service of their own.
	NetworkService string `json:"network_service,omitempty"`

	// PasswordHash, when set, is the bcrypt hash that gates mutating
	// CLI operations.
	PasswordHash string `json:"password_hash,omitempty"`
}

// DefaultDocument returns the state used when no document exists or the
// stored one cannot be parsed.
func DefaultDocument() Document {
	return Document{
		Configs: make(map[string]NetworkConfig),
	}
}
