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

import "errors"

var (
	// ErrUnknownCommand indicates an unrecognized subcommand.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrEmptyName indicates a command that requires -name was called
	// without one.
	ErrEmptyName = errors.New("a non-empty -name is required")

	// ErrPasswordRequired indicates a gate is set but no -password was
	// supplied.
	ErrPasswordRequired = errors.New("a password is required (-password)")

	// ErrWrongPassword indicates the supplied password does not match
	// the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrAutoFlagRequired indicates auto was called without exactly one
	// of -enable or -disable.
	ErrAutoFlagRequired = errors.New("exactly one of -enable or -disable is required")
)
