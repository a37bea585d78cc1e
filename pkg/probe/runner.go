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

package probe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrCommandFailed wraps a non-zero exit from an external command.
var ErrCommandFailed = errors.New("command failed")

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// Run implements CommandRunner. On a non-zero exit the command's stderr
// is folded into the returned error.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s: %s", ErrCommandFailed, name,
				strings.TrimSpace(string(exitErr.Stderr)))
		}

		return "", fmt.Errorf("%w: %s: %w", ErrCommandFailed, name, err)
	}

	return string(out), nil
}
