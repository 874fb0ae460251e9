// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package invoke

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports required request fields that are
// missing or empty after trimming.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", strings.Join(e.Fields, " / "))
}

// ConfigError reports a missing client artifact. The external
// process is never spawned in this case.
type ConfigError struct {
	Artifact string
	Path     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cannot find %s: %s", e.Artifact, e.Path)
}

// ProcessError reports a non-zero exit from the client.
// Output holds stderr text, falling back to stdout.
type ProcessError struct {
	ExitCode int
	Output   string
}

func (e *ProcessError) Error() string {
	if e.Output != "" {
		return e.Output
	}
	return fmt.Sprintf("cmc exit code %d", e.ExitCode)
}

// TimeoutError reports an invocation exceeding its deadline.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("cmc execution timed out after %s", e.Timeout)
}

// ExecError wraps an unexpected spawn or IO failure.
type ExecError struct {
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("cmc execution failed: %v", e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
