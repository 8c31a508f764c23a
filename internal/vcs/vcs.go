// Package vcs runs the external version control tool that produces diffs.
// The DiffRunner interface lets callers swap the real git process for a
// fixed-output fake.
package vcs

import (
	"context"
	"fmt"
)

// DiffArgs are always passed before caller arguments: no external diff
// drivers, and no context lines, so the output only holds file headers and
// added/removed lines.
var DiffArgs = []string{"diff", "--no-ext-diff", "--unified=0"}

// DiffRunner produces unified diff text.
type DiffRunner interface {
	// Diff runs the diff tool with DiffArgs followed by extraArgs and
	// returns its standard output.
	Diff(ctx context.Context, extraArgs []string) (string, error)
}

// SubprocessError reports that the diff tool could not be started or exited
// with a nonzero status.
type SubprocessError struct {
	Binary   string
	ExitCode int    // -1 when the process never ran
	Stderr   string // trimmed standard error of a failed run
	Err      error
}

func (e *SubprocessError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("failed to run %s: %v", e.Binary, e.Err)
	}
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s exited with status %d", e.Binary, e.ExitCode)
}

func (e *SubprocessError) Unwrap() error {
	return e.Err
}
