package vcs

import (
	"context"
)

// MockDiffRunner is a DiffRunner for tests. It records every call.
type MockDiffRunner struct {
	// DiffFunc is the mock implementation for Diff
	DiffFunc func(ctx context.Context, extraArgs []string) (string, error)

	// Calls holds the extraArgs of each Diff call, in order
	Calls [][]string
}

// Diff records extraArgs and calls DiffFunc if set, otherwise returns an
// empty diff.
func (m *MockDiffRunner) Diff(ctx context.Context, extraArgs []string) (string, error) {
	m.Calls = append(m.Calls, append([]string(nil), extraArgs...))
	if m.DiffFunc != nil {
		return m.DiffFunc(ctx, extraArgs)
	}
	return "", nil
}
