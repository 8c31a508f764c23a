package vcs

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/codefionn/ttok/internal/consts"
	"github.com/codefionn/ttok/internal/logger"
)

// Git implements DiffRunner by spawning the git binary.
type Git struct {
	binary     string
	workingDir string
	log        *logger.Logger
}

// NewGit creates a Git runner. An empty binary means "git" from PATH; an
// empty workingDir means the current directory.
func NewGit(binary, workingDir string) *Git {
	if strings.TrimSpace(binary) == "" {
		binary = consts.DefaultGitBinary
	}
	return &Git{
		binary:     binary,
		workingDir: workingDir,
		log:        logger.Global().WithPrefix("git"),
	}
}

// Args returns the full argument list passed to the binary for extraArgs.
func (g *Git) Args(extraArgs []string) []string {
	args := make([]string, 0, len(DiffArgs)+len(extraArgs))
	args = append(args, DiffArgs...)
	return append(args, extraArgs...)
}

// Diff runs `git diff --no-ext-diff --unified=0 extraArgs...` and waits for
// it to exit. On a nonzero exit the partial standard output is discarded and
// the trimmed standard error becomes the error message.
func (g *Git) Diff(ctx context.Context, extraArgs []string) (string, error) {
	args := g.Args(extraArgs)

	cmd := exec.CommandContext(ctx, g.binary, args...)
	if g.workingDir != "" {
		cmd.Dir = g.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	g.log.Debug("running %s %s", g.binary, strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			g.log.Debug("%s exited with status %d", g.binary, exitErr.ExitCode())
			return "", &SubprocessError{
				Binary:   g.binary,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
				Err:      err,
			}
		}
		g.log.Debug("failed to start %s: %v", g.binary, err)
		return "", &SubprocessError{Binary: g.binary, ExitCode: -1, Err: err}
	}

	g.log.Debug("%s produced %d bytes of diff", g.binary, stdout.Len())
	return stdout.String(), nil
}
