package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	hulloerrors "hullo.dev/hullo/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// Runner abstracts git command execution. The checkpoint sequence is written
// against this interface so tests can drive it with simulated exit codes and
// captured output instead of real subprocesses.
type Runner interface {
	// Run executes a single git invocation and returns its trimmed stdout.
	// A non-zero exit surfaces as a *errors.GitCommandError carrying the
	// captured stdout and stderr of the command.
	Run(ctx context.Context, args ...string) (string, error)
}

// CommandRunner executes git commands in a fixed working directory.
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner rooted at workingDir.
// An empty workingDir runs commands in the current directory.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", hulloerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", hulloerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// EnsureInstalled verifies that the git executable is available on PATH.
func EnsureInstalled() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("%w: %v", hulloerrors.ErrGitNotFound, err)
	}
	return nil
}
