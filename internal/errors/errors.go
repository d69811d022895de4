// Package errors provides sentinel errors and custom error types for the hullo application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// Sentinel errors for common conditions
var (
	// ErrGitNotFound indicates that the git executable is not on PATH
	ErrGitNotFound = errors.New("git executable not found")

	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrNoTTY indicates that no interactive terminal is attached
	ErrNoTTY = errors.New("no interactive terminal available")

	// ErrEmptyCommitMessage indicates that a commit was requested without a message
	ErrEmptyCommitMessage = errors.New("commit message is empty")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status of the failed command, or -1 when the
// command never ran (for example a timeout or a missing executable).
func (e *GitCommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// CombinedOutput returns stdout and stderr joined, for callers that classify
// failures by inspecting everything the command printed.
func (e *GitCommandError) CombinedOutput() string {
	if e.Stdout == "" {
		return e.Stderr
	}
	if e.Stderr == "" {
		return e.Stdout
	}
	return e.Stdout + "\n" + e.Stderr
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
