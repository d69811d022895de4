// Package git executes the git operations hullo needs.
//
// It wraps git command execution behind a small Runner interface and adds
// repository discovery through go-git. Command failures carry the captured
// stdout and stderr so callers can classify them without re-running
// anything. This package should be the only place where direct git
// commands are executed.
package git
