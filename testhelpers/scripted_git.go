package testhelpers

import (
	"context"
	"errors"

	hulloerrors "hullo.dev/hullo/internal/errors"
)

// ScriptedGit satisfies git.Runner with canned results keyed by subcommand,
// recording every invocation so tests can assert on call order without
// spawning real subprocesses.
type ScriptedGit struct {
	// Calls records the arguments of every Run invocation, in order.
	Calls [][]string
	// Results maps a subcommand ("add", "commit", "push", ...) to the error
	// its invocation should return. Missing entries succeed.
	Results map[string]error
	// Outputs maps a subcommand to the stdout its invocation should return.
	Outputs map[string]string
}

// Run records the invocation and replays the scripted result for its
// subcommand.
func (s *ScriptedGit) Run(_ context.Context, args ...string) (string, error) {
	s.Calls = append(s.Calls, args)
	var sub string
	if len(args) > 0 {
		sub = args[0]
	}
	if err, ok := s.Results[sub]; ok && err != nil {
		return "", err
	}
	return s.Outputs[sub], nil
}

// Subcommands lists the first argument of each recorded call, in order.
func (s *ScriptedGit) Subcommands() []string {
	subs := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		if len(call) > 0 {
			subs = append(subs, call[0])
		}
	}
	return subs
}

// GitFailure fabricates the error a failed git invocation produces, carrying
// the given output streams so callers can exercise error classification.
func GitFailure(stdout, stderr string, args ...string) error {
	return hulloerrors.NewGitCommandError("git", args, stdout, stderr, errors.New("exit status 1"))
}
