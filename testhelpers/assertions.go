// Package testhelpers provides testing utilities for the hullo CLI,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
// Requires Go 1.18+.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectCommits asserts that the branch starts with the expected commit
// messages, newest first.
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir,
		"log", "--oneline", "--format=%s", branch)
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list commits")

	commits := strings.Split(strings.TrimSpace(string(output)), "\n")

	// Filter out empty strings
	filtered := []string{}
	for _, c := range commits {
		c = strings.TrimSpace(c)
		if c != "" {
			filtered = append(filtered, c)
		}
	}

	// Compare only the first N commits where N is the length of expected
	if len(filtered) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(filtered))
		return
	}

	actual := filtered[:len(expected)]
	require.Equal(t, expected, actual, "Commits do not match")
}
