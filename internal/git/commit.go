package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	hulloerrors "hullo.dev/hullo/internal/errors"
)

// CommitResult represents the result of a commit operation
type CommitResult int

const (
	// CommitCreated indicates a new commit was recorded
	CommitCreated CommitResult = iota
	// CommitUnneeded indicates the working tree was already clean
	CommitUnneeded
)

// nothingToCommitMarker is the phrase git prints when a commit is requested
// on a clean tree. Matched case-insensitively across stdout and stderr since
// the exact casing and stream vary between git versions.
const nothingToCommitMarker = "nothing to commit"

// Commit records a commit with the given message. A non-zero exit whose
// output contains the nothing-to-commit marker is not a failure: the tree was
// already clean and the result is CommitUnneeded. The result is only
// meaningful when the returned error is nil.
func Commit(ctx context.Context, r Runner, message string) (CommitResult, error) {
	_, err := r.Run(ctx, "commit", "-m", message)
	switch {
	case err == nil:
		return CommitCreated, nil
	case IsNothingToCommit(err):
		return CommitUnneeded, nil
	default:
		return CommitCreated, fmt.Errorf("failed to commit: %w", err)
	}
}

// IsNothingToCommit reports whether err is a commit failure caused by a clean
// working tree rather than a real error.
func IsNothingToCommit(err error) bool {
	var cmdErr *hulloerrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	return strings.Contains(strings.ToLower(cmdErr.CombinedOutput()), nothingToCommitMarker)
}
