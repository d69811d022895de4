package actions

import (
	"context"
	"strings"

	hulloerrors "hullo.dev/hullo/internal/errors"
	"hullo.dev/hullo/internal/git"
	"hullo.dev/hullo/internal/output"
)

// CommitAndPushOptions are options for the commit and push operation
type CommitAndPushOptions struct {
	Message string
	Runner  git.Runner
	Splog   *output.Splog
}

// CommitAndPushAction stages every pending change, commits it with the given
// message, and pushes the current branch. A commit that finds nothing to
// commit is tolerated and the push still runs, so commits made earlier but
// never pushed still reach the remote.
func CommitAndPushAction(ctx context.Context, opts CommitAndPushOptions) error {
	if strings.TrimSpace(opts.Message) == "" {
		return hulloerrors.ErrEmptyCommitMessage
	}

	opts.Splog.Debug("staging all changes")
	if err := git.StageAll(ctx, opts.Runner); err != nil {
		return err
	}

	opts.Splog.Debug("committing with message: %s", opts.Message)
	result, err := git.Commit(ctx, opts.Runner, opts.Message)
	if err != nil {
		return err
	}
	if result == git.CommitUnneeded {
		opts.Splog.Info("No changes to commit")
	}

	opts.Splog.Debug("pushing to remote")
	if err := git.Push(ctx, opts.Runner); err != nil {
		return err
	}

	if result == git.CommitCreated {
		opts.Splog.Info("Successfully committed and pushed with message: '%s'", opts.Message)
	}
	return nil
}
