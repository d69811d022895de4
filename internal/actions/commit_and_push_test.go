package actions_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"hullo.dev/hullo/internal/actions"
	hulloerrors "hullo.dev/hullo/internal/errors"
	"hullo.dev/hullo/internal/git"
	"hullo.dev/hullo/internal/output"
	"hullo.dev/hullo/testhelpers"
)

// runScripted drives the action against a scripted runner and returns the
// console output alongside the action error.
func runScripted(t *testing.T, message string, runner *testhelpers.ScriptedGit) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	err := actions.CommitAndPushAction(context.Background(), actions.CommitAndPushOptions{
		Message: message,
		Runner:  runner,
		Splog:   output.NewSplogWithWriter(&buf),
	})
	return buf.String(), err
}

func TestCommitAndPushAction(t *testing.T) {
	t.Run("commits and pushes when every step succeeds", func(t *testing.T) {
		runner := &testhelpers.ScriptedGit{}

		out, err := runScripted(t, "fix typo", runner)
		require.NoError(t, err)
		require.Equal(t, []string{"add", "commit", "push"}, runner.Subcommands())
		require.Equal(t, []string{"commit", "-m", "fix typo"}, runner.Calls[1])
		require.Contains(t, out, "Successfully committed and pushed with message: 'fix typo'")
	})

	t.Run("stops when staging fails", func(t *testing.T) {
		runner := &testhelpers.ScriptedGit{Results: map[string]error{
			"add": testhelpers.GitFailure("", "fatal: unable to write index", "add", "-A"),
		}}

		_, err := runScripted(t, "fix typo", runner)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to stage all changes")
		require.Equal(t, []string{"add"}, runner.Subcommands())
	})

	t.Run("pushes even when there is nothing to commit", func(t *testing.T) {
		runner := &testhelpers.ScriptedGit{Results: map[string]error{
			"commit": testhelpers.GitFailure("", "nothing to commit, working tree clean", "commit", "-m", "no-op commit"),
		}}

		out, err := runScripted(t, "no-op commit", runner)
		require.NoError(t, err)
		require.Equal(t, []string{"add", "commit", "push"}, runner.Subcommands())
		require.Contains(t, out, "No changes to commit")
		require.NotContains(t, out, "Successfully committed")
	})

	t.Run("fails when the push fails after a no-op commit", func(t *testing.T) {
		runner := &testhelpers.ScriptedGit{Results: map[string]error{
			"commit": testhelpers.GitFailure("", "nothing to commit, working tree clean", "commit", "-m", "no-op commit"),
			"push":   testhelpers.GitFailure("", "fatal: could not read from remote repository", "push"),
		}}

		out, err := runScripted(t, "no-op commit", runner)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to push")
		require.Equal(t, []string{"add", "commit", "push"}, runner.Subcommands())
		require.Contains(t, out, "No changes to commit")
	})

	t.Run("recognizes the no-op marker regardless of case", func(t *testing.T) {
		runner := &testhelpers.ScriptedGit{Results: map[string]error{
			"commit": testhelpers.GitFailure("On branch main\nNothing to commit, working tree clean", "", "commit", "-m", "no-op commit"),
		}}

		_, err := runScripted(t, "no-op commit", runner)
		require.NoError(t, err)
		require.Equal(t, []string{"add", "commit", "push"}, runner.Subcommands())
	})

	t.Run("stops when the commit fails for another reason", func(t *testing.T) {
		runner := &testhelpers.ScriptedGit{Results: map[string]error{
			"commit": testhelpers.GitFailure("", "fatal: unable to auto-detect email address", "commit", "-m", "bad"),
		}}

		_, err := runScripted(t, "bad", runner)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to commit")
		require.NotContains(t, runner.Subcommands(), "push")
	})

	t.Run("fails when the push fails", func(t *testing.T) {
		runner := &testhelpers.ScriptedGit{Results: map[string]error{
			"push": testhelpers.GitFailure("", "fatal: no configured push destination", "push"),
		}}

		_, err := runScripted(t, "fix typo", runner)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to push")
	})

	t.Run("rejects an empty message without touching git", func(t *testing.T) {
		runner := &testhelpers.ScriptedGit{}

		_, err := runScripted(t, "", runner)
		require.ErrorIs(t, err, hulloerrors.ErrEmptyCommitMessage)
		require.Empty(t, runner.Calls)
	})

	t.Run("rejects a whitespace-only message", func(t *testing.T) {
		runner := &testhelpers.ScriptedGit{}

		_, err := runScripted(t, "  \n\t", runner)
		require.ErrorIs(t, err, hulloerrors.ErrEmptyCommitMessage)
		require.Empty(t, runner.Calls)
	})

	t.Run("pushes a real commit end to end", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))
		require.NoError(t, scene.Repo.CreateChange("updated", "work", true))

		var buf bytes.Buffer
		err = actions.CommitAndPushAction(context.Background(), actions.CommitAndPushOptions{
			Message: "add feature",
			Runner:  git.NewCommandRunner(scene.Dir),
			Splog:   output.NewSplogWithWriter(&buf),
		})
		require.NoError(t, err)

		testhelpers.ExpectCommits(t, scene.Repo, "main", []string{"add feature", "initial"})

		localSHA, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		remoteSHA, err := scene.Repo.GetRevision("origin/main")
		require.NoError(t, err)
		require.Equal(t, localSHA, remoteSHA)
	})

	t.Run("publishes unpushed commits when the tree is clean", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))

		// Local commit leaves the tree clean but the branch ahead of origin
		require.NoError(t, scene.Repo.CreateChangeAndCommit("local work", "work"))
		ahead, err := scene.Repo.GetCommitCount("origin/main", "main")
		require.NoError(t, err)
		require.Equal(t, 1, ahead)

		var buf bytes.Buffer
		err = actions.CommitAndPushAction(context.Background(), actions.CommitAndPushOptions{
			Message: "no-op commit",
			Runner:  git.NewCommandRunner(scene.Dir),
			Splog:   output.NewSplogWithWriter(&buf),
		})
		require.NoError(t, err)
		require.Contains(t, buf.String(), "No changes to commit")

		unpushed, err := scene.Repo.GetCommitCount("origin/main", "main")
		require.NoError(t, err)
		require.Zero(t, unpushed)
	})

	t.Run("surfaces hook rejections without pushing", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))
		remoteBefore, err := scene.Repo.GetRevision("origin/main")
		require.NoError(t, err)

		require.NoError(t, scene.Repo.CreatePrecommitHook("#!/bin/sh\necho rejected\nexit 1\n"))
		require.NoError(t, scene.Repo.CreateChange("updated", "work", true))

		var buf bytes.Buffer
		err = actions.CommitAndPushAction(context.Background(), actions.CommitAndPushOptions{
			Message: "blocked",
			Runner:  git.NewCommandRunner(scene.Dir),
			Splog:   output.NewSplogWithWriter(&buf),
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to commit")

		remoteAfter, err := scene.Repo.GetRevision("origin/main")
		require.NoError(t, err)
		require.Equal(t, remoteBefore, remoteAfter)
	})
}
