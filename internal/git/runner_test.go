package git_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	hulloerrors "hullo.dev/hullo/internal/errors"
	"hullo.dev/hullo/internal/git"
	"hullo.dev/hullo/testhelpers"
)

func TestCommandRunner(t *testing.T) {
	t.Run("returns trimmed stdout", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		runner := git.NewCommandRunner(scene.Dir)
		out, err := runner.Run(context.Background(), "rev-parse", "--abbrev-ref", "HEAD")
		require.NoError(t, err)
		require.Equal(t, "main", out)
	})

	t.Run("captures diagnostics on failure", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		runner := git.NewCommandRunner(scene.Dir)
		_, err := runner.Run(context.Background(), "rev-parse", "--verify", "does-not-exist")
		require.Error(t, err)

		var cmdErr *hulloerrors.GitCommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, "git", cmdErr.Command)
		require.NotEmpty(t, cmdErr.Stderr)
		require.Positive(t, cmdErr.ExitCode())
	})

	t.Run("respects the configured working directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		runner := git.NewCommandRunner(scene.Dir)
		out, err := runner.Run(context.Background(), "rev-parse", "--show-toplevel")
		require.NoError(t, err)

		// git reports the physical path, so resolve symlinks before comparing
		resolved, err := filepath.EvalSymlinks(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, resolved, out)
	})

	t.Run("honors context deadlines", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()

		runner := git.NewCommandRunner(scene.Dir)
		_, err := runner.Run(ctx, "status")
		require.Error(t, err)
	})
}

func TestEnsureInstalled(t *testing.T) {
	t.Run("finds git on the test host", func(t *testing.T) {
		require.NoError(t, git.EnsureInstalled())
	})
}
