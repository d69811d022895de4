package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	hulloerrors "hullo.dev/hullo/internal/errors"
)

// RepoRoot returns the root directory of the git repository containing dir,
// walking upward the way git itself does.
func RepoRoot(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", hulloerrors.ErrNotARepository, dir)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}
