package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Initialize new repository with optimized config
	// Use git -c flags to avoid reading global config and set local configs
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Configure Git user (required for commits)
	if err := repo.runGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.runGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// runGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config for faster operations.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	// Set environment to avoid reading global git config for faster operations in tests
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	return cmd.Run()
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// runGitCommandAndGetOutput executes a git command and returns its output.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config for faster operations.
func (r *GitRepo) runGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	// Set environment to avoid reading global git config for faster operations in tests
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	// Trim all trailing whitespace including newlines
	result := strings.TrimSpace(string(output))
	return result, nil
}

// RunGitCommandAndGetOutput executes a git command and returns its output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	return r.runGitCommandAndGetOutput(args...)
}

// CreateChange creates a file change in the repository.
func (r *GitRepo) CreateChange(textValue string, prefix string, unstaged bool) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	filePath := filepath.Join(r.Dir, fileName)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, []byte(textValue), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if !unstaged {
		return r.runGitCommand("add", filePath)
	}

	return nil
}

// CreateChangeAndCommit creates a file change and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	if err := r.CreateChange(textValue, prefix, false); err != nil {
		return err
	}
	if err := r.runGitCommand("add", "."); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", textValue)
}

// CreatePrecommitHook creates a pre-commit hook.
func (r *GitRepo) CreatePrecommitHook(contents string) error {
	hookDir := filepath.Join(r.Dir, ".git", "hooks")
	if err := os.MkdirAll(hookDir, 0700); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	hookPath := filepath.Join(hookDir, "pre-commit")
	if err := os.WriteFile(hookPath, []byte(contents), 0600); err != nil {
		return fmt.Errorf("failed to write hook: %w", err)
	}
	// nolint:gosec // Hook must be executable
	if err := os.Chmod(hookPath, 0700); err != nil {
		return fmt.Errorf("failed to make hook executable: %w", err)
	}

	return nil
}

// CurrentBranchName returns the name of the current branch.
func (r *GitRepo) CurrentBranchName() (string, error) {
	output, err := r.runGitCommandAndGetOutput("branch", "--show-current")
	if err != nil {
		return "", err
	}
	// The output from runGitCommandAndGetOutput is already trimmed, but ensure it's clean
	return strings.TrimSpace(output), nil
}

// ListCurrentBranchCommitMessages returns the commit messages on the current branch.
func (r *GitRepo) ListCurrentBranchCommitMessages() ([]string, error) {
	output, err := r.runGitCommandAndGetOutput("log", "--oneline", "--format=%B")
	if err != nil {
		return nil, err
	}

	lines := []string{}
	for _, line := range splitLines(output) {
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}

	return lines, nil
}

// splitLines splits a string by newlines and returns non-empty lines.
func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

// CreateBareRemote creates a bare git repository to act as a remote.
// Returns the path to the bare repository.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	// Create bare repo as a sibling directory with a unique name based on the repo dir
	// This ensures each test gets its own unique remote
	bareDir := r.Dir + "-" + name + ".git"

	cmd := exec.Command("git", "init", "--bare", bareDir)
	// Set environment to avoid reading global git config for faster operations in tests
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to create bare repo: %w", err)
	}

	// Add as remote
	if err := r.runGitCommand("remote", "add", name, bareDir); err != nil {
		return "", fmt.Errorf("failed to add remote: %w", err)
	}

	return bareDir, nil
}

// PushBranch pushes a branch to a remote.
func (r *GitRepo) PushBranch(remote, branch string) error {
	cmd := exec.Command("git", "push", "-u", remote, branch)
	cmd.Dir = r.Dir
	// Set environment to avoid reading global git config for faster operations in tests
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("push failed: %w, output: %s", err, string(output))
	}
	return nil
}

// GetRevision returns the SHA of a revision (branch, tag, or commit reference).
func (r *GitRepo) GetRevision(rev string) (string, error) {
	return r.runGitCommandAndGetOutput("rev-parse", rev)
}

// GetCommitCount returns the number of commits between two refs.
func (r *GitRepo) GetCommitCount(from, to string) (int, error) {
	output, err := r.runGitCommandAndGetOutput("rev-list", "--count", from+".."+to)
	if err != nil {
		return 0, err
	}
	var count int
	_, err = fmt.Sscanf(output, "%d", &count)
	if err != nil {
		return 0, fmt.Errorf("failed to parse commit count: %w", err)
	}
	return count, nil
}

// GetCurrentSHA returns the SHA of HEAD.
func (r *GitRepo) GetCurrentSHA() (string, error) {
	return r.GetRevision("HEAD")
}

// HasUnstagedChanges checks if there are unstaged changes to tracked files.
func (r *GitRepo) HasUnstagedChanges() (bool, error) {
	output, err := r.runGitCommandAndGetOutput("diff", "--name-only")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUntrackedFiles checks if there are untracked files.
func (r *GitRepo) HasUntrackedFiles() (bool, error) {
	output, err := r.runGitCommandAndGetOutput("ls-files", "--others", "--exclude-standard")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}
