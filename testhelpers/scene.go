package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// RequireGit skips the test when git is not on PATH.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}
}

// NewScene creates a new test scene with a temporary directory and Git repository.
// It automatically handles cleanup using t.Cleanup().
// Tests that need a scene are skipped when git is not on PATH.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	RequireGit(t)

	// Create temporary directory
	tmpDir, err := os.MkdirTemp("", "hullo-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	// Save current directory
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	// Initialize Git repository
	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:    tmpDir,
		Repo:   repo,
		oldDir: oldDir,
	}

	// Keep the user config and log file inside the scene so tests never
	// touch the real ones
	t.Setenv("HULLO_CONFIG_PATH", filepath.Join(tmpDir, ".git", "hullo.toml"))
	t.Setenv("HULLO_LOG_FILE", filepath.Join(tmpDir, ".git", "hullo.log"))

	// Change to temp directory
	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	// Run custom setup if provided
	if setup != nil {
		if err := setup(scene); err != nil {
			os.Chdir(oldDir)
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	// Register cleanup
	t.Cleanup(func() {
		os.Chdir(oldDir)
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
