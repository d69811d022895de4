package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
)

// GetSharedBinaryPath returns the path of a hullo binary built from the
// enclosing module, building it on first use. Call TestMain from the test
// package's TestMain so the build happens before any test chdirs away
// from the module tree.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		sharedBinaryPath, binaryErr = buildBinary()
	})
	return sharedBinaryPath
}

// GetBinaryError returns the error from the binary build, if any.
func GetBinaryError() error {
	return binaryErr
}

// TestMain builds the hullo binary once, runs the package's tests, and
// removes the binary afterwards. Test packages that exec the real binary
// call this from their own TestMain.
func TestMain(m *testing.M) {
	path := GetSharedBinaryPath()
	if binaryErr != nil {
		fmt.Fprintf(os.Stderr, "failed to build hullo binary: %v\n", binaryErr)
		os.Exit(1)
	}

	code := m.Run()

	if path != "" {
		_ = os.RemoveAll(filepath.Dir(path))
	}
	os.Exit(code)
}

func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "hullo-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "hullo")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/hullo")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return binaryPath, nil
}

// findModuleRoot walks up from startDir looking for go.mod.
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
