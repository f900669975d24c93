package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// SetupTestRepo creates a temporary git repository for testing and changes
// the working directory into it. The returned cleanup restores the original
// working directory and removes the repository.
func SetupTestRepo(t *testing.T) (string, func()) {
	t.Helper()
	tmpDir, originalDir := setupTempDir(t)

	runGitCommand(t, "init")
	runGitCommand(t, "config", "user.name", "Test User")
	runGitCommand(t, "config", "user.email", "test@example.com")
	runGitCommand(t, "commit", "--allow-empty", "-m", "Initial commit")

	cleanup := func() {
		_ = os.Chdir(originalDir)
		_ = os.RemoveAll(tmpDir)
	}

	return tmpDir, cleanup
}

// SetupEmptyDir creates a temporary directory without a git repository and
// changes the working directory into it.
func SetupEmptyDir(t *testing.T) (string, func()) {
	t.Helper()
	tmpDir, originalDir := setupTempDir(t)

	cleanup := func() {
		_ = os.Chdir(originalDir)
		_ = os.RemoveAll(tmpDir)
	}

	return tmpDir, cleanup
}

// SetupBareRemote creates a bare repository next to the test repository and
// configures it as the origin remote, so pushes work without network access.
func SetupBareRemote(t *testing.T, repoDir string) string {
	t.Helper()

	bareDir := filepath.Join(filepath.Dir(repoDir), filepath.Base(repoDir)+"-remote.git")
	cmd := exec.Command("git", "init", "--bare", bareDir)
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to create bare remote repository: %v", err)
	}

	runGitCommand(t, "remote", "add", "origin", bareDir)
	return bareDir
}

func setupTempDir(t *testing.T) (string, string) {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "git-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	return tmpDir, originalDir
}

func runGitCommand(t *testing.T, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v (output: %s)", args, err, string(output))
	}
}
