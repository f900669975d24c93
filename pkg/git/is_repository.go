package git

import (
	"errors"
	"fmt"
	"os/exec"
)

// IsRepository checks if the specified directory is inside a Git repository.
func (g *realGit) IsRepository(repoPath string) (bool, error) {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		// Exit code 128 means not a repository
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("git rev-parse --git-dir failed: %w (command: git rev-parse --git-dir, output: %s)",
			err, string(output))
	}
	return true, nil
}
