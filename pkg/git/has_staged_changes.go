package git

import (
	"errors"
	"fmt"
	"os/exec"
)

// HasStagedChanges checks whether the staged tree differs from the last commit.
// On a repository with no commits yet, git diffs against the empty tree, so
// freshly staged files are reported correctly.
func (g *realGit) HasStagedChanges(repoPath string) (bool, error) {
	cmd := exec.Command("git", "diff", "--cached", "--quiet")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		// Exit code 1 means there are staged differences
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return true, nil
		}
		return false, fmt.Errorf("git diff --cached failed: %w (command: git diff --cached --quiet, output: %s)",
			err, string(output))
	}
	return false, nil
}
