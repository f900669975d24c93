package git

import (
	"fmt"
	"os/exec"
)

// SetDefaultBranch renames the current branch to the specified name.
// Uses -M so the rename succeeds even on a freshly initialized repository.
func (g *realGit) SetDefaultBranch(repoPath, branch string) error {
	cmd := exec.Command("git", "branch", "-M", branch)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git branch -M failed: %w (command: git branch -M %s, output: %s)",
			err, branch, string(output))
	}
	return nil
}
