package git

import (
	"fmt"
	"os/exec"
)

// StageAll stages all working-tree changes.
func (g *realGit) StageAll(repoPath string) error {
	cmd := exec.Command("git", "add", "-A")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git add failed: %w (command: git add -A, output: %s)",
			err, string(output))
	}
	return nil
}
