package git

import (
	"fmt"
	"os/exec"
)

// Init initializes a new Git repository in the specified directory.
func (g *realGit) Init(repoPath string) error {
	cmd := exec.Command("git", "init")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git init failed: %w (command: git init, output: %s)",
			err, string(output))
	}
	return nil
}
