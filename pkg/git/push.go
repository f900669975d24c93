package git

import (
	"fmt"
	"os/exec"
)

// Push pushes the specified branch to a remote, setting upstream tracking.
func (g *realGit) Push(repoPath, remoteName, branch string) error {
	cmd := exec.Command("git", "push", "-u", remoteName, branch)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %w (command: git push -u %s %s, output: %s)",
			ErrPushFailed, err, remoteName, branch, string(output))
	}
	return nil
}
