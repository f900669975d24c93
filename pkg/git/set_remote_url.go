package git

import (
	"fmt"
	"os/exec"
)

// SetRemoteURL changes the URL of an existing remote.
func (g *realGit) SetRemoteURL(repoPath, remoteName, remoteURL string) error {
	cmd := exec.Command("git", "remote", "set-url", remoteName, remoteURL)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git remote set-url failed: %w (command: git remote set-url %s %s, output: %s)",
			err, remoteName, remoteURL, string(output))
	}
	return nil
}
