package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Version executes `git --version` and returns the version string.
func (g *realGit) Version() (string, error) {
	cmd := exec.Command("git", "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git --version failed: %w (command: git --version, output: %s)",
			err, string(output))
	}
	return strings.TrimSpace(string(output)), nil
}
