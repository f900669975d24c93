package fs

import (
	"fmt"
	"os"
)

// GetHomeDir returns the user's home directory path.
func (f *realFS) GetHomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return homeDir, nil
}
