// Package fs provides file system and PATH lookup operations.
package fs

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mockfs.gen.go -package=fs

// FS interface provides the file system operations needed for environment checks.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// Which finds the executable path for a command using the system's PATH.
	Which(command string) (string, error)

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
