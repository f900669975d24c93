package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mockgit.gen.go -package=git

// Git interface provides Git command execution capabilities.
type Git interface {
	// Version executes `git --version` and returns the version string.
	Version() (string, error)

	// IsRepository checks if the specified directory is inside a Git repository.
	IsRepository(repoPath string) (bool, error)

	// Init initializes a new Git repository in the specified directory.
	Init(repoPath string) error

	// SetDefaultBranch renames the current branch to the specified name.
	SetDefaultBranch(repoPath, branch string) error

	// RemoteExists checks if a remote exists.
	RemoteExists(repoPath, remoteName string) (bool, error)

	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)

	// AddRemote adds a new remote to the repository.
	AddRemote(repoPath, remoteName, remoteURL string) error

	// SetRemoteURL changes the URL of an existing remote.
	SetRemoteURL(repoPath, remoteName, remoteURL string) error

	// StageAll stages all working-tree changes.
	StageAll(repoPath string) error

	// HasStagedChanges checks whether the staged tree differs from the last commit.
	HasStagedChanges(repoPath string) (bool, error)

	// GetCurrentBranch gets the current branch name.
	GetCurrentBranch(repoPath string) (string, error)

	// Commit creates a new commit with the specified message.
	Commit(repoPath, message string) error

	// Push pushes the specified branch to a remote, setting upstream tracking.
	Push(repoPath, remoteName, branch string) error
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
