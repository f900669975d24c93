package publisher

import "errors"

// Error definitions for publisher package.
var (
	ErrGitNotInstalled    = errors.New("git is not installed or not on PATH")
	ErrNetworkUnreachable = errors.New("unable to reach the hosting endpoint")
	ErrStageFailed        = errors.New("failed to stage changes")
)
