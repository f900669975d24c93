// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrCommitFailed = errors.New("failed to create commit")
	ErrPushFailed   = errors.New("failed to push to remote")
)
