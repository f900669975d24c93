// Package prompt provides interactive prompt functionality for shipit.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrEmptyCommitMessage       = errors.New("commit message cannot be empty")
	ErrEmptyRemoteURL           = errors.New("remote URL cannot be empty")
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
)
