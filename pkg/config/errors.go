package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrRemoteNameEmpty     = errors.New("remote_name cannot be empty")
	ErrRemoteURLEmpty      = errors.New("remote_url cannot be empty")
	ErrRemoteURLInvalid    = errors.New("remote_url must be an HTTPS or SSH Git URL")
	ErrDefaultBranchEmpty  = errors.New("default_branch cannot be empty")
	ErrProbeTimeoutInvalid = errors.New("probe_timeout_seconds must be positive")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("shipit configuration not found. Run 'shipit init' to initialize")
)
