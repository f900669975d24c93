package forge

import "errors"

// Forge-specific errors
var (
	ErrUnreachable  = errors.New("forge API is unreachable")
	ErrNotAForgeURL = errors.New("remote URL does not belong to a supported forge")
)
