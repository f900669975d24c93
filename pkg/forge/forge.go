// Package forge provides hosting-provider connectivity checks for shipit.
package forge

import "context"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mockforge.gen.go -package=forge

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// CheckConnectivity verifies that the forge API is reachable
	CheckConnectivity(ctx context.Context) error

	// ValidateRemoteURL validates that a remote URL belongs to this forge
	ValidateRemoteURL(remoteURL string) error
}
