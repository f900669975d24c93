package forge

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL validation.
	GitHubDomain = "github.com"
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	var client *github.Client

	// Add authentication if available
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{
		client: client,
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// CheckConnectivity verifies that the GitHub API is reachable. The caller
// bounds the check with a context deadline.
func (g *GitHub) CheckConnectivity(ctx context.Context) error {
	// Zen is the lightest unauthenticated endpoint the API exposes
	_, _, err := g.client.Zen(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	return nil
}

// ValidateRemoteURL validates that a remote URL points at GitHub.
// Both HTTPS (https://github.com/owner/repo.git) and SSH
// (git@github.com:owner/repo.git) URLs are accepted.
func (g *GitHub) ValidateRemoteURL(remoteURL string) error {
	if !strings.Contains(remoteURL, GitHubDomain) {
		return fmt.Errorf("%w: %s", ErrNotAForgeURL, remoteURL)
	}
	return nil
}
