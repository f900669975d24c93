// Package publisher implements the add/commit/push sequence against the
// configured remote.
package publisher

import (
	"context"

	"github.com/lerenn/shipit/pkg/dependencies"
	"github.com/lerenn/shipit/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=publisher.go -destination=mockpublisher.gen.go -package=publisher

// Publisher interface provides the publish workflow.
type Publisher interface {
	// Publish runs the full sequence: environment checks, repository and
	// remote setup, staging, commit and push.
	Publish(ctx context.Context, opts ...PublishOpts) error

	// SetLogger sets the logger for this Publisher instance.
	SetLogger(logger logger.Logger)
}

// PublishOpts contains optional parameters for Publish.
type PublishOpts struct {
	// Message is the commit message. When empty, the user is prompted.
	Message string
}

// NewPublisherParams contains parameters for creating a new Publisher instance.
type NewPublisherParams struct {
	Dependencies *dependencies.Dependencies
	RepoPath     string
	Verbose      bool
}

type realPublisher struct {
	deps     *dependencies.Dependencies
	repoPath string
	verbose  bool
}

// NewPublisher creates a new Publisher instance.
func NewPublisher(params NewPublisherParams) (Publisher, error) {
	if err := params.Dependencies.Validate(); err != nil {
		return nil, err
	}

	repoPath := params.RepoPath
	if repoPath == "" {
		repoPath = "."
	}

	return &realPublisher{
		deps:     params.Dependencies,
		repoPath: repoPath,
		verbose:  params.Verbose,
	}, nil
}

// SetLogger sets the logger for this Publisher instance.
func (p *realPublisher) SetLogger(logger logger.Logger) {
	p.deps.Logger = logger
}

// VerbosePrint prints a formatted message only in verbose mode.
func (p *realPublisher) VerbosePrint(msg string, args ...interface{}) {
	if p.verbose {
		p.deps.Logger.Logf(msg, args...)
	}
}
