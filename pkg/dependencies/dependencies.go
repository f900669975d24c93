// Package dependencies provides a centralized dependency container for shipit.
// This package follows Go idioms for dependency injection by grouping related
// dependencies together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/shipit/pkg/config"
	"github.com/lerenn/shipit/pkg/forge"
	"github.com/lerenn/shipit/pkg/fs"
	"github.com/lerenn/shipit/pkg/git"
	"github.com/lerenn/shipit/pkg/logger"
	"github.com/lerenn/shipit/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrGitMissing    = errors.New("git dependency is required but not set")
	ErrConfigMissing = errors.New("config dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
	ErrPromptMissing = errors.New("prompt dependency is required but not set")
	ErrForgeMissing  = errors.New("forge dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS     fs.FS
	Git    git.Git
	Config config.Manager
	Logger logger.Logger
	Prompt prompt.Prompter
	Forge  forge.Forge
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Git:    git.NewGit(),
		Logger: logger.NewNoopLogger(),
		Prompt: prompt.NewPrompt(),
		Forge:  forge.NewGitHub(),
		// Note: Config is intentionally left nil as it requires a config path
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithForge sets the forge and returns the instance for chaining.
func (d *Dependencies) WithForge(forge forge.Forge) *Dependencies {
	d.Forge = forge
	return d
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.FS == nil {
		return ErrFSMissing
	}
	if d.Git == nil {
		return ErrGitMissing
	}
	if d.Config == nil {
		return ErrConfigMissing
	}
	if d.Logger == nil {
		return ErrLoggerMissing
	}
	if d.Prompt == nil {
		return ErrPromptMissing
	}
	if d.Forge == nil {
		return ErrForgeMissing
	}
	return nil
}
