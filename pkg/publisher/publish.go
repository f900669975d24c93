package publisher

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/shipit/pkg/config"
	"github.com/lerenn/shipit/pkg/prompt"
)

// Publish runs the full sequence: environment checks, repository and remote
// setup, staging, commit and push. Every gate is fail-fast: the first failing
// step aborts the run with no retry and no rollback of prior steps.
func (p *realPublisher) Publish(ctx context.Context, opts ...PublishOpts) error {
	var opt PublishOpts
	if len(opts) > 0 {
		opt = opts[0]
	}

	cfg, err := p.deps.Config.GetConfig()
	if err != nil {
		return err
	}

	if err := p.checkGitInstalled(); err != nil {
		return err
	}

	if err := p.checkConnectivity(ctx, cfg); err != nil {
		return err
	}

	if err := p.ensureRepository(cfg); err != nil {
		return err
	}

	if err := p.ensureRemote(cfg); err != nil {
		return err
	}

	if err := p.stageAll(); err != nil {
		return err
	}

	committed, err := p.maybeCommit(opt)
	if err != nil {
		return err
	}
	if !committed {
		p.deps.Logger.Logf("No changes to commit, pushing current state")
	}

	return p.push(cfg)
}

// checkGitInstalled verifies the git executable is available on PATH.
func (p *realPublisher) checkGitInstalled() error {
	path, err := p.deps.FS.Which("git")
	if err != nil {
		return fmt.Errorf("%w: install git and make sure it is on your PATH", ErrGitNotInstalled)
	}
	p.VerbosePrint("Found git at: %s", path)

	if p.verbose {
		if version, err := p.deps.Git.Version(); err == nil {
			p.VerbosePrint("Using %s", version)
		}
	}
	return nil
}

// checkConnectivity probes the forge API within the configured timeout.
func (p *realPublisher) checkConnectivity(ctx context.Context, cfg config.Config) error {
	p.VerbosePrint("Checking connectivity to %s (timeout: %s)", p.deps.Forge.Name(), cfg.ProbeTimeout())

	probeCtx, cancel := context.WithTimeout(ctx, cfg.ProbeTimeout())
	defer cancel()

	if err := p.deps.Forge.CheckConnectivity(probeCtx); err != nil {
		p.deps.Logger.Logf("Cannot reach %s. Check that:", p.deps.Forge.Name())
		p.deps.Logger.Logf("  - your network connection is up")
		p.deps.Logger.Logf("  - your proxy settings are correct")
		p.deps.Logger.Logf("  - no firewall is blocking HTTPS traffic")
		return fmt.Errorf("%w: %w", ErrNetworkUnreachable, err)
	}
	return nil
}

// ensureRepository initializes a repository with the configured default
// branch when the working directory is not one yet.
func (p *realPublisher) ensureRepository(cfg config.Config) error {
	isRepo, err := p.deps.Git.IsRepository(p.repoPath)
	if err != nil {
		return err
	}
	if isRepo {
		p.VerbosePrint("Repository already initialized")
		return nil
	}

	p.deps.Logger.Logf("Initializing repository with default branch %q", cfg.DefaultBranch)
	if err := p.deps.Git.Init(p.repoPath); err != nil {
		return err
	}
	return p.deps.Git.SetDefaultBranch(p.repoPath, cfg.DefaultBranch)
}

// ensureRemote adds the configured remote, or overwrites its URL when it
// differs from the configured one. The comparison is an exact string match.
func (p *realPublisher) ensureRemote(cfg config.Config) error {
	if err := p.deps.Forge.ValidateRemoteURL(cfg.RemoteURL); err != nil {
		return err
	}

	exists, err := p.deps.Git.RemoteExists(p.repoPath, cfg.RemoteName)
	if err != nil {
		return err
	}

	if !exists {
		p.deps.Logger.Logf("Adding remote %q -> %s", cfg.RemoteName, cfg.RemoteURL)
		return p.deps.Git.AddRemote(p.repoPath, cfg.RemoteName, cfg.RemoteURL)
	}

	currentURL, err := p.deps.Git.GetRemoteURL(p.repoPath, cfg.RemoteName)
	if err != nil {
		return err
	}
	if currentURL != cfg.RemoteURL {
		p.deps.Logger.Logf("Correcting remote %q: %s -> %s", cfg.RemoteName, currentURL, cfg.RemoteURL)
		return p.deps.Git.SetRemoteURL(p.repoPath, cfg.RemoteName, cfg.RemoteURL)
	}

	p.VerbosePrint("Remote %q already points at %s", cfg.RemoteName, cfg.RemoteURL)
	return nil
}

// stageAll stages all working-tree changes.
func (p *realPublisher) stageAll() error {
	p.VerbosePrint("Staging all changes")
	if err := p.deps.Git.StageAll(p.repoPath); err != nil {
		return fmt.Errorf("%w: %w", ErrStageFailed, err)
	}
	return nil
}

// maybeCommit creates a commit when the staged tree differs from the last
// commit. Returns false when there was nothing to commit.
func (p *realPublisher) maybeCommit(opt PublishOpts) (bool, error) {
	hasChanges, err := p.deps.Git.HasStagedChanges(p.repoPath)
	if err != nil {
		return false, err
	}
	if !hasChanges {
		return false, nil
	}

	message := strings.TrimSpace(opt.Message)
	if message == "" {
		message, err = p.deps.Prompt.PromptForCommitMessage()
		if err != nil {
			return false, err
		}
	}
	if message == "" {
		return false, prompt.ErrEmptyCommitMessage
	}

	if err := p.deps.Git.Commit(p.repoPath, message); err != nil {
		return false, err
	}
	p.deps.Logger.Logf("Committed: %s", message)
	return true, nil
}

// push pushes the current branch to the configured remote with upstream
// tracking. On failure the likely causes are listed before the error is
// returned, so the process still exits non-zero.
func (p *realPublisher) push(cfg config.Config) error {
	branch, err := p.deps.Git.GetCurrentBranch(p.repoPath)
	if err != nil {
		return err
	}
	if branch == "" {
		branch = cfg.DefaultBranch
	}

	p.VerbosePrint("Pushing %s to %s", branch, cfg.RemoteName)
	if err := p.deps.Git.Push(p.repoPath, cfg.RemoteName, branch); err != nil {
		p.deps.Logger.Logf("Push failed. Likely causes:")
		p.deps.Logger.Logf("  1. The network connection dropped")
		p.deps.Logger.Logf("  2. Your credentials or access token are invalid or expired")
		p.deps.Logger.Logf("  3. You do not have permission to push to %s", cfg.RemoteURL)
		return err
	}

	p.deps.Logger.Logf("Pushed %s to %s", branch, cfg.RemoteName)
	return nil
}
