//go:build unit

package publisher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lerenn/shipit/pkg/config"
	"github.com/lerenn/shipit/pkg/dependencies"
	"github.com/lerenn/shipit/pkg/forge"
	"github.com/lerenn/shipit/pkg/fs"
	"github.com/lerenn/shipit/pkg/git"
	"github.com/lerenn/shipit/pkg/logger"
	"github.com/lerenn/shipit/pkg/prompt"
)

type publisherMocks struct {
	fs     *fs.MockFS
	git    *git.MockGit
	config *config.MockManager
	prompt *prompt.MockPrompter
	forge  *forge.MockForge
	logger *logger.MockLogger
}

func testConfig() config.Config {
	return config.Config{
		RemoteName:          "origin",
		RemoteURL:           "https://github.com/lerenn/shipit.git",
		DefaultBranch:       "main",
		ProbeTimeoutSeconds: 10,
	}
}

func newTestPublisher(t *testing.T) (Publisher, publisherMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := publisherMocks{
		fs:     fs.NewMockFS(ctrl),
		git:    git.NewMockGit(ctrl),
		config: config.NewMockManager(ctrl),
		prompt: prompt.NewMockPrompter(ctrl),
		forge:  forge.NewMockForge(ctrl),
		logger: logger.NewMockLogger(ctrl),
	}

	deps := dependencies.New().
		WithFS(m.fs).
		WithGit(m.git).
		WithConfig(m.config).
		WithPrompt(m.prompt).
		WithForge(m.forge).
		WithLogger(logger.NewNoopLogger())

	p, err := NewPublisher(NewPublisherParams{
		Dependencies: deps,
		RepoPath:     "/test/repo",
	})
	require.NoError(t, err)

	m.forge.EXPECT().Name().Return("github").AnyTimes()

	return p, m
}

func TestNewPublisher_MissingDependencies(t *testing.T) {
	deps := dependencies.New() // Config is nil

	_, err := NewPublisher(NewPublisherParams{Dependencies: deps})
	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}

func TestPublisher_Publish_ConfigNotInitialized(t *testing.T) {
	p, m := newTestPublisher(t)

	m.config.EXPECT().GetConfig().Return(config.Config{}, config.ErrConfigNotInitialized)

	err := p.Publish(context.Background())
	assert.ErrorIs(t, err, config.ErrConfigNotInitialized)
}

func TestPublisher_Publish_GitNotInstalled(t *testing.T) {
	p, m := newTestPublisher(t)

	m.config.EXPECT().GetConfig().Return(testConfig(), nil)
	m.fs.EXPECT().Which("git").Return("", assert.AnError)
	// No network, repository or staging expectations: the run must abort
	// before any of them.

	err := p.Publish(context.Background())
	assert.ErrorIs(t, err, ErrGitNotInstalled)
}

func TestPublisher_Publish_NetworkUnreachable(t *testing.T) {
	p, m := newTestPublisher(t)
	p.SetLogger(m.logger)

	m.config.EXPECT().GetConfig().Return(testConfig(), nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(forge.ErrUnreachable)

	// The remediation hint must be printed
	m.logger.EXPECT().Logf("Cannot reach %s. Check that:", "github")
	m.logger.EXPECT().Logf("  - your network connection is up")
	m.logger.EXPECT().Logf("  - your proxy settings are correct")
	m.logger.EXPECT().Logf("  - no firewall is blocking HTTPS traffic")

	// No staging or commit expectations: the run must abort at the probe.

	err := p.Publish(context.Background())
	assert.ErrorIs(t, err, ErrNetworkUnreachable)
}

func TestPublisher_Publish_FreshDirectory(t *testing.T) {
	p, m := newTestPublisher(t)
	cfg := testConfig()

	m.config.EXPECT().GetConfig().Return(cfg, nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(nil)

	// Not a repository yet: init and set default branch
	m.git.EXPECT().IsRepository("/test/repo").Return(false, nil)
	m.git.EXPECT().Init("/test/repo").Return(nil)
	m.git.EXPECT().SetDefaultBranch("/test/repo", "main").Return(nil)

	// No remote configured yet: add it
	m.forge.EXPECT().ValidateRemoteURL(cfg.RemoteURL).Return(nil)
	m.git.EXPECT().RemoteExists("/test/repo", "origin").Return(false, nil)
	m.git.EXPECT().AddRemote("/test/repo", "origin", cfg.RemoteURL).Return(nil)

	m.git.EXPECT().StageAll("/test/repo").Return(nil)
	m.git.EXPECT().HasStagedChanges("/test/repo").Return(true, nil)
	m.prompt.EXPECT().PromptForCommitMessage().Return("Initial commit", nil)
	m.git.EXPECT().Commit("/test/repo", "Initial commit").Return(nil)

	m.git.EXPECT().GetCurrentBranch("/test/repo").Return("main", nil)
	m.git.EXPECT().Push("/test/repo", "origin", "main").Return(nil)

	err := p.Publish(context.Background())
	assert.NoError(t, err)
}

func TestPublisher_Publish_RemoteURLMismatch(t *testing.T) {
	p, m := newTestPublisher(t)
	cfg := testConfig()

	m.config.EXPECT().GetConfig().Return(cfg, nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(nil)
	m.git.EXPECT().IsRepository("/test/repo").Return(true, nil)

	// Remote exists with a different URL: it must be overwritten
	m.forge.EXPECT().ValidateRemoteURL(cfg.RemoteURL).Return(nil)
	m.git.EXPECT().RemoteExists("/test/repo", "origin").Return(true, nil)
	m.git.EXPECT().GetRemoteURL("/test/repo", "origin").
		Return("https://github.com/lerenn/other.git", nil)
	m.git.EXPECT().SetRemoteURL("/test/repo", "origin", cfg.RemoteURL).Return(nil)

	m.git.EXPECT().StageAll("/test/repo").Return(nil)
	m.git.EXPECT().HasStagedChanges("/test/repo").Return(false, nil)
	m.git.EXPECT().GetCurrentBranch("/test/repo").Return("main", nil)
	m.git.EXPECT().Push("/test/repo", "origin", "main").Return(nil)

	err := p.Publish(context.Background())
	assert.NoError(t, err)
}

func TestPublisher_Publish_RemoteURLMatch_NoRewrite(t *testing.T) {
	p, m := newTestPublisher(t)
	cfg := testConfig()

	m.config.EXPECT().GetConfig().Return(cfg, nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(nil)
	m.git.EXPECT().IsRepository("/test/repo").Return(true, nil)

	// Exact match: no SetRemoteURL expectation
	m.forge.EXPECT().ValidateRemoteURL(cfg.RemoteURL).Return(nil)
	m.git.EXPECT().RemoteExists("/test/repo", "origin").Return(true, nil)
	m.git.EXPECT().GetRemoteURL("/test/repo", "origin").Return(cfg.RemoteURL, nil)

	m.git.EXPECT().StageAll("/test/repo").Return(nil)
	m.git.EXPECT().HasStagedChanges("/test/repo").Return(false, nil)
	m.git.EXPECT().GetCurrentBranch("/test/repo").Return("main", nil)
	m.git.EXPECT().Push("/test/repo", "origin", "main").Return(nil)

	err := p.Publish(context.Background())
	assert.NoError(t, err)
}

func TestPublisher_Publish_NoStagedChanges_SkipsCommitPrompt(t *testing.T) {
	p, m := newTestPublisher(t)
	cfg := testConfig()

	m.config.EXPECT().GetConfig().Return(cfg, nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(nil)
	m.git.EXPECT().IsRepository("/test/repo").Return(true, nil)
	m.forge.EXPECT().ValidateRemoteURL(cfg.RemoteURL).Return(nil)
	m.git.EXPECT().RemoteExists("/test/repo", "origin").Return(true, nil)
	m.git.EXPECT().GetRemoteURL("/test/repo", "origin").Return(cfg.RemoteURL, nil)
	m.git.EXPECT().StageAll("/test/repo").Return(nil)

	// No staged changes: no prompt, no commit, straight to push
	m.git.EXPECT().HasStagedChanges("/test/repo").Return(false, nil)
	m.git.EXPECT().GetCurrentBranch("/test/repo").Return("main", nil)
	m.git.EXPECT().Push("/test/repo", "origin", "main").Return(nil)

	err := p.Publish(context.Background())
	assert.NoError(t, err)
}

func TestPublisher_Publish_EmptyCommitMessage(t *testing.T) {
	p, m := newTestPublisher(t)
	cfg := testConfig()

	m.config.EXPECT().GetConfig().Return(cfg, nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(nil)
	m.git.EXPECT().IsRepository("/test/repo").Return(true, nil)
	m.forge.EXPECT().ValidateRemoteURL(cfg.RemoteURL).Return(nil)
	m.git.EXPECT().RemoteExists("/test/repo", "origin").Return(true, nil)
	m.git.EXPECT().GetRemoteURL("/test/repo", "origin").Return(cfg.RemoteURL, nil)
	m.git.EXPECT().StageAll("/test/repo").Return(nil)
	m.git.EXPECT().HasStagedChanges("/test/repo").Return(true, nil)

	m.prompt.EXPECT().PromptForCommitMessage().Return("", prompt.ErrEmptyCommitMessage)
	// No commit and no push expectations: the run must abort.

	err := p.Publish(context.Background())
	assert.ErrorIs(t, err, prompt.ErrEmptyCommitMessage)
}

func TestPublisher_Publish_MessageOptionSkipsPrompt(t *testing.T) {
	p, m := newTestPublisher(t)
	cfg := testConfig()

	m.config.EXPECT().GetConfig().Return(cfg, nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(nil)
	m.git.EXPECT().IsRepository("/test/repo").Return(true, nil)
	m.forge.EXPECT().ValidateRemoteURL(cfg.RemoteURL).Return(nil)
	m.git.EXPECT().RemoteExists("/test/repo", "origin").Return(true, nil)
	m.git.EXPECT().GetRemoteURL("/test/repo", "origin").Return(cfg.RemoteURL, nil)
	m.git.EXPECT().StageAll("/test/repo").Return(nil)
	m.git.EXPECT().HasStagedChanges("/test/repo").Return(true, nil)

	// No prompt expectation: the provided message is used as-is
	m.git.EXPECT().Commit("/test/repo", "Fix parser").Return(nil)

	m.git.EXPECT().GetCurrentBranch("/test/repo").Return("main", nil)
	m.git.EXPECT().Push("/test/repo", "origin", "main").Return(nil)

	err := p.Publish(context.Background(), PublishOpts{Message: "Fix parser"})
	assert.NoError(t, err)
}

func TestPublisher_Publish_StageFailure(t *testing.T) {
	p, m := newTestPublisher(t)
	cfg := testConfig()

	m.config.EXPECT().GetConfig().Return(cfg, nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(nil)
	m.git.EXPECT().IsRepository("/test/repo").Return(true, nil)
	m.forge.EXPECT().ValidateRemoteURL(cfg.RemoteURL).Return(nil)
	m.git.EXPECT().RemoteExists("/test/repo", "origin").Return(true, nil)
	m.git.EXPECT().GetRemoteURL("/test/repo", "origin").Return(cfg.RemoteURL, nil)

	m.git.EXPECT().StageAll("/test/repo").Return(assert.AnError)

	err := p.Publish(context.Background())
	assert.ErrorIs(t, err, ErrStageFailed)
}

func TestPublisher_Publish_InvalidRemoteURL(t *testing.T) {
	p, m := newTestPublisher(t)
	cfg := testConfig()

	m.config.EXPECT().GetConfig().Return(cfg, nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(nil)
	m.git.EXPECT().IsRepository("/test/repo").Return(true, nil)

	m.forge.EXPECT().ValidateRemoteURL(cfg.RemoteURL).Return(forge.ErrNotAForgeURL)

	err := p.Publish(context.Background())
	assert.ErrorIs(t, err, forge.ErrNotAForgeURL)
}

func TestPublisher_Publish_PushFailure(t *testing.T) {
	p, m := newTestPublisher(t)
	p.SetLogger(m.logger)
	cfg := testConfig()

	m.config.EXPECT().GetConfig().Return(cfg, nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(nil)
	m.git.EXPECT().IsRepository("/test/repo").Return(true, nil)
	m.forge.EXPECT().ValidateRemoteURL(cfg.RemoteURL).Return(nil)
	m.git.EXPECT().RemoteExists("/test/repo", "origin").Return(true, nil)
	m.git.EXPECT().GetRemoteURL("/test/repo", "origin").Return(cfg.RemoteURL, nil)
	m.git.EXPECT().StageAll("/test/repo").Return(nil)
	m.git.EXPECT().HasStagedChanges("/test/repo").Return(false, nil)
	m.logger.EXPECT().Logf("No changes to commit, pushing current state")
	m.git.EXPECT().GetCurrentBranch("/test/repo").Return("main", nil)

	m.git.EXPECT().Push("/test/repo", "origin", "main").Return(git.ErrPushFailed)

	// The enumerated causes must be printed, and the error still propagates
	m.logger.EXPECT().Logf("Push failed. Likely causes:")
	m.logger.EXPECT().Logf("  1. The network connection dropped")
	m.logger.EXPECT().Logf("  2. Your credentials or access token are invalid or expired")
	m.logger.EXPECT().Logf("  3. You do not have permission to push to %s", cfg.RemoteURL)

	err := p.Publish(context.Background())
	assert.ErrorIs(t, err, git.ErrPushFailed)
}

func TestPublisher_Publish_UnbornBranchFallsBackToDefault(t *testing.T) {
	p, m := newTestPublisher(t)
	cfg := testConfig()

	m.config.EXPECT().GetConfig().Return(cfg, nil)
	m.fs.EXPECT().Which("git").Return("/usr/bin/git", nil)
	m.forge.EXPECT().CheckConnectivity(gomock.Any()).Return(nil)
	m.git.EXPECT().IsRepository("/test/repo").Return(true, nil)
	m.forge.EXPECT().ValidateRemoteURL(cfg.RemoteURL).Return(nil)
	m.git.EXPECT().RemoteExists("/test/repo", "origin").Return(true, nil)
	m.git.EXPECT().GetRemoteURL("/test/repo", "origin").Return(cfg.RemoteURL, nil)
	m.git.EXPECT().StageAll("/test/repo").Return(nil)
	m.git.EXPECT().HasStagedChanges("/test/repo").Return(false, nil)

	// Empty branch name falls back to the configured default branch
	m.git.EXPECT().GetCurrentBranch("/test/repo").Return("", nil)
	m.git.EXPECT().Push("/test/repo", "origin", "main").Return(nil)

	err := p.Publish(context.Background())
	assert.NoError(t, err)
}
