//go:build unit

package dependencies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lerenn/shipit/pkg/config"
)

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Git)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.NotNil(t, deps.Forge)
	// Config requires a path, so it has no default
	assert.Nil(t, deps.Config)
}

func TestDependencies_Validate_MissingFS(t *testing.T) {
	deps := newValidDependencies(t)
	deps.FS = nil

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrFSMissing)
}

func TestDependencies_Validate_MissingGit(t *testing.T) {
	deps := newValidDependencies(t)
	deps.Git = nil

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrGitMissing)
}

func TestDependencies_Validate_MissingConfig(t *testing.T) {
	deps := New()

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestDependencies_Validate_MissingForge(t *testing.T) {
	deps := newValidDependencies(t)
	deps.Forge = nil

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrForgeMissing)
}

func TestDependencies_Validate_AllMissing(t *testing.T) {
	deps := &Dependencies{}

	err := deps.Validate()
	// Should return the first missing dependency (FS)
	assert.ErrorIs(t, err, ErrFSMissing)
}

func TestDependencies_Validate_Complete(t *testing.T) {
	deps := newValidDependencies(t)

	assert.NoError(t, deps.Validate())
}

func newValidDependencies(t *testing.T) *Dependencies {
	t.Helper()
	ctrl := gomock.NewController(t)
	return New().WithConfig(config.NewMockManager(ctrl))
}
