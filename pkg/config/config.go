// Package config provides configuration management functionality for shipit.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultRemoteName          = "origin"
	DefaultBranch              = "main"
	DefaultProbeTimeoutSeconds = 10
)

// Config represents the application configuration.
type Config struct {
	RemoteName          string `yaml:"remote_name"`
	RemoteURL           string `yaml:"remote_url"`
	DefaultBranch       string `yaml:"default_branch"`
	ProbeTimeoutSeconds int    `yaml:"probe_timeout_seconds"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.RemoteName == "" {
		return ErrRemoteNameEmpty
	}
	if c.RemoteURL == "" {
		return ErrRemoteURLEmpty
	}
	if !strings.HasPrefix(c.RemoteURL, "https://") && !strings.HasPrefix(c.RemoteURL, "git@") {
		return fmt.Errorf("%w: %s", ErrRemoteURLInvalid, c.RemoteURL)
	}
	if c.DefaultBranch == "" {
		return ErrDefaultBranchEmpty
	}
	if c.ProbeTimeoutSeconds <= 0 {
		return ErrProbeTimeoutInvalid
	}
	return nil
}

// ProbeTimeout returns the network probe timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSeconds) * time.Second
}
