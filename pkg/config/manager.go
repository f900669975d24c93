package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mockconfig.gen.go -package=config

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	DefaultConfig() Config
	GetConfigPath() string
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	// Check if config file exists
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	// Read config file
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	// Fill unset values with defaults before validation
	config.applyDefaults()

	// Validate configuration
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path,
// falling back to default if not found.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	// Try to load from file first
	if config, err := c.GetConfig(); err == nil {
		return config, nil
	}

	// Fallback to default configuration
	return c.DefaultConfig(), nil
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal configuration to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	// Write configuration file
	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration. The remote URL has no
// sensible default and must be provided by the user.
func (c *realManager) DefaultConfig() Config {
	return Config{
		RemoteName:          DefaultRemoteName,
		DefaultBranch:       DefaultBranch,
		ProbeTimeoutSeconds: DefaultProbeTimeoutSeconds,
	}
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// applyDefaults fills unset optional values with defaults.
func (c *Config) applyDefaults() {
	if c.RemoteName == "" {
		c.RemoteName = DefaultRemoteName
	}
	if c.DefaultBranch == "" {
		c.DefaultBranch = DefaultBranch
	}
	if c.ProbeTimeoutSeconds == 0 {
		c.ProbeTimeoutSeconds = DefaultProbeTimeoutSeconds
	}
}
