package main

import (
	"fmt"

	"github.com/lerenn/shipit/pkg/config"
	"github.com/lerenn/shipit/pkg/forge"
	"github.com/lerenn/shipit/pkg/fs"
	"github.com/lerenn/shipit/pkg/prompt"
	"github.com/spf13/cobra"
)

var force bool

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Initialize shipit configuration",
		Long: `Initialize shipit configuration with an interactive prompt for the remote URL.

Flags:
  --force       Overwrite an existing configuration without confirmation`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := resolveConfigPath()
			manager := config.NewManager(path)
			prompter := prompt.NewPrompt()
			github := forge.NewGitHub()

			// Prefill defaults from an existing config when there is one
			cfg, err := manager.GetConfigWithFallback()
			if err != nil {
				return err
			}

			exists, err := fs.NewFS().Exists(path)
			if err != nil {
				return err
			}
			if exists && !force {
				ok, err := prompter.PromptForConfirmation(
					fmt.Sprintf("Configuration already exists at %s. Overwrite?", path), false)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			remoteURL, err := prompter.PromptForRemoteURL(cfg.RemoteURL)
			if err != nil {
				return err
			}
			if err := github.ValidateRemoteURL(remoteURL); err != nil {
				return err
			}

			cfg.RemoteURL = remoteURL
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := manager.SaveConfig(cfg); err != nil {
				return err
			}

			newLogger().Logf("Configuration written to %s", path)
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration without confirmation")

	return initCmd
}
