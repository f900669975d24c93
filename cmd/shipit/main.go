// Package main provides the command-line interface for shipit.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/lerenn/shipit/pkg/config"
	"github.com/lerenn/shipit/pkg/dependencies"
	"github.com/lerenn/shipit/pkg/logger"
	"github.com/lerenn/shipit/pkg/publisher"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
	message    string
)

// resolveConfigPath returns the config path from the flag or the default
// location under the user's home directory.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".shipit", "config.yaml")
}

// newLogger returns the logger matching the output flags.
func newLogger() logger.Logger {
	if quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger()
}

func runPublish(cmd *cobra.Command, _ []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	deps := dependencies.New().
		WithConfig(config.NewManager(resolveConfigPath())).
		WithLogger(newLogger())

	pub, err := publisher.NewPublisher(publisher.NewPublisherParams{
		Dependencies: deps,
		RepoPath:     workDir,
		Verbose:      verbose,
	})
	if err != nil {
		return err
	}

	return pub.Publish(cmd.Context(), publisher.PublishOpts{Message: message})
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "shipit",
		Short: "Shipit - one-shot git add/commit/push",
		Long: `Stage, commit and push the current project to its configured GitHub remote ` +
			`in a single run, initializing the repository and remote when needed.`,
		Args: cobra.NoArgs,
		RunE: runPublish,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (skips the interactive prompt)")

	// Add subcommands
	rootCmd.AddCommand(createInitCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
