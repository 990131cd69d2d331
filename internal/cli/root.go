// Package cli provides the Cobra-based commands for artifactvault: artifact
// validation (validate), version management (commit, history, revert), and
// configuration (init, config, version).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command group IDs for organizing help output
const (
	GroupValidation    = "validation"
	GroupVersioning    = "versioning"
	GroupConfiguration = "configuration"
)

var rootCmd = &cobra.Command{
	Use:   "artifactvault",
	Short: "validate and version assistant extension artifacts",
	Long: `artifactvault validates and version-manages the configuration artifacts
that extend an AI coding assistant: prompt agents, slash commands, skills,
tool manifests, and lifecycle hooks.

Every accepted edit becomes an immutable, numbered version. Edits with
blocking validation errors are never persisted.`,
	Example: `  # Validate a skill directory
  artifactvault validate .claude/skills/my-skill

  # Commit a new agent version (validates first)
  artifactvault commit .claude/agents/reviewer.md

  # Inspect and roll back history
  artifactvault history agents/reviewer.md
  artifactvault revert agents/reviewer.md 2`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupValidation, Title: "Validation:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupVersioning, Title: "Versioning:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})

	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", ".artifactvault/config.json", "Path to config file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}

// newLogger returns the zap logger the commands share: development output
// under --debug, silent otherwise.
func newLogger(cmd *cobra.Command) *zap.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	if !debug {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: debug logger unavailable, continuing silently")
		return zap.NewNop()
	}
	return log
}
