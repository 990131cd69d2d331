package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/artifactvault/internal/config"
)

var initForceFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a local config file with defaults",
	Long: `Init scaffolds .artifactvault/config.json in the current directory with
the default settings so they can be edited in place. Existing config is
left alone unless --force is given.`,
	Example: `  artifactvault init
  artifactvault init --force`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

func init() {
	initCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForceFlag, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")

	if _, err := os.Stat(configPath); err == nil && !initForceFlag {
		return &exitError{code: ExitInvalidArgs, msg: fmt.Sprintf("%s already exists (use --force to overwrite)", configPath)}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config.GetDefaults(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding defaults: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return nil
}
