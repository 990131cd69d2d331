package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the effective configuration",
	Long: `Config prints the configuration after merging defaults, the global
config, the local config, and ARTIFACTVAULT_* environment variables.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigList(cmd)
	},
}

func init() {
	configCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	values := map[string]any{
		"store_dir":          cfg.StoreDir,
		"state_dir":          cfg.StateDir,
		"artifacts_root":     cfg.ArtifactsRoot,
		"author":             cfg.Author,
		"min_body_length":    cfg.MinBodyLength,
		"max_retries":        cfg.MaxRetries,
		"timeout":            cfg.Timeout,
		"max_ledger_entries": cfg.MaxLedger,
		"show_progress":      cfg.ShowProgress,
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := cmd.OutOrStdout()
	for _, k := range keys {
		fmt.Fprintf(out, "%-20s %v\n", k, values[k])
	}
	return nil
}
