package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/artifactvault/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history <artifact-id>",
	Short: "List the committed versions of an artifact",
	Long: `History prints every committed version of an artifact, oldest first.
The artifact id is the path under the artifacts root, e.g. agents/reviewer.md
or skills/my-skill.`,
	Example: `  artifactvault history agents/reviewer.md
  artifactvault history skills/my-skill`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory(cmd, args[0])
	},
}

func init() {
	historyCmd.GroupID = GroupVersioning
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, id string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd)

	v, closeStore, err := openVault(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Timeout)*time.Second)
	defer cancel()

	history, err := v.GetHistory(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrStorageUnavailable) {
			return &exitError{code: ExitStorageUnavailable, msg: err.Error()}
		}
		return err
	}

	out := cmd.OutOrStdout()
	if len(history) == 0 {
		fmt.Fprintf(out, "%s has no committed versions\n", id)
		return nil
	}

	for _, ver := range history {
		fmt.Fprintf(out, "  v%-4d %s  %s  (%d bytes)\n",
			ver.Number,
			ver.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			ver.CreatedBy,
			len(ver.Content))
	}
	fmt.Fprintf(out, "%s: %d version(s), current v%d\n", id, len(history), history[len(history)-1].Number)
	return nil
}
