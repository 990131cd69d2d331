package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/artifactvault/internal/retry"
	"github.com/schoolboyqueue/artifactvault/internal/store"
)

var revertAuthorFlag string

var revertCmd = &cobra.Command{
	Use:   "revert <artifact-id> <version>",
	Short: "Restore an earlier version by appending a copy of it",
	Long: `Revert appends a new version whose content is a copy of the target
version's content. Nothing is deleted or rewritten: history stays intact
and the revert itself shows up as the newest version.`,
	Example: `  artifactvault revert agents/reviewer.md 2`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.Atoi(args[1])
		if err != nil || target < 1 {
			return &exitError{code: ExitInvalidArgs, msg: fmt.Sprintf("invalid version number %q", args[1])}
		}
		return runRevert(cmd, args[0], target)
	},
}

func init() {
	revertCmd.GroupID = GroupVersioning
	rootCmd.AddCommand(revertCmd)
	revertCmd.Flags().StringVar(&revertAuthorFlag, "author", "", "Author recorded on the revert (defaults to config author)")
}

func runRevert(cmd *cobra.Command, id string, target int) error {
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

	author := revertAuthorFlag
	if author == "" {
		author = cfg.Author
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Timeout)*time.Second)
	defer cancel()

	var committed *store.Version
	err = retry.Do(ctx, cfg.MaxRetries, retry.DefaultDelay, func() error {
		base, err := v.CurrentVersion(ctx, id)
		if err != nil {
			return err
		}
		committed, err = v.Revert(ctx, id, target, author, base)
		return err
	})

	switch {
	case err == nil:
		fmt.Fprintf(cmd.OutOrStdout(), "reverted %s to v%d as new version v%d\n", id, target, committed.Number)
		return nil
	case errors.Is(err, store.ErrNotFound):
		return &exitError{code: ExitInvalidArgs, msg: fmt.Sprintf("%s has no version %d", id, target)}
	case errors.Is(err, store.ErrStorageUnavailable):
		return &exitError{code: ExitStorageUnavailable, msg: err.Error()}
	case errors.Is(err, store.ErrConflict):
		return &exitError{code: ExitFailed, msg: "revert kept conflicting with concurrent writers; re-run to retry"}
	}
	return err
}
