package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
	"github.com/schoolboyqueue/artifactvault/internal/classify"
	"github.com/schoolboyqueue/artifactvault/internal/fsview"
	"github.com/schoolboyqueue/artifactvault/internal/retry"
	"github.com/schoolboyqueue/artifactvault/internal/store"
	"github.com/schoolboyqueue/artifactvault/internal/vault"
)

var commitAuthorFlag string

var commitCmd = &cobra.Command{
	Use:   "commit <path>",
	Short: "Validate an artifact and commit a new version",
	Long: `Commit validates the artifact at the given path and, when no blocking
issue is found, appends an immutable version to the store. Concurrent
edits are detected by optimistic concurrency: a stale base is retried
after re-reading, up to the configured attempt budget.

Exit Codes:
  0 - version committed
  1 - blocked by validation errors or persistent conflict
  3 - invalid arguments
  4 - storage unavailable`,
	Example: `  artifactvault commit .claude/agents/reviewer.md
  artifactvault commit --author ci .claude/skills/my-skill`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommit(cmd, args[0])
	},
}

func init() {
	commitCmd.GroupID = GroupVersioning
	rootCmd.AddCommand(commitCmd)
	commitCmd.Flags().StringVar(&commitAuthorFlag, "author", "", "Author recorded on the version (defaults to config author)")
}

func runCommit(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd)

	view, rel, err := viewFor(cfg, path)
	if err != nil {
		return err
	}

	v, closeStore, err := openVault(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	kind, cerr := classifyPath(view, rel)
	if cerr != nil {
		return cerr
	}

	content, err := readContent(view, kind, rel)
	if err != nil {
		return &exitError{code: ExitInvalidArgs, msg: err.Error()}
	}

	author := commitAuthorFlag
	if author == "" {
		author = cfg.Author
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Timeout)*time.Second)
	defer cancel()

	var sp *spinner.Spinner
	if cfg.ShowProgress {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Suffix = " committing " + rel
		sp.Start()
	}

	id := artifactID(rel)
	var committed *store.Version
	err = retry.Do(ctx, cfg.MaxRetries, retry.DefaultDelay, func() error {
		base, err := v.CurrentVersion(ctx, id)
		if err != nil {
			return err
		}
		committed, err = v.Commit(ctx, kind, id, content, author, base, rel, view)
		return err
	})

	if sp != nil {
		sp.Stop()
	}

	out := cmd.OutOrStdout()
	switch {
	case err == nil:
		fmt.Fprintf(out, "committed %s version %d (by %s)\n", id, committed.Number, author)
		return nil
	case errors.Is(err, store.ErrStorageUnavailable):
		return &exitError{code: ExitStorageUnavailable, msg: err.Error()}
	case errors.Is(err, store.ErrConflict):
		return &exitError{code: ExitFailed, msg: "commit kept conflicting with concurrent writers; re-run to retry"}
	default:
		var blocked *vault.ErrBlocked
		if errors.As(err, &blocked) {
			fmt.Fprintf(out, "%s (%s)\n", rel, kind)
			renderReport(out, blocked.Report)
			summarize(out, blocked.Report)
			return &exitError{code: ExitFailed, msg: blocked.Error()}
		}
		return err
	}
}

// classifyPath wraps classification failures in an arguments error.
func classifyPath(view fsview.View, rel string) (artifact.Kind, error) {
	kind, err := classify.Classify(view, rel)
	if err != nil {
		return "", &exitError{code: ExitInvalidArgs, msg: err.Error()}
	}
	return kind, nil
}

// readContent loads the bytes the store will snapshot: the entry file for
// skills, the artifact file itself otherwise.
func readContent(view fsview.View, kind artifact.Kind, rel string) (string, error) {
	target := rel
	if kind == artifact.KindSkill {
		target = rel + "/" + artifact.EntryFileName
	}
	data, err := view.ReadFile(target)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", target, err)
	}
	return string(data), nil
}
