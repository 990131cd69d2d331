package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/schoolboyqueue/artifactvault/internal/config"
	"github.com/schoolboyqueue/artifactvault/internal/fsview"
	"github.com/schoolboyqueue/artifactvault/internal/store"
	"github.com/schoolboyqueue/artifactvault/internal/validation"
	"github.com/schoolboyqueue/artifactvault/internal/vault"
)

// loadConfig reads configuration using the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, &exitError{code: ExitInvalidArgs, msg: err.Error()}
	}
	return cfg, nil
}

// openVault builds the Vault over the badger store described by cfg.
// The returned closer releases the store.
func openVault(cfg *config.Configuration, log *zap.Logger) (*vault.Vault, func() error, error) {
	s, err := store.NewBadgerStore(cfg.StoreDir, log)
	if err != nil {
		return nil, nil, &exitError{code: ExitStorageUnavailable, msg: err.Error()}
	}
	v := vault.New(s,
		vault.WithLogger(log),
		vault.WithAudit(cfg.StateDir, cfg.MaxLedger),
		vault.WithMinBodyLength(cfg.MinBodyLength),
	)
	return v, s.Close, nil
}

// viewFor returns a read-only view rooted at the artifacts root, plus the
// given path rewritten relative to that root.
func viewFor(cfg *config.Configuration, path string) (fsview.View, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", &exitError{code: ExitInvalidArgs, msg: err.Error()}
	}
	root, err := filepath.Abs(cfg.ArtifactsRoot)
	if err != nil {
		return nil, "", &exitError{code: ExitInvalidArgs, msg: err.Error()}
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, "", &exitError{code: ExitInvalidArgs, msg: fmt.Sprintf("%s is outside the artifacts root %s", path, cfg.ArtifactsRoot)}
	}
	return fsview.NewOSView(root), filepath.ToSlash(rel), nil
}

// artifactID is the store identity for a path: its slash-separated location
// under the artifacts root.
func artifactID(relPath string) string {
	return filepath.ToSlash(relPath)
}

// renderReport prints a validation report, errors first in red, warnings in
// yellow, suggestions dimmed.
func renderReport(w io.Writer, report *validation.Report) {
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	for _, issue := range report.Issues {
		label := string(issue.Severity)
		switch issue.Severity {
		case validation.SeverityError:
			label = red("error")
		case validation.SeverityWarning:
			label = yellow("warning")
		}
		if issue.Path != "" {
			fmt.Fprintf(w, "  %s  %s  %s (%s)\n", label, issue.Code, issue.Message, issue.Path)
		} else {
			fmt.Fprintf(w, "  %s  %s  %s\n", label, issue.Code, issue.Message)
		}
		if issue.Suggestion != "" {
			fmt.Fprintf(w, "          %s\n", faint("hint: "+issue.Suggestion))
		}
	}
}

// summarize prints the one-line verdict for a report.
func summarize(w io.Writer, report *validation.Report) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	errs := len(report.Errors())
	warns := len(report.Issues) - errs
	switch {
	case errs > 0:
		fmt.Fprintf(w, "%s %d error(s), %d warning(s)\n", red("✗"), errs, warns)
	case warns > 0:
		fmt.Fprintf(w, "%s valid with %d warning(s)\n", green("✓"), warns)
	default:
		fmt.Fprintf(w, "%s valid\n", green("✓"))
	}
}
