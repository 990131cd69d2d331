package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
	"github.com/schoolboyqueue/artifactvault/internal/validation"
)

var validateKindFlag string

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate an artifact without persisting anything",
	Long: `Validate classifies the artifact at the given path and runs the full
validation chain for its kind: structural shape, frontmatter parse,
metadata schema, body content, and (for hook sets) hook rules.

All findings are collected into one report; a malformed field never hides
the rest. Error-severity issues would block a commit, warnings are advisory.

Exit Codes:
  0 - valid (warnings allowed)
  1 - blocking validation errors
  3 - invalid arguments`,
	Example: `  artifactvault validate .claude/skills/my-skill
  artifactvault validate .claude/agents/reviewer.md
  artifactvault validate --kind hookset .claude/hooks.json`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0])
	},
}

func init() {
	validateCmd.GroupID = GroupValidation
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateKindFlag, "kind", "", "Force the artifact kind instead of classifying (agent|command|skill|tool-manifest|hookset)")
}

func runValidate(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	view, rel, err := viewFor(cfg, path)
	if err != nil {
		return err
	}

	pipeline := validation.NewPipelineWithMinBodyLength(cfg.MinBodyLength)

	var report *validation.Report
	var kind artifact.Kind
	if validateKindFlag != "" {
		kind, err = artifact.ParseKind(validateKindFlag)
		if err != nil {
			return &exitError{code: ExitInvalidArgs, msg: err.Error()}
		}
		raw, _ := view.ReadFile(rel)
		report = pipeline.Validate(kind, raw, rel, view)
	} else {
		report, kind = pipeline.ValidatePath(view, rel)
	}

	out := cmd.OutOrStdout()
	if kind != "" {
		fmt.Fprintf(out, "%s (%s)\n", rel, kind)
	} else {
		fmt.Fprintf(out, "%s\n", rel)
	}
	renderReport(out, report)
	summarize(out, report)

	if report.IsBlocking() {
		return &exitError{code: ExitFailed, msg: "validation failed"}
	}
	return nil
}
