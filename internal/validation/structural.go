package validation

import (
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
	"github.com/schoolboyqueue/artifactvault/internal/fsview"
)

// skillNamePattern is the required shape of a skill directory name:
// lowercase alphanumeric segments joined by single hyphens.
var skillNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// StructuralValidator checks the on-disk layout of an artifact before any
// content is read: skills are directories with one entry file, agents and
// commands are single files at their root, manifests and hook sets are
// well-formed JSON documents.
type StructuralValidator struct{}

// Validate returns the structural issues for the artifact at p.
func (v *StructuralValidator) Validate(view fsview.View, kind artifact.Kind, p string) []Issue {
	switch kind {
	case artifact.KindSkill:
		return v.validateSkill(view, p)
	case artifact.KindAgent, artifact.KindCommand:
		return v.validateFlatFile(view, p)
	case artifact.KindToolManifest, artifact.KindHookSet:
		return v.validateJSONDocument(view, p)
	}
	return nil
}

func (v *StructuralValidator) validateSkill(view fsview.View, p string) []Issue {
	info, err := view.Stat(p)
	if err != nil || !info.IsDir() {
		return []Issue{{
			Code:       CodeNotDirectory,
			Message:    "a skill must be a directory, not a single file",
			Severity:   SeverityError,
			Path:       p,
			Suggestion: fmt.Sprintf("create a directory and place the content in %s inside it", artifact.EntryFileName),
			Stage:      StageStructural,
		}}
	}

	var issues []Issue

	name := path.Base(p)
	if !skillNamePattern.MatchString(name) {
		issues = append(issues, Issue{
			Code:       CodeInvalidNameFormat,
			Message:    fmt.Sprintf("skill directory name %q is not lowercase-hyphenated", name),
			Severity:   SeverityError,
			Path:       p,
			Suggestion: "rename the directory to lowercase alphanumeric segments joined by hyphens, e.g. pdf-extract",
			Stage:      StageStructural,
		})
	}

	entries, err := view.ReadDir(p)
	if err != nil {
		return issues
	}

	entryCount := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(e.Name(), artifact.EntryFileName) {
			entryCount++
			continue
		}
		if strings.HasSuffix(e.Name(), ".md") {
			issues = append(issues, Issue{
				Code:       CodeMarkdownInRoot,
				Message:    fmt.Sprintf("markdown file %q sits beside the entry file", e.Name()),
				Severity:   SeverityWarning,
				Path:       p + "/" + e.Name(),
				Suggestion: "move supporting markdown into a subdirectory such as references/",
				Stage:      StageStructural,
			})
		}
	}

	switch {
	case entryCount == 0:
		issues = append(issues, Issue{
			Code:       CodeMissingEntryFile,
			Message:    fmt.Sprintf("skill directory has no %s entry file", artifact.EntryFileName),
			Severity:   SeverityError,
			Path:       p,
			Suggestion: fmt.Sprintf("add a %s describing the skill", artifact.EntryFileName),
			Stage:      StageStructural,
		})
	case entryCount > 1:
		issues = append(issues, Issue{
			Code:       CodeMultipleEntryDefinitions,
			Message:    fmt.Sprintf("skill directory has %d entry files differing only in case", entryCount),
			Severity:   SeverityError,
			Path:       p,
			Suggestion: fmt.Sprintf("keep exactly one %s", artifact.EntryFileName),
			Stage:      StageStructural,
		})
	}

	return issues
}

func (v *StructuralValidator) validateFlatFile(view fsview.View, p string) []Issue {
	info, err := view.Stat(p)
	if err != nil || info.IsDir() {
		return []Issue{{
			Code:     CodeNotAFile,
			Message:  "artifact must be a single markdown file",
			Severity: SeverityError,
			Path:     p,
			Stage:    StageStructural,
		}}
	}

	var issues []Issue
	if strings.Count(path.Clean(p), "/") > 1 {
		issues = append(issues, Issue{
			Code:       CodeFileInSubdirectory,
			Message:    "artifact file is nested below its root directory",
			Severity:   SeverityError,
			Path:       p,
			Suggestion: "move the file directly under its root so discovery finds it",
			Stage:      StageStructural,
		})
	}
	return issues
}

func (v *StructuralValidator) validateJSONDocument(view fsview.View, p string) []Issue {
	info, err := view.Stat(p)
	if err != nil || info.IsDir() {
		return []Issue{{
			Code:     CodeNotAFile,
			Message:  "artifact must be a single JSON file",
			Severity: SeverityError,
			Path:     p,
			Stage:    StageStructural,
		}}
	}

	data, err := view.ReadFile(p)
	if err != nil {
		return nil
	}
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return []Issue{{
			Code:       CodeInvalidSyntax,
			Message:    fmt.Sprintf("document is not well-formed JSON: %v", err),
			Severity:   SeverityError,
			Path:       p,
			Suggestion: "fix the JSON syntax before anything else can be checked",
			Stage:      StageStructural,
		}}
	}
	return nil
}
