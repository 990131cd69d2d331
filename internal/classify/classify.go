// Package classify decides which artifact kind a candidate path represents.
package classify

import (
	"fmt"
	"path"
	"strings"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
	"github.com/schoolboyqueue/artifactvault/internal/fsview"
)

// Well-known location roots. An artifact's kind depends on where it sits
// relative to these directories.
const (
	AgentsRoot   = "agents"
	CommandsRoot = "commands"
	SkillsRoot   = "skills"
)

// HookSetFileName is the reserved hooks configuration artifact.
const HookSetFileName = "hooks.json"

// manifestSuffix marks an external-tool manifest file.
const manifestSuffix = ".mcp.json"

// Error is returned when a path cannot be mapped to an artifact kind.
type Error struct {
	Code string
	Path string
}

func (e *Error) Error() string {
	return fmt.Sprintf("classify %s: %s", e.Path, e.Code)
}

// CodeNotRecognized is the only classification failure code.
const CodeNotRecognized = "NOT_RECOGNIZED"

// Classify maps a path plus its stat info to one of the five artifact kinds.
// Rules are ordered; the first match wins. Pure function of the view's
// contents, no side effects.
func Classify(view fsview.View, p string) (artifact.Kind, error) {
	info, err := view.Stat(p)
	if err != nil {
		return "", &Error{Code: CodeNotRecognized, Path: p}
	}

	if info.IsDir() {
		// A directory is a skill iff it carries exactly one entry file.
		entries, err := view.ReadDir(p)
		if err != nil {
			return "", &Error{Code: CodeNotRecognized, Path: p}
		}
		n := 0
		for _, e := range entries {
			// Case-insensitive, matching the structural duplicate check.
			if !e.IsDir() && strings.EqualFold(e.Name(), artifact.EntryFileName) {
				n++
			}
		}
		if n == 1 {
			return artifact.KindSkill, nil
		}
		return "", &Error{Code: CodeNotRecognized, Path: p}
	}

	base := path.Base(p)
	if base == HookSetFileName {
		return artifact.KindHookSet, nil
	}
	if strings.HasSuffix(base, manifestSuffix) {
		return artifact.KindToolManifest, nil
	}

	if strings.HasSuffix(base, ".md") {
		switch locationRoot(p) {
		case AgentsRoot:
			return artifact.KindAgent, nil
		case CommandsRoot:
			return artifact.KindCommand, nil
		}
	}

	return "", &Error{Code: CodeNotRecognized, Path: p}
}

// locationRoot returns the first path segment, which names the artifact
// family the file belongs to.
func locationRoot(p string) string {
	p = strings.TrimPrefix(path.Clean(p), "/")
	if i := strings.IndexByte(p, '/'); i > 0 {
		return p[:i]
	}
	return ""
}
