// Package artifact defines the core data model for assistant extension
// artifacts: reusable prompt agents, slash commands, multi-file skills,
// external-tool manifests, and lifecycle hook sets.
package artifact

import "fmt"

// Kind identifies the shape and validation rules of an artifact.
type Kind string

const (
	// KindAgent is a single-file reusable prompt agent under the agents root.
	KindAgent Kind = "agent"
	// KindCommand is a single-file slash command under the commands root.
	KindCommand Kind = "command"
	// KindSkill is a directory containing exactly one SKILL.md entry file.
	KindSkill Kind = "skill"
	// KindToolManifest is a single structured-data file describing external tools.
	KindToolManifest Kind = "tool-manifest"
	// KindHookSet is the reserved lifecycle hooks configuration artifact.
	KindHookSet Kind = "hookset"
)

// Kinds lists every artifact kind in stable order.
var Kinds = []Kind{KindAgent, KindCommand, KindSkill, KindToolManifest, KindHookSet}

// Valid reports whether k is one of the five defined kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindAgent, KindCommand, KindSkill, KindToolManifest, KindHookSet:
		return true
	}
	return false
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a user-supplied string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown artifact kind: %q", s)
	}
	return k, nil
}
