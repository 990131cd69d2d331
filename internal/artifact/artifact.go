package artifact

import "time"

// EntryFileName is the canonical entry file that makes a directory a skill.
const EntryFileName = "SKILL.md"

// HeaderField is a single frontmatter key-value pair. Order matters: headers
// round-trip in the order the author wrote them, and unknown keys are
// preserved verbatim rather than normalized away.
type HeaderField struct {
	Key   string
	Value any
}

// Header is the ordered metadata block extracted from an artifact's
// frontmatter.
type Header []HeaderField

// Get returns the value for key and whether it was present.
func (h Header) Get(key string) (any, bool) {
	for _, f := range h {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present in the header.
func (h Header) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// GetString returns the value for key if it is a string.
func (h Header) GetString(key string) (string, bool) {
	v, ok := h.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Artifact is a named configuration unit. It is owned by the version store
// and mutated only through commits.
type Artifact struct {
	ID             string `json:"id" yaml:"id"`
	Kind           Kind   `json:"kind" yaml:"kind"`
	Path           string `json:"path" yaml:"path"`
	Name           string `json:"name" yaml:"name"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	Header         Header `json:"-" yaml:"-"`
	Body           string `json:"-" yaml:"-"`
	CurrentVersion int    `json:"current_version" yaml:"current_version"`
}

// Version is an immutable snapshot of an artifact's committed content.
// Versions are only ever appended; numbers form a contiguous sequence
// starting at 1.
type Version struct {
	ArtifactID string    `json:"artifact_id" yaml:"artifact_id"`
	Number     int       `json:"number" yaml:"number"`
	Content    string    `json:"content" yaml:"content"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	CreatedBy  string    `json:"created_by" yaml:"created_by"`
}
