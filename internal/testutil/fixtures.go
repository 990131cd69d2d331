// Package testutil provides test fixtures and helpers for artifactvault tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
	"github.com/schoolboyqueue/artifactvault/internal/fsview"
)

// ValidSkillContent is a SKILL.md body that passes every validation stage.
const ValidSkillContent = `---
name: Code Reviewer
description: Reviews code changes for correctness and style issues.
tags:
  - review
  - quality
---
# Code Reviewer

## Instructions

1. Read the changed files
2. Flag correctness problems before style problems
3. Suggest concrete fixes with code examples

` + "```bash\ngit diff --stat\n```\n"

// ValidAgentContent is an agent file that passes every validation stage.
const ValidAgentContent = `---
name: Reviewer
description: Reviews pull requests and leaves structured feedback.
model: sonnet
---
# Reviewer

Review the diff, then summarize findings ordered by severity and propose
fixes the author can apply directly.
`

// WriteSkill materializes a skill directory with a SKILL.md on fs.
func WriteSkill(t *testing.T, fs afero.Fs, dir, content string) {
	t.Helper()
	if err := fs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating skill dir: %v", err)
	}
	WriteFile(t, fs, dir+"/"+artifact.EntryFileName, content)
}

// WriteFile writes a file on fs, failing the test on error.
func WriteFile(t *testing.T, fs afero.Fs, path string, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// MemView returns an in-memory view plus its writable filesystem.
func MemView(t *testing.T) (fsview.View, afero.Fs) {
	t.Helper()
	view, fs := fsview.NewMemView()
	return view, fs
}

// HookSetJSON builds a hooks.json document from entries expressed as raw
// JSON object literals.
func HookSetJSON(entries ...string) string {
	out := `{"hooks": [`
	for i, e := range entries {
		if i > 0 {
			out += ","
		}
		out += e
	}
	return out + "]}"
}

// HookEntry renders one hook entry literal.
func HookEntry(event, matcherType, matcher string, timeoutMs int) string {
	return fmt.Sprintf(
		`{"event": %q, "matcher_type": %q, "matcher": %q, "payload_type": "command", "payload": "echo ok", "timeout_ms": %d}`,
		event, matcherType, matcher, timeoutMs)
}
