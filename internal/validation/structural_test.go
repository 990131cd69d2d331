package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
	"github.com/schoolboyqueue/artifactvault/internal/testutil"
)

func issueCodes(issues []Issue) []string {
	codes := make([]string, len(issues))
	for i, is := range issues {
		codes[i] = is.Code
	}
	return codes
}

func TestStructural_ValidSkill(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteSkill(t, fs, "skills/my-skill", testutil.ValidSkillContent)

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindSkill, "skills/my-skill")
	assert.Empty(t, issues)
}

func TestStructural_SkillAsBareFile(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "skills/my-skill.md", testutil.ValidSkillContent)

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindSkill, "skills/my-skill.md")

	// Exactly one NOT_DIRECTORY error and nothing else.
	require.Len(t, issues, 1)
	assert.Equal(t, CodeNotDirectory, issues[0].Code)
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestStructural_SkillBadName(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteSkill(t, fs, "skills/My_Skill", testutil.ValidSkillContent)

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindSkill, "skills/My_Skill")
	assert.Contains(t, issueCodes(issues), CodeInvalidNameFormat)
}

func TestStructural_SkillMissingEntry(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "skills/no-entry/notes.txt", "notes")

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindSkill, "skills/no-entry")
	assert.Contains(t, issueCodes(issues), CodeMissingEntryFile)
}

func TestStructural_SkillMarkdownInRoot(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteSkill(t, fs, "skills/my-skill", testutil.ValidSkillContent)
	testutil.WriteFile(t, fs, "skills/my-skill/extra.md", "stray")
	testutil.WriteFile(t, fs, "skills/my-skill/references/fine.md", "tucked away")

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindSkill, "skills/my-skill")

	require.Len(t, issues, 1)
	assert.Equal(t, CodeMarkdownInRoot, issues[0].Code)
	// Advisory only: stray markdown never blocks.
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, "skills/my-skill/extra.md", issues[0].Path)
}

func TestStructural_AgentAsDirectory(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "agents/reviewer/file.md", "x")

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindAgent, "agents/reviewer")

	require.Len(t, issues, 1)
	assert.Equal(t, CodeNotAFile, issues[0].Code)
}

func TestStructural_AgentInSubdirectory(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "agents/team/reviewer.md", testutil.ValidAgentContent)

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindAgent, "agents/team/reviewer.md")

	require.Len(t, issues, 1)
	assert.Equal(t, CodeFileInSubdirectory, issues[0].Code)
	// Nesting blocks: discovery only scans the root level.
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestStructural_SkillDuplicateEntryFiles(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteSkill(t, fs, "skills/my-skill", testutil.ValidSkillContent)
	testutil.WriteFile(t, fs, "skills/my-skill/skill.md", testutil.ValidSkillContent)

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindSkill, "skills/my-skill")

	// Case-variant duplicates count as entry files, not stray markdown.
	require.Len(t, issues, 1)
	assert.Equal(t, CodeMultipleEntryDefinitions, issues[0].Code)
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestStructural_AgentAtRootLevel(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "agents/reviewer.md", testutil.ValidAgentContent)

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindAgent, "agents/reviewer.md")
	assert.Empty(t, issues)
}

func TestStructural_HookSetMalformedJSON(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "hooks.json", `{"hooks": [`)

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindHookSet, "hooks.json")

	require.Len(t, issues, 1)
	assert.Equal(t, CodeInvalidSyntax, issues[0].Code)
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestStructural_ManifestWellFormed(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "servers/github.mcp.json", `{"command": "gh-mcp", "args": ["--stdio"]}`)

	var v StructuralValidator
	issues := v.Validate(view, artifact.KindToolManifest, "servers/github.mcp.json")
	assert.Empty(t, issues)
}
