package vault

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
	"github.com/schoolboyqueue/artifactvault/internal/store"
	"github.com/schoolboyqueue/artifactvault/internal/store/audit"
	"github.com/schoolboyqueue/artifactvault/internal/testutil"
	"github.com/schoolboyqueue/artifactvault/internal/validation"
)

func TestCommit_ValidAgentPersists(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "agents/reviewer.md", testutil.ValidAgentContent)

	v := New(store.NewMemStore())
	version, err := v.Commit(context.Background(), artifact.KindAgent,
		"agents/reviewer.md", testutil.ValidAgentContent, "alice", 0,
		"agents/reviewer.md", view)
	require.NoError(t, err)
	assert.Equal(t, 1, version.Number)

	history, err := v.GetHistory(context.Background(), "agents/reviewer.md")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, testutil.ValidAgentContent, history[0].Content)
}

func TestCommit_BlockedByValidation(t *testing.T) {
	view, fs := testutil.MemView(t)
	content := "---\nname: Reviewer\n---\n# Reviewer\n\nNo description field above.\n"
	testutil.WriteFile(t, fs, "agents/reviewer.md", content)

	v := New(store.NewMemStore())
	_, err := v.Commit(context.Background(), artifact.KindAgent,
		"agents/reviewer.md", content, "alice", 0, "agents/reviewer.md", view)

	var blocked *ErrBlocked
	require.ErrorAs(t, err, &blocked)
	assert.True(t, blocked.Report.HasCode(validation.CodeMissingRequiredField))

	// Nothing persisted when validation blocks.
	current, err := v.CurrentVersion(context.Background(), "agents/reviewer.md")
	require.NoError(t, err)
	assert.Zero(t, current)
}

func TestCommit_WarningsDoNotBlock(t *testing.T) {
	view, fs := testutil.MemView(t)
	// Body below the advisory threshold: CONTENT_TOO_SHORT is a warning.
	content := "---\nname: Tiny\ndescription: A terse agent definition.\n---\n# Tiny\n"
	testutil.WriteFile(t, fs, "agents/tiny.md", content)

	v := New(store.NewMemStore())
	version, err := v.Commit(context.Background(), artifact.KindAgent,
		"agents/tiny.md", content, "alice", 0, "agents/tiny.md", view)
	require.NoError(t, err)
	assert.Equal(t, 1, version.Number)
}

func TestCommit_StaleBaseSurfacesConflict(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "agents/reviewer.md", testutil.ValidAgentContent)

	v := New(store.NewMemStore())
	_, err := v.Commit(context.Background(), artifact.KindAgent,
		"agents/reviewer.md", testutil.ValidAgentContent, "alice", 0,
		"agents/reviewer.md", view)
	require.NoError(t, err)

	_, err = v.Commit(context.Background(), artifact.KindAgent,
		"agents/reviewer.md", testutil.ValidAgentContent, "bob", 0,
		"agents/reviewer.md", view)
	assert.True(t, errors.Is(err, store.ErrConflict))
}

func TestRevert_SkipsValidation(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "agents/reviewer.md", testutil.ValidAgentContent)

	v := New(store.NewMemStore())
	_, err := v.Commit(context.Background(), artifact.KindAgent,
		"agents/reviewer.md", testutil.ValidAgentContent, "alice", 0,
		"agents/reviewer.md", view)
	require.NoError(t, err)

	reverted, err := v.Revert(context.Background(), "agents/reviewer.md", 1, "bob", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, reverted.Number)
	assert.Equal(t, testutil.ValidAgentContent, reverted.Content)
}

func TestValidatePath_Skill(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteSkill(t, fs, "skills/pdf-extract", testutil.ValidSkillContent)

	v := New(store.NewMemStore())
	report, kind := v.ValidatePath(view, "skills/pdf-extract")
	assert.Equal(t, artifact.KindSkill, kind)
	assert.False(t, report.IsBlocking())
}

func TestCommit_AuditTrail(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "agents/reviewer.md", testutil.ValidAgentContent)
	stateDir := t.TempDir()

	v := New(store.NewMemStore(), WithAudit(stateDir, 100))
	_, err := v.Commit(context.Background(), artifact.KindAgent,
		"agents/reviewer.md", testutil.ValidAgentContent, "alice", 0,
		"agents/reviewer.md", view)
	require.NoError(t, err)

	_, err = v.Revert(context.Background(), "agents/reviewer.md", 1, "bob", 1)
	require.NoError(t, err)

	ledger, err := audit.Load(stateDir)
	require.NoError(t, err)
	require.Len(t, ledger.Entries, 2)
	assert.Equal(t, audit.OpCommit, ledger.Entries[0].Op)
	assert.Equal(t, "ok", ledger.Entries[0].Outcome)
	assert.Equal(t, audit.OpRevert, ledger.Entries[1].Op)
	assert.Equal(t, 1, ledger.Entries[1].TargetVersion)
}

func TestCommit_FailedStoreOpRecordedInLedger(t *testing.T) {
	view, fs := testutil.MemView(t)
	testutil.WriteFile(t, fs, "agents/reviewer.md", testutil.ValidAgentContent)
	stateDir := t.TempDir()

	v := New(store.NewMemStore(), WithAudit(stateDir, 100))
	_, err := v.Commit(context.Background(), artifact.KindAgent,
		"agents/reviewer.md", testutil.ValidAgentContent, "alice", 0,
		"agents/reviewer.md", view)
	require.NoError(t, err)

	_, err = v.Commit(context.Background(), artifact.KindAgent,
		"agents/reviewer.md", testutil.ValidAgentContent, "bob", 0,
		"agents/reviewer.md", view)
	require.Error(t, err)

	ledger, err := audit.Load(stateDir)
	require.NoError(t, err)
	require.Len(t, ledger.Entries, 2)
	assert.NotEqual(t, "ok", ledger.Entries[1].Outcome)
	assert.Zero(t, ledger.Entries[1].Version)
}

func TestWithMinBodyLength(t *testing.T) {
	view, fs := testutil.MemView(t)
	content := "---\nname: Tiny\ndescription: A terse agent definition.\n---\n# Tiny\n\nshort body\n"
	testutil.WriteFile(t, fs, "agents/tiny.md", content)

	strict := New(store.NewMemStore(), WithMinBodyLength(500))
	report := strict.Validate(artifact.KindAgent, []byte(content), "agents/tiny.md", view)
	assert.True(t, report.HasCode(validation.CodeContentTooShort))

	relaxed := New(store.NewMemStore(), WithMinBodyLength(5))
	report = relaxed.Validate(artifact.KindAgent, []byte(content), "agents/tiny.md", view)
	assert.False(t, report.HasCode(validation.CodeContentTooShort))
}
