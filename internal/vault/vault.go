// Package vault is the core-facing facade collaborators use: validate an
// artifact, and commit, revert, or list versions through the version store.
// Transports must not bypass validation before committing; the facade
// enforces that by refusing blocking reports itself.
package vault

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/schoolboyqueue/artifactvault/internal/artifact"
	"github.com/schoolboyqueue/artifactvault/internal/fsview"
	"github.com/schoolboyqueue/artifactvault/internal/store"
	"github.com/schoolboyqueue/artifactvault/internal/store/audit"
	"github.com/schoolboyqueue/artifactvault/internal/validation"
)

// ErrBlocked is returned by Commit when the validation report contains at
// least one error-severity issue. The report rides along for rendering.
type ErrBlocked struct {
	Report *validation.Report
}

func (e *ErrBlocked) Error() string {
	return fmt.Sprintf("commit blocked by %d validation error(s)", len(e.Report.Errors()))
}

// Vault wires the validation pipeline to a VersionStore and an audit ledger.
type Vault struct {
	store store.VersionStore
	audit *audit.Writer
	log   *zap.Logger

	minBodyLength int
}

// Option configures a Vault.
type Option func(*Vault)

// WithLogger sets the structured logger. Default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(v *Vault) { v.log = log }
}

// WithAudit enables the operations ledger in stateDir.
func WithAudit(stateDir string, maxEntries int) Option {
	return func(v *Vault) { v.audit = audit.NewWriter(stateDir, maxEntries) }
}

// WithMinBodyLength overrides the advisory body length threshold.
func WithMinBodyLength(n int) Option {
	return func(v *Vault) { v.minBodyLength = n }
}

// New creates a Vault over the given store.
func New(s store.VersionStore, opts ...Option) *Vault {
	v := &Vault{store: s, log: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// newPipeline builds a fresh pipeline per call graph so parse memoization
// never leaks across independent validations.
func (v *Vault) newPipeline() *validation.Pipeline {
	if v.minBodyLength > 0 {
		return validation.NewPipelineWithMinBodyLength(v.minBodyLength)
	}
	return validation.NewPipeline()
}

// Validate runs the full validation chain for a known kind. Deterministic:
// identical (kind, rawContent, path) inputs yield identical reports.
func (v *Vault) Validate(kind artifact.Kind, rawContent []byte, path string, view fsview.View) *validation.Report {
	return v.newPipeline().Validate(kind, rawContent, path, view)
}

// ValidatePath classifies and validates the artifact at path.
func (v *Vault) ValidatePath(view fsview.View, path string) (*validation.Report, artifact.Kind) {
	return v.newPipeline().ValidatePath(view, path)
}

// Commit validates content for the artifact's kind and appends a version if
// nothing blocks. Validation issues never reach the store; stale bases
// surface as store.ErrConflict for the caller to retry after re-reading.
func (v *Vault) Commit(ctx context.Context, kind artifact.Kind, artifactID, content, author string, expectedBase int, path string, view fsview.View) (*store.Version, error) {
	report := v.Validate(kind, []byte(content), path, view)
	if report.IsBlocking() {
		v.log.Info("commit rejected by validation",
			zap.String("artifact_id", artifactID),
			zap.Int("errors", len(report.Errors())))
		return nil, &ErrBlocked{Report: report}
	}

	version, err := v.store.Commit(ctx, artifactID, content, author, expectedBase)
	if v.audit != nil {
		v.audit.RecordCommit(artifactID, versionNumber(version), author, outcome(err))
	}
	if err != nil {
		return nil, err
	}

	v.log.Info("artifact committed",
		zap.String("artifact_id", artifactID),
		zap.Int("version", version.Number),
		zap.String("author", author))
	return version, nil
}

// Revert appends a copy of the target version through the optimistic
// concurrency path. No validation runs: the target content was validated
// when it was first committed.
func (v *Vault) Revert(ctx context.Context, artifactID string, targetVersion int, author string, expectedBase int) (*store.Version, error) {
	version, err := v.store.Revert(ctx, artifactID, targetVersion, author, expectedBase)
	if v.audit != nil {
		v.audit.RecordRevert(artifactID, versionNumber(version), targetVersion, author, outcome(err))
	}
	if err != nil {
		return nil, err
	}

	v.log.Info("artifact reverted",
		zap.String("artifact_id", artifactID),
		zap.Int("target", targetVersion),
		zap.Int("version", version.Number))
	return version, nil
}

// GetHistory returns every committed version, oldest first.
func (v *Vault) GetHistory(ctx context.Context, artifactID string) ([]store.Version, error) {
	return v.store.GetHistory(ctx, artifactID)
}

// CurrentVersion returns the artifact's current version number (0 if
// unversioned).
func (v *Vault) CurrentVersion(ctx context.Context, artifactID string) (int, error) {
	return v.store.CurrentVersion(ctx, artifactID)
}

func versionNumber(v *store.Version) int {
	if v == nil {
		return 0
	}
	return v.Number
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return err.Error()
}
