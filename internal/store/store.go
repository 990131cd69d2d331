// Package store implements the append-only versioning engine. Every
// accepted edit becomes an immutable Version; version numbers per artifact
// form a contiguous 1..N sequence with no gaps or duplicates, even under
// concurrent writers.
package store

import "context"

type errorString string

func (e errorString) Error() string {
	return string(e)
}

const (
	// ErrConflict is returned when a commit's expected base version is
	// stale. The caller must re-read the current version and retry.
	ErrConflict errorString = "version conflict: expected base is stale"

	// ErrNotFound is returned when the artifact or target version does
	// not exist.
	ErrNotFound errorString = "version not found"

	// ErrStorageUnavailable is returned when the backing persistence
	// layer does not answer within the caller-supplied deadline.
	ErrStorageUnavailable errorString = "storage unavailable"

	// ErrArtifactIDRequired is returned for an empty artifact id.
	ErrArtifactIDRequired errorString = "artifact id is required"
)

// VersionStore is the contract the persistence backend must satisfy. The
// internal storage format is the backend's business; the semantics below are
// not negotiable.
type VersionStore interface {
	// Commit appends a new version iff expectedBase equals the artifact's
	// current version number (0 for an unversioned artifact). On a stale
	// base it fails with ErrConflict and creates nothing. On success the
	// new version carries number expectedBase+1 and the artifact pointer
	// moves atomically with the append.
	Commit(ctx context.Context, artifactID, content, author string, expectedBase int) (*Version, error)

	// GetHistory returns every committed version, oldest first.
	GetHistory(ctx context.Context, artifactID string) ([]Version, error)

	// Revert appends a new version whose content is a copy of the target
	// version's content, through the same optimistic-concurrency path as
	// Commit. Existing versions are never rewritten. ErrNotFound if the
	// target version does not exist.
	Revert(ctx context.Context, artifactID string, targetVersion int, author string, expectedBase int) (*Version, error)

	// CurrentVersion returns the artifact's current version number, or 0
	// if the artifact has never been committed.
	CurrentVersion(ctx context.Context, artifactID string) (int, error)

	Close() error
}
