package store

import "github.com/schoolboyqueue/artifactvault/internal/artifact"

// Version aliases the core snapshot type; the store appends these and never
// mutates them.
type Version = artifact.Version

// pointer is the per-artifact head record the store keeps alongside the
// version rows. Current always equals the highest committed version number.
type pointer struct {
	ArtifactID string `json:"artifact_id"`
	Current    int    `json:"current"`
}
