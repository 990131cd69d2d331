package store

import (
	"context"
	"sync"
	"time"
)

// MemStore is a mutex-guarded in-memory VersionStore. It backs tests and
// embedded use; semantics are identical to the badger store.
type MemStore struct {
	mu       sync.Mutex
	versions map[string][]Version
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{versions: make(map[string][]Version)}
}

// Close implements VersionStore.
func (s *MemStore) Close() error {
	return nil
}

// Commit implements VersionStore.
func (s *MemStore) Commit(ctx context.Context, artifactID, content, author string, expectedBase int) (*Version, error) {
	if artifactID == "" {
		return nil, ErrArtifactIDRequired
	}
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.versions[artifactID]) != expectedBase {
		return nil, ErrConflict
	}

	v := Version{
		ArtifactID: artifactID,
		Number:     expectedBase + 1,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  author,
	}
	s.versions[artifactID] = append(s.versions[artifactID], v)
	return &v, nil
}

// GetHistory implements VersionStore.
func (s *MemStore) GetHistory(ctx context.Context, artifactID string) ([]Version, error) {
	if artifactID == "" {
		return nil, ErrArtifactIDRequired
	}
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]Version, len(s.versions[artifactID]))
	copy(history, s.versions[artifactID])
	return history, nil
}

// Revert implements VersionStore.
func (s *MemStore) Revert(ctx context.Context, artifactID string, targetVersion int, author string, expectedBase int) (*Version, error) {
	if artifactID == "" {
		return nil, ErrArtifactIDRequired
	}
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.versions[artifactID]
	if targetVersion < 1 || targetVersion > len(history) {
		return nil, ErrNotFound
	}
	if len(history) != expectedBase {
		return nil, ErrConflict
	}

	v := Version{
		ArtifactID: artifactID,
		Number:     expectedBase + 1,
		Content:    history[targetVersion-1].Content,
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  author,
	}
	s.versions[artifactID] = append(history, v)
	return &v, nil
}

// CurrentVersion implements VersionStore.
func (s *MemStore) CurrentVersion(ctx context.Context, artifactID string) (int, error) {
	if artifactID == "" {
		return 0, ErrArtifactIDRequired
	}
	if err := ctxErr(ctx); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.versions[artifactID]), nil
}

func ctxErr(ctx context.Context) error {
	if ctx != nil && ctx.Err() != nil {
		return ErrStorageUnavailable
	}
	return nil
}
