package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Key layout: ptr:<id> for the head pointer, ver:<id>:<zero-padded number>
// for version rows. Artifact ids are escaped so an id containing ':' can
// never alias another id's rows.
var keyEscaper = strings.NewReplacer("%", "%25", ":", "%3A")

// BadgerStore is the default VersionStore backend: an embedded badger
// database where each commit is one serializable transaction covering the
// version append and the pointer move.
type BadgerStore struct {
	db  *badger.DB
	log *zap.Logger
}

// NewBadgerStore opens (or creates) the store at dir.
func NewBadgerStore(dir string, log *zap.Logger) (*BadgerStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening version store at %s: %w", dir, err)
	}
	return &BadgerStore{db: db, log: log}, nil
}

// Close releases the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func ptrKey(artifactID string) []byte {
	return []byte("ptr:" + keyEscaper.Replace(artifactID))
}

func verKey(artifactID string, number int) []byte {
	return []byte(fmt.Sprintf("ver:%s:%010d", keyEscaper.Replace(artifactID), number))
}

func verPrefix(artifactID string) []byte {
	return []byte("ver:" + keyEscaper.Replace(artifactID) + ":")
}

// rewriteErr maps badger failures onto the store's error taxonomy.
func rewriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return ErrNotFound
	case errors.Is(err, badger.ErrConflict):
		return ErrConflict
	}
	return err
}

// Commit implements VersionStore.
func (s *BadgerStore) Commit(ctx context.Context, artifactID, content, author string, expectedBase int) (*Version, error) {
	if artifactID == "" {
		return nil, ErrArtifactIDRequired
	}

	var committed *Version
	err := s.run(ctx, func() error {
		return s.db.Update(func(txn *badger.Txn) error {
			current, err := readPointer(txn, artifactID)
			if err != nil {
				return err
			}
			if current != expectedBase {
				return ErrConflict
			}

			v := &Version{
				ArtifactID: artifactID,
				Number:     expectedBase + 1,
				Content:    content,
				CreatedAt:  time.Now().UTC(),
				CreatedBy:  author,
			}

			data, err := jsoniter.Marshal(v)
			if err != nil {
				return fmt.Errorf("encoding version: %w", err)
			}
			if err := txn.Set(verKey(artifactID, v.Number), data); err != nil {
				return err
			}

			ptrData, err := jsoniter.Marshal(pointer{ArtifactID: artifactID, Current: v.Number})
			if err != nil {
				return fmt.Errorf("encoding pointer: %w", err)
			}
			if err := txn.Set(ptrKey(artifactID), ptrData); err != nil {
				return err
			}

			committed = v
			return nil
		})
	})
	if err != nil {
		return nil, rewriteErr(err)
	}

	s.log.Debug("version committed",
		zap.String("artifact_id", artifactID),
		zap.Int("version", committed.Number),
		zap.String("author", author))
	return committed, nil
}

// GetHistory implements VersionStore. The sequence is finite and ordered
// oldest first; the zero-padded key layout makes lexicographic iteration
// numeric iteration.
func (s *BadgerStore) GetHistory(ctx context.Context, artifactID string) ([]Version, error) {
	if artifactID == "" {
		return nil, ErrArtifactIDRequired
	}

	var history []Version
	err := s.run(ctx, func() error {
		return s.db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = verPrefix(artifactID)
			it := txn.NewIterator(opts)
			defer it.Close()

			for it.Rewind(); it.Valid(); it.Next() {
				var v Version
				err := it.Item().Value(func(data []byte) error {
					return jsoniter.Unmarshal(data, &v)
				})
				if err != nil {
					return fmt.Errorf("decoding version: %w", err)
				}
				history = append(history, v)
			}
			return nil
		})
	})
	if err != nil {
		return nil, rewriteErr(err)
	}
	return history, nil
}

// Revert implements VersionStore. The target's content is read inside the
// same transaction that appends the copy, so a concurrent commit cannot
// interleave between read and append.
func (s *BadgerStore) Revert(ctx context.Context, artifactID string, targetVersion int, author string, expectedBase int) (*Version, error) {
	if artifactID == "" {
		return nil, ErrArtifactIDRequired
	}

	var committed *Version
	err := s.run(ctx, func() error {
		return s.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(verKey(artifactID, targetVersion))
			if err != nil {
				return err
			}
			var target Version
			if err := item.Value(func(data []byte) error {
				return jsoniter.Unmarshal(data, &target)
			}); err != nil {
				return fmt.Errorf("decoding target version: %w", err)
			}

			current, err := readPointer(txn, artifactID)
			if err != nil {
				return err
			}
			if current != expectedBase {
				return ErrConflict
			}

			v := &Version{
				ArtifactID: artifactID,
				Number:     expectedBase + 1,
				Content:    target.Content,
				CreatedAt:  time.Now().UTC(),
				CreatedBy:  author,
			}
			data, err := jsoniter.Marshal(v)
			if err != nil {
				return fmt.Errorf("encoding version: %w", err)
			}
			if err := txn.Set(verKey(artifactID, v.Number), data); err != nil {
				return err
			}
			ptrData, err := jsoniter.Marshal(pointer{ArtifactID: artifactID, Current: v.Number})
			if err != nil {
				return fmt.Errorf("encoding pointer: %w", err)
			}
			if err := txn.Set(ptrKey(artifactID), ptrData); err != nil {
				return err
			}

			committed = v
			return nil
		})
	})
	if err != nil {
		return nil, rewriteErr(err)
	}

	s.log.Debug("version reverted",
		zap.String("artifact_id", artifactID),
		zap.Int("target", targetVersion),
		zap.Int("new_version", committed.Number))
	return committed, nil
}

// CurrentVersion implements VersionStore.
func (s *BadgerStore) CurrentVersion(ctx context.Context, artifactID string) (int, error) {
	if artifactID == "" {
		return 0, ErrArtifactIDRequired
	}

	var current int
	err := s.run(ctx, func() error {
		return s.db.View(func(txn *badger.Txn) error {
			var err error
			current, err = readPointer(txn, artifactID)
			return err
		})
	})
	if err != nil {
		return 0, rewriteErr(err)
	}
	return current, nil
}

// readPointer returns the artifact's current version number inside txn, with
// 0 meaning never committed.
func readPointer(txn *badger.Txn, artifactID string) (int, error) {
	item, err := txn.Get(ptrKey(artifactID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var p pointer
	if err := item.Value(func(data []byte) error {
		return jsoniter.Unmarshal(data, &p)
	}); err != nil {
		return 0, fmt.Errorf("decoding pointer: %w", err)
	}
	return p.Current, nil
}

// run executes op, honoring the caller's deadline. A deadline that expires
// before op finishes surfaces as ErrStorageUnavailable; the operation is
// never silently retried.
func (s *BadgerStore) run(ctx context.Context, op func() error) error {
	if ctx == nil {
		return op()
	}
	if err := ctx.Err(); err != nil {
		return ErrStorageUnavailable
	}

	done := make(chan error, 1)
	go func() { done <- op() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ErrStorageUnavailable
	}
}
