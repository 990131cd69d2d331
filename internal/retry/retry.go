// Package retry provides the conflict-retry helper for store commits.
// Optimistic concurrency means a stale base is normal under concurrent
// writers; callers re-read the current version and try again a bounded
// number of times.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/schoolboyqueue/artifactvault/internal/store"
)

// DefaultAttempts is the number of commit attempts before giving up.
const DefaultAttempts = 3

// DefaultDelay is the pause between attempts.
const DefaultDelay = 50 * time.Millisecond

// Do runs fn until it succeeds, fails with a non-conflict error, or the
// attempt budget is spent. Only store.ErrConflict is retried: a storage
// outage or validation failure will not change on a second try.
func Do(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !errors.Is(err, store.ErrConflict) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return store.ErrStorageUnavailable
		}
	}
	return err
}
