package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schoolboyqueue/artifactvault/internal/store"
)

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesConflicts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return store.ErrConflict
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ConflictExhaustsBudget(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return store.ErrConflict
	})
	assert.ErrorIs(t, err, store.ErrConflict)
	assert.Equal(t, 3, calls)
}

func TestDo_NonConflictNotRetried(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return store.ErrStorageUnavailable
	})
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.Equal(t, 1, calls, "only conflicts are worth a second try")
}

func TestDo_ZeroAttemptsUsesDefault(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 0, time.Millisecond, func() error {
		calls++
		return store.ErrConflict
	})
	assert.ErrorIs(t, err, store.ErrConflict)
	assert.Equal(t, DefaultAttempts, calls)
}

func TestDo_CancelledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, 3, time.Hour, func() error {
		return store.ErrConflict
	})
	assert.True(t, errors.Is(err, store.ErrStorageUnavailable))
}
