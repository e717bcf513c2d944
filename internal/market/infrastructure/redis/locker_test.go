package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Lexv0lk/article-market/internal/pkg/lock"
	"github.com/Lexv0lk/article-market/internal/pkg/logging"
	"github.com/alicebob/miniredis/v2"
	goredislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T, opts LockOptions) (*Locker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredislib.NewClient(&goredislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	locker, err := NewLocker(client, opts, logging.NopLogger)
	require.NoError(t, err)

	return locker, mr
}

func TestNewLocker(t *testing.T) {
	t.Parallel()

	_, err := NewLocker(nil, DefaultLockOptions(), logging.NopLogger)
	assert.ErrorIs(t, err, ErrNilClient)

	client := goredislib.NewClient(&goredislib.Options{Addr: "localhost:0"})
	defer client.Close()

	_, err = NewLocker(client, LockOptions{Expiry: time.Second, Tries: 0}, logging.NopLogger)
	assert.Error(t, err)
}

func TestLocker_WithLock_SerializesSharedKeys(t *testing.T) {
	t.Parallel()

	locker, _ := newTestLocker(t, LockOptions{
		Expiry:     5 * time.Second,
		Tries:      500,
		RetryDelay: 2 * time.Millisecond,
	})

	const workers = 10
	inside := 0
	maxInside := 0
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := locker.WithLock(t.Context(), []string{"lock:article:1", "lock:account:seller"}, func(ctx context.Context) error {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()

				time.Sleep(2 * time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside)
}

func TestLocker_WithLock_ReleasesKeys(t *testing.T) {
	t.Parallel()

	locker, mr := newTestLocker(t, DefaultLockOptions())

	err := locker.WithLock(t.Context(), []string{"lock:account:a", "lock:article:x"}, func(ctx context.Context) error {
		assert.True(t, mr.Exists("lock:account:a"))
		assert.True(t, mr.Exists("lock:article:x"))
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, mr.Exists("lock:account:a"))
	assert.False(t, mr.Exists("lock:article:x"))
}

func TestLocker_WithLock_BusyKey(t *testing.T) {
	t.Parallel()

	locker, mr := newTestLocker(t, LockOptions{
		Expiry:     time.Second,
		Tries:      2,
		RetryDelay: time.Millisecond,
	})

	require.NoError(t, mr.Set("lock:article:x", "someone-else"))

	called := false
	err := locker.WithLock(t.Context(), []string{"lock:account:a", "lock:article:x"}, func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
	assert.False(t, mr.Exists("lock:account:a"))
}

func TestLocker_WithLock_InvalidInput(t *testing.T) {
	t.Parallel()

	locker, _ := newTestLocker(t, DefaultLockOptions())

	err := locker.WithLock(t.Context(), nil, func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, lock.ErrNoKeys)

	err = locker.WithLock(t.Context(), []string{"lock:account:a"}, nil)
	assert.ErrorIs(t, err, lock.ErrNilFn)
}
