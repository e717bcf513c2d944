package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/article-market/internal/pkg/lock"
	"github.com/Lexv0lk/article-market/internal/pkg/logging"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

var ErrNilClient = errors.New("redis client is nil")

type LockOptions struct {
	// Expiry bounds how long a crashed holder can keep a key.
	Expiry     time.Duration
	Tries      int
	RetryDelay time.Duration
}

func DefaultLockOptions() LockOptions {
	return LockOptions{
		Expiry:     10 * time.Second,
		Tries:      32,
		RetryDelay: 50 * time.Millisecond,
	}
}

// Locker is a RedLock backed lock shared by every instance of the service.
type Locker struct {
	redsync *redsync.Redsync
	opts    LockOptions
	logger  logging.Logger
}

func NewLocker(client goredislib.UniversalClient, opts LockOptions, logger logging.Logger) (*Locker, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	if opts.Expiry <= 0 || opts.Tries < 1 || opts.RetryDelay < 0 {
		return nil, fmt.Errorf("invalid lock options: %+v", opts)
	}

	return &Locker{
		redsync: redsync.New(goredis.NewPool(client)),
		opts:    opts,
		logger:  logger,
	}, nil
}

func (l *Locker) WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	if fn == nil {
		return lock.ErrNilFn
	}

	keys, err := lock.NormalizeKeys(keys)
	if err != nil {
		return err
	}

	held := make([]*redsync.Mutex, 0, len(keys))
	defer func() {
		for i := len(held) - 1; i >= 0; i-- {
			// the caller's context may already be done, release anyway
			ok, err := held[i].UnlockContext(context.WithoutCancel(ctx))
			if err != nil || !ok {
				l.logger.Error("failed to release lock", "key", held[i].Name(), "error", err)
			}
		}
	}()

	for _, key := range keys {
		mutex := l.redsync.NewMutex(
			key,
			redsync.WithExpiry(l.opts.Expiry),
			redsync.WithTries(l.opts.Tries),
			redsync.WithRetryDelay(l.opts.RetryDelay),
		)

		if err := mutex.LockContext(ctx); err != nil {
			return fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		held = append(held, mutex)
	}

	return fn(ctx)
}
