package lock

import (
	"context"
	"fmt"
	"sync"
)

type keyEntry struct {
	sem  chan struct{}
	refs int
}

// KeyedLocker is an in-process mutual exclusion keyed by strings. Entries are
// reference counted and dropped once nobody holds or waits for them.
type KeyedLocker struct {
	mu      sync.Mutex
	entries map[string]*keyEntry
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{
		entries: make(map[string]*keyEntry),
	}
}

func (kl *KeyedLocker) WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	if fn == nil {
		return ErrNilFn
	}

	keys, err := NormalizeKeys(keys)
	if err != nil {
		return err
	}

	acquired := make([]string, 0, len(keys))
	defer func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			kl.release(acquired[i])
		}
	}()

	for _, key := range keys {
		if err := kl.acquire(ctx, key); err != nil {
			return fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		acquired = append(acquired, key)
	}

	return fn(ctx)
}

func (kl *KeyedLocker) acquire(ctx context.Context, key string) error {
	kl.mu.Lock()
	entry, ok := kl.entries[key]
	if !ok {
		entry = &keyEntry{sem: make(chan struct{}, 1)}
		kl.entries[key] = entry
	}
	entry.refs++
	kl.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		kl.unref(key, entry)
		return ctx.Err()
	}
}

func (kl *KeyedLocker) release(key string) {
	kl.mu.Lock()
	entry := kl.entries[key]
	kl.mu.Unlock()

	<-entry.sem
	kl.unref(key, entry)
}

func (kl *KeyedLocker) unref(key string, entry *keyEntry) {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(kl.entries, key)
	}
}

func (kl *KeyedLocker) size() int {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	return len(kl.entries)
}
