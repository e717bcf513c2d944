package lock

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrNoKeys   = errors.New("at least one lock key is required")
	ErrEmptyKey = errors.New("lock key cannot be empty")
	ErrNilFn    = errors.New("lock function is nil")
)

// NormalizeKeys returns the keys sorted and deduplicated. Every locker takes
// keys in this order, so two callers sharing a subset of keys cannot deadlock.
func NormalizeKeys(keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			return nil, ErrEmptyKey
		}
		normalized = append(normalized, key)
	}

	slices.Sort(normalized)
	return slices.Compact(normalized), nil
}
