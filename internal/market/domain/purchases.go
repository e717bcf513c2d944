package domain

import (
	"context"

	"github.com/google/uuid"
)

type PurchaseOutcome struct {
	Buyer   Account `json:"buyer"`
	Seller  Account `json:"seller"`
	Article Article `json:"article"`
}

// Locker serializes work on a set of keys. Implementations acquire keys in a
// stable order and release all of them once fn returns.
type Locker interface {
	WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error
}

func ArticleLockKey(articleID uuid.UUID) string {
	return "lock:article:" + articleID.String()
}

func AccountLockKey(accountID uuid.UUID) string {
	return "lock:account:" + accountID.String()
}
