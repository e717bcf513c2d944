package domain

import (
	"context"

	"github.com/Lexv0lk/article-market/internal/pkg/database"
	"github.com/google/uuid"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

type Account struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Role    Role      `json:"role"`
	Balance int64     `json:"balance"`
}

type AccountLookup interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (Account, error)
}

type AccountCreator interface {
	CreateAccount(ctx context.Context, account Account) (Account, error)
}

// Ledger is the only writer of account balances. Both operations run on the
// executor of the caller's transaction.
type Ledger interface {
	Transfer(ctx context.Context, executor database.QueryExecuter, fromID, toID uuid.UUID, amount int64) (TransferResult, error)
	Recharge(ctx context.Context, executor database.QueryExecuter, accountID uuid.UUID, amount int64) (int64, error)
}

type TransferResult struct {
	FromBalance int64
	ToBalance   int64
}
