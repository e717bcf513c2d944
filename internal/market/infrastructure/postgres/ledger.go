package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/Lexv0lk/article-market/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Ledger moves balance between accounts. It never commits by itself: callers
// pass the executor of an open transaction.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Transfer(ctx context.Context, executor database.QueryExecuter, fromID, toID uuid.UUID, amount int64) (domain.TransferResult, error) {
	if amount <= 0 {
		return domain.TransferResult{}, &domain.InvalidAmountError{Msg: fmt.Sprintf("transfer amount must be positive, got %d", amount)}
	}
	if fromID == toID {
		return domain.TransferResult{}, &domain.InvalidArgumentsError{Msg: "transfer source must differ from destination"}
	}

	balances, err := lockAccountBalances(ctx, executor, fromID, toID)
	if err != nil {
		return domain.TransferResult{}, err
	}

	if balances[fromID] < amount {
		return domain.TransferResult{}, &domain.InsufficientFundsError{Msg: "insufficient funds"}
	}

	var result domain.TransferResult

	debitSQL := `UPDATE accounts SET balance = balance - $1 WHERE id = $2 AND balance >= $1 RETURNING balance`
	err = executor.QueryRow(ctx, debitSQL, amount, fromID).Scan(&result.FromBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TransferResult{}, &domain.InsufficientFundsError{Msg: "insufficient funds"}
		}

		return domain.TransferResult{}, storeUnavailable("failed to debit account", err)
	}

	creditSQL := `UPDATE accounts SET balance = balance + $1 WHERE id = $2 RETURNING balance`
	err = executor.QueryRow(ctx, creditSQL, amount, toID).Scan(&result.ToBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TransferResult{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", toID)}
		}
		if hasPgCode(err, numericOutOfRangeCode) {
			return domain.TransferResult{}, &domain.InvalidAmountError{Msg: "balance would overflow"}
		}

		return domain.TransferResult{}, storeUnavailable("failed to credit account", err)
	}

	return result, nil
}

func (l *Ledger) Recharge(ctx context.Context, executor database.QueryExecuter, accountID uuid.UUID, amount int64) (int64, error) {
	if amount < 0 {
		return 0, &domain.InvalidAmountError{Msg: fmt.Sprintf("recharge amount must not be negative, got %d", amount)}
	}

	var balance int64
	var err error
	if amount == 0 {
		sql := `SELECT balance FROM accounts WHERE id = $1`
		err = executor.QueryRow(ctx, sql, accountID).Scan(&balance)
	} else {
		sql := `UPDATE accounts SET balance = balance + $1 WHERE id = $2 RETURNING balance`
		err = executor.QueryRow(ctx, sql, amount, accountID).Scan(&balance)
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
		}
		if hasPgCode(err, numericOutOfRangeCode) {
			return 0, &domain.InvalidAmountError{Msg: "balance would overflow"}
		}

		return 0, storeUnavailable("failed to recharge account", err)
	}

	return balance, nil
}

// lockAccountBalances takes row locks in id order, so concurrent transfers
// between the same pair in opposite directions cannot deadlock.
func lockAccountBalances(ctx context.Context, querier database.Querier, ids ...uuid.UUID) (map[uuid.UUID]int64, error) {
	lockSQL := `SELECT id, balance FROM accounts
WHERE id = ANY($1::uuid[])
ORDER BY id
FOR UPDATE`

	rawIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.String())
	}

	rows, err := querier.Query(ctx, lockSQL, rawIDs)
	if err != nil {
		return nil, storeUnavailable("failed to lock accounts", err)
	}
	defer rows.Close()

	balances := make(map[uuid.UUID]int64, len(ids))
	for rows.Next() {
		var id uuid.UUID
		var balance int64
		if err := rows.Scan(&id, &balance); err != nil {
			return nil, storeUnavailable("failed to scan account row", err)
		}
		balances[id] = balance
	}

	if err := rows.Err(); err != nil {
		return nil, storeUnavailable("failed to read account rows", err)
	}

	for _, id := range ids {
		if _, ok := balances[id]; !ok {
			return nil, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", id)}
		}
	}

	return balances, nil
}
