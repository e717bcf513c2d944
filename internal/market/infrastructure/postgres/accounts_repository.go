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

type AccountsRepository struct {
	queryExecuter database.QueryExecuter
}

func NewAccountsRepository(queryExecuter database.QueryExecuter) *AccountsRepository {
	return &AccountsRepository{
		queryExecuter: queryExecuter,
	}
}

func (ar *AccountsRepository) GetAccount(ctx context.Context, accountID uuid.UUID) (domain.Account, error) {
	sql := `SELECT id, name, role, balance FROM accounts WHERE id = $1`

	var account domain.Account
	var role string
	err := ar.queryExecuter.QueryRow(ctx, sql, accountID).Scan(&account.ID, &account.Name, &role, &account.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
		}

		return domain.Account{}, storeUnavailable("failed to fetch account", err)
	}
	account.Role = domain.Role(role)

	return account, nil
}

func (ar *AccountsRepository) CreateAccount(ctx context.Context, account domain.Account) (domain.Account, error) {
	sql := `INSERT INTO accounts (id, name, role, balance) VALUES ($1, $2, $3, $4)`

	_, err := ar.queryExecuter.Exec(ctx, sql, account.ID, account.Name, string(account.Role), account.Balance)
	if err != nil {
		if hasPgCode(err, checkViolationCode) {
			return domain.Account{}, &domain.InvalidArgumentsError{Msg: "account violates store constraints"}
		}

		return domain.Account{}, storeUnavailable("failed to insert account", err)
	}

	return account, nil
}
