package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/Lexv0lk/article-market/internal/pkg/database"
	"github.com/Lexv0lk/article-market/internal/pkg/logging"
	"github.com/google/uuid"
)

type AccountsCase struct {
	accountCreator domain.AccountCreator
	accountLookup  domain.AccountLookup
	ledger         domain.Ledger
	locker         domain.Locker
	txManager      database.TxManager
	logger         logging.Logger
}

func NewAccountsCase(
	accountCreator domain.AccountCreator,
	accountLookup domain.AccountLookup,
	ledger domain.Ledger,
	locker domain.Locker,
	txManager database.TxManager,
	logger logging.Logger,
) *AccountsCase {
	return &AccountsCase{
		accountCreator: accountCreator,
		accountLookup:  accountLookup,
		ledger:         ledger,
		locker:         locker,
		txManager:      txManager,
		logger:         logger,
	}
}

// CreateAccount registers a new account with an empty balance.
func (ac *AccountsCase) CreateAccount(ctx context.Context, name string, role domain.Role) (domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Account{}, &domain.InvalidArgumentsError{Msg: "account name is required"}
	}

	if !role.Valid() {
		return domain.Account{}, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("unknown role %q", role)}
	}

	account, err := ac.accountCreator.CreateAccount(ctx, domain.Account{
		ID:      uuid.New(),
		Name:    name,
		Role:    role,
		Balance: 0,
	})
	if err != nil {
		ac.logger.Error("failed to create account", "error", err.Error())
		return domain.Account{}, err
	}

	ac.logger.Info("account created", "account_id", account.ID.String(), "role", string(account.Role))

	return account, nil
}

func (ac *AccountsCase) GetAccount(ctx context.Context, accountID uuid.UUID) (domain.Account, error) {
	account, err := ac.accountLookup.GetAccount(ctx, accountID)
	if err != nil {
		if !domain.IsRejection(err) {
			ac.logger.Error("failed to get account", "account_id", accountID.String(), "error", err.Error())
		}
		return domain.Account{}, err
	}

	return account, nil
}

// Recharge adds amount to the account balance and returns the new balance.
// It shares the account lock key with purchases.
func (ac *AccountsCase) Recharge(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error) {
	if amount < 0 {
		return 0, &domain.InvalidAmountError{Msg: fmt.Sprintf("recharge amount %d is negative", amount)}
	}

	var balance int64
	err := ac.locker.WithLock(ctx, []string{domain.AccountLockKey(accountID)}, func(ctx context.Context) error {
		return ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
			var rechargeErr error
			balance, rechargeErr = ac.ledger.Recharge(ctx, executor, accountID, amount)
			return rechargeErr
		})
	})
	if err != nil {
		err = domain.AsStoreFault(err)
		if domain.IsRejection(err) {
			ac.logger.Info("recharge rejected", "account_id", accountID.String(), "error", err.Error())
		} else {
			ac.logger.Error("recharge failed", "account_id", accountID.String(), "error", err.Error())
		}
		return 0, err
	}

	return balance, nil
}
