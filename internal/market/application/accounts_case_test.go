//go:generate mockgen -source=../domain/accounts.go -destination=../../../gen/mocks/market/mock_accounts.go -package=mocks
package application

import (
	"testing"

	dbmocks "github.com/Lexv0lk/article-market/gen/mocks/database"
	marketmocks "github.com/Lexv0lk/article-market/gen/mocks/market"
	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/Lexv0lk/article-market/internal/pkg/logging"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountsDeps struct {
	accountCreator *marketmocks.MockAccountCreator
	accountLookup  *marketmocks.MockAccountLookup
	ledger         *marketmocks.MockLedger
	locker         *marketmocks.MockLocker
	txManager      *dbmocks.MockTxManager
}

func newAccountsCase(t *testing.T, prepareFn func(t *testing.T, d *accountsDeps)) *AccountsCase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := &accountsDeps{
		accountCreator: marketmocks.NewMockAccountCreator(ctrl),
		accountLookup:  marketmocks.NewMockAccountLookup(ctrl),
		ledger:         marketmocks.NewMockLedger(ctrl),
		locker:         marketmocks.NewMockLocker(ctrl),
		txManager:      dbmocks.NewMockTxManager(ctrl),
	}

	if prepareFn != nil {
		prepareFn(t, d)
	}

	return NewAccountsCase(d.accountCreator, d.accountLookup, d.ledger, d.locker, d.txManager, logging.NopLogger)
}

func TestAccountsCase_CreateAccount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		accountName string
		role        domain.Role

		prepareFn func(t *testing.T, d *accountsDeps)

		expectedErr error
	}

	tests := []testCase{
		{
			name:        "successful signup",
			accountName: "  sam ",
			role:        domain.RoleSeller,
			prepareFn: func(t *testing.T, d *accountsDeps) {
				d.accountCreator.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, account domain.Account) (domain.Account, error) {
						assert.Equal(t, "sam", account.Name)
						assert.Equal(t, domain.RoleSeller, account.Role)
						assert.Zero(t, account.Balance)
						assert.NotZero(t, account.ID)
						return account, nil
					})
			},
		},
		{
			name:        "empty name",
			accountName: "   ",
			role:        domain.RoleBuyer,
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "unknown role",
			accountName: "bob",
			role:        domain.Role("admin"),
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "store failure",
			accountName: "bob",
			role:        domain.RoleBuyer,
			prepareFn: func(t *testing.T, d *accountsDeps) {
				d.accountCreator.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
					Return(domain.Account{}, &domain.StoreUnavailableError{Err: assert.AnError})
			},
			expectedErr: &domain.StoreUnavailableError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			accountsCase := newAccountsCase(t, tt.prepareFn)
			account, err := accountsCase.CreateAccount(t.Context(), tt.accountName, tt.role)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.role, account.Role)
			assert.Zero(t, account.Balance)
		})
	}
}

func TestAccountsCase_GetAccount(t *testing.T) {
	t.Parallel()

	expected := domain.Account{ID: buyerID, Name: "bob", Role: domain.RoleBuyer, Balance: 10}

	accountsCase := newAccountsCase(t, func(t *testing.T, d *accountsDeps) {
		d.accountLookup.EXPECT().GetAccount(gomock.Any(), buyerID).Return(expected, nil)
	})

	account, err := accountsCase.GetAccount(t.Context(), buyerID)
	require.NoError(t, err)
	assert.Equal(t, expected, account)
}

func TestAccountsCase_GetAccount_LogsFaults(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		lookupErr error

		expectedLog string
	}

	tests := []testCase{
		{
			name:        "store failure is logged as error",
			lookupErr:   &domain.StoreUnavailableError{Err: assert.AnError},
			expectedLog: `level=ERROR msg="failed to get account"`,
		},
		{
			name:      "missing account is not logged",
			lookupErr: &domain.AccountNotFoundError{Msg: "account not found"},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountLookup := marketmocks.NewMockAccountLookup(ctrl)
			accountLookup.EXPECT().GetAccount(gomock.Any(), buyerID).Return(domain.Account{}, tt.lookupErr)

			logger, logs := newBufferLogger()
			accountsCase := NewAccountsCase(
				marketmocks.NewMockAccountCreator(ctrl),
				accountLookup,
				marketmocks.NewMockLedger(ctrl),
				marketmocks.NewMockLocker(ctrl),
				dbmocks.NewMockTxManager(ctrl),
				logger,
			)

			_, err := accountsCase.GetAccount(t.Context(), buyerID)
			assert.ErrorIs(t, err, tt.lookupErr)

			if tt.expectedLog == "" {
				assert.Empty(t, logs.String())
			} else {
				assert.Contains(t, logs.String(), tt.expectedLog)
			}
		})
	}
}

func TestAccountsCase_Recharge(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		amount int64

		prepareFn func(t *testing.T, d *accountsDeps)

		expectedBalance int64
		expectedErr     error
	}

	lockKeys := []string{domain.AccountLockKey(buyerID)}

	tests := []testCase{
		{
			name:   "successful recharge",
			amount: 5000,
			prepareFn: func(t *testing.T, d *accountsDeps) {
				d.locker.EXPECT().WithLock(gomock.Any(), lockKeys, gomock.Any()).DoAndReturn(executeLockFn)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn)
				d.ledger.EXPECT().Recharge(gomock.Any(), nil, buyerID, int64(5000)).Return(int64(5000), nil)
			},
			expectedBalance: 5000,
		},
		{
			name:   "zero amount returns current balance",
			amount: 0,
			prepareFn: func(t *testing.T, d *accountsDeps) {
				d.locker.EXPECT().WithLock(gomock.Any(), lockKeys, gomock.Any()).DoAndReturn(executeLockFn)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn)
				d.ledger.EXPECT().Recharge(gomock.Any(), nil, buyerID, int64(0)).Return(int64(42), nil)
			},
			expectedBalance: 42,
		},
		{
			name:        "negative amount",
			amount:      -1,
			expectedErr: &domain.InvalidAmountError{},
		},
		{
			name:   "account not found",
			amount: 10,
			prepareFn: func(t *testing.T, d *accountsDeps) {
				d.locker.EXPECT().WithLock(gomock.Any(), lockKeys, gomock.Any()).DoAndReturn(executeLockFn)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(executeTxFn)
				d.ledger.EXPECT().Recharge(gomock.Any(), nil, buyerID, int64(10)).
					Return(int64(0), &domain.AccountNotFoundError{Msg: "account not found"})
			},
			expectedErr: &domain.AccountNotFoundError{},
		},
		{
			name:   "lock failure",
			amount: 10,
			prepareFn: func(t *testing.T, d *accountsDeps) {
				d.locker.EXPECT().WithLock(gomock.Any(), lockKeys, gomock.Any()).Return(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:   "commit failure is a store fault",
			amount: 10,
			prepareFn: func(t *testing.T, d *accountsDeps) {
				d.locker.EXPECT().WithLock(gomock.Any(), lockKeys, gomock.Any()).DoAndReturn(executeLockFn)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			expectedErr: &domain.StoreUnavailableError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			accountsCase := newAccountsCase(t, tt.prepareFn)
			balance, err := accountsCase.Recharge(t.Context(), buyerID, tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, balance)
		})
	}
}
