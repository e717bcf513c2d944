//go:generate mockgen -source=services.go -destination=../../../../gen/mocks/http/mock_services.go -package=mocks
package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	mocks "github.com/Lexv0lk/article-market/gen/mocks/http"
	"github.com/Lexv0lk/article-market/internal/market/domain"
	"github.com/Lexv0lk/article-market/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	buyerID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	sellerID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	articleID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

// newTestContext builds a gin context for a direct handler call. A non-nil
// caller is stored the way the auth middleware stores it.
func newTestContext(t *testing.T, method string, body interface{}, params gin.Params, caller *uuid.UUID) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	writer := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(writer)
	c.Request = httptest.NewRequest(method, "/", reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	if caller != nil {
		c.Set(jwt.ClaimsContextKey, *caller)
	}

	return c, writer
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    interface{}
		expectedStatus int

		prepareFn func(t *testing.T, service *mocks.MockAccountService)
	}

	created := domain.Account{ID: sellerID, Name: "sam", Role: domain.RoleSeller}

	tests := []testCase{
		{
			name:           "successful signup",
			requestBody:    map[string]string{"name": "sam", "role": "seller"},
			expectedStatus: http.StatusCreated,
			prepareFn: func(t *testing.T, service *mocks.MockAccountService) {
				service.EXPECT().CreateAccount(gomock.Any(), "sam", domain.RoleSeller).Return(created, nil)
			},
		},
		{
			name:           "unknown role",
			requestBody:    map[string]string{"name": "sam", "role": "admin"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			requestBody:    map[string]string{"role": "buyer"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			requestBody:    "{",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank name rejected by the case",
			requestBody:    map[string]string{"name": " ", "role": "buyer"},
			expectedStatus: http.StatusBadRequest,
			prepareFn: func(t *testing.T, service *mocks.MockAccountService) {
				service.EXPECT().CreateAccount(gomock.Any(), " ", domain.RoleBuyer).
					Return(domain.Account{}, &domain.InvalidArgumentsError{Msg: "account name is required"})
			},
		},
		{
			name:           "store failure",
			requestBody:    map[string]string{"name": "sam", "role": "seller"},
			expectedStatus: http.StatusInternalServerError,
			prepareFn: func(t *testing.T, service *mocks.MockAccountService) {
				service.EXPECT().CreateAccount(gomock.Any(), "sam", domain.RoleSeller).
					Return(domain.Account{}, &domain.StoreUnavailableError{Err: assert.AnError})
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockAccountService(ctrl)
			if tt.prepareFn != nil {
				tt.prepareFn(t, service)
			}

			c, writer := newTestContext(t, http.MethodPost, tt.requestBody, nil, nil)
			NewAccountHandler(service).CreateAccount(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if writer.Code == http.StatusCreated {
				var response domain.Account
				require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &response))
				assert.Equal(t, created, response)
			}
		})
	}
}

func TestAccountHandler_GetAccount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		accountID      string
		expectedStatus int

		prepareFn func(t *testing.T, service *mocks.MockAccountService)
	}

	tests := []testCase{
		{
			name:           "found",
			accountID:      buyerID.String(),
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *mocks.MockAccountService) {
				service.EXPECT().GetAccount(gomock.Any(), buyerID).
					Return(domain.Account{ID: buyerID, Name: "bob", Role: domain.RoleBuyer, Balance: 10}, nil)
			},
		},
		{
			name:           "not found",
			accountID:      buyerID.String(),
			expectedStatus: http.StatusNotFound,
			prepareFn: func(t *testing.T, service *mocks.MockAccountService) {
				service.EXPECT().GetAccount(gomock.Any(), buyerID).
					Return(domain.Account{}, &domain.AccountNotFoundError{Msg: "account not found"})
			},
		},
		{
			name:           "malformed id",
			accountID:      "not-a-uuid",
			expectedStatus: http.StatusBadRequest,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockAccountService(ctrl)
			if tt.prepareFn != nil {
				tt.prepareFn(t, service)
			}

			c, writer := newTestContext(t, http.MethodGet, nil, gin.Params{{Key: AccountIDKey, Value: tt.accountID}}, nil)
			NewAccountHandler(service).GetAccount(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestAccountHandler_Recharge(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    interface{}
		caller         *uuid.UUID
		expectedStatus int
		expectedBody   string

		prepareFn func(t *testing.T, service *mocks.MockAccountService)
	}

	caller := buyerID

	tests := []testCase{
		{
			name:           "successful recharge",
			requestBody:    map[string]int64{"amount": 5000},
			caller:         &caller,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"balance":5000}`,
			prepareFn: func(t *testing.T, service *mocks.MockAccountService) {
				service.EXPECT().Recharge(gomock.Any(), buyerID, int64(5000)).Return(int64(5000), nil)
			},
		},
		{
			name:           "zero amount is accepted",
			requestBody:    map[string]int64{"amount": 0},
			caller:         &caller,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"balance":70}`,
			prepareFn: func(t *testing.T, service *mocks.MockAccountService) {
				service.EXPECT().Recharge(gomock.Any(), buyerID, int64(0)).Return(int64(70), nil)
			},
		},
		{
			name:           "negative amount",
			requestBody:    map[string]int64{"amount": -3},
			caller:         &caller,
			expectedStatus: http.StatusBadRequest,
			prepareFn: func(t *testing.T, service *mocks.MockAccountService) {
				service.EXPECT().Recharge(gomock.Any(), buyerID, int64(-3)).
					Return(int64(0), &domain.InvalidAmountError{Msg: "negative"})
			},
		},
		{
			name:           "missing amount",
			requestBody:    map[string]string{},
			caller:         &caller,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no caller",
			requestBody:    map[string]int64{"amount": 1},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "account vanished",
			requestBody:    map[string]int64{"amount": 1},
			caller:         &caller,
			expectedStatus: http.StatusNotFound,
			prepareFn: func(t *testing.T, service *mocks.MockAccountService) {
				service.EXPECT().Recharge(gomock.Any(), buyerID, int64(1)).
					Return(int64(0), &domain.AccountNotFoundError{Msg: "account not found"})
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockAccountService(ctrl)
			if tt.prepareFn != nil {
				tt.prepareFn(t, service)
			}

			c, writer := newTestContext(t, http.MethodPost, tt.requestBody, nil, tt.caller)
			NewAccountHandler(service).Recharge(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, writer.Body.String())
			}
		})
	}
}
