package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amped-finance/amped-api/libs/go/client/auth"
	"github.com/amped-finance/amped-api/libs/go/db"
	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/amped-finance/amped-api/libs/go/middleware"
	"github.com/amped-finance/amped-api/libs/go/mocks"
	"github.com/amped-finance/amped-api/libs/go/services"
	"github.com/amped-finance/amped-api/libs/go/signer"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/amped-finance/amped-api/libs/go/types/business"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

const (
	// second hardhat development account
	testAccountKey = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	testAccountHex = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testDeadline   = uint64(1_900_000_000)
)

var (
	testAccount   = common.HexToAddress(testAccountHex)
	testSignature = "0x" + strings.Repeat("11", 32) + strings.Repeat("22", 32) + "1b"
)

// bigMatcher compares *big.Int by value.
type bigMatcher struct{ want *big.Int }

func bigEq(v int64) gomock.Matcher { return bigMatcher{want: big.NewInt(v)} }

func (m bigMatcher) Matches(x interface{}) bool {
	got, ok := x.(*big.Int)
	return ok && got != nil && got.Cmp(m.want) == 0
}

func (m bigMatcher) String() string { return "is " + m.want.String() }

type stakingTestEnv struct {
	staking *mocks.MockStakingService
	relay   *mocks.MockRelayQueue
	router  *gin.Engine
	handler *StakingHandler
	auth    *auth.AuthClient
}

func newStakingTestEnv(t *testing.T, withRelay bool) *stakingTestEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	authClient, err := auth.NewAuthClient(auth.Config{SessionSecret: []byte("handler-test-secret")})
	require.NoError(t, err)

	env := &stakingTestEnv{staking: mocks.NewMockStakingService(ctrl), auth: authClient}
	if withRelay {
		env.relay = mocks.NewMockRelayQueue(ctrl)
		env.handler = NewStakingHandler(env.staking, env.relay)
	} else {
		env.handler = NewStakingHandler(env.staking, nil)
	}
	env.handler.now = func() time.Time { return time.Unix(1_800_000_000, 0) }

	r := gin.New()
	r.Use(middleware.CorrelationIDMiddleware())
	staking := r.Group("/api/v1/staking")
	staking.GET("/domain", env.handler.GetDomain)
	staking.GET("/nonce/:account", env.handler.GetNonce)
	staking.GET("/digest", env.handler.GetDigest)
	staking.POST("/stake", authClient.RequireWallet(), env.handler.Stake)
	staking.POST("/stake-for-account", env.handler.StakeForAccount)
	staking.POST("/relay", env.handler.Relay)
	staking.GET("/authorizations/:account", env.handler.ListAuthorizations)
	env.router = r
	return env
}

func (env *stakingTestEnv) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// bearer opens a wallet session for key and returns its Authorization header.
func (env *stakingTestEnv) bearer(t *testing.T, key string) map[string]string {
	t.Helper()
	wallet, err := signer.FromHex(key)
	require.NoError(t, err)
	ch, err := env.auth.Challenge(wallet.Address())
	require.NoError(t, err)
	sig, err := wallet.SignText(ch.Message)
	require.NoError(t, err)
	session, err := env.auth.Login(ch.Nonce, sig)
	require.NoError(t, err)
	return map[string]string{auth.AuthorizationHeader: "Bearer " + session.Token}
}

func TestStakingHandler_GetDomain(t *testing.T) {
	env := newStakingTestEnv(t, false)
	domain := stakingrouter.NewDomain(big.NewInt(146), common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"))
	env.staking.EXPECT().Domain().Return(domain)
	env.staking.EXPECT().DomainSeparator().Return(domain.Separator())

	w := env.do(http.MethodGet, "/api/v1/staking/domain", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp DomainResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AmpedStakingRouter", resp.Name)
	assert.Equal(t, "2", resp.Version)
	assert.Equal(t, "146", resp.ChainID)
	assert.Equal(t, domain.Separator().Hex(), resp.Separator)
}

func TestStakingHandler_GetNonce(t *testing.T) {
	tests := []struct {
		name           string
		account        string
		setupMocks     func(env *stakingTestEnv)
		expectedStatus int
		expectedNonce  uint64
	}{
		{
			name:    "returns nonce",
			account: testAccountHex,
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().Nonce(gomock.Any(), testAccount).Return(uint64(5), nil)
			},
			expectedStatus: http.StatusOK,
			expectedNonce:  5,
		},
		{
			name:           "invalid address",
			account:        "0x1234",
			setupMocks:     func(env *stakingTestEnv) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "store failure",
			account: testAccountHex,
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().Nonce(gomock.Any(), testAccount).Return(uint64(0), errors.New("redis: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newStakingTestEnv(t, false)
			tt.setupMocks(env)

			w := env.do(http.MethodGet, "/api/v1/staking/nonce/"+tt.account, nil, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp NonceResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedNonce, resp.Nonce)
				assert.Equal(t, testAccount.Hex(), resp.Account)
			}
		})
	}
}

func TestStakingHandler_GetDigest(t *testing.T) {
	digest := common.HexToHash("0xabc123")

	tests := []struct {
		name           string
		query          string
		setupMocks     func(env *stakingTestEnv)
		expectedStatus int
	}{
		{
			name:  "returns digest",
			query: fmt.Sprintf("?account=%s&amount=1000&deadline=%d", testAccountHex, testDeadline),
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().PrepareDigest(gomock.Any(), testAccount, bigEq(1000), testDeadline).
					Return(&business.StakeDigest{Account: testAccount, Amount: big.NewInt(1000), Nonce: 2, Deadline: testDeadline, Digest: digest}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non numeric amount",
			query:          fmt.Sprintf("?account=%s&amount=lots&deadline=%d", testAccountHex, testDeadline),
			setupMocks:     func(env *stakingTestEnv) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing deadline",
			query:          fmt.Sprintf("?account=%s&amount=1", testAccountHex),
			setupMocks:     func(env *stakingTestEnv) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "zero amount rejected by router",
			query: fmt.Sprintf("?account=%s&amount=0&deadline=%d", testAccountHex, testDeadline),
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().PrepareDigest(gomock.Any(), testAccount, bigEq(0), testDeadline).
					Return(nil, stakingrouter.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "nonce moved",
			query: fmt.Sprintf("?account=%s&amount=5&deadline=%d", testAccountHex, testDeadline),
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().PrepareDigest(gomock.Any(), testAccount, bigEq(5), testDeadline).
					Return(nil, services.ErrDigestMismatch)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newStakingTestEnv(t, false)
			tt.setupMocks(env)

			w := env.do(http.MethodGet, "/api/v1/staking/digest"+tt.query, nil, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp DigestResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, digest.Hex(), resp.Digest)
				assert.Equal(t, uint64(2), resp.Nonce)
				assert.Equal(t, "1000", resp.Amount)
			}
		})
	}
}

func TestStakingHandler_Stake(t *testing.T) {
	const otherKey = "0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a"

	tests := []struct {
		name           string
		headers        func(t *testing.T, env *stakingTestEnv) map[string]string
		body           interface{}
		setupMocks     func(env *stakingTestEnv)
		expectedStatus int
	}{
		{
			name:    "stakes for the authenticated wallet",
			headers: func(t *testing.T, env *stakingTestEnv) map[string]string { return env.bearer(t, testAccountKey) },
			body:    StakeRequest{Amount: "250"},
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().Stake(gomock.Any(), testAccount, bigEq(250)).
					Return(&stakingrouter.StakeReceipt{Account: testAccount, AmountIn: big.NewInt(250), AmountStaked: big.NewInt(250)}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing token",
			headers:        func(t *testing.T, env *stakingTestEnv) map[string]string { return nil },
			body:           StakeRequest{Amount: "250"},
			setupMocks:     func(env *stakingTestEnv) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "account header alone is not authentication",
			headers: func(t *testing.T, env *stakingTestEnv) map[string]string {
				return map[string]string{auth.AccountHeader: testAccountHex}
			},
			body:           StakeRequest{Amount: "250"},
			setupMocks:     func(env *stakingTestEnv) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "another wallet's token cannot stake for the account",
			headers: func(t *testing.T, env *stakingTestEnv) map[string]string {
				h := env.bearer(t, otherKey)
				h[auth.AccountHeader] = testAccountHex
				return h
			},
			body:           StakeRequest{Amount: "250"},
			setupMocks:     func(env *stakingTestEnv) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing amount",
			headers:        func(t *testing.T, env *stakingTestEnv) map[string]string { return env.bearer(t, testAccountKey) },
			body:           map[string]string{},
			setupMocks:     func(env *stakingTestEnv) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "swap disabled",
			headers: func(t *testing.T, env *stakingTestEnv) map[string]string { return env.bearer(t, testAccountKey) },
			body:    StakeRequest{Amount: "250"},
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().Stake(gomock.Any(), testAccount, bigEq(250)).
					Return(nil, &stakingrouter.CollaboratorError{Op: "swap", Err: stakingrouter.ErrSwapDisabled})
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newStakingTestEnv(t, false)
			tt.setupMocks(env)

			w := env.do(http.MethodPost, "/api/v1/staking/stake", tt.body, tt.headers(t, env))

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestStakingHandler_StakeForAccount(t *testing.T) {
	validBody := StakeForAccountRequest{
		Account:   testAccountHex,
		Amount:    "1000",
		Deadline:  testDeadline,
		Signature: testSignature,
	}
	v := uint8(27)
	componentBody := StakeForAccountRequest{
		Account:  testAccountHex,
		Amount:   "1000",
		Deadline: testDeadline,
		V:        &v,
		R:        "0x" + strings.Repeat("11", 32),
		S:        "0x" + strings.Repeat("22", 32),
	}
	expectedSig, err := stakingrouter.ParseSignature(testSignature)
	require.NoError(t, err)
	nonce := uint64(0)

	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(env *stakingTestEnv)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "accepted signature stakes",
			body: validBody,
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().StakeForAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req business.DelegatedStake) (*stakingrouter.StakeReceipt, error) {
						assert.Equal(t, testAccount, req.Account)
						assert.Equal(t, expectedSig, req.Signature)
						assert.NotEmpty(t, req.CorrelationID)
						return &stakingrouter.StakeReceipt{Account: testAccount, AmountIn: big.NewInt(1000), AmountStaked: big.NewInt(1000), Nonce: &nonce}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "signature as components",
			body: componentBody,
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().StakeForAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req business.DelegatedStake) (*stakingrouter.StakeReceipt, error) {
						assert.Equal(t, expectedSig, req.Signature)
						return &stakingrouter.StakeReceipt{Account: testAccount}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "expired deadline",
			body: validBody,
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().StakeForAccount(gomock.Any(), gomock.Any()).Return(nil, stakingrouter.ErrExpiredAuthorization)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "AmpedStakingRouter: expired deadline",
		},
		{
			name: "wrong signer",
			body: validBody,
			setupMocks: func(env *stakingTestEnv) {
				env.staking.EXPECT().StakeForAccount(gomock.Any(), gomock.Any()).Return(nil, stakingrouter.ErrInvalidAuthorization)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "AmpedStakingRouter: invalid signature",
		},
		{
			name:           "short signature",
			body:           StakeForAccountRequest{Account: testAccountHex, Amount: "1", Deadline: testDeadline, Signature: "0x1234"},
			setupMocks:     func(env *stakingTestEnv) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "both signature forms",
			body: StakeForAccountRequest{
				Account: testAccountHex, Amount: "1", Deadline: testDeadline,
				Signature: testSignature, V: &v, R: componentBody.R, S: componentBody.S,
			},
			setupMocks:     func(env *stakingTestEnv) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing signature",
			body:           StakeForAccountRequest{Account: testAccountHex, Amount: "1", Deadline: testDeadline},
			setupMocks:     func(env *stakingTestEnv) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newStakingTestEnv(t, false)
			tt.setupMocks(env)

			w := env.do(http.MethodPost, "/api/v1/staking/stake-for-account", tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				assert.NotEmpty(t, resp.CorrelationID)
			}
		})
	}
}

func TestStakingHandler_StakeForAccount_NonceConsumed(t *testing.T) {
	env := newStakingTestEnv(t, false)
	failure := &stakingrouter.ConsumedAuthorizationError{
		Account: testAccount,
		Nonce:   3,
		Err:     &stakingrouter.CollaboratorError{Op: "swap", Err: stakingrouter.ErrSwapDisabled},
	}
	env.staking.EXPECT().StakeForAccount(gomock.Any(), gomock.Any()).Return(nil, failure)

	w := env.do(http.MethodPost, "/api/v1/staking/stake-for-account", StakeForAccountRequest{
		Account: testAccountHex, Amount: "1000", Deadline: testDeadline, Signature: testSignature,
	}, nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp StakeFailureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(3), resp.NonceConsumed)
	assert.Equal(t, testAccount.Hex(), resp.Account)
	assert.Contains(t, resp.Error, "AmpedStakingRouter: swap disabled")
}

func TestStakingHandler_Relay(t *testing.T) {
	body := StakeForAccountRequest{Account: testAccountHex, Amount: "1000", Deadline: testDeadline, Signature: testSignature}

	t.Run("queues task", func(t *testing.T) {
		env := newStakingTestEnv(t, true)
		env.staking.EXPECT().SwapEnabled().Return(true, nil)
		var queued business.RelayTask
		env.relay.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task business.RelayTask) error {
				queued = task
				return nil
			})

		w := env.do(http.MethodPost, "/api/v1/staking/relay", body, map[string]string{middleware.CorrelationIDHeader: "corr-42"})

		require.Equal(t, http.StatusAccepted, w.Code)
		var resp RelayAcceptedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, queued.ID.String(), resp.TaskID)
		assert.Equal(t, "queued", resp.Status)
		assert.Equal(t, "corr-42", queued.CorrelationID)
		assert.Equal(t, testDeadline, queued.Deadline)
	})

	t.Run("expired deadline is not queued", func(t *testing.T) {
		env := newStakingTestEnv(t, true)
		expired := body
		expired.Deadline = 1_700_000_000

		w := env.do(http.MethodPost, "/api/v1/staking/relay", expired, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("swap disabled is refused before queueing", func(t *testing.T) {
		env := newStakingTestEnv(t, true)
		env.staking.EXPECT().SwapEnabled().Return(false, nil)

		w := env.do(http.MethodPost, "/api/v1/staking/relay", body, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "AmpedStakingRouter: swap disabled")
	})

	t.Run("no local toggle still queues", func(t *testing.T) {
		env := newStakingTestEnv(t, true)
		env.staking.EXPECT().SwapEnabled().Return(false, services.ErrSwapToggleUnavailable)
		env.relay.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		w := env.do(http.MethodPost, "/api/v1/staking/relay", body, nil)
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("queue full", func(t *testing.T) {
		env := newStakingTestEnv(t, true)
		env.staking.EXPECT().SwapEnabled().Return(true, nil)
		env.relay.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(services.ErrRelayQueueFull)

		w := env.do(http.MethodPost, "/api/v1/staking/relay", body, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("relay not configured", func(t *testing.T) {
		env := newStakingTestEnv(t, false)

		w := env.do(http.MethodPost, "/api/v1/staking/relay", body, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestStakingHandler_ListAuthorizations(t *testing.T) {
	t.Run("ledger not configured", func(t *testing.T) {
		env := newStakingTestEnv(t, false)
		env.staking.EXPECT().ListAuthorizations(gomock.Any(), testAccount, int32(20), int32(0)).
			Return(nil, services.ErrLedgerUnavailable)

		w := env.do(http.MethodGet, "/api/v1/staking/authorizations/"+testAccountHex, nil, nil)
		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})

	t.Run("lists rows", func(t *testing.T) {
		env := newStakingTestEnv(t, false)
		row := db.StakeAuthorization{
			ID:           uuid.New(),
			Account:      strings.ToLower(testAccountHex),
			Amount:       db.BigIntToNumeric(big.NewInt(1000)),
			Nonce:        pgtype.Int8{Int64: 3, Valid: true},
			Deadline:     int64(testDeadline),
			Delegated:    true,
			Outcome:      db.AuthorizationOutcomeCollaboratorFailed,
			ErrorMessage: pgtype.Text{String: "swap: AmpedStakingRouter: swap disabled", Valid: true},
			CreatedAt:    pgtype.Timestamptz{Time: time.Unix(1_800_000_000, 0).UTC(), Valid: true},
		}
		env.staking.EXPECT().ListAuthorizations(gomock.Any(), testAccount, int32(2), int32(4)).
			Return([]db.StakeAuthorization{row}, nil)

		w := env.do(http.MethodGet, "/api/v1/staking/authorizations/"+testAccountHex+"?limit=2&offset=4", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Object  string                       `json:"object"`
			Data    []StakeAuthorizationResponse `json:"data"`
			HasMore bool                         `json:"has_more"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "list", resp.Object)
		assert.False(t, resp.HasMore)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "1000", resp.Data[0].Amount)
		assert.Equal(t, "collaborator_failed", resp.Data[0].Outcome)
		require.NotNil(t, resp.Data[0].Nonce)
		assert.Equal(t, int64(3), *resp.Data[0].Nonce)
	})
}

func TestStakingErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{stakingrouter.ErrInvalidAmount, http.StatusBadRequest},
		{stakingrouter.ErrExpiredAuthorization, http.StatusBadRequest},
		{stakingrouter.ErrInvalidAuthorization, http.StatusUnauthorized},
		{fmt.Errorf("%w: high s", stakingrouter.ErrMalformedSignature), http.StatusUnauthorized},
		{&stakingrouter.CollaboratorError{Op: "transferFrom", Err: errors.New("insufficient allowance")}, http.StatusUnprocessableEntity},
		{services.ErrRelayCircuitOpen, http.StatusServiceUnavailable},
		{services.ErrSwapToggleUnavailable, http.StatusNotImplemented},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, _ := stakingErrorStatus(tt.err)
			assert.Equal(t, tt.status, status)
		})
	}
}
