package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/amped-finance/amped-api/libs/go/client/auth"
	"github.com/amped-finance/amped-api/libs/go/middleware"
	"github.com/amped-finance/amped-api/libs/go/signer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authTestEnv struct {
	*stakingTestEnv
	wallet *signer.Signer
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	base := newStakingTestEnv(t, false)
	handler := NewAuthHandler(base.auth)

	r := gin.New()
	r.Use(middleware.CorrelationIDMiddleware())
	r.POST("/api/v1/auth/challenge", handler.Challenge)
	r.POST("/api/v1/auth/session", handler.Session)
	base.router = r

	wallet, err := signer.FromHex(testAccountKey)
	require.NoError(t, err)
	return &authTestEnv{stakingTestEnv: base, wallet: wallet}
}

func (env *authTestEnv) challenge(t *testing.T) ChallengeResponse {
	t.Helper()
	w := env.do(http.MethodPost, "/api/v1/auth/challenge", ChallengeRequest{Account: testAccountHex}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var ch ChallengeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ch))
	return ch
}

func TestAuthHandler_SessionFlow(t *testing.T) {
	env := newAuthTestEnv(t)

	ch := env.challenge(t)
	assert.Equal(t, testAccountHex, ch.Account)
	assert.Contains(t, ch.Message, testAccountHex)
	assert.Contains(t, ch.Message, ch.Nonce)

	sig, err := env.wallet.SignText(ch.Message)
	require.NoError(t, err)

	w := env.do(http.MethodPost, "/api/v1/auth/session", SessionRequest{Nonce: ch.Nonce, Signature: sig.Hex()}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var session SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "Bearer", session.TokenType)
	assert.Equal(t, testAccountHex, session.Account)

	account, err := env.auth.Verify(session.Token, testAccount)
	require.NoError(t, err)
	assert.Equal(t, testAccount, account)

	// a challenge opens one session only
	w = env.do(http.MethodPost, "/api/v1/auth/session", SessionRequest{Nonce: ch.Nonce, Signature: sig.Hex()}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Session_Rejections(t *testing.T) {
	const otherKey = "0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a"

	t.Run("signed by another wallet", func(t *testing.T) {
		env := newAuthTestEnv(t)
		ch := env.challenge(t)
		other, err := signer.FromHex(otherKey)
		require.NoError(t, err)
		sig, err := other.SignText(ch.Message)
		require.NoError(t, err)

		w := env.do(http.MethodPost, "/api/v1/auth/session", SessionRequest{Nonce: ch.Nonce, Signature: sig.Hex()}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), auth.ErrWrongSigner.Error())
	})

	t.Run("unknown nonce", func(t *testing.T) {
		env := newAuthTestEnv(t)
		sig, err := env.wallet.SignText("anything")
		require.NoError(t, err)

		w := env.do(http.MethodPost, "/api/v1/auth/session", SessionRequest{Nonce: "nope", Signature: sig.Hex()}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed signature", func(t *testing.T) {
		env := newAuthTestEnv(t)
		ch := env.challenge(t)

		w := env.do(http.MethodPost, "/api/v1/auth/session", SessionRequest{Nonce: ch.Nonce, Signature: "0x1234"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid account", func(t *testing.T) {
		env := newAuthTestEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/challenge", ChallengeRequest{Account: "0x1234"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
