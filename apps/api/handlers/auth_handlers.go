package handlers

import (
	"errors"
	"net/http"

	"github.com/amped-finance/amped-api/libs/go/client/auth"
	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/amped-finance/amped-api/libs/go/types/api/requests"
	"github.com/amped-finance/amped-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// AuthHandler opens wallet sessions for the self-service stake path.
type AuthHandler struct {
	auth auth.WalletAuthenticator
}

type ChallengeRequest = requests.ChallengeRequest
type SessionRequest = requests.SessionRequest
type ChallengeResponse = responses.ChallengeResponse
type SessionResponse = responses.SessionResponse

func NewAuthHandler(authenticator auth.WalletAuthenticator) *AuthHandler {
	return &AuthHandler{auth: authenticator}
}

// Challenge godoc
// @Summary Request a sign-in challenge
// @Description Returns a single-use message the wallet signs with personal_sign to open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChallengeRequest true "Wallet address"
// @Success 200 {object} ChallengeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /auth/challenge [post]
func (h *AuthHandler) Challenge(c *gin.Context) {
	var req ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	account, err := helpers.ParseAddress(req.Account)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account address", err)
		return
	}

	ch, err := h.auth.Challenge(account)
	if err != nil {
		if errors.Is(err, auth.ErrTooManyChallenges) {
			sendError(c, http.StatusServiceUnavailable, err.Error(), err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	sendSuccess(c, http.StatusOK, ChallengeResponse{
		Account:   ch.Account.Hex(),
		Nonce:     ch.Nonce,
		Message:   ch.Message,
		ExpiresAt: ch.ExpiresAt,
	})
}

// Session godoc
// @Summary Open a wallet session
// @Description Exchanges a signed challenge for a bearer token bound to the wallet
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SessionRequest true "Signed challenge"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/session [post]
func (h *AuthHandler) Session(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	sig, err := stakingrouter.ParseSignature(req.Signature)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid signature", err)
		return
	}

	session, err := h.auth.Login(req.Nonce, sig)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUnknownChallenge), errors.Is(err, auth.ErrWrongSigner):
			sendError(c, http.StatusUnauthorized, err.Error(), err)
		default:
			sendError(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, SessionResponse{
		Token:     session.Token,
		TokenType: "Bearer",
		Account:   session.Account.Hex(),
		ExpiresAt: session.ExpiresAt,
	})
}
