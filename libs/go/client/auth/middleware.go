package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amped-finance/amped-api/libs/go/middleware"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	// AccountHeader picks one wallet out of a multi-wallet token.
	AccountHeader = "X-Account"

	callerKey = "walletCaller"
)

// RequireWallet admits requests bearing a session or Web3Auth token and
// stores the authenticated wallet for Caller. X-Account, when present, must
// name one of the token's wallets.
func (ac *AuthClient) RequireWallet() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthorizationHeader)
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			abort(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		var want common.Address
		if v := c.GetHeader(AccountHeader); v != "" {
			if !common.IsHexAddress(v) {
				abort(c, http.StatusBadRequest, "invalid X-Account header")
				return
			}
			want = common.HexToAddress(v)
		}

		account, err := ac.Verify(token, want)
		if err != nil {
			middleware.LogWithCorrelationID(c.Request.Context()).Debug("Rejected wallet token",
				zap.Error(err),
				zap.String("client_ip", c.ClientIP()),
			)
			if errors.Is(err, ErrNoWallet) {
				abort(c, http.StatusForbidden, "token does not authorize this account")
				return
			}
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(callerKey, account)
		c.Next()
	}
}

// Caller returns the wallet authenticated by RequireWallet.
func Caller(c *gin.Context) (common.Address, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return common.Address{}, false
	}
	account, ok := v.(common.Address)
	return account, ok
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":          message,
		"correlation_id": middleware.GetCorrelationID(c),
	})
}
