package auth

import (
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/common"
)

// WalletAuthenticator is the sign-in surface the API handlers use.
// *AuthClient implements it.
type WalletAuthenticator interface {
	Challenge(account common.Address) (Challenge, error)
	Login(nonce string, sig stakingrouter.Signature) (*Session, error)
	Verify(token string, want common.Address) (common.Address, error)
}

var _ WalletAuthenticator = (*AuthClient)(nil)
