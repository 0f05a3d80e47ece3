package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidToken is returned when the provided token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnknownChallenge covers challenges that were never issued, already
	// answered, or expired.
	ErrUnknownChallenge = errors.New("unknown or expired challenge")
	// ErrWrongSigner is returned when a challenge is signed by another key.
	ErrWrongSigner = errors.New("challenge was not signed by the account")
	// ErrNoWallet is returned when a token does not carry the requested wallet.
	ErrNoWallet = errors.New("token does not carry the requested wallet")
	// ErrTooManyChallenges bounds the pending challenge set.
	ErrTooManyChallenges = errors.New("too many pending challenges")
)

// validMethods are the session algorithm plus the ones Web3Auth signs with.
var validMethods = []string{"HS256", "ES256", "RS256"}

const (
	sessionIssuer = "amped-api"

	defaultSessionTTL     = time.Hour
	defaultChallengeTTL   = 5 * time.Minute
	maxPendingChallenges  = 10000
	secp256k1Curve        = "secp256k1"
	challengeMessageTitle = "Sign in to Amped staking"
)

// Config configures wallet authentication. Web3Auth ID tokens are accepted
// only when Web3AuthJWKSURL is set.
type Config struct {
	SessionSecret []byte
	SessionTTL    time.Duration
	ChallengeTTL  time.Duration

	Web3AuthJWKSURL  string
	Web3AuthIssuer   string
	Web3AuthAudience string
}

// Web3AuthWallet is a wallet entry of a Web3Auth ID token.
type Web3AuthWallet struct {
	PublicKey string `json:"public_key"`
	Type      string `json:"type"`
	Curve     string `json:"curve,omitempty"`
	Address   string `json:"address,omitempty"`
}

// WalletClaims covers both session tokens issued by Login and Web3Auth ID
// tokens. Session tokens carry Address; Web3Auth tokens carry Wallets.
type WalletClaims struct {
	jwt.RegisteredClaims
	Address string           `json:"address,omitempty"`
	Wallets []Web3AuthWallet `json:"wallets,omitempty"`
}

// Challenge is the message a wallet signs to open a session.
type Challenge struct {
	Account   common.Address
	Nonce     string
	Message   string
	ExpiresAt time.Time
}

// Session is a bearer token bound to one account.
type Session struct {
	Token     string
	Account   common.Address
	ExpiresAt time.Time
}

// AuthClient authenticates wallet owners for the self-service stake path.
type AuthClient struct {
	cfg    Config
	jwks   *keyfunc.JWKS
	now    func() time.Time
	logger *zap.Logger

	mu         sync.Mutex
	challenges map[string]Challenge
}

// Option configures an AuthClient.
type Option func(*AuthClient)

// WithJWKS sets the key set for Web3Auth tokens instead of fetching
// Web3AuthJWKSURL.
func WithJWKS(jwks *keyfunc.JWKS) Option {
	return func(ac *AuthClient) {
		ac.jwks = jwks
	}
}

// WithClock overrides the time source for challenges and token expiry.
func WithClock(now func() time.Time) Option {
	return func(ac *AuthClient) {
		ac.now = now
	}
}

func NewAuthClient(cfg Config, opts ...Option) (*AuthClient, error) {
	if len(cfg.SessionSecret) == 0 {
		return nil, errors.New("session secret is required")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.ChallengeTTL <= 0 {
		cfg.ChallengeTTL = defaultChallengeTTL
	}

	ac := &AuthClient{
		cfg:        cfg,
		now:        time.Now,
		logger:     logger.Log,
		challenges: make(map[string]Challenge),
	}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.logger == nil {
		ac.logger = zap.NewNop()
	}

	if ac.jwks == nil && cfg.Web3AuthJWKSURL != "" {
		if err := ac.initializeJWKS(); err != nil {
			return nil, err
		}
	}
	return ac, nil
}

func (ac *AuthClient) initializeJWKS() error {
	jwks, err := keyfunc.Get(ac.cfg.Web3AuthJWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   10 * time.Second,
		RefreshErrorHandler: func(err error) {
			ac.logger.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS: %w", err)
	}
	ac.jwks = jwks

	ac.logger.Info("Web3Auth JWKS initialized",
		zap.String("jwks_url", ac.cfg.Web3AuthJWKSURL),
		zap.String("issuer", ac.cfg.Web3AuthIssuer),
	)
	return nil
}

// Close stops the JWKS background refresh.
func (ac *AuthClient) Close() {
	if ac.jwks != nil {
		ac.jwks.EndBackground()
	}
}

// Challenge issues a single-use sign-in message for account.
func (ac *AuthClient) Challenge(account common.Address) (Challenge, error) {
	now := ac.now()
	ch := Challenge{
		Account:   account,
		Nonce:     uuid.NewString(),
		ExpiresAt: now.Add(ac.cfg.ChallengeTTL).UTC().Truncate(time.Second),
	}
	ch.Message = fmt.Sprintf("%s\n\nAccount: %s\nNonce: %s\nExpires: %s",
		challengeMessageTitle, account.Hex(), ch.Nonce, ch.ExpiresAt.Format(time.RFC3339))

	ac.mu.Lock()
	defer ac.mu.Unlock()
	for nonce, pending := range ac.challenges {
		if !now.Before(pending.ExpiresAt) {
			delete(ac.challenges, nonce)
		}
	}
	if len(ac.challenges) >= maxPendingChallenges {
		return Challenge{}, ErrTooManyChallenges
	}
	ac.challenges[ch.Nonce] = ch
	return ch, nil
}

// Login exchanges a signed challenge for a session token. A challenge is
// spent by the first attempt, whether or not it succeeds.
func (ac *AuthClient) Login(nonce string, sig stakingrouter.Signature) (*Session, error) {
	ac.mu.Lock()
	ch, ok := ac.challenges[nonce]
	delete(ac.challenges, nonce)
	ac.mu.Unlock()

	now := ac.now()
	if !ok || !now.Before(ch.ExpiresAt) {
		return nil, ErrUnknownChallenge
	}

	signer, err := stakingrouter.RecoverSigner(common.BytesToHash(accounts.TextHash([]byte(ch.Message))), sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrongSigner, err)
	}
	if signer != ch.Account {
		ac.logger.Debug("Rejected sign-in from wrong signer",
			logger.Account(ch.Account),
			zap.String("signer", signer.Hex()),
		)
		return nil, ErrWrongSigner
	}

	expiresAt := now.Add(ac.cfg.SessionTTL).Truncate(time.Second)
	claims := WalletClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   ch.Account.Hex(),
			ID:        ch.Nonce,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Address: ch.Account.Hex(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ac.cfg.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	ac.logger.Info("Wallet session opened", logger.Account(ch.Account))
	return &Session{Token: token, Account: ch.Account, ExpiresAt: expiresAt}, nil
}

// Verify validates a bearer token and returns the wallet it authenticates.
// A zero want selects the token's first wallet; otherwise want must be one
// of them.
func (ac *AuthClient) Verify(tokenString string, want common.Address) (common.Address, error) {
	claims := &WalletClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ac.keyfunc,
		jwt.WithValidMethods(validMethods),
		jwt.WithTimeFunc(ac.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return common.Address{}, ErrInvalidToken
	}

	var wallets []common.Address
	if _, session := token.Method.(*jwt.SigningMethodHMAC); session {
		if claims.Issuer != sessionIssuer || !common.IsHexAddress(claims.Address) {
			return common.Address{}, fmt.Errorf("%w: malformed session claims", ErrInvalidToken)
		}
		wallets = []common.Address{common.HexToAddress(claims.Address)}
	} else {
		if err := ac.checkWeb3AuthClaims(claims); err != nil {
			return common.Address{}, err
		}
		wallets = claims.walletAddresses()
	}

	if len(wallets) == 0 {
		return common.Address{}, ErrNoWallet
	}
	if want == (common.Address{}) {
		return wallets[0], nil
	}
	for _, w := range wallets {
		if w == want {
			return w, nil
		}
	}
	return common.Address{}, ErrNoWallet
}

func (ac *AuthClient) keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
		return ac.cfg.SessionSecret, nil
	}
	if ac.jwks == nil {
		return nil, fmt.Errorf("no key set for %s tokens", token.Method.Alg())
	}
	return ac.jwks.Keyfunc(token)
}

func (ac *AuthClient) checkWeb3AuthClaims(claims *WalletClaims) error {
	if ac.cfg.Web3AuthIssuer != "" && claims.Issuer != ac.cfg.Web3AuthIssuer {
		ac.logger.Debug("Issuer mismatch",
			zap.String("expected", ac.cfg.Web3AuthIssuer),
			zap.String("actual", claims.Issuer),
		)
		return fmt.Errorf("%w: invalid issuer", ErrInvalidToken)
	}
	if ac.cfg.Web3AuthAudience != "" {
		for _, aud := range claims.Audience {
			if aud == ac.cfg.Web3AuthAudience {
				return nil
			}
		}
		ac.logger.Debug("Audience mismatch",
			zap.String("expected", ac.cfg.Web3AuthAudience),
			zap.Strings("actual", claims.Audience),
		)
		return fmt.Errorf("%w: invalid audience", ErrInvalidToken)
	}
	return nil
}

// walletAddresses lists the EVM wallets of a Web3Auth token. Entries without
// an address are derived from their secp256k1 public key.
func (c *WalletClaims) walletAddresses() []common.Address {
	var out []common.Address
	for _, w := range c.Wallets {
		if common.IsHexAddress(w.Address) {
			out = append(out, common.HexToAddress(w.Address))
			continue
		}
		if w.Curve != secp256k1Curve || w.PublicKey == "" {
			continue
		}
		raw := common.FromHex(w.PublicKey)
		if len(raw) == 33 {
			if pub, err := crypto.DecompressPubkey(raw); err == nil {
				out = append(out, crypto.PubkeyToAddress(*pub))
			}
		} else if pub, err := crypto.UnmarshalPubkey(raw); err == nil {
			out = append(out, crypto.PubkeyToAddress(*pub))
		}
	}
	return out
}
