package stakingrouter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Router authorizes stakes. The self-service path is authorized by caller
// identity alone; the delegated path requires an EIP-712 signature from the
// beneficiary over its current nonce.
type Router struct {
	domain    Domain
	separator common.Hash
	nonces    NonceStore
	executor  Executor
	now       func() time.Time
	logger    *zap.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithClock overrides the time source used for deadline checks.
func WithClock(now func() time.Time) Option {
	return func(r *Router) {
		r.now = now
	}
}

// WithLogger sets the router's logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) {
		r.logger = l
	}
}

// NewRouter creates a router bound to domain. The domain separator is
// computed once here.
func NewRouter(domain Domain, nonces NonceStore, executor Executor, opts ...Option) *Router {
	r := &Router{
		domain:    domain,
		separator: domain.Separator(),
		nonces:    nonces,
		executor:  executor,
		now:       time.Now,
		logger:    logger.Log,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

func (r *Router) Domain() Domain {
	return r.domain
}

func (r *Router) DomainSeparator() common.Hash {
	return r.separator
}

// Nonce returns the next nonce a delegated signature for account must cover.
func (r *Router) Nonce(ctx context.Context, account common.Address) (uint64, error) {
	return r.nonces.Nonce(ctx, account)
}

// GetStakeDigest returns the digest a delegated stake signature must cover,
// using the account's current nonce.
func (r *Router) GetStakeDigest(ctx context.Context, account common.Address, amount *big.Int, deadline uint64) (common.Hash, error) {
	if !ValidAmount(amount) {
		return common.Hash{}, ErrInvalidAmount
	}
	nonce, err := r.nonces.Nonce(ctx, account)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to read nonce: %w", err)
	}
	return r.digest(account, amount, nonce, deadline), nil
}

// StakeAmpedForAccount stakes amount on behalf of account. Checks run in
// order: deadline, amount, then signature against the current nonce. Once
// they pass the nonce is consumed before the executor runs and is not
// restored if the executor fails.
func (r *Router) StakeAmpedForAccount(ctx context.Context, account common.Address, amount *big.Int, deadline uint64, sig Signature) (*StakeReceipt, error) {
	now := r.now().Unix()
	if deadline < uint64(now) {
		r.logger.Debug("Rejected expired authorization",
			logger.Account(account),
			zap.Uint64("deadline", deadline),
			zap.Int64("now", now),
		)
		return nil, ErrExpiredAuthorization
	}

	if !ValidAmount(amount) {
		return nil, ErrInvalidAmount
	}

	nonce, err := r.nonces.Nonce(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to read nonce: %w", err)
	}

	digest := r.digest(account, amount, nonce, deadline)
	signer, err := RecoverSigner(digest, sig)
	if err != nil {
		r.logger.Debug("Rejected malformed signature",
			logger.Account(account),
			zap.Error(err),
		)
		return nil, err
	}
	if signer != account {
		r.logger.Debug("Rejected authorization from wrong signer",
			logger.Account(account),
			zap.String("signer", signer.Hex()),
			logger.Nonce(nonce),
		)
		return nil, ErrInvalidAuthorization
	}

	if _, err := r.nonces.Consume(ctx, account, nonce); err != nil {
		if errors.Is(err, ErrNonceMismatch) {
			// another submission consumed this nonce first
			return nil, ErrInvalidAuthorization
		}
		return nil, fmt.Errorf("failed to consume nonce: %w", err)
	}

	r.logger.Info("Authorization consumed",
		logger.Account(account),
		logger.Nonce(nonce),
		zap.String("amount", amount.String()),
	)

	receipt, err := r.executor.Stake(ctx, account, amount)
	if err != nil {
		return nil, &ConsumedAuthorizationError{Account: account, Nonce: nonce, Err: err}
	}
	receipt.Nonce = &nonce
	return receipt, nil
}

// StakeAmped stakes amount for the caller itself. No signature, nonce or
// deadline is involved.
func (r *Router) StakeAmped(ctx context.Context, caller common.Address, amount *big.Int) (*StakeReceipt, error) {
	if !ValidAmount(amount) {
		return nil, ErrInvalidAmount
	}
	return r.executor.Stake(ctx, caller, amount)
}

func (r *Router) digest(account common.Address, amount *big.Int, nonce, deadline uint64) common.Hash {
	auth := StakeAuthorization{
		Account:  account,
		Amount:   amount,
		Nonce:    nonce,
		Deadline: deadline,
	}
	return TypedDataHash(r.separator, auth.StructHash())
}
