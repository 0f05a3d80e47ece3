package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/amped-finance/amped-api/libs/go/db"
	"github.com/amped-finance/amped-api/libs/go/interfaces"
	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/amped-finance/amped-api/libs/go/metrics"
	"github.com/amped-finance/amped-api/libs/go/middleware"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/amped-finance/amped-api/libs/go/types/business"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrSwapToggleUnavailable = errors.New("swap toggle is not available in this router mode")
	ErrLedgerUnavailable     = errors.New("authorization ledger is not configured")
	ErrDigestMismatch        = errors.New("router digest does not match the typed data; the nonce may have advanced")
)

const (
	pathDelegated   = "delegated"
	pathSelfService = "self_service"
)

// StakingService fronts a StakingRouter for the API and the relay: it
// prepares digests, submits stakes and records every attempt.
type StakingService struct {
	router   interfaces.StakingRouter
	toggle   interfaces.SwapToggle
	recorder interfaces.AuthorizationRecorder
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewStakingService creates the service. toggle is nil when the router has
// no local executor; recorder is nil when no ledger is configured.
func NewStakingService(router interfaces.StakingRouter, toggle interfaces.SwapToggle, recorder interfaces.AuthorizationRecorder, m *metrics.Metrics) *StakingService {
	l := logger.Log
	if l == nil {
		l = zap.NewNop()
	}
	return &StakingService{
		router:   router,
		toggle:   toggle,
		recorder: recorder,
		metrics:  m,
		logger:   l,
	}
}

var _ interfaces.StakingService = (*StakingService)(nil)

func (s *StakingService) Domain() stakingrouter.Domain {
	return s.router.Domain()
}

func (s *StakingService) DomainSeparator() common.Hash {
	return s.router.DomainSeparator()
}

func (s *StakingService) Nonce(ctx context.Context, account common.Address) (uint64, error) {
	return s.router.Nonce(ctx, account)
}

// PrepareDigest returns the digest for account's current nonce together
// with the equivalent typed-data payload. The router's digest is checked
// against the locally hashed payload.
func (s *StakingService) PrepareDigest(ctx context.Context, account common.Address, amount *big.Int, deadline uint64) (*business.StakeDigest, error) {
	nonce, err := s.router.Nonce(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to read nonce: %w", err)
	}
	digest, err := s.router.GetStakeDigest(ctx, account, amount, deadline)
	if err != nil {
		return nil, err
	}

	typed := stakingrouter.TypedData(s.router.Domain(), stakingrouter.StakeAuthorization{
		Account:  account,
		Amount:   amount,
		Nonce:    nonce,
		Deadline: deadline,
	})
	local, err := stakingrouter.HashTypedData(typed)
	if err != nil {
		return nil, fmt.Errorf("failed to hash typed data: %w", err)
	}
	if local != digest {
		return nil, ErrDigestMismatch
	}

	return &business.StakeDigest{
		Account:   account,
		Amount:    new(big.Int).Set(amount),
		Nonce:     nonce,
		Deadline:  deadline,
		Digest:    digest,
		TypedData: typed,
	}, nil
}

// StakeForAccount submits a delegated stake. The router's result is returned
// unchanged; the ledger write is best effort.
func (s *StakingService) StakeForAccount(ctx context.Context, req business.DelegatedStake) (*stakingrouter.StakeReceipt, error) {
	log := middleware.LogWithCorrelationID(ctx)
	receipt, err := s.router.StakeAmpedForAccount(ctx, req.Account, req.Amount, req.Deadline, req.Signature)

	attempt := db.AuthorizationAttempt{
		Account:       req.Account,
		Relayer:       req.Relayer,
		Amount:        req.Amount,
		Deadline:      req.Deadline,
		Delegated:     true,
		Receipt:       receipt,
		Err:           err,
		CorrelationID: req.CorrelationID,
	}
	var consumed *stakingrouter.ConsumedAuthorizationError
	switch {
	case receipt != nil && receipt.Nonce != nil:
		attempt.Nonce = receipt.Nonce
	case errors.As(err, &consumed):
		attempt.Nonce = &consumed.Nonce
	}
	s.observe(ctx, pathDelegated, attempt)

	if err != nil {
		log.Info("Delegated stake rejected",
			logger.Account(req.Account),
			zap.String("outcome", string(db.OutcomeFor(err))),
			zap.Error(err),
		)
		return nil, err
	}
	log.Info("Delegated stake completed",
		logger.Account(req.Account),
		zap.String("amount", req.Amount.String()),
		zap.Uint64p("nonce", receipt.Nonce),
	)
	return receipt, nil
}

// Stake is the self-service path for caller.
func (s *StakingService) Stake(ctx context.Context, caller common.Address, amount *big.Int) (*stakingrouter.StakeReceipt, error) {
	receipt, err := s.router.StakeAmped(ctx, caller, amount)
	s.observe(ctx, pathSelfService, db.AuthorizationAttempt{
		Account:       caller,
		Amount:        amount,
		Receipt:       receipt,
		Err:           err,
		CorrelationID: middleware.CorrelationIDFromContext(ctx),
	})
	return receipt, err
}

func (s *StakingService) ListAuthorizations(ctx context.Context, account common.Address, limit, offset int32) ([]db.StakeAuthorization, error) {
	if s.recorder == nil {
		return nil, ErrLedgerUnavailable
	}
	return s.recorder.ListAuthorizations(ctx, account, limit, offset)
}

func (s *StakingService) SwapEnabled() (bool, error) {
	if s.toggle == nil {
		return false, ErrSwapToggleUnavailable
	}
	return s.toggle.SwapEnabled(), nil
}

func (s *StakingService) SetSwapEnabled(ctx context.Context, enabled bool) error {
	if s.toggle == nil {
		return ErrSwapToggleUnavailable
	}
	s.toggle.SetSwapEnabled(enabled)
	middleware.LogWithCorrelationID(ctx).Warn("Swap toggle changed", zap.Bool("enabled", enabled))
	return nil
}

func (s *StakingService) observe(ctx context.Context, path string, attempt db.AuthorizationAttempt) {
	outcome := db.OutcomeFor(attempt.Err)
	if s.metrics != nil {
		s.metrics.Authorizations.WithLabelValues(path, string(outcome)).Inc()
		if attempt.Err == nil && attempt.Amount != nil {
			amount, _ := new(big.Float).SetInt(attempt.Amount).Float64()
			s.metrics.StakedAmount.WithLabelValues(path).Add(amount)
		}
	}

	if s.recorder == nil {
		return
	}
	if attempt.CorrelationID == "" {
		attempt.CorrelationID = middleware.CorrelationIDFromContext(ctx)
	}
	if _, err := s.recorder.RecordAuthorization(ctx, attempt); err != nil {
		s.logger.Error("Failed to record stake authorization",
			logger.Account(attempt.Account),
			zap.String("outcome", string(outcome)),
			zap.Error(err),
		)
	}
}
