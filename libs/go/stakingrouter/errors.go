package stakingrouter

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Errors surfaced by the router. Messages match the on-chain revert strings so
// local and chain-backed routers report identically.
var (
	ErrExpiredAuthorization = errors.New("AmpedStakingRouter: expired deadline")
	ErrInvalidAuthorization = errors.New("AmpedStakingRouter: invalid signature")
	ErrMalformedSignature   = fmt.Errorf("%w: malformed signature", ErrInvalidAuthorization)
	ErrInvalidAmount        = errors.New("AmpedStakingRouter: invalid amount")
	ErrSwapDisabled         = errors.New("AmpedStakingRouter: swap disabled")

	// ErrNonceMismatch is returned by a NonceStore when the nonce being
	// consumed is no longer the current one.
	ErrNonceMismatch = errors.New("nonce mismatch")
)

// CollaboratorError wraps a failure of a downstream collaborator (token,
// swap, reward tracker).
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// ConsumedAuthorizationError is returned by StakeAmpedForAccount when the
// signature was accepted and the nonce spent, but the stake itself failed.
// Resubmitting the same signature will fail with ErrInvalidAuthorization.
type ConsumedAuthorizationError struct {
	Account common.Address
	Nonce   uint64
	Err     error
}

func (e *ConsumedAuthorizationError) Error() string {
	return e.Err.Error()
}

func (e *ConsumedAuthorizationError) Unwrap() error {
	return e.Err
}

// IsCollaboratorFailure reports whether err came from a downstream
// collaborator rather than from authorization checks.
func IsCollaboratorFailure(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce)
}
