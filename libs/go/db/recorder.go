package db

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5/pgtype"
)

// AuthorizationAttempt is one delegated (or self-service) stake attempt as
// seen by the relay, before it is persisted.
type AuthorizationAttempt struct {
	Account       common.Address
	Relayer       *common.Address
	Amount        *big.Int
	Nonce         *uint64
	Deadline      uint64
	Delegated     bool
	Receipt       *stakingrouter.StakeReceipt
	Err           error
	CorrelationID string
}

// Recorder writes authorization attempts to the stake_authorizations ledger.
type Recorder struct {
	queries Querier
}

func NewRecorder(queries Querier) *Recorder {
	return &Recorder{queries: queries}
}

func (r *Recorder) RecordAuthorization(ctx context.Context, attempt AuthorizationAttempt) (*StakeAuthorization, error) {
	params := CreateStakeAuthorizationParams{
		Account:       accountKey(attempt.Account),
		Amount:        BigIntToNumeric(attempt.Amount),
		Deadline:      int64(attempt.Deadline),
		Delegated:     attempt.Delegated,
		Outcome:       OutcomeFor(attempt.Err),
		CorrelationID: helpers.StringToNullableText(attempt.CorrelationID),
	}
	if attempt.Relayer != nil {
		params.Relayer = pgtype.Text{String: accountKey(*attempt.Relayer), Valid: true}
	}
	if attempt.Nonce != nil {
		params.Nonce = pgtype.Int8{Int64: int64(*attempt.Nonce), Valid: true}
	}
	if attempt.Err != nil {
		params.ErrorMessage = pgtype.Text{String: attempt.Err.Error(), Valid: true}
	}
	if attempt.Receipt != nil && attempt.Receipt.TxHash != nil {
		params.TxHash = pgtype.Text{String: attempt.Receipt.TxHash.Hex(), Valid: true}
	}

	row, err := r.queries.CreateStakeAuthorization(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to record stake authorization: %w", err)
	}
	return &row, nil
}

func (r *Recorder) ListAuthorizations(ctx context.Context, account common.Address, limit, offset int32) ([]StakeAuthorization, error) {
	rows, err := r.queries.ListStakeAuthorizationsByAccount(ctx, ListStakeAuthorizationsByAccountParams{
		Account: accountKey(account),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list stake authorizations: %w", err)
	}
	return rows, nil
}

// OutcomeFor classifies the error returned by a stake call.
func OutcomeFor(err error) AuthorizationOutcome {
	switch {
	case err == nil:
		return AuthorizationOutcomeStaked
	case errors.Is(err, stakingrouter.ErrExpiredAuthorization):
		return AuthorizationOutcomeExpired
	case errors.Is(err, stakingrouter.ErrInvalidAuthorization):
		return AuthorizationOutcomeInvalid
	case stakingrouter.IsCollaboratorFailure(err):
		return AuthorizationOutcomeCollaboratorFailed
	default:
		return AuthorizationOutcomeError
	}
}

func BigIntToNumeric(v *big.Int) pgtype.Numeric {
	if v == nil {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{Int: new(big.Int).Set(v), Exp: 0, Valid: true}
}

// NumericToBigInt converts an integral NUMERIC back to a big.Int.
func NumericToBigInt(n pgtype.Numeric) *big.Int {
	if !n.Valid || n.Int == nil {
		return nil
	}
	v := new(big.Int).Set(n.Int)
	if n.Exp > 0 {
		v.Mul(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Exp)), nil))
	} else if n.Exp < 0 {
		v.Quo(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-n.Exp)), nil))
	}
	return v
}
