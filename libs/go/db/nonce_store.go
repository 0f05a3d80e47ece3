package db

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

// NonceStore keeps authorization nonces in the account_nonces table.
// Accounts are stored lower-cased so checksum casing never splits a counter.
type NonceStore struct {
	queries Querier
}

func NewNonceStore(queries Querier) *NonceStore {
	return &NonceStore{queries: queries}
}

var _ stakingrouter.NonceStore = (*NonceStore)(nil)

func (s *NonceStore) Nonce(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := s.queries.GetNonce(ctx, accountKey(account))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get nonce: %w", err)
	}
	return uint64(nonce), nil
}

func (s *NonceStore) Consume(ctx context.Context, account common.Address, expected uint64) (uint64, error) {
	if expected >= math.MaxInt64 {
		return 0, fmt.Errorf("nonce %d out of range", expected)
	}

	key := accountKey(account)
	var (
		next int64
		err  error
	)
	if expected == 0 {
		next, err = s.queries.ConsumeFirstNonce(ctx, key)
	} else {
		next, err = s.queries.ConsumeNonce(ctx, ConsumeNonceParams{
			Account:  key,
			Expected: int64(expected),
		})
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: account %s, expected %d", stakingrouter.ErrNonceMismatch, account.Hex(), expected)
		}
		return 0, fmt.Errorf("failed to consume nonce: %w", err)
	}
	return uint64(next), nil
}

func accountKey(account common.Address) string {
	return strings.ToLower(account.Hex())
}
