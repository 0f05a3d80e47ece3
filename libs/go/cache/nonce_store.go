package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "amped:nonce:"

// consumeScript advances KEYS[1] from ARGV[1] to ARGV[1]+1. It returns the
// new value, or -1 when the stored nonce is not ARGV[1].
var consumeScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current ~= tonumber(ARGV[1]) then
  return -1
end
return redis.call('INCR', KEYS[1])
`)

// NonceStore keeps authorization nonces in Redis so several API replicas
// share one counter per account.
type NonceStore struct {
	client redis.Cmdable
	prefix string
}

func NewNonceStore(client redis.Cmdable, prefix string) *NonceStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &NonceStore{client: client, prefix: prefix}
}

var _ stakingrouter.NonceStore = (*NonceStore)(nil)

func (s *NonceStore) Nonce(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := s.client.Get(ctx, s.key(account)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get nonce: %w", err)
	}
	return nonce, nil
}

func (s *NonceStore) Consume(ctx context.Context, account common.Address, expected uint64) (uint64, error) {
	next, err := consumeScript.Run(ctx, s.client, []string{s.key(account)}, expected).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to consume nonce: %w", err)
	}
	if next < 0 {
		return 0, fmt.Errorf("%w: account %s, expected %d", stakingrouter.ErrNonceMismatch, account.Hex(), expected)
	}
	return uint64(next), nil
}

func (s *NonceStore) key(account common.Address) string {
	return s.prefix + strings.ToLower(account.Hex())
}
