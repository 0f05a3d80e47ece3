package stakingrouter

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// NonceStore holds the per-account authorization counters.
//
// Consume must be atomic: it advances the counter from expected to
// expected+1 and fails with ErrNonceMismatch if the counter has moved.
type NonceStore interface {
	Nonce(ctx context.Context, account common.Address) (uint64, error)
	Consume(ctx context.Context, account common.Address, expected uint64) (uint64, error)
}

// MemoryNonceStore is a process-local NonceStore.
type MemoryNonceStore struct {
	mu     sync.Mutex
	nonces map[common.Address]uint64
}

func NewMemoryNonceStore() *MemoryNonceStore {
	return &MemoryNonceStore{nonces: make(map[common.Address]uint64)}
}

func (m *MemoryNonceStore) Nonce(_ context.Context, account common.Address) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nonces[account], nil
}

func (m *MemoryNonceStore) Consume(_ context.Context, account common.Address, expected uint64) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.nonces[account]
	if current != expected {
		return current, fmt.Errorf("%w: account %s at %d, expected %d", ErrNonceMismatch, account.Hex(), current, expected)
	}
	m.nonces[account] = current + 1
	return current + 1, nil
}
