package stakingrouter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInsufficientBalance   = errors.New("ERC20: transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.New("ERC20: insufficient allowance")
	ErrZeroStake             = errors.New("RewardTracker: invalid _amount")
)

// MemoryToken is an in-memory ERC-20 ledger.
type MemoryToken struct {
	mu         sync.Mutex
	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int
}

func NewMemoryToken() *MemoryToken {
	return &MemoryToken{
		balances:   make(map[common.Address]*big.Int),
		allowances: make(map[common.Address]map[common.Address]*big.Int),
	}
}

func (t *MemoryToken) Mint(to common.Address, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balances[to] = new(big.Int).Add(t.balanceOf(to), amount)
}

func (t *MemoryToken) Approve(owner, spender common.Address, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.allowances[owner] == nil {
		t.allowances[owner] = make(map[common.Address]*big.Int)
	}
	t.allowances[owner][spender] = new(big.Int).Set(amount)
}

func (t *MemoryToken) BalanceOf(account common.Address) *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return new(big.Int).Set(t.balanceOf(account))
}

func (t *MemoryToken) Allowance(owner, spender common.Address) *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return new(big.Int).Set(t.allowance(owner, spender))
}

func (t *MemoryToken) TransferFrom(_ context.Context, from, to common.Address, amount *big.Int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	allowed := t.allowance(from, to)
	if allowed.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s allowed %s, need %s", ErrInsufficientAllowance, to.Hex(), allowed, amount)
	}
	balance := t.balanceOf(from)
	if balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}

	t.balances[from] = new(big.Int).Sub(balance, amount)
	t.balances[to] = new(big.Int).Add(t.balanceOf(to), amount)
	if t.allowances[from] != nil {
		t.allowances[from][to] = new(big.Int).Sub(allowed, amount)
	}
	return nil
}

func (t *MemoryToken) balanceOf(account common.Address) *big.Int {
	if b, ok := t.balances[account]; ok {
		return b
	}
	return new(big.Int)
}

func (t *MemoryToken) allowance(owner, spender common.Address) *big.Int {
	if a, ok := t.allowances[owner][spender]; ok {
		return a
	}
	return new(big.Int)
}

// FixedRateSwapper swaps at a constant rate expressed in basis points.
type FixedRateSwapper struct {
	RateBps int64
}

func (s FixedRateSwapper) Swap(_ context.Context, _ common.Address, amountIn *big.Int) (*big.Int, error) {
	out := new(big.Int).Mul(amountIn, big.NewInt(s.RateBps))
	return out.Quo(out, big.NewInt(10000)), nil
}

// MemoryRewardTracker keeps staked balances in memory.
type MemoryRewardTracker struct {
	mu     sync.Mutex
	staked map[common.Address]*big.Int
}

func NewMemoryRewardTracker() *MemoryRewardTracker {
	return &MemoryRewardTracker{staked: make(map[common.Address]*big.Int)}
}

func (r *MemoryRewardTracker) StakeForAccount(_ context.Context, account common.Address, amount *big.Int) error {
	if amount.Sign() <= 0 {
		return ErrZeroStake
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.staked[account]
	if !ok {
		prev = new(big.Int)
	}
	r.staked[account] = new(big.Int).Add(prev, amount)
	return nil
}

func (r *MemoryRewardTracker) StakedAmount(account common.Address) *big.Int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.staked[account]; ok {
		return new(big.Int).Set(s)
	}
	return new(big.Int)
}

// MemoryFaucet funds accounts on a MemoryToken and approves custody to pull
// the funded amount, so local stakes can pass transferFrom.
type MemoryFaucet struct {
	token   *MemoryToken
	custody common.Address
}

func NewMemoryFaucet(token *MemoryToken, custody common.Address) *MemoryFaucet {
	return &MemoryFaucet{token: token, custody: custody}
}

func (f *MemoryFaucet) Fund(_ context.Context, account common.Address, amount *big.Int) error {
	if !ValidAmount(amount) {
		return ErrInvalidAmount
	}

	t := f.token
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balances[account] = new(big.Int).Add(t.balanceOf(account), amount)
	if t.allowances[account] == nil {
		t.allowances[account] = make(map[common.Address]*big.Int)
	}
	t.allowances[account][f.custody] = new(big.Int).Add(t.allowance(account, f.custody), amount)
	return nil
}
