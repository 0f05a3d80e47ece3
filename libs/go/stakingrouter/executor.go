package stakingrouter

import (
	"context"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
)

// StakeReceipt describes a completed stake.
type StakeReceipt struct {
	Account      common.Address `json:"account"`
	AmountIn     *big.Int       `json:"amount_in"`
	AmountStaked *big.Int       `json:"amount_staked"`
	Nonce        *uint64        `json:"nonce,omitempty"`
	TxHash       *common.Hash   `json:"tx_hash,omitempty"`
}

// Executor performs the stake once the caller has been authorized.
type Executor interface {
	Stake(ctx context.Context, account common.Address, amount *big.Int) (*StakeReceipt, error)
}

// TokenTransferer moves ERC-20 style balances. The recipient is also the
// spender whose allowance is drawn down.
type TokenTransferer interface {
	TransferFrom(ctx context.Context, from, to common.Address, amount *big.Int) error
}

// Swapper converts the deposited asset into the staked asset.
type Swapper interface {
	Swap(ctx context.Context, account common.Address, amountIn *big.Int) (*big.Int, error)
}

// RewardTracker credits staked balances.
type RewardTracker interface {
	StakeForAccount(ctx context.Context, account common.Address, amount *big.Int) error
}

// SwapStakeExecutor pulls tokens from the account into custody, swaps them
// and stakes the proceeds for the account. The swap leg can be switched off,
// in which case every stake fails with ErrSwapDisabled before any transfer.
type SwapStakeExecutor struct {
	custody     common.Address
	token       TokenTransferer
	swapper     Swapper
	tracker     RewardTracker
	swapEnabled atomic.Bool
}

func NewSwapStakeExecutor(custody common.Address, token TokenTransferer, swapper Swapper, tracker RewardTracker, swapEnabled bool) *SwapStakeExecutor {
	e := &SwapStakeExecutor{
		custody: custody,
		token:   token,
		swapper: swapper,
		tracker: tracker,
	}
	e.swapEnabled.Store(swapEnabled)
	return e
}

func (e *SwapStakeExecutor) SwapEnabled() bool {
	return e.swapEnabled.Load()
}

func (e *SwapStakeExecutor) SetSwapEnabled(enabled bool) {
	e.swapEnabled.Store(enabled)
}

func (e *SwapStakeExecutor) Stake(ctx context.Context, account common.Address, amount *big.Int) (*StakeReceipt, error) {
	if !e.swapEnabled.Load() {
		return nil, &CollaboratorError{Op: "swap", Err: ErrSwapDisabled}
	}

	if err := e.token.TransferFrom(ctx, account, e.custody, amount); err != nil {
		return nil, &CollaboratorError{Op: "transferFrom", Err: err}
	}

	out, err := e.swapper.Swap(ctx, account, amount)
	if err != nil {
		return nil, &CollaboratorError{Op: "swap", Err: err}
	}

	if err := e.tracker.StakeForAccount(ctx, account, out); err != nil {
		return nil, &CollaboratorError{Op: "stake", Err: err}
	}

	return &StakeReceipt{
		Account:      account,
		AmountIn:     new(big.Int).Set(amount),
		AmountStaked: out,
	}, nil
}
