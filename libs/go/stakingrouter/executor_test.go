package stakingrouter_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSwapper struct{ err error }

func (s failingSwapper) Swap(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return nil, s.err
}

func TestSwapStakeExecutor_Stake(t *testing.T) {
	ctx := context.Background()
	account := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	amount := big.NewInt(10_000)
	errPool := errors.New("pool paused")

	tests := []struct {
		name        string
		swapEnabled bool
		swapper     stakingrouter.Swapper
		fund        bool
		approve     bool
		amount      *big.Int
		wantErr     error
		wantOp      string
		wantStaked  *big.Int
	}{
		{
			name:        "swap disabled",
			swapEnabled: false,
			swapper:     stakingrouter.FixedRateSwapper{RateBps: 10000},
			fund:        true,
			approve:     true,
			amount:      amount,
			wantErr:     stakingrouter.ErrSwapDisabled,
			wantOp:      "swap",
		},
		{
			name:        "missing allowance",
			swapEnabled: true,
			swapper:     stakingrouter.FixedRateSwapper{RateBps: 10000},
			fund:        true,
			amount:      amount,
			wantErr:     stakingrouter.ErrInsufficientAllowance,
			wantOp:      "transferFrom",
		},
		{
			name:        "missing balance",
			swapEnabled: true,
			swapper:     stakingrouter.FixedRateSwapper{RateBps: 10000},
			approve:     true,
			amount:      amount,
			wantErr:     stakingrouter.ErrInsufficientBalance,
			wantOp:      "transferFrom",
		},
		{
			name:        "swap fails",
			swapEnabled: true,
			swapper:     failingSwapper{err: errPool},
			fund:        true,
			approve:     true,
			amount:      amount,
			wantErr:     errPool,
			wantOp:      "swap",
		},
		{
			name:        "zero stake rejected by tracker",
			swapEnabled: true,
			swapper:     stakingrouter.FixedRateSwapper{RateBps: 10000},
			fund:        true,
			approve:     true,
			amount:      big.NewInt(0),
			wantErr:     stakingrouter.ErrZeroStake,
			wantOp:      "stake",
		},
		{
			name:        "swap at half rate",
			swapEnabled: true,
			swapper:     stakingrouter.FixedRateSwapper{RateBps: 5000},
			fund:        true,
			approve:     true,
			amount:      amount,
			wantStaked:  big.NewInt(5_000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := stakingrouter.NewMemoryToken()
			tracker := stakingrouter.NewMemoryRewardTracker()
			if tt.fund {
				token.Mint(account, amount)
			}
			if tt.approve {
				token.Approve(account, routerAddress, amount)
			}

			executor := stakingrouter.NewSwapStakeExecutor(routerAddress, token, tt.swapper, tracker, tt.swapEnabled)
			receipt, err := executor.Stake(ctx, account, tt.amount)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				var ce *stakingrouter.CollaboratorError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, tt.wantOp, ce.Op)
				assert.Nil(t, receipt)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.amount, receipt.AmountIn)
			assert.Equal(t, tt.wantStaked, receipt.AmountStaked)
			assert.Equal(t, tt.wantStaked, tracker.StakedAmount(account))
		})
	}
}

func TestSwapStakeExecutor_Toggle(t *testing.T) {
	executor := stakingrouter.NewSwapStakeExecutor(routerAddress, stakingrouter.NewMemoryToken(), stakingrouter.FixedRateSwapper{RateBps: 10000}, stakingrouter.NewMemoryRewardTracker(), false)
	assert.False(t, executor.SwapEnabled())

	executor.SetSwapEnabled(true)
	assert.True(t, executor.SwapEnabled())

	executor.SetSwapEnabled(false)
	assert.False(t, executor.SwapEnabled())
}

func TestMemoryToken_TransferFromDrawsAllowance(t *testing.T) {
	token := stakingrouter.NewMemoryToken()
	owner := common.HexToAddress("0x01")
	token.Mint(owner, big.NewInt(100))
	token.Approve(owner, routerAddress, big.NewInt(60))

	require.NoError(t, token.TransferFrom(context.Background(), owner, routerAddress, big.NewInt(40)))
	assert.Equal(t, big.NewInt(60), token.BalanceOf(owner))
	assert.Equal(t, big.NewInt(40), token.BalanceOf(routerAddress))
	assert.Equal(t, big.NewInt(20), token.Allowance(owner, routerAddress))

	err := token.TransferFrom(context.Background(), owner, routerAddress, big.NewInt(21))
	assert.ErrorIs(t, err, stakingrouter.ErrInsufficientAllowance)
}

func TestMemoryFaucet_Fund(t *testing.T) {
	ctx := context.Background()
	token := stakingrouter.NewMemoryToken()
	faucet := stakingrouter.NewMemoryFaucet(token, routerAddress)
	account := common.HexToAddress("0x03")

	require.NoError(t, faucet.Fund(ctx, account, big.NewInt(50)))
	require.NoError(t, faucet.Fund(ctx, account, big.NewInt(25)))
	assert.Equal(t, 0, token.BalanceOf(account).Cmp(big.NewInt(75)))
	assert.Equal(t, 0, token.Allowance(account, routerAddress).Cmp(big.NewInt(75)))

	assert.ErrorIs(t, faucet.Fund(ctx, account, big.NewInt(0)), stakingrouter.ErrInvalidAmount)
	require.NoError(t, token.TransferFrom(ctx, account, routerAddress, big.NewInt(75)))
}

func TestMemoryNonceStore_Consume(t *testing.T) {
	ctx := context.Background()
	store := stakingrouter.NewMemoryNonceStore()
	account := common.HexToAddress("0x02")

	n, err := store.Nonce(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)

	next, err := store.Consume(ctx, account, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), next)

	_, err = store.Consume(ctx, account, 0)
	assert.ErrorIs(t, err, stakingrouter.ErrNonceMismatch)

	n, err = store.Nonce(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}
