package interfaces

import (
	"context"
	"math/big"

	"github.com/amped-finance/amped-api/libs/go/db"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/amped-finance/amped-api/libs/go/types/business"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks

// StakingRouter is implemented by the in-process stakingrouter.Router and
// by chain.RouterClient.
type StakingRouter interface {
	Domain() stakingrouter.Domain
	DomainSeparator() common.Hash
	Nonce(ctx context.Context, account common.Address) (uint64, error)
	GetStakeDigest(ctx context.Context, account common.Address, amount *big.Int, deadline uint64) (common.Hash, error)
	StakeAmpedForAccount(ctx context.Context, account common.Address, amount *big.Int, deadline uint64, sig stakingrouter.Signature) (*stakingrouter.StakeReceipt, error)
	StakeAmped(ctx context.Context, caller common.Address, amount *big.Int) (*stakingrouter.StakeReceipt, error)
}

// SwapToggle switches the swap leg of a local executor.
type SwapToggle interface {
	SwapEnabled() bool
	SetSwapEnabled(enabled bool)
}

// Faucet funds accounts on the local router's in-memory token.
type Faucet interface {
	Fund(ctx context.Context, account common.Address, amount *big.Int) error
}

// AuthorizationRecorder persists stake attempts.
type AuthorizationRecorder interface {
	RecordAuthorization(ctx context.Context, attempt db.AuthorizationAttempt) (*db.StakeAuthorization, error)
	ListAuthorizations(ctx context.Context, account common.Address, limit, offset int32) ([]db.StakeAuthorization, error)
}

// StakingService is what the HTTP handlers and the relay processor use.
type StakingService interface {
	Domain() stakingrouter.Domain
	DomainSeparator() common.Hash
	Nonce(ctx context.Context, account common.Address) (uint64, error)
	PrepareDigest(ctx context.Context, account common.Address, amount *big.Int, deadline uint64) (*business.StakeDigest, error)
	StakeForAccount(ctx context.Context, req business.DelegatedStake) (*stakingrouter.StakeReceipt, error)
	Stake(ctx context.Context, caller common.Address, amount *big.Int) (*stakingrouter.StakeReceipt, error)
	ListAuthorizations(ctx context.Context, account common.Address, limit, offset int32) ([]db.StakeAuthorization, error)
	SwapEnabled() (bool, error)
	SetSwapEnabled(ctx context.Context, enabled bool) error
}
