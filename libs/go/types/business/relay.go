package business

import (
	"math/big"

	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/google/uuid"
)

// RelayTask is a delegated stake waiting to be submitted by the relay
// processor. It travels over SQS as JSON.
type RelayTask struct {
	ID            uuid.UUID               `json:"id"`
	Account       common.Address          `json:"account"`
	Amount        *big.Int                `json:"amount"`
	Deadline      uint64                  `json:"deadline"`
	Signature     stakingrouter.Signature `json:"signature"`
	CorrelationID string                  `json:"correlation_id,omitempty"`
}

// RelayResult is the outcome of processing a RelayTask.
type RelayResult struct {
	TaskID  uuid.UUID
	Receipt *stakingrouter.StakeReceipt
	Err     error
}

// DelegatedStake is a signed stake request on behalf of Account.
type DelegatedStake struct {
	Account       common.Address
	Amount        *big.Int
	Deadline      uint64
	Signature     stakingrouter.Signature
	Relayer       *common.Address
	CorrelationID string
}

// StakeDigest is what a wallet needs to sign a delegated stake.
type StakeDigest struct {
	Account   common.Address
	Amount    *big.Int
	Nonce     uint64
	Deadline  uint64
	Digest    common.Hash
	TypedData apitypes.TypedData
}
