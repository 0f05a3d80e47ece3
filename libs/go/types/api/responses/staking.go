package responses

import (
	"time"

	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

type DomainResponse struct {
	Name              string `json:"name"`
	Version           string `json:"version"`
	ChainID           string `json:"chain_id"`
	VerifyingContract string `json:"verifying_contract"`
	Separator         string `json:"separator"`
}

type NonceResponse struct {
	Account string `json:"account"`
	Nonce   uint64 `json:"nonce"`
}

// DigestResponse carries the digest to sign and the equivalent
// eth_signTypedData_v4 payload.
type DigestResponse struct {
	Account   string             `json:"account"`
	Amount    string             `json:"amount"`
	Nonce     uint64             `json:"nonce"`
	Deadline  uint64             `json:"deadline"`
	Digest    string             `json:"digest"`
	TypedData apitypes.TypedData `json:"typed_data"`
}

type StakeResponse struct {
	Account      string  `json:"account"`
	AmountIn     string  `json:"amount_in"`
	AmountStaked string  `json:"amount_staked"`
	Nonce        *uint64 `json:"nonce,omitempty"`
	TxHash       string  `json:"tx_hash,omitempty"`
}

// StakeFailureResponse is returned when the authorization was accepted and
// its nonce spent but the stake itself failed.
type StakeFailureResponse struct {
	Error         string `json:"error"`
	Account       string `json:"account"`
	NonceConsumed uint64 `json:"nonce_consumed"`
}

type RelayAcceptedResponse struct {
	TaskID  string `json:"task_id"`
	Account string `json:"account"`
	Status  string `json:"status"`
}

type StakeAuthorizationResponse struct {
	ID            string    `json:"id"`
	Account       string    `json:"account"`
	Relayer       string    `json:"relayer,omitempty"`
	Amount        string    `json:"amount"`
	Nonce         *int64    `json:"nonce,omitempty"`
	Deadline      int64     `json:"deadline"`
	Delegated     bool      `json:"delegated"`
	Outcome       string    `json:"outcome"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	TxHash        string    `json:"tx_hash,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type SwapStatusResponse struct {
	Enabled bool `json:"enabled"`
}

type FundResponse struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
}
