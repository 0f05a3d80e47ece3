package chain

import (
	"errors"
	"strings"

	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	ErrNoRelayer           = errors.New("chain router client has no relayer key")
	ErrCallerNotRelayer    = errors.New("self-service stake must be sent by the relayer account")
	ErrTransactionReverted = errors.New("stake transaction reverted")
)

// RevertReason extracts the revert string from an RPC error, falling back
// to the error text.
func RevertReason(err error) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if hexData, ok := dataErr.ErrorData().(string); ok {
			if data, decodeErr := hexutil.Decode(hexData); decodeErr == nil {
				if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
					return reason
				}
			}
		}
	}
	return err.Error()
}

// routerError translates a router revert into the local router's errors so
// callers handle both modes the same way. It returns nil when err is not a
// recognised router revert.
func routerError(err error) error {
	reason := RevertReason(err)
	switch {
	case strings.Contains(reason, "expired"):
		return stakingrouter.ErrExpiredAuthorization
	case strings.Contains(reason, "invalid signature"):
		return stakingrouter.ErrInvalidAuthorization
	case strings.Contains(reason, "swap disabled"):
		return &stakingrouter.CollaboratorError{Op: "swap", Err: stakingrouter.ErrSwapDisabled}
	}
	return nil
}
