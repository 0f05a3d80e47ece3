package stakingrouter

import (
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// TypedData builds the eth_signTypedData_v4 payload for a stake
// authorization, for wallets that sign structured data themselves.
func TypedData(domain Domain, auth StakeAuthorization) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			StakeTypeName: {
				{Name: "account", Type: "address"},
				{Name: "amount", Type: "uint256"},
				{Name: "nonce", Type: "uint256"},
				{Name: "deadline", Type: "uint256"},
			},
		},
		PrimaryType: StakeTypeName,
		Domain: apitypes.TypedDataDomain{
			Name:              domain.Name,
			Version:           domain.Version,
			ChainId:           (*math.HexOrDecimal256)(new(big.Int).Set(domain.ChainID)),
			VerifyingContract: domain.VerifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"account":  auth.Account.Hex(),
			"amount":   auth.Amount.String(),
			"nonce":    strconv.FormatUint(auth.Nonce, 10),
			"deadline": strconv.FormatUint(auth.Deadline, 10),
		},
	}
}

// HashTypedData hashes an arbitrary typed-data payload the way a wallet
// would before signing.
func HashTypedData(td apitypes.TypedData) (common.Hash, error) {
	raw, _, err := apitypes.TypedDataAndHash(td)
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(raw), nil
}
