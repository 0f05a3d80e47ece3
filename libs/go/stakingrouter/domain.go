package stakingrouter

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	DomainName    = "AmpedStakingRouter"
	DomainVersion = "2"

	StakeTypeName = "Stake"
)

var (
	// EIP712DomainTypeHash is keccak256 of the EIP712Domain type definition
	EIP712DomainTypeHash = crypto.Keccak256Hash([]byte("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"))

	// StakeTypeHash is keccak256 of the Stake type definition
	StakeTypeHash = crypto.Keccak256Hash([]byte("Stake(address account,uint256 amount,uint256 nonce,uint256 deadline)"))

	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// Domain binds signatures to one router deployment.
type Domain struct {
	Name              string         `json:"name"`
	Version           string         `json:"version"`
	ChainID           *big.Int       `json:"chainId"`
	VerifyingContract common.Address `json:"verifyingContract"`
}

// NewDomain returns the router domain for the given chain and contract.
func NewDomain(chainID *big.Int, verifyingContract common.Address) Domain {
	return Domain{
		Name:              DomainName,
		Version:           DomainVersion,
		ChainID:           new(big.Int).Set(chainID),
		VerifyingContract: verifyingContract,
	}
}

// Separator computes the EIP-712 domain separator.
func (d Domain) Separator() common.Hash {
	return crypto.Keccak256Hash(
		EIP712DomainTypeHash[:],
		crypto.Keccak256([]byte(d.Name)),
		crypto.Keccak256([]byte(d.Version)),
		word(d.ChainID),
		common.LeftPadBytes(d.VerifyingContract.Bytes(), 32),
	)
}

// StakeAuthorization is the typed struct covered by a delegated stake
// signature.
type StakeAuthorization struct {
	Account  common.Address
	Amount   *big.Int
	Nonce    uint64
	Deadline uint64
}

// StructHash is hashStruct(Stake).
func (a StakeAuthorization) StructHash() common.Hash {
	return crypto.Keccak256Hash(
		StakeTypeHash[:],
		common.LeftPadBytes(a.Account.Bytes(), 32),
		word(a.Amount),
		word(new(big.Int).SetUint64(a.Nonce)),
		word(new(big.Int).SetUint64(a.Deadline)),
	)
}

// TypedDataHash combines a domain separator and a struct hash into the
// digest that gets signed.
func TypedDataHash(separator, structHash common.Hash) common.Hash {
	return crypto.Keccak256Hash([]byte{0x19, 0x01}, separator[:], structHash[:])
}

// ValidAmount reports whether amount is a positive uint256. The reward
// tracker rejects zero stakes, so zero never makes it past validation.
func ValidAmount(amount *big.Int) bool {
	return amount != nil && amount.Sign() > 0 && amount.Cmp(maxUint256) <= 0
}

func word(v *big.Int) []byte {
	return common.LeftPadBytes(v.Bytes(), 32)
}
