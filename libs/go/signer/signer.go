package signer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer produces stake authorizations with a local private key.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// New wraps an existing key.
func New(key *ecdsa.PrivateKey) *Signer {
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// FromHex parses a hex private key, with or without 0x prefix.
func FromHex(hexKey string) (*Signer, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return New(key), nil
}

// Generate creates a signer with a fresh random key.
func Generate() (*Signer, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return New(key), nil
}

func (s *Signer) Address() common.Address {
	return s.address
}

func (s *Signer) PrivateKey() *ecdsa.PrivateKey {
	return s.key
}

// SignDigest signs a 32 byte digest. The returned signature carries v as
// 27/28, which is what the on-chain ecrecover expects.
func (s *Signer) SignDigest(digest common.Hash) (stakingrouter.Signature, error) {
	raw, err := crypto.Sign(digest[:], s.key)
	if err != nil {
		return stakingrouter.Signature{}, fmt.Errorf("failed to sign digest: %w", err)
	}
	raw[64] += 27
	return stakingrouter.SignatureFromBytes(raw)
}

// SignStake signs auth under domain.
func (s *Signer) SignStake(domain stakingrouter.Domain, auth stakingrouter.StakeAuthorization) (stakingrouter.Signature, error) {
	digest := stakingrouter.TypedDataHash(domain.Separator(), auth.StructHash())
	return s.SignDigest(digest)
}

// SignText signs message with the personal_sign (EIP-191) prefix, as a
// wallet does for a sign-in challenge.
func (s *Signer) SignText(message string) (stakingrouter.Signature, error) {
	return s.SignDigest(common.BytesToHash(accounts.TextHash([]byte(message))))
}
