package stakingrouter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the size of an r || s || v signature.
const SignatureLength = crypto.SignatureLength

// Signature is a secp256k1 signature in r || s || v order. V may be stored as
// 0/1 or 27/28.
type Signature [SignatureLength]byte

// SignatureFromBytes copies a 65 byte signature.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureLength {
		return sig, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, SignatureLength, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

// SignatureFromVRS assembles a signature from its three components.
func SignatureFromVRS(v uint8, r, s [32]byte) Signature {
	var sig Signature
	copy(sig[:32], r[:])
	copy(sig[32:64], s[:])
	sig[64] = v
	return sig
}

// ParseSignature decodes a 0x-prefixed hex signature.
func ParseSignature(s string) (Signature, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}
	return SignatureFromBytes(b)
}

// VRS splits the signature into components, with v normalised to 27/28.
func (sig Signature) VRS() (v uint8, r [32]byte, s [32]byte) {
	copy(r[:], sig[:32])
	copy(s[:], sig[32:64])
	v = sig[64]
	if v < 27 {
		v += 27
	}
	return v, r, s
}

func (sig Signature) Bytes() []byte {
	out := make([]byte, SignatureLength)
	copy(out, sig[:])
	return out
}

func (sig Signature) Hex() string {
	return hexutil.Encode(sig[:])
}

func (sig Signature) MarshalText() ([]byte, error) {
	return []byte(sig.Hex()), nil
}

func (sig *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*sig = parsed
	return nil
}

// RecoverSigner returns the address that produced sig over digest.
// Malformed signatures (bad v, zero or out of range r/s, high s) fail with
// ErrMalformedSignature.
func RecoverSigner(digest common.Hash, sig Signature) (common.Address, error) {
	v := sig[64]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return common.Address{}, fmt.Errorf("%w: invalid recovery id %d", ErrMalformedSignature, sig[64])
	}

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(v, r, s, true) {
		return common.Address{}, fmt.Errorf("%w: signature values out of range", ErrMalformedSignature)
	}

	normalized := sig
	normalized[64] = v
	pub, err := crypto.SigToPub(digest[:], normalized[:])
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
