package stakingrouter_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/amped-finance/amped-api/libs/go/signer"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_VRSRoundTrip(t *testing.T) {
	s, err := signer.Generate()
	require.NoError(t, err)

	digest := crypto.Keccak256Hash([]byte("stake"))
	sig, err := s.SignDigest(digest)
	require.NoError(t, err)

	v, r, sComp := sig.VRS()
	rebuilt := stakingrouter.SignatureFromVRS(v, r, sComp)
	assert.Equal(t, sig, rebuilt)

	recovered, err := stakingrouter.RecoverSigner(digest, rebuilt)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), recovered)

	// v as 0/1 recovers the same signer
	low := rebuilt
	low[64] -= 27
	recovered, err = stakingrouter.RecoverSigner(digest, low)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), recovered)
}

func TestParseSignature(t *testing.T) {
	s, err := signer.Generate()
	require.NoError(t, err)
	sig, err := s.SignDigest(crypto.Keccak256Hash([]byte("x")))
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "0x prefixed", input: sig.Hex()},
		{name: "no prefix", input: sig.Hex()[2:]},
		{name: "too short", input: "0x1234", wantErr: true},
		{name: "not hex", input: "0xzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stakingrouter.ParseSignature(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, stakingrouter.ErrMalformedSignature)
				assert.ErrorIs(t, err, stakingrouter.ErrInvalidAuthorization)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sig, got)
		})
	}
}

func TestSignature_JSON(t *testing.T) {
	s, err := signer.Generate()
	require.NoError(t, err)
	sig, err := s.SignDigest(crypto.Keccak256Hash([]byte("json")))
	require.NoError(t, err)

	payload, err := json.Marshal(struct {
		Signature stakingrouter.Signature `json:"signature"`
	}{sig})
	require.NoError(t, err)
	assert.JSONEq(t, `{"signature":"`+sig.Hex()+`"}`, string(payload))

	var decoded struct {
		Signature stakingrouter.Signature `json:"signature"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, sig, decoded.Signature)
}

func TestRecoverSigner_RejectsHighS(t *testing.T) {
	s, err := signer.Generate()
	require.NoError(t, err)

	digest := crypto.Keccak256Hash([]byte("malleable"))
	sig, err := s.SignDigest(digest)
	require.NoError(t, err)

	// flip s to n - s and the recovery id, the classic malleability transform
	n := crypto.S256().Params().N
	sVal := new(big.Int).SetBytes(sig[32:64])
	flipped := sig
	copy(flipped[32:64], common.LeftPadBytes(new(big.Int).Sub(n, sVal).Bytes(), 32))
	if flipped[64] == 27 {
		flipped[64] = 28
	} else {
		flipped[64] = 27
	}

	_, err = stakingrouter.RecoverSigner(digest, flipped)
	assert.ErrorIs(t, err, stakingrouter.ErrMalformedSignature)
}
