package signer

import (
	"math/big"
	"testing"

	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// first hardhat development account
const hardhatKey0 = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestFromHex(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    common.Address
		wantErr bool
	}{
		{
			name: "with 0x prefix",
			key:  hardhatKey0,
			want: common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		},
		{
			name: "without prefix and padded",
			key:  "  " + hardhatKey0[2:] + "\n",
			want: common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		},
		{
			name:    "not hex",
			key:     "not-a-key",
			wantErr: true,
		},
		{
			name:    "empty",
			key:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromHex(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Address())
		})
	}
}

func TestSigner_SignStakeRecovers(t *testing.T) {
	s, err := Generate()
	require.NoError(t, err)

	domain := stakingrouter.NewDomain(big.NewInt(42161), common.HexToAddress("0x1111111111111111111111111111111111111111"))
	auth := stakingrouter.StakeAuthorization{
		Account:  s.Address(),
		Amount:   big.NewInt(1000),
		Nonce:    3,
		Deadline: 1700000000,
	}

	sig, err := s.SignStake(domain, auth)
	require.NoError(t, err)

	v, _, _ := sig.VRS()
	assert.Contains(t, []uint8{27, 28}, v)
	assert.Contains(t, []uint8{27, 28}, sig[64])

	recovered, err := stakingrouter.RecoverSigner(stakingrouter.TypedDataHash(domain.Separator(), auth.StructHash()), sig)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), recovered)
}

func TestSigner_SignTextRecovers(t *testing.T) {
	s, err := FromHex(hardhatKey0)
	require.NoError(t, err)

	sig, err := s.SignText("sign in")
	require.NoError(t, err)

	recovered, err := stakingrouter.RecoverSigner(common.BytesToHash(accounts.TextHash([]byte("sign in"))), sig)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), recovered)

	other, err := stakingrouter.RecoverSigner(common.BytesToHash(accounts.TextHash([]byte("sign out"))), sig)
	require.NoError(t, err)
	assert.NotEqual(t, s.Address(), other)
}
