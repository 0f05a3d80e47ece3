package deployments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLedger(t *testing.T, dir, network, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(network)), []byte(body), 0o600))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeLedger(t, dir, "sonic", `{
		"AmpedStakingRouter": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"RewardTracker": "0xe7f1725e7734ce288f8367e1bb143e90bb3f0512"
	}`)

	ledger, err := Load(dir, "sonic")
	require.NoError(t, err)
	assert.Equal(t, "sonic", ledger.Network)
	assert.ElementsMatch(t, []string{"AmpedStakingRouter", "RewardTracker"}, ledger.Names())

	addr, err := ledger.Address("AmpedStakingRouter")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), addr)

	_, err = ledger.Address("Missing")
	assert.ErrorIs(t, err, ErrContractNotFound)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	writeLedger(t, dir, "broken", `{"AmpedStakingRouter": 12}`)
	writeLedger(t, dir, "badaddr", `{"AmpedStakingRouter": "0x1234"}`)

	tests := []struct {
		name    string
		network string
		wantErr string
	}{
		{name: "missing file", network: "nowhere", wantErr: "failed to read deployment ledger"},
		{name: "not a string map", network: "broken", wantErr: "failed to parse deployment ledger"},
		{name: "bad address", network: "badaddr", wantErr: "is not an address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(dir, tt.network)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
