package deployments

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
)

var ErrContractNotFound = errors.New("contract not found in deployment ledger")

// Ledger maps deployed contract names to addresses for one network, as
// written to deploy-<network>.json by the deploy scripts.
type Ledger struct {
	Network   string
	contracts map[string]common.Address
}

// FileName returns the ledger file name for network.
func FileName(network string) string {
	return fmt.Sprintf("deploy-%s.json", network)
}

// Load reads the ledger for network from dir.
func Load(dir, network string) (*Ledger, error) {
	return LoadFile(filepath.Join(dir, FileName(network)), network)
}

// LoadFile reads a ledger from path. Entries that are not addresses are
// rejected rather than skipped.
func LoadFile(path, network string) (*Ledger, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment ledger: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse deployment ledger %s: %w", path, err)
	}

	contracts := make(map[string]common.Address, len(entries))
	for name, addr := range entries {
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("deployment ledger %s: %q is not an address: %s", path, name, addr)
		}
		contracts[name] = common.HexToAddress(addr)
	}
	return &Ledger{Network: network, contracts: contracts}, nil
}

func (l *Ledger) Address(name string) (common.Address, error) {
	addr, ok := l.contracts[name]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %s on %s", ErrContractNotFound, name, l.Network)
	}
	return addr, nil
}

func (l *Ledger) Names() []string {
	names := make([]string, 0, len(l.contracts))
	for name := range l.contracts {
		names = append(names, name)
	}
	return names
}
