package helpers

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseAddress parses a 0x-prefixed hex address. Unlike common.HexToAddress it
// rejects malformed input instead of silently truncating it.
func ParseAddress(address string) (common.Address, error) {
	address = strings.TrimSpace(address)
	if !IsAddressValid(address) {
		return common.Address{}, fmt.Errorf("invalid address %q", address)
	}
	return common.HexToAddress(address), nil
}

// ParseAmount parses a base-10 token amount in wei. Negative values are
// rejected.
func ParseAmount(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	v, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}
	return v, nil
}

// ParseDeadline parses a unix timestamp in seconds.
func ParseDeadline(deadline string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(deadline), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid deadline %q: %w", deadline, err)
	}
	return v, nil
}
