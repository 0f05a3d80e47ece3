package helpers

import (
	"strings"
)

// IsAddressValid checks if the provided string is a 0x-prefixed, 20 byte
// hex address.
func IsAddressValid(address string) bool {
	return len(address) == 42 && strings.HasPrefix(address, "0x") && isHex(address[2:])
}

// IsPrivateKeyValid checks if the provided string is a 0x-prefixed, 32 byte
// hex private key.
func IsPrivateKeyValid(key string) bool {
	return len(key) == 66 && strings.HasPrefix(key, "0x") && isHex(key[2:])
}

// IsSignatureValid checks if the provided string is a 0x-prefixed, 65 byte
// hex signature.
func IsSignatureValid(sig string) bool {
	return len(sig) == 132 && strings.HasPrefix(sig, "0x") && isHex(sig[2:])
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
