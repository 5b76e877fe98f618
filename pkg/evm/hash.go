package evm

import "golang.org/x/crypto/sha3"

// Keccak256 returns the Keccak-256 digest of b, the hash function EVM chains
// sign over rather than SHA-256.
func Keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}
