package bitcoin

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

// Hash32Size is the size in bytes of a double-SHA256 digest (txid, block hash).
const Hash32Size = 32

// Hash32 is a 32-byte digest stored in internal (wire) byte order. Its text
// representation, like the reference clients, is the byte-reversed hex string.
type Hash32 [Hash32Size]byte

// ErrBadHashLength is returned when decoding a hash of the wrong length.
var ErrBadHashLength = errors.New("hash has invalid length")

// NewHash32 builds a Hash32 from bytes already in internal byte order.
func NewHash32(b []byte) (Hash32, error) {
	var h Hash32
	if len(b) != Hash32Size {
		return h, errors.Wrapf(ErrBadHashLength, "got %d bytes", len(b))
	}
	copy(h[:], b)
	return h, nil
}

// String returns the byte-reversed hex display used by reference wallets/explorers.
func (h Hash32) String() string {
	reversed := make([]byte, Hash32Size)
	for i, b := range h {
		reversed[Hash32Size-1-i] = b
	}
	return hex.EncodeToString(reversed)
}

// Bytes returns the internal byte-order representation.
func (h Hash32) Bytes() []byte {
	b := make([]byte, Hash32Size)
	copy(b, h[:])
	return b
}

// Sha256 returns the single SHA-256 digest of b.
func Sha256(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

// DoubleSha256 returns SHA-256(SHA-256(b)), the digest used for txids, block
// hashes, address checksums, and sighash results throughout Bitcoin.
func DoubleSha256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 returns RIPEMD160(SHA256(b)), used to derive public-key hashes and
// script hashes for P2PKH/P2WPKH/P2SH templates.
func Hash160(b []byte) []byte {
	sh := sha256.Sum256(b)
	ripe := ripemd160.New()
	ripe.Write(sh[:])
	return ripe.Sum(nil)
}

// Base58 encodes b as a base58 string (no checksum).
func Base58(b []byte) string {
	return base58.Encode(b)
}

// Base58Decode decodes a base58 string (no checksum) to bytes.
func Base58Decode(s string) []byte {
	return base58.Decode(s)
}
