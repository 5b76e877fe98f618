package nearchain

import "github.com/pkg/errors"

const (
	// KeyTypeEd25519 is the single supported public-key/signature tag.
	KeyTypeEd25519 byte = 0x00

	publicKeyLength = 32
	signatureLength = 64
	blockHashLength = 32
)

// PublicKey is a tagged ed25519 public key: one key-type byte followed by
// the 32 raw key bytes.
type PublicKey struct {
	KeyType byte
	Key     [publicKeyLength]byte
}

// NewEd25519PublicKey builds a PublicKey from 32 raw key bytes.
func NewEd25519PublicKey(key []byte) (PublicKey, error) {
	var pk PublicKey
	if len(key) != publicKeyLength {
		return pk, errors.Wrapf(ErrBadKeyLength, "got %d bytes", len(key))
	}
	pk.KeyType = KeyTypeEd25519
	copy(pk.Key[:], key)
	return pk, nil
}

// Bytes returns the tagged wire encoding: 1-byte key type + 32-byte key.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, 0, 1+publicKeyLength)
	out = append(out, pk.KeyType)
	return append(out, pk.Key[:]...)
}

// Signature is a tagged ed25519 signature: one key-type byte followed by 64
// raw signature bytes.
type Signature struct {
	KeyType byte
	Sig     [signatureLength]byte
}

// NewEd25519Signature builds a Signature from 64 raw signature bytes.
func NewEd25519Signature(sig []byte) (Signature, error) {
	var s Signature
	if len(sig) != signatureLength {
		return s, errors.Wrapf(ErrBadSignatureLength, "got %d bytes", len(sig))
	}
	s.KeyType = KeyTypeEd25519
	copy(s.Sig[:], sig)
	return s, nil
}

// Bytes returns the tagged wire encoding: 1-byte key type + 64-byte signature.
func (s Signature) Bytes() []byte {
	out := make([]byte, 0, 1+signatureLength)
	out = append(out, s.KeyType)
	return append(out, s.Sig[:]...)
}

// BlockHash is a 32-byte digest identifying the block the transaction is
// valid against.
type BlockHash [blockHashLength]byte

// Errors for malformed fixed-width fields.
var (
	ErrBadKeyLength       = errors.New("public key must be 32 bytes")
	ErrBadSignatureLength = errors.New("signature must be 64 bytes")
	ErrBadBlockHashLength = errors.New("block hash must be 32 bytes")
)

// NewBlockHash builds a BlockHash from 32 raw bytes.
func NewBlockHash(b []byte) (BlockHash, error) {
	var h BlockHash
	if len(b) != blockHashLength {
		return h, errors.Wrapf(ErrBadBlockHashLength, "got %d bytes", len(b))
	}
	copy(h[:], b)
	return h, nil
}
