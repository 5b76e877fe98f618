package nearchain

import (
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

// ed25519SchemePrefix is the scheme tag NEAR-style text-format keys and
// signatures carry, e.g. "ed25519:6E8sCci9...".
const ed25519SchemePrefix = "ed25519:"

// ErrMissingSchemePrefix is returned when a key/signature string lacks the
// "ed25519:" scheme prefix.
var ErrMissingSchemePrefix = errors.New(`missing "ed25519:" scheme prefix`)

// ParsePublicKey decodes "ed25519:<base58>" into a tagged 32-byte public key.
func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := decodeEd25519Scheme(s)
	if err != nil {
		return PublicKey{}, err
	}
	pk, err := NewEd25519PublicKey(raw)
	if err != nil {
		return PublicKey{}, errors.Wrapf(err, "public key %q", s)
	}
	return pk, nil
}

// ParseSignature decodes "ed25519:<base58>" into a tagged 64-byte signature.
func ParseSignature(s string) (Signature, error) {
	raw, err := decodeEd25519Scheme(s)
	if err != nil {
		return Signature{}, err
	}
	sig, err := NewEd25519Signature(raw)
	if err != nil {
		return Signature{}, errors.Wrapf(err, "signature %q", s)
	}
	return sig, nil
}

func decodeEd25519Scheme(s string) ([]byte, error) {
	if !strings.HasPrefix(s, ed25519SchemePrefix) {
		return nil, errors.Wrapf(ErrMissingSchemePrefix, "%q", s)
	}
	encoded := strings.TrimPrefix(s, ed25519SchemePrefix)
	decoded := base58.Decode(encoded)
	if len(decoded) == 0 && len(encoded) > 0 {
		return nil, errors.Errorf("invalid base58 in %q", s)
	}
	return decoded, nil
}

// ParseBlockHash decodes a plain base58 block hash (no scheme prefix) into a
// 32-byte BlockHash.
func ParseBlockHash(s string) (BlockHash, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 && len(s) > 0 {
		return BlockHash{}, errors.Errorf("invalid base58 block hash %q", s)
	}
	h, err := NewBlockHash(decoded)
	if err != nil {
		return BlockHash{}, errors.Wrapf(err, "block hash %q", s)
	}
	return h, nil
}
