package evm

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// AddressLength is the fixed size of an EVM account address.
const AddressLength = 20

// Address is a 20-byte EVM account or contract address.
type Address [AddressLength]byte

// ErrBadAddressLength is returned when a hex string doesn't decode to
// exactly AddressLength bytes.
var ErrBadAddressLength = errors.New("address must be 20 bytes")

// ParseAddress decodes a hex-encoded 20-byte address, with or without a
// leading "0x". Partial consumption of the input is not permitted.
func ParseAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")

	b, err := hex.DecodeString(s)
	if err != nil {
		return a, errors.Wrap(err, "decode address hex")
	}
	if len(b) != AddressLength {
		return a, errors.Wrapf(ErrBadAddressLength, "got %d bytes", len(b))
	}
	copy(a[:], b)
	return a, nil
}

// Bytes returns the raw 20-byte address.
func (a Address) Bytes() []byte {
	return a[:]
}

// String returns the "0x"-prefixed lowercase hex form.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}
