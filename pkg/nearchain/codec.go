// Package nearchain implements an account-based, ed25519-signed,
// action-list transaction model in the NEAR style: a borsh-style
// length-prefixed binary codec with u32-LE length prefixes for
// variable-length fields and fixed-width little-endian integers otherwise.
package nearchain

import (
	"bytes"
	"encoding/binary"
)

// writeString writes a UTF-8 string as a u32-LE length prefix followed by
// its bytes.
func writeString(buf *bytes.Buffer, s string) {
	writeBytes(buf, []byte(s))
}

// writeBytes writes a byte vector as a u32-LE length prefix followed by its
// bytes.
func writeBytes(buf *bytes.Buffer, b []byte) {
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(b)))
	buf.Write(length[:])
	buf.Write(b)
}

// writeU64 writes v as 8 little-endian bytes.
func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

// writeU128 writes v (must fit in 128 bits) as 16 little-endian bytes, most
// significant byte last. v is interpreted as big-endian input bytes (as
// produced by big.Int.Bytes()) and reversed into the fixed-width LE word.
func writeU128(buf *bytes.Buffer, beBytes []byte) {
	var word [16]byte
	// beBytes is big-endian, minimal length, no leading zero byte (or nil for 0).
	n := len(beBytes)
	for i := 0; i < n && i < 16; i++ {
		word[i] = beBytes[n-1-i]
	}
	buf.Write(word[:])
}
