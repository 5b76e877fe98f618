// Package rlp implements just enough Recursive Length Prefix encoding to
// build an EIP-1559 typed transaction envelope: single bytes, byte strings,
// and lists, using the minimal big-endian integer encoding RLP requires.
//
// This is a first-party encoder rather than a pull of go-ethereum's rlp
// package, following the pattern the retrieval pack itself shows: both
// hyperledger/firefly-signer and mrz1836/sigil ship their own small rlp
// packages even in a codebase that could import go-ethereum, because the
// envelope format is exact and self-contained enough to not need reflection
// based general-purpose encoding.
package rlp

import (
	"bytes"
	"math/big"
)

// Item is anything that can render itself as RLP-encoded bytes.
type Item interface {
	Encode() []byte
}

// Bytes is an RLP byte string.
type Bytes []byte

// Encode implements Item.
func (b Bytes) Encode() []byte {
	return encodeBytes(b)
}

// List is an ordered sequence of RLP items, itself encodable as one item.
type List []Item

// Encode implements Item.
func (l List) Encode() []byte {
	var payload bytes.Buffer
	for _, item := range l {
		payload.Write(item.Encode())
	}
	return encodeListPayload(payload.Bytes())
}

// Uint wraps a non-negative integer for minimal big-endian RLP encoding.
type Uint struct {
	V *big.Int
}

// WrapUint returns an Item encoding v per RLP's minimal integer rule: the
// big-endian byte sequence stripped of leading zero bytes, with zero itself
// encoded as the empty string.
func WrapUint(v *big.Int) Item {
	return Uint{V: v}
}

// WrapUint64 is a convenience wrapper for a plain uint64 field.
func WrapUint64(v uint64) Item {
	return Uint{V: new(big.Int).SetUint64(v)}
}

// Encode implements Item.
func (u Uint) Encode() []byte {
	if u.V == nil || u.V.Sign() == 0 {
		return encodeBytes(nil)
	}
	return encodeBytes(minimalBigEndian(u.V))
}

// minimalBigEndian returns v's big-endian representation with no leading
// zero byte (big.Int.Bytes already has this property, but is spelled out
// here since it is the load-bearing invariant of the whole envelope).
func minimalBigEndian(v *big.Int) []byte {
	return v.Bytes()
}

// encodeBytes implements the RLP byte-string encoding rules:
//   - a single byte < 0x80 encodes as itself
//   - a string of length 0 <= L <= 55 gets header 0x80+L
//   - a longer string gets header 0xb7+len(lengthBytes) followed by the
//     big-endian length, then the payload
func encodeBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}
	}
	if len(b) <= 55 {
		out := make([]byte, 0, 1+len(b))
		out = append(out, byte(0x80+len(b)))
		return append(out, b...)
	}
	lengthBytes := minimalUintBytes(uint64(len(b)))
	out := make([]byte, 0, 1+len(lengthBytes)+len(b))
	out = append(out, byte(0xb7+len(lengthBytes)))
	out = append(out, lengthBytes...)
	return append(out, b...)
}

// encodeListPayload implements the RLP list-header rules: header 0xc0+L for
// payloads of length 0 <= L <= 55, else 0xf7+len(lengthBytes) followed by the
// big-endian length, then the payload.
func encodeListPayload(payload []byte) []byte {
	if len(payload) <= 55 {
		out := make([]byte, 0, 1+len(payload))
		out = append(out, byte(0xc0+len(payload)))
		return append(out, payload...)
	}
	lengthBytes := minimalUintBytes(uint64(len(payload)))
	out := make([]byte, 0, 1+len(lengthBytes)+len(payload))
	out = append(out, byte(0xf7+len(lengthBytes)))
	out = append(out, lengthBytes...)
	return append(out, payload...)
}

// minimalUintBytes returns n's big-endian encoding with no leading zero byte.
func minimalUintBytes(n uint64) []byte {
	if n == 0 {
		return nil
	}
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(n)
		n >>= 8
	}
	i := 0
	for i < 8 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// EmptyList is the canonical empty RLP list (0xc0), used for the EIP-1559
// access_list field this module always leaves empty.
var EmptyList = List{}
