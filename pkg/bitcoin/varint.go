package bitcoin

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Compact-size varint prefixes, as used throughout the Bitcoin wire format
// for script and stack-item lengths and input/output counts.
const (
	varIntPrefix16 = 0xfd
	varIntPrefix32 = 0xfe
	varIntPrefix64 = 0xff
)

// WriteVarInt writes n to buf using Bitcoin's compact-size varint encoding:
// 1 byte for n < 0xfd, 3 bytes (prefix 0xfd) for n <= 0xffff, 5 bytes
// (prefix 0xfe) for n <= 0xffffffff, 9 bytes (prefix 0xff) otherwise.
func WriteVarInt(buf *bytes.Buffer, n uint64) {
	switch {
	case n < varIntPrefix16:
		buf.WriteByte(byte(n))
	case n <= 0xffff:
		buf.WriteByte(varIntPrefix16)
		binary.Write(buf, binary.LittleEndian, uint16(n))
	case n <= 0xffffffff:
		buf.WriteByte(varIntPrefix32)
		binary.Write(buf, binary.LittleEndian, uint32(n))
	default:
		buf.WriteByte(varIntPrefix64)
		binary.Write(buf, binary.LittleEndian, n)
	}
}

// ReadVarInt reads a compact-size varint from r.
func ReadVarInt(r io.Reader) (uint64, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, errors.Wrap(err, "read varint prefix")
	}

	switch prefix[0] {
	case varIntPrefix16:
		var v uint16
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, errors.Wrap(err, "read varint16")
		}
		return uint64(v), nil
	case varIntPrefix32:
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, errors.Wrap(err, "read varint32")
		}
		return uint64(v), nil
	case varIntPrefix64:
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, errors.Wrap(err, "read varint64")
		}
		return v, nil
	default:
		return uint64(prefix[0]), nil
	}
}

// WriteVarBytes writes the varint-prefixed length of b followed by b itself.
func WriteVarBytes(buf *bytes.Buffer, b []byte) {
	WriteVarInt(buf, uint64(len(b)))
	buf.Write(b)
}

// ReadVarBytes reads a varint-prefixed byte string from r.
func ReadVarBytes(r io.Reader) ([]byte, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, errors.Wrap(err, "read varbytes")
		}
	}
	return b, nil
}
