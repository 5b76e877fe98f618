package bitcoin

import (
	"bytes"
	"testing"
)

func TestVarIntRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 0xfc, 0xfd, 0xffff, 0x10000, 0xffffffff, 0x100000000, 0xffffffffffffffff}
	for _, n := range cases {
		var buf bytes.Buffer
		WriteVarInt(&buf, n)
		got, err := ReadVarInt(&buf)
		if err != nil {
			t.Fatalf("ReadVarInt(%d): %v", n, err)
		}
		if got != n {
			t.Fatalf("round trip mismatch: wrote %d, read %d", n, got)
		}
	}
}

func TestVarIntEncodingLength(t *testing.T) {
	cases := []struct {
		n    uint64
		want int
	}{
		{0, 1},
		{0xfc, 1},
		{0xfd, 3},
		{0xffff, 3},
		{0x10000, 5},
		{0xffffffff, 5},
		{0x100000000, 9},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		WriteVarInt(&buf, c.n)
		if buf.Len() != c.want {
			t.Errorf("WriteVarInt(%d): got %d bytes, want %d", c.n, buf.Len(), c.want)
		}
	}
}

func TestVarBytesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	payload := bytes.Repeat([]byte{0x42}, 300)
	WriteVarBytes(&buf, payload)

	got, err := ReadVarBytes(&buf)
	if err != nil {
		t.Fatalf("ReadVarBytes: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("var bytes round trip mismatch")
	}
}

func TestVarBytesEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteVarBytes(&buf, nil)
	got, err := ReadVarBytes(&buf)
	if err != nil {
		t.Fatalf("ReadVarBytes: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %x", got)
	}
}
