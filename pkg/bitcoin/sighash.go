package bitcoin

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// SigHashType represents the hash-type bits appended to a Bitcoin signature.
// Only SigHashAll is exercised by the callers this module supports; the
// others are named so the data model leaves room for them.
type SigHashType uint32

const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80

	sigHashMask = 0x1f
)

// ErrInputIndexOutOfRange is returned when a sighash/signature-injection call
// names an input index that doesn't exist in the transaction.
var ErrInputIndexOutOfRange = errors.New("input index out of range")

// ErrEmptyScriptCode is returned when a sighash computation is given an empty
// script_code, which is never valid: the signature would not commit to any
// spending condition.
var ErrEmptyScriptCode = errors.New("script_code must not be empty")

// SigHashCache memoizes the three BIP-143 aggregate hashes (hashPrevouts,
// hashSequence, hashOutputs) across multiple inputs of the same transaction,
// so that signing N segwit inputs costs O(N) hashing instead of O(N^2).
type SigHashCache struct {
	hashPrevouts []byte
	hashSequence []byte
	hashOutputs  []byte
}

func (c *SigHashCache) computeHashPrevouts(tx *Tx) []byte {
	if c.hashPrevouts == nil {
		var buf bytes.Buffer
		for _, in := range tx.TxIn {
			buf.Write(in.PreviousOutPoint.Hash[:])
			var idx [4]byte
			binary.LittleEndian.PutUint32(idx[:], in.PreviousOutPoint.Index)
			buf.Write(idx[:])
		}
		c.hashPrevouts = DoubleSha256(buf.Bytes())
	}
	return c.hashPrevouts
}

func (c *SigHashCache) computeHashSequence(tx *Tx) []byte {
	if c.hashSequence == nil {
		var buf bytes.Buffer
		for _, in := range tx.TxIn {
			var seq [4]byte
			binary.LittleEndian.PutUint32(seq[:], in.Sequence)
			buf.Write(seq[:])
		}
		c.hashSequence = DoubleSha256(buf.Bytes())
	}
	return c.hashSequence
}

func (c *SigHashCache) computeHashOutputs(tx *Tx) []byte {
	if c.hashOutputs == nil {
		var buf bytes.Buffer
		for _, out := range tx.TxOut {
			writeTxOut(&buf, out)
		}
		c.hashOutputs = DoubleSha256(buf.Bytes())
	}
	return c.hashOutputs
}

// BuildPreimageLegacy returns the pre-BIP-143 sighash preimage for the input
// at inputIndex: the full legacy serialization with every script_sig blanked
// except the one being signed, which is replaced by scriptCode, followed by
// the sighash flag as a little-endian uint32. The caller double-SHA256s the
// result to obtain the 32-byte sighash digest.
func BuildPreimageLegacy(tx *Tx, inputIndex int, scriptCode []byte, hashType SigHashType) ([]byte, error) {
	if inputIndex < 0 || inputIndex >= len(tx.TxIn) {
		return nil, errors.Wrapf(ErrInputIndexOutOfRange, "index %d of %d inputs", inputIndex, len(tx.TxIn))
	}
	if len(scriptCode) == 0 {
		return nil, ErrEmptyScriptCode
	}

	overrides := make(map[int][]byte, len(tx.TxIn))
	for i := range tx.TxIn {
		if i == inputIndex {
			overrides[i] = scriptCode
		} else {
			overrides[i] = nil
		}
	}

	var buf bytes.Buffer
	tx.writeVersion(&buf)
	tx.writeTxIns(&buf, overrides)
	tx.writeTxOuts(&buf)
	tx.writeLockTime(&buf)

	var flag [4]byte
	binary.LittleEndian.PutUint32(flag[:], uint32(hashType))
	buf.Write(flag[:])

	return buf.Bytes(), nil
}

// BuildPreimageSegwit returns the BIP-143 sighash preimage for the input at
// inputIndex, given the script_code and value (satoshis) of the output being
// spent. Only SigHashAll is fully supported; other hash-type bits zero the
// corresponding aggregate hashes per BIP-143 but are not exercised by tests.
func BuildPreimageSegwit(tx *Tx, inputIndex int, scriptCode []byte, spentValue uint64, hashType SigHashType) ([]byte, error) {
	return buildPreimageSegwitCached(tx, inputIndex, scriptCode, spentValue, hashType, &SigHashCache{})
}

// buildPreimageSegwitCached is the same algorithm as BuildPreimageSegwit but
// lets the caller reuse a SigHashCache across multiple inputs of one tx.
func buildPreimageSegwitCached(tx *Tx, inputIndex int, scriptCode []byte, spentValue uint64, hashType SigHashType, cache *SigHashCache) ([]byte, error) {
	if inputIndex < 0 || inputIndex >= len(tx.TxIn) {
		return nil, errors.Wrapf(ErrInputIndexOutOfRange, "index %d of %d inputs", inputIndex, len(tx.TxIn))
	}
	if len(scriptCode) == 0 {
		return nil, ErrEmptyScriptCode
	}

	in := tx.TxIn[inputIndex]
	var zero [32]byte

	var buf bytes.Buffer

	// 1. version
	tx.writeVersion(&buf)

	// 2. hashPrevouts
	if hashType&SigHashAnyOneCanPay == 0 {
		buf.Write(cache.computeHashPrevouts(tx))
	} else {
		buf.Write(zero[:])
	}

	// 3. hashSequence
	if hashType&SigHashAnyOneCanPay == 0 &&
		hashType&sigHashMask != SigHashSingle &&
		hashType&sigHashMask != SigHashNone {
		buf.Write(cache.computeHashSequence(tx))
	} else {
		buf.Write(zero[:])
	}

	// 4. outpoint being signed
	buf.Write(in.PreviousOutPoint.Hash[:])
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], in.PreviousOutPoint.Index)
	buf.Write(idx[:])

	// 5. script_code
	WriteVarBytes(&buf, scriptCode)

	// 6. value of the spent output
	var v [8]byte
	binary.LittleEndian.PutUint64(v[:], spentValue)
	buf.Write(v[:])

	// 7. sequence of the input being signed
	var seq [4]byte
	binary.LittleEndian.PutUint32(seq[:], in.Sequence)
	buf.Write(seq[:])

	// 8. hashOutputs
	switch {
	case hashType&sigHashMask != SigHashSingle && hashType&sigHashMask != SigHashNone:
		buf.Write(cache.computeHashOutputs(tx))
	case hashType&sigHashMask == SigHashSingle && inputIndex < len(tx.TxOut):
		var ob bytes.Buffer
		writeTxOut(&ob, tx.TxOut[inputIndex])
		buf.Write(DoubleSha256(ob.Bytes()))
	default:
		buf.Write(zero[:])
	}

	// 9. lock_time
	tx.writeLockTime(&buf)

	// 10. sighash flag
	var flag [4]byte
	binary.LittleEndian.PutUint32(flag[:], uint32(hashType))
	buf.Write(flag[:])

	return buf.Bytes(), nil
}
