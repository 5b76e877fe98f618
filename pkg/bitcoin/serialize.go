package bitcoin

import (
	"bytes"
	"encoding/binary"
)

// segwit marker/flag bytes inserted after the version field, per BIP-141.
var segwitMarkerFlag = [2]byte{0x00, 0x01}

// Bytes returns the broadcast-ready serialization of tx: segwit (BIP-141) if
// any input carries a non-empty witness, legacy otherwise.
func (tx *Tx) Bytes() []byte {
	if tx.HasWitness() {
		return tx.segwitBytes()
	}
	return tx.legacyBytes()
}

// legacyBytes returns the pre-segwit serialization, used both for broadcast
// of transactions with no witness data and as the base layout the legacy
// sighash preimage is derived from.
func (tx *Tx) legacyBytes() []byte {
	var buf bytes.Buffer
	tx.writeVersion(&buf)
	tx.writeTxIns(&buf, nil)
	tx.writeTxOuts(&buf)
	tx.writeLockTime(&buf)
	return buf.Bytes()
}

// segwitBytes returns the BIP-141 serialization: version, marker, flag,
// inputs (without witness data), outputs, one witness stack per input, then
// lock_time. Inputs with no witness data get an empty stack (varint 0).
func (tx *Tx) segwitBytes() []byte {
	var buf bytes.Buffer
	tx.writeVersion(&buf)
	buf.Write(segwitMarkerFlag[:])
	tx.writeTxIns(&buf, nil)
	tx.writeTxOuts(&buf)
	for _, in := range tx.TxIn {
		WriteVarInt(&buf, uint64(len(in.Witness)))
		for _, item := range in.Witness {
			WriteVarBytes(&buf, item)
		}
	}
	tx.writeLockTime(&buf)
	return buf.Bytes()
}

func (tx *Tx) writeVersion(buf *bytes.Buffer) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(tx.Version))
	buf.Write(b[:])
}

func (tx *Tx) writeLockTime(buf *bytes.Buffer) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], tx.LockTime)
	buf.Write(b[:])
}

// writeTxIns writes every input's (prev_txid, prev_vout, script_sig,
// sequence). overrideScriptSigs, if non-nil, supplies the script_sig written
// for every input, keyed by input index; an input with no entry is written
// with an empty script_sig (used by the legacy sighash preimage, which must
// blank every script_sig except the one being signed).
func (tx *Tx) writeTxIns(buf *bytes.Buffer, overrideScriptSigs map[int][]byte) {
	WriteVarInt(buf, uint64(len(tx.TxIn)))
	for i, in := range tx.TxIn {
		buf.Write(in.PreviousOutPoint.Hash[:])
		var idx [4]byte
		binary.LittleEndian.PutUint32(idx[:], in.PreviousOutPoint.Index)
		buf.Write(idx[:])

		script := in.ScriptSig
		if overrideScriptSigs != nil {
			script = overrideScriptSigs[i]
		}
		WriteVarBytes(buf, script)

		var seq [4]byte
		binary.LittleEndian.PutUint32(seq[:], in.Sequence)
		buf.Write(seq[:])
	}
}

func (tx *Tx) writeTxOuts(buf *bytes.Buffer) {
	WriteVarInt(buf, uint64(len(tx.TxOut)))
	for _, out := range tx.TxOut {
		writeTxOut(buf, out)
	}
}

func writeTxOut(buf *bytes.Buffer, out *TxOut) {
	var v [8]byte
	binary.LittleEndian.PutUint64(v[:], out.Value)
	buf.Write(v[:])
	WriteVarBytes(buf, out.ScriptPubKey)
}
