package bitcoin

import (
	"bytes"
	"encoding/binary"
)

// Opcodes used to build and recognize the P2PKH and P2WPKH script templates
// this module supports.
const (
	OpFalse       = 0x00
	OpPushData1   = 0x4c
	OpPushData2   = 0x4d
	OpPushData4   = 0x4e
	OpDup         = 0x76
	OpHash160     = 0xa9
	OpEqualVerify = 0x88
	OpCheckSig    = 0xac

	opMaxSingleBytePush = byte(0x4b)
	pushData1Max        = uint64(255)
	pushData2Max        = uint64(65535)

	pubKeyHashLength = 20
)

var scriptEndian = binary.LittleEndian

// PushDataScript returns the opcode (and, for larger sizes, length bytes)
// that precede size bytes of pushed script data.
func PushDataScript(size uint64) []byte {
	switch {
	case size <= uint64(opMaxSingleBytePush):
		return []byte{byte(size)}
	case size < pushData1Max:
		return []byte{OpPushData1, byte(size)}
	case size < pushData2Max:
		var buf bytes.Buffer
		buf.WriteByte(OpPushData2)
		binary.Write(&buf, scriptEndian, uint16(size))
		return buf.Bytes()
	default:
		var buf bytes.Buffer
		buf.WriteByte(OpPushData4)
		binary.Write(&buf, scriptEndian, uint32(size))
		return buf.Bytes()
	}
}

// pushData returns the push-data opcode(s) for data followed by data itself.
func pushData(data []byte) []byte {
	return append(PushDataScript(uint64(len(data))), data...)
}

// P2PKHLockingScript returns the standard pay-to-public-key-hash
// script_pubkey: OP_DUP OP_HASH160 <pkh> OP_EQUALVERIFY OP_CHECKSIG.
func P2PKHLockingScript(pkh []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(OpDup)
	buf.WriteByte(OpHash160)
	buf.Write(pushData(pkh))
	buf.WriteByte(OpEqualVerify)
	buf.WriteByte(OpCheckSig)
	return buf.Bytes()
}

// P2PKHUnlockingScript returns the script_sig that spends a P2PKH output:
// <signature> <public key>.
func P2PKHUnlockingScript(signature, publicKey []byte) []byte {
	var buf bytes.Buffer
	buf.Write(pushData(signature))
	buf.Write(pushData(publicKey))
	return buf.Bytes()
}

// P2WPKHScriptCode returns the script_code BIP-143 requires for a P2WPKH
// input: the equivalent P2PKH locking script for the same public key hash.
// This is what gets hashed into the segwit sighash preimage, not the
// witness program itself.
func P2WPKHScriptCode(pkh []byte) []byte {
	return P2PKHLockingScript(pkh)
}

// P2WPKHLockingScript returns the witness-program output script for a
// public-key-hash: OP_0 <20-byte-pkh>.
func P2WPKHLockingScript(pkh []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(OpFalse)
	buf.Write(pushData(pkh))
	return buf.Bytes()
}

// PubKeyHashFromP2PKHLockingScript extracts the 20-byte hash from a
// standard P2PKH script_pubkey, or returns false if the script doesn't match
// the template.
func PubKeyHashFromP2PKHLockingScript(script []byte) ([]byte, bool) {
	if len(script) != 25 ||
		script[0] != OpDup || script[1] != OpHash160 ||
		script[2] != pubKeyHashLength ||
		script[23] != OpEqualVerify || script[24] != OpCheckSig {
		return nil, false
	}
	return script[3:23], true
}
