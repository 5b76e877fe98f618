package bitcoin

import (
	"bytes"
	"testing"
)

// TestAttachScriptSigProducesLegacyBytes checks that signing a single
// P2PKH input yields the plain (non-segwit) broadcast serialization.
func TestAttachScriptSigProducesLegacyBytes(t *testing.T) {
	prevHash := mustHash(t, 0xaa)
	tx := NewTx(1, []*TxIn{
		{PreviousOutPoint: OutPoint{Hash: prevHash, Index: 0}, Sequence: SequenceMax},
	}, []*TxOut{
		{Value: 1000, ScriptPubKey: P2PKHLockingScript(bytes.Repeat([]byte{0x01}, 20))},
	}, 0)

	scriptSig := P2PKHUnlockingScript([]byte{0xde, 0xad}, []byte{0xbe, 0xef})
	raw, err := tx.AttachScriptSig(0, scriptSig)
	if err != nil {
		t.Fatalf("AttachScriptSig: %v", err)
	}

	// No segwit marker/flag bytes (0x00, 0x01) right after the 4-byte version.
	if bytes.Equal(raw[4:6], segwitMarkerFlag[:]) {
		t.Fatal("expected legacy serialization, got segwit marker/flag")
	}
	if tx.TxIn[0].Witness != nil {
		t.Fatal("AttachScriptSig should clear any witness")
	}
}

// TestAttachWitnessProducesSegwitBytesWithEmptyStacksForLegacyInputs checks
// a mixed transaction: one legacy-style input, one P2WPKH input. Once the
// P2WPKH input carries a witness, the whole transaction serializes as
// segwit, and the other input gets an empty witness stack.
func TestAttachWitnessProducesSegwitBytesWithEmptyStacksForLegacyInputs(t *testing.T) {
	prevHash0 := mustHash(t, 0x01)
	prevHash1 := mustHash(t, 0x02)

	tx := NewTx(2, []*TxIn{
		{PreviousOutPoint: OutPoint{Hash: prevHash0, Index: 0}, Sequence: SequenceMax,
			ScriptSig: P2PKHUnlockingScript([]byte{0x01}, []byte{0x02})},
		{PreviousOutPoint: OutPoint{Hash: prevHash1, Index: 1}, Sequence: SequenceMax},
	}, []*TxOut{
		{Value: 2000, ScriptPubKey: P2WPKHLockingScript(bytes.Repeat([]byte{0x03}, 20))},
	}, 0)

	witness := P2WPKHWitness([]byte{0xca, 0xfe}, []byte{0xf0, 0x0d})
	raw, err := tx.AttachWitness(1, witness)
	if err != nil {
		t.Fatalf("AttachWitness: %v", err)
	}

	if !bytes.Equal(raw[4:6], segwitMarkerFlag[:]) {
		t.Fatal("expected segwit marker/flag once any input carries a witness")
	}
	if tx.TxIn[1].ScriptSig != nil {
		t.Fatal("AttachWitness should clear script_sig on the signed input")
	}
	if !tx.HasWitness() {
		t.Fatal("transaction should report HasWitness once one input has a witness")
	}
	// Witness section just before lock_time: input 0 has an empty stack
	// (0x00), input 1 has two items (0x02, 0x02 cafe, 0x02 f00d).
	wantWitnesses := []byte{0x00, 0x02, 0x02, 0xca, 0xfe, 0x02, 0xf0, 0x0d}
	if got := raw[len(raw)-4-len(wantWitnesses) : len(raw)-4]; !bytes.Equal(got, wantWitnesses) {
		t.Fatalf("witness stacks mismatch:\n got  %x\n want %x", got, wantWitnesses)
	}
}

func TestAttachScriptSigRejectsBadIndex(t *testing.T) {
	tx := NewTx(1, []*TxIn{{PreviousOutPoint: OutPoint{Hash: mustHash(t, 1)}}}, nil, 0)
	if _, err := tx.AttachScriptSig(3, []byte{0x51}); err == nil {
		t.Fatal("expected error for out-of-range input index")
	}
}

func TestP2WPKHWitnessOrder(t *testing.T) {
	sig := []byte{0x01, 0x02}
	pub := []byte{0x03, 0x04}
	w := P2WPKHWitness(sig, pub)
	if len(w) != 2 || !bytes.Equal(w[0], sig) || !bytes.Equal(w[1], pub) {
		t.Fatalf("unexpected witness stack order: %v", w)
	}
}
