package bitcoin

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHash(t *testing.T, fill byte) Hash32 {
	t.Helper()
	h, err := NewHash32(bytes.Repeat([]byte{fill}, Hash32Size))
	if err != nil {
		t.Fatalf("NewHash32: %v", err)
	}
	return h
}

// TestBuildPreimageLegacy covers a legacy P2PKH spend: one input, one
// output, SIGHASH_ALL.
func TestBuildPreimageLegacy(t *testing.T) {
	prevHash := mustHash(t, 0x11)
	scriptCode := P2PKHLockingScript(bytes.Repeat([]byte{0xaa}, 20))
	outScript := P2PKHLockingScript(bytes.Repeat([]byte{0xbb}, 20))

	tx := NewTx(1, []*TxIn{
		{PreviousOutPoint: OutPoint{Hash: prevHash, Index: 0}, Sequence: SequenceMax},
	}, []*TxOut{
		{Value: 4999990000, ScriptPubKey: outScript},
	}, 0)

	got, err := BuildPreimageLegacy(tx, 0, scriptCode, SigHashAll)
	if err != nil {
		t.Fatalf("BuildPreimageLegacy: %v", err)
	}

	want, _ := hex.DecodeString("01000000011111111111111111111111111111111111111111111111111111111111111111000000001976a914aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa88acffffffff01f0ca052a010000001976a914bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb88ac0000000001000000")
	if !bytes.Equal(got, want) {
		t.Fatalf("legacy preimage mismatch:\n got  %x\n want %x", got, want)
	}
}

func TestBuildPreimageLegacyRejectsEmptyScriptCode(t *testing.T) {
	tx := NewTx(1, []*TxIn{{PreviousOutPoint: OutPoint{Hash: mustHash(t, 1)}}}, nil, 0)
	if _, err := BuildPreimageLegacy(tx, 0, nil, SigHashAll); err == nil {
		t.Fatal("expected error for empty script_code")
	}
}

func TestBuildPreimageLegacyRejectsBadIndex(t *testing.T) {
	tx := NewTx(1, []*TxIn{{PreviousOutPoint: OutPoint{Hash: mustHash(t, 1)}}}, nil, 0)
	if _, err := BuildPreimageLegacy(tx, 5, []byte{0x51}, SigHashAll); err == nil {
		t.Fatal("expected error for out-of-range input index")
	}
}

// TestBuildPreimageSegwitTwoInputs covers a two-input P2WPKH spend. It
// checks the full byte-exact preimage for each input and the
// property that components 2 (hashPrevouts), 3 (hashSequence), and 8
// (hashOutputs) are identical across inputs. Both inputs share the same
// sequence (component 7); the outpoint (4) differs, and so do the
// script_code (5) and spent value (6) passed for each input here.
func TestBuildPreimageSegwitTwoInputs(t *testing.T) {
	prevHash0 := mustHash(t, 0x11)
	prevHash1 := mustHash(t, 0x22)
	scriptCodeA := P2PKHLockingScript(bytes.Repeat([]byte{0x01}, 20))
	scriptCodeB := P2PKHLockingScript(bytes.Repeat([]byte{0x02}, 20))
	outScript := P2PKHLockingScript(bytes.Repeat([]byte{0x03}, 20))

	tx := NewTx(2, []*TxIn{
		{PreviousOutPoint: OutPoint{Hash: prevHash0, Index: 0}, Sequence: SequenceEnableRBFNoLocktime},
		{PreviousOutPoint: OutPoint{Hash: prevHash1, Index: 1}, Sequence: SequenceEnableRBFNoLocktime},
	}, []*TxOut{
		{Value: 149990000, ScriptPubKey: outScript},
	}, 0)

	cache := &SigHashCache{}
	p0, err := buildPreimageSegwitCached(tx, 0, scriptCodeA, 100000000, SigHashAll, cache)
	if err != nil {
		t.Fatalf("preimage 0: %v", err)
	}
	p1, err := buildPreimageSegwitCached(tx, 1, scriptCodeB, 50000000, SigHashAll, cache)
	if err != nil {
		t.Fatalf("preimage 1: %v", err)
	}

	want0, _ := hex.DecodeString("020000007b3c2ebd5b19afa039feca8f9dd091e9091a054cef8430c8fcd2cc5a32f51fcd957879fdce4d8ab885e32ff307d54e75884da52522cc53d3c4fdb60edb69a0981111111111111111111111111111111111111111111111111111111111111111000000001976a914010101010101010101010101010101010101010188ac00e1f50500000000fdffffffe748b759555206cf0b05957f29deecc1243f1daf624b986c4c96170b8fb33cee0000000001000000")
	want1, _ := hex.DecodeString("020000007b3c2ebd5b19afa039feca8f9dd091e9091a054cef8430c8fcd2cc5a32f51fcd957879fdce4d8ab885e32ff307d54e75884da52522cc53d3c4fdb60edb69a0982222222222222222222222222222222222222222222222222222222222222222010000001976a914020202020202020202020202020202020202020288ac80f0fa0200000000fdffffffe748b759555206cf0b05957f29deecc1243f1daf624b986c4c96170b8fb33cee0000000001000000")

	if !bytes.Equal(p0, want0) {
		t.Fatalf("preimage[0] mismatch:\n got  %x\n want %x", p0, want0)
	}
	if !bytes.Equal(p1, want1) {
		t.Fatalf("preimage[1] mismatch:\n got  %x\n want %x", p1, want1)
	}

	// version (4) + hashPrevouts (32) + hashSequence (32) share a common
	// 68-byte prefix across both inputs.
	if !bytes.Equal(p0[:68], p1[:68]) {
		t.Fatal("hashPrevouts/hashSequence should be identical across inputs")
	}
	// The trailing hashOutputs(32) + locktime(4) + hashtype(4) also match.
	if !bytes.Equal(p0[len(p0)-40:], p1[len(p1)-40:]) {
		t.Fatal("hashOutputs/locktime/hashtype should be identical across inputs")
	}
}

func TestBuildPreimageSegwitRejectsEmptyScriptCode(t *testing.T) {
	tx := NewTx(2, []*TxIn{{PreviousOutPoint: OutPoint{Hash: mustHash(t, 1)}}}, nil, 0)
	if _, err := BuildPreimageSegwit(tx, 0, nil, 1000, SigHashAll); err == nil {
		t.Fatal("expected error for empty script_code")
	}
}

func TestSigHashCacheMemoizes(t *testing.T) {
	prevHash := mustHash(t, 0x33)
	tx := NewTx(2, []*TxIn{
		{PreviousOutPoint: OutPoint{Hash: prevHash, Index: 0}, Sequence: SequenceMax},
	}, []*TxOut{
		{Value: 1000, ScriptPubKey: P2PKHLockingScript(bytes.Repeat([]byte{0x09}, 20))},
	}, 0)

	cache := &SigHashCache{}
	first := cache.computeHashPrevouts(tx)
	if !bytes.Equal(cache.hashPrevouts, first) {
		t.Fatal("hashPrevouts should be stored in the cache after the first call")
	}
	second := cache.computeHashPrevouts(tx)
	if !bytes.Equal(first, second) {
		t.Fatal("cached hashPrevouts should be stable across calls")
	}
}
