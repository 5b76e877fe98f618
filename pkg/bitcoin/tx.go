package bitcoin

// Sequence number constants, named per the reference clients.
const (
	// SequenceMax disables both relative-locktime and replace-by-fee semantics.
	SequenceMax uint32 = 0xffffffff
	// SequenceEnableRBFNoLocktime signals opt-in replace-by-fee while leaving
	// the transaction's lock_time unenforced.
	SequenceEnableRBFNoLocktime uint32 = 0xfffffffd
)

// OutPoint identifies a previous transaction output being spent.
type OutPoint struct {
	Hash  Hash32 // previous txid, internal byte order
	Index uint32 // vout
}

// TxIn is one input of a transaction.
type TxIn struct {
	PreviousOutPoint OutPoint
	ScriptSig        []byte
	Sequence         uint32
	Witness          [][]byte // empty (nil or len 0) means non-segwit input
}

// HasWitness returns true if this input's witness stack is non-empty, even if
// every item on it is empty.
func (in *TxIn) HasWitness() bool {
	for _, item := range in.Witness {
		if len(item) > 0 {
			return true
		}
	}
	return len(in.Witness) > 0
}

// TxOut is one output of a transaction.
type TxOut struct {
	Value        uint64 // satoshis
	ScriptPubKey []byte
}

// Tx is an immutable-by-convention Bitcoin transaction value. The two
// signature-injection mutators (AttachScriptSig, AttachWitness) are the only
// sanctioned exceptions to that immutability, scoped to a single input's
// ScriptSig/Witness fields.
type Tx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewTx constructs a transaction from already-built inputs and outputs.
func NewTx(version int32, txIn []*TxIn, txOut []*TxOut, lockTime uint32) *Tx {
	return &Tx{
		Version:  version,
		TxIn:     txIn,
		TxOut:    txOut,
		LockTime: lockTime,
	}
}

// HasWitness returns true if any input carries a non-empty witness, which
// selects the segwit serialization per BIP-141.
func (tx *Tx) HasWitness() bool {
	for _, in := range tx.TxIn {
		if in.HasWitness() {
			return true
		}
	}
	return false
}
