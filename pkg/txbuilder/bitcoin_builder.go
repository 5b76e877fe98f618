package txbuilder

import (
	"github.com/tokenized/multichain-txbuilder/pkg/bitcoin"
)

// BitcoinBuilder assembles a Bitcoin-family transaction. Version and
// lock_time must be set and at least one input is required; Build does not
// check for outputs.
type BitcoinBuilder struct {
	version    *int32
	lockTime   *uint32
	txIn       []*bitcoin.TxIn
	txOut      []*bitcoin.TxOut
	haveInputs bool
}

// NewBitcoinBuilder returns an empty Bitcoin builder.
func NewBitcoinBuilder() *BitcoinBuilder {
	return &BitcoinBuilder{}
}

// Version sets the transaction version (1 or 2).
func (b *BitcoinBuilder) Version(v int32) *BitcoinBuilder {
	b.version = &v
	return b
}

// LockTime sets the transaction's lock_time (block height or Unix time).
func (b *BitcoinBuilder) LockTime(lt uint32) *BitcoinBuilder {
	b.lockTime = &lt
	return b
}

// AddInput appends a spend of (prevTxid, prevVout) with the given sequence
// number. script_sig and witness are left empty; they are populated later by
// bitcoin.Tx.AttachScriptSig / AttachWitness once a signature exists.
func (b *BitcoinBuilder) AddInput(prevTxid bitcoin.Hash32, prevVout uint32, sequence uint32) *BitcoinBuilder {
	b.txIn = append(b.txIn, &bitcoin.TxIn{
		PreviousOutPoint: bitcoin.OutPoint{Hash: prevTxid, Index: prevVout},
		Sequence:         sequence,
	})
	b.haveInputs = true
	return b
}

// AddOutput appends an output paying value satoshis to scriptPubKey.
func (b *BitcoinBuilder) AddOutput(value uint64, scriptPubKey []byte) *BitcoinBuilder {
	b.txOut = append(b.txOut, &bitcoin.TxOut{Value: value, ScriptPubKey: scriptPubKey})
	return b
}

// Build validates that version, lock_time, and at least one input have been
// set and returns the immutable transaction value.
func (b *BitcoinBuilder) Build() (*bitcoin.Tx, error) {
	if b.version == nil {
		return nil, missingField("version")
	}
	if b.lockTime == nil {
		return nil, missingField("lock_time")
	}
	if !b.haveInputs {
		return nil, missingField("inputs")
	}

	return bitcoin.NewTx(*b.version, b.txIn, b.txOut, *b.lockTime), nil
}
