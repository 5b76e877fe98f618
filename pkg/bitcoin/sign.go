package bitcoin

import "github.com/pkg/errors"

// AttachScriptSig sets the script_sig for the input at inputIndex, clears any
// witness it may have carried, and returns the legacy-or-segwit broadcast
// bytes for the whole transaction (segwit if any *other* input still carries
// a witness). This is the P2PKH signature-binding path.
func (tx *Tx) AttachScriptSig(inputIndex int, scriptSig []byte) ([]byte, error) {
	if inputIndex < 0 || inputIndex >= len(tx.TxIn) {
		return nil, errors.Wrapf(ErrInputIndexOutOfRange, "index %d of %d inputs", inputIndex, len(tx.TxIn))
	}
	in := tx.TxIn[inputIndex]
	in.ScriptSig = scriptSig
	in.Witness = nil
	return tx.Bytes(), nil
}

// AttachWitness sets the witness stack for the input at inputIndex, clears
// its script_sig, and returns the segwit broadcast bytes for the whole
// transaction. This is the P2WPKH signature-binding path.
func (tx *Tx) AttachWitness(inputIndex int, witness [][]byte) ([]byte, error) {
	if inputIndex < 0 || inputIndex >= len(tx.TxIn) {
		return nil, errors.Wrapf(ErrInputIndexOutOfRange, "index %d of %d inputs", inputIndex, len(tx.TxIn))
	}
	in := tx.TxIn[inputIndex]
	in.Witness = witness
	in.ScriptSig = nil
	return tx.Bytes(), nil
}

// P2WPKHWitness builds the two-item witness stack (signature, public key)
// conventionally used to spend a P2WPKH output.
func P2WPKHWitness(signature, publicKey []byte) [][]byte {
	return [][]byte{signature, publicKey}
}
