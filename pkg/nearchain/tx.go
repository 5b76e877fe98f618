package nearchain

import (
	"bytes"
	"encoding/binary"
)

// Transaction is an account-based, ed25519-signed, action-list transaction.
type Transaction struct {
	SignerID        string
	SignerPublicKey PublicKey
	Nonce           uint64
	ReceiverID      string
	BlockHash       BlockHash
	Actions         []Action
}

// body writes the common prefix both the preimage and the final signed
// bytes share: signer_id, signer_public_key, nonce, receiver_id,
// block_hash, and the action list.
func (tx *Transaction) body() []byte {
	var buf bytes.Buffer
	writeString(&buf, tx.SignerID)
	buf.Write(tx.SignerPublicKey.Bytes())
	writeU64(&buf, tx.Nonce)
	writeString(&buf, tx.ReceiverID)
	buf.Write(tx.BlockHash[:])

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(tx.Actions)))
	buf.Write(count[:])
	for _, a := range tx.Actions {
		writeAction(&buf, a)
	}

	return buf.Bytes()
}

// BuildPreimage returns the exact bytes to be signed: the transaction body
// with no wrapper and no hash applied. The receiving chain hashes this body
// itself before verifying the signature.
func BuildPreimage(tx *Transaction) []byte {
	return tx.body()
}
