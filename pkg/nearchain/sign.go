package nearchain

// AttachSignature returns the broadcast-ready bytes: the preimage body
// followed by the tagged signature. There is no outer wrapper.
func AttachSignature(tx *Transaction, sig Signature) []byte {
	body := tx.body()
	out := make([]byte, 0, len(body)+1+signatureLength)
	out = append(out, body...)
	return append(out, sig.Bytes()...)
}
