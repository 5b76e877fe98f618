package evm

import (
	"math/big"

	"github.com/tokenized/multichain-txbuilder/internal/rlp"
)

// AttachSignature returns the broadcast-ready bytes:
// 0x02 ‖ rlp([…fields…, y_parity, r_min, s_min]), with r and s minimally
// big-endian encoded like every other integer field in the envelope.
func AttachSignature(tx *Tx, sig Signature) []byte {
	list := tx.fieldList()
	list = append(list, rlp.WrapUint64(uint64(sig.YParity)))
	list = append(list, rlp.WrapUint(orZero(sig.R)))
	list = append(list, rlp.WrapUint(orZero(sig.S)))

	encoded := list.Encode()
	out := make([]byte, 0, 1+len(encoded))
	out = append(out, TxTypeDynamicFee)
	return append(out, encoded...)
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}
