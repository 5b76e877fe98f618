package evm

import (
	"github.com/tokenized/multichain-txbuilder/internal/rlp"
)

// fieldList returns the nine EIP-1559 fields in signing order, shared by the
// preimage and the final signed envelope.
func (tx *Tx) fieldList() rlp.List {
	list := make(rlp.List, 0, 9)
	list = append(list, rlp.WrapUint64(tx.ChainID))
	list = append(list, rlp.WrapUint64(tx.Nonce))
	list = append(list, rlp.WrapUint(tx.GasTipCap))
	list = append(list, rlp.WrapUint(tx.GasFeeCap))
	list = append(list, rlp.WrapUint(tx.GasLimit))
	if tx.To != nil {
		list = append(list, rlp.Bytes(tx.To.Bytes()))
	} else {
		list = append(list, rlp.Bytes(nil))
	}
	list = append(list, rlp.WrapUint(tx.Value))
	list = append(list, rlp.Bytes(tx.Data))
	list = append(list, rlp.EmptyList)
	return list
}

// BuildPreimage returns 0x02 ‖ rlp([chain_id, nonce, max_priority_fee_per_gas,
// max_fee_per_gas, gas_limit, to_or_empty, value, input, access_list]) — the
// exact bytes whose Keccak-256 digest is signed.
func BuildPreimage(tx *Tx) []byte {
	encoded := tx.fieldList().Encode()
	out := make([]byte, 0, 1+len(encoded))
	out = append(out, TxTypeDynamicFee)
	return append(out, encoded...)
}
