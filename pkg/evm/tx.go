package evm

import "math/big"

// TxTypeDynamicFee is the EIP-2718 envelope type byte for an EIP-1559
// dynamic-fee transaction.
const TxTypeDynamicFee byte = 0x02

// Tx is an EIP-1559 dynamic-fee transaction. To is nil for contract
// creation. There is no access_list field: EIP-2930 access lists are
// always encoded as the empty list.
type Tx struct {
	ChainID   uint64
	Nonce     uint64
	GasTipCap *big.Int // max_priority_fee_per_gas
	GasFeeCap *big.Int // max_fee_per_gas
	GasLimit  *big.Int
	To        *Address // nil => contract creation
	Value     *big.Int
	Data      []byte
}

// Signature is a secp256k1 signature over an EIP-1559 preimage, using the
// direct y-parity (not EIP-155-mangled v) EIP-2930/2718 transactions use.
type Signature struct {
	YParity byte // 0 or 1
	R       *big.Int
	S       *big.Int
}
