package txbuilder

import (
	"math/big"

	"github.com/tokenized/multichain-txbuilder/pkg/evm"
)

// EVMBuilder assembles an EIP-1559 dynamic-fee transaction. ChainID, Nonce,
// GasTipCap, GasFeeCap, and GasLimit are mandatory; To, Value, and Data
// default to contract-creation / zero / empty when unset.
type EVMBuilder struct {
	chainID   *uint64
	nonce     *uint64
	gasTipCap *big.Int
	gasFeeCap *big.Int
	gasLimit  *big.Int
	to        *evm.Address
	value     *big.Int
	data      []byte
}

// NewEVMBuilder returns an empty EVM builder.
func NewEVMBuilder() *EVMBuilder {
	return &EVMBuilder{}
}

// ChainID sets the numeric chain id.
func (b *EVMBuilder) ChainID(id uint64) *EVMBuilder {
	b.chainID = &id
	return b
}

// Nonce sets the account nonce.
func (b *EVMBuilder) Nonce(n uint64) *EVMBuilder {
	b.nonce = &n
	return b
}

// MaxPriorityFeePerGas sets max_priority_fee_per_gas.
func (b *EVMBuilder) MaxPriorityFeePerGas(v *big.Int) *EVMBuilder {
	b.gasTipCap = v
	return b
}

// MaxFeePerGas sets max_fee_per_gas.
func (b *EVMBuilder) MaxFeePerGas(v *big.Int) *EVMBuilder {
	b.gasFeeCap = v
	return b
}

// GasLimit sets gas_limit.
func (b *EVMBuilder) GasLimit(v *big.Int) *EVMBuilder {
	b.gasLimit = v
	return b
}

// To sets the recipient address. Not calling this (or calling ToContractCreation)
// selects contract-creation.
func (b *EVMBuilder) To(addr evm.Address) *EVMBuilder {
	b.to = &addr
	return b
}

// ToContractCreation explicitly marks this transaction as contract creation
// (to is absent).
func (b *EVMBuilder) ToContractCreation() *EVMBuilder {
	b.to = nil
	return b
}

// Value sets the wei amount transferred.
func (b *EVMBuilder) Value(v *big.Int) *EVMBuilder {
	b.value = v
	return b
}

// Data sets the calldata / init code.
func (b *EVMBuilder) Data(d []byte) *EVMBuilder {
	b.data = d
	return b
}

// Build validates that chain_id, nonce, and the three gas fields have been
// set and returns the immutable transaction value. Value and Data default to
// zero/empty, matching the "amount 0 is legal" and "empty input is legal"
// invariants of the envelope.
func (b *EVMBuilder) Build() (*evm.Tx, error) {
	if b.chainID == nil {
		return nil, missingField("chain_id")
	}
	if b.nonce == nil {
		return nil, missingField("nonce")
	}
	if b.gasTipCap == nil {
		return nil, missingField("max_priority_fee_per_gas")
	}
	if b.gasFeeCap == nil {
		return nil, missingField("max_fee_per_gas")
	}
	if b.gasLimit == nil {
		return nil, missingField("gas_limit")
	}

	value := b.value
	if value == nil {
		value = big.NewInt(0)
	}

	return &evm.Tx{
		ChainID:   *b.chainID,
		Nonce:     *b.nonce,
		GasTipCap: b.gasTipCap,
		GasFeeCap: b.gasFeeCap,
		GasLimit:  b.gasLimit,
		To:        b.to,
		Value:     value,
		Data:      b.data,
	}, nil
}
