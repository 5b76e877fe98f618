package nearchain

import (
	"bytes"
	"math/big"
)

// Action tags, in the fixed enumeration order the wire format commits to.
// Stake, AddKey, DeleteKey, CreateAccount, and DeleteAccount round out the
// action kinds a NEAR-style account model supports alongside Transfer and
// FunctionCall; they are additive and don't change Transfer or
// FunctionCall semantics.
const (
	ActionTagCreateAccount byte = iota
	ActionTagDeployContract
	ActionTagFunctionCall
	ActionTagTransfer
	ActionTagStake
	ActionTagAddKey
	ActionTagDeleteKey
	ActionTagDeleteAccount
)

// Action is one element of a transaction's ordered action list.
type Action interface {
	// tag returns this action's wire tag byte.
	tag() byte
	// writeBody writes the action's fields (everything after the tag byte).
	writeBody(buf *bytes.Buffer)
}

func writeAction(buf *bytes.Buffer, a Action) {
	buf.WriteByte(a.tag())
	a.writeBody(buf)
}

// TransferAction moves deposit yoctoNEAR (or the equivalent base unit on a
// NEAR-style chain) from signer to receiver.
type TransferAction struct {
	Deposit *big.Int // u128
}

func (TransferAction) tag() byte { return ActionTagTransfer }

func (a TransferAction) writeBody(buf *bytes.Buffer) {
	writeU128(buf, minimalBigEndian(a.Deposit))
}

// FunctionCallAction invokes method_name on the receiver contract with args,
// a gas allowance, and an optional attached deposit.
//
// Args is raw bytes. A caller that has JSON arguments must encode them to
// UTF-8 bytes itself; this module performs no further escaping.
type FunctionCallAction struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    *big.Int // u128
}

func (FunctionCallAction) tag() byte { return ActionTagFunctionCall }

func (a FunctionCallAction) writeBody(buf *bytes.Buffer) {
	writeString(buf, a.MethodName)
	writeBytes(buf, a.Args)
	writeU64(buf, a.Gas)
	writeU128(buf, minimalBigEndian(a.Deposit))
}

// StakeAction stakes amount with the validator key public_key.
type StakeAction struct {
	Amount    *big.Int // u128
	PublicKey PublicKey
}

func (StakeAction) tag() byte { return ActionTagStake }

func (a StakeAction) writeBody(buf *bytes.Buffer) {
	writeU128(buf, minimalBigEndian(a.Amount))
	buf.Write(a.PublicKey.Bytes())
}

// AddKeyAction adds an access key to the signer's account. Permission detail
// (full access vs. function-call-scoped) is out of scope; this module
// records only the nonce and the key itself.
type AddKeyAction struct {
	PublicKey PublicKey
	Nonce     uint64
}

func (AddKeyAction) tag() byte { return ActionTagAddKey }

func (a AddKeyAction) writeBody(buf *bytes.Buffer) {
	buf.Write(a.PublicKey.Bytes())
	writeU64(buf, a.Nonce)
}

// DeleteKeyAction removes an access key from the signer's account.
type DeleteKeyAction struct {
	PublicKey PublicKey
}

func (DeleteKeyAction) tag() byte { return ActionTagDeleteKey }

func (a DeleteKeyAction) writeBody(buf *bytes.Buffer) {
	buf.Write(a.PublicKey.Bytes())
}

// CreateAccountAction creates the receiver account with no further
// parameters.
type CreateAccountAction struct{}

func (CreateAccountAction) tag() byte             { return ActionTagCreateAccount }
func (CreateAccountAction) writeBody(*bytes.Buffer) {}

// DeleteAccountAction deletes the signer's account, transferring any
// remaining balance to BeneficiaryID.
type DeleteAccountAction struct {
	BeneficiaryID string
}

func (DeleteAccountAction) tag() byte { return ActionTagDeleteAccount }

func (a DeleteAccountAction) writeBody(buf *bytes.Buffer) {
	writeString(buf, a.BeneficiaryID)
}

// minimalBigEndian returns v's big-endian bytes with no leading zero byte,
// or nil for zero/nil.
func minimalBigEndian(v *big.Int) []byte {
	if v == nil {
		return nil
	}
	return v.Bytes()
}
