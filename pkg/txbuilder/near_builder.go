package txbuilder

import (
	"github.com/tokenized/multichain-txbuilder/pkg/nearchain"
)

// NEARBuilder assembles an account-based, action-list transaction.
// SignerID, SignerPublicKey, Nonce, ReceiverID, and BlockHash are mandatory;
// at least one action is required.
type NEARBuilder struct {
	signerID        *string
	signerPublicKey *nearchain.PublicKey
	nonce           *uint64
	receiverID      *string
	blockHash       *nearchain.BlockHash
	actions         []nearchain.Action
}

// NewNEARBuilder returns an empty account-based builder.
func NewNEARBuilder() *NEARBuilder {
	return &NEARBuilder{}
}

// SignerID sets the signing account id.
func (b *NEARBuilder) SignerID(id string) *NEARBuilder {
	b.signerID = &id
	return b
}

// SignerPublicKey sets the signer's public key.
func (b *NEARBuilder) SignerPublicKey(pk nearchain.PublicKey) *NEARBuilder {
	b.signerPublicKey = &pk
	return b
}

// Nonce sets the transaction nonce.
func (b *NEARBuilder) Nonce(n uint64) *NEARBuilder {
	b.nonce = &n
	return b
}

// ReceiverID sets the receiving account id.
func (b *NEARBuilder) ReceiverID(id string) *NEARBuilder {
	b.receiverID = &id
	return b
}

// BlockHash sets the reference block hash.
func (b *NEARBuilder) BlockHash(h nearchain.BlockHash) *NEARBuilder {
	b.blockHash = &h
	return b
}

// AddAction appends one action to the ordered action list.
func (b *NEARBuilder) AddAction(a nearchain.Action) *NEARBuilder {
	b.actions = append(b.actions, a)
	return b
}

// Build validates that every mandatory field and at least one action have
// been set and returns the immutable transaction value.
func (b *NEARBuilder) Build() (*nearchain.Transaction, error) {
	if b.signerID == nil {
		return nil, missingField("signer_id")
	}
	if b.signerPublicKey == nil {
		return nil, missingField("signer_public_key")
	}
	if b.nonce == nil {
		return nil, missingField("nonce")
	}
	if b.receiverID == nil {
		return nil, missingField("receiver_id")
	}
	if b.blockHash == nil {
		return nil, missingField("block_hash")
	}
	if len(b.actions) == 0 {
		return nil, missingField("actions")
	}

	return &nearchain.Transaction{
		SignerID:        *b.signerID,
		SignerPublicKey: *b.signerPublicKey,
		Nonce:           *b.nonce,
		ReceiverID:      *b.receiverID,
		BlockHash:       *b.blockHash,
		Actions:         b.actions,
	}, nil
}
