// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package transactions

import (
	"fmt"

	"github.com/algorand/go-deposit-ledger/crypto"
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/protocol"
)

// Message is the signed body of a transaction: who pays the fee, which
// recent blockhash it is anchored to, and the instructions to run in order.
type Message struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	FeePayer        basics.Address `codec:"fee"`
	RecentBlockhash crypto.Digest  `codec:"bh"`
	Instructions    []Instruction  `codec:"ixs"`
}

// SignedTxn is a message together with one signature per required signer,
// in the order returned by Signers.
type SignedTxn struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Message    Message            `codec:"msg"`
	Signatures []crypto.Signature `codec:"sigs"`
}

// Txid identifies a transaction by its first signature, which is the fee
// payer's.
type Txid crypto.Signature

// String returns the base58 form of the id.
func (id Txid) String() string {
	return basics.EncodeBase58(id[:])
}

// MakeMessage assembles a message paid for by feePayer.
func MakeMessage(feePayer basics.Address, blockhash crypto.Digest, instructions ...Instruction) Message {
	return Message{
		FeePayer:        feePayer,
		RecentBlockhash: blockhash,
		Instructions:    instructions,
	}
}

// ToBeHashed implements the crypto.Hashable interface.
func (m Message) ToBeHashed() (protocol.HashID, []byte) {
	return protocol.Transaction, protocol.EncodeReflect(&m)
}

// Signers returns the accounts that must sign m: the fee payer first, then
// every signer account of every instruction, each listed once.
func (m Message) Signers() []basics.Address {
	signers := []basics.Address{m.FeePayer}
	seen := map[basics.Address]bool{m.FeePayer: true}
	for _, ix := range m.Instructions {
		for _, meta := range ix.Accounts {
			if meta.IsSigner && !seen[meta.Address] {
				seen[meta.Address] = true
				signers = append(signers, meta.Address)
			}
		}
	}
	return signers
}

// IsSigner reports whether addr signs m.
func (m Message) IsSigner(addr basics.Address) bool {
	for _, signer := range m.Signers() {
		if signer == addr {
			return true
		}
	}
	return false
}

// IsWritable reports whether any instruction of m may change addr. The fee
// payer is always writable.
func (m Message) IsWritable(addr basics.Address) bool {
	if addr == m.FeePayer {
		return true
	}
	for _, ix := range m.Instructions {
		for _, meta := range ix.Accounts {
			if meta.Address == addr && meta.IsWritable {
				return true
			}
		}
	}
	return false
}

// Sign signs m with the given secrets. Every required signer must be
// covered, extra secrets are ignored.
func (m Message) Sign(secrets ...*crypto.SignatureSecrets) (SignedTxn, error) {
	byAddr := make(map[basics.Address]*crypto.SignatureSecrets, len(secrets))
	for _, s := range secrets {
		byAddr[basics.Address(s.SignatureVerifier)] = s
	}

	signers := m.Signers()
	stxn := SignedTxn{Message: m, Signatures: make([]crypto.Signature, len(signers))}
	for i, signer := range signers {
		s, ok := byAddr[signer]
		if !ok {
			return SignedTxn{}, fmt.Errorf("missing secret for signer %v", signer)
		}
		stxn.Signatures[i] = s.Sign(m)
	}
	return stxn, nil
}

// ID returns the transaction id. Unsigned transactions have the zero id.
func (s SignedTxn) ID() Txid {
	if len(s.Signatures) == 0 {
		return Txid{}
	}
	return Txid(s.Signatures[0])
}
