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

package verify

import (
	"errors"
	"fmt"

	"github.com/algorand/go-deposit-ledger/crypto"
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
)

var (
	errSignatureCount  = errors.New("signature count does not match required signers")
	errNoInstructions  = errors.New("transaction has no instructions")
	errNoFeePayer      = errors.New("transaction has no fee payer")
	errWritableProgram = errors.New("instruction lists its own program as writable")
)

// SigError reports which signer of a transaction failed verification.
type SigError struct {
	Signer basics.Address
	Index  int
}

func (e *SigError) Error() string {
	return fmt.Sprintf("signature %d by %v does not verify", e.Index, e.Signer)
}

// Unwrap lets callers match crypto.ErrBadSignature.
func (e *SigError) Unwrap() error {
	return crypto.ErrBadSignature
}

// WellFormed checks the structure of stxn without touching signatures.
func WellFormed(stxn transactions.SignedTxn) error {
	if stxn.Message.FeePayer.IsZero() {
		return errNoFeePayer
	}
	if len(stxn.Message.Instructions) == 0 {
		return errNoInstructions
	}
	for i, ix := range stxn.Message.Instructions {
		for _, meta := range ix.Accounts {
			if meta.Address == ix.ProgramID && meta.IsWritable {
				return fmt.Errorf("%w: instruction %d, program %v", errWritableProgram, i, ix.ProgramID)
			}
		}
	}
	if len(stxn.Signatures) != len(stxn.Message.Signers()) {
		return fmt.Errorf("%w: have %d, need %d", errSignatureCount, len(stxn.Signatures), len(stxn.Message.Signers()))
	}
	return nil
}

// Txn verifies that stxn is well formed and carries a valid signature from
// every required signer.
func Txn(stxn transactions.SignedTxn) error {
	return TxnBatch([]transactions.SignedTxn{stxn})[0]
}

// TxnBatch verifies a group of transactions with a single batch check,
// falling back to per-signature checks to attribute failures. The result
// holds one error (or nil) per transaction.
func TxnBatch(stxns []transactions.SignedTxn) []error {
	results := make([]error, len(stxns))
	bv := crypto.MakeBatchVerifier()

	type enqueued struct {
		txn    int
		index  int
		signer basics.Address
	}
	var order []enqueued
	for i, stxn := range stxns {
		if err := WellFormed(stxn); err != nil {
			results[i] = err
			continue
		}
		for j, signer := range stxn.Message.Signers() {
			bv.EnqueueSignature(crypto.SignatureVerifier(signer), stxn.Message, stxn.Signatures[j])
			order = append(order, enqueued{txn: i, index: j, signer: signer})
		}
	}
	if bv.GetNumberOfEnqueuedSignatures() == 0 {
		return results
	}

	failed, err := bv.VerifyWithFeedback()
	if err == nil {
		return results
	}
	for k, f := range failed {
		e := order[k]
		if f && results[e.txn] == nil {
			results[e.txn] = &SigError{Signer: e.signer, Index: e.index}
		}
	}
	return results
}
