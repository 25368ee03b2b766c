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

package crypto

import (
	"errors"

	"github.com/hdevalence/ed25519consensus"
)

// BatchVerifier enqueues signatures to be validated in batch.
type BatchVerifier struct {
	bv    ed25519consensus.BatchVerifier
	count int

	messages   [][]byte
	publicKeys []SignatureVerifier
	signatures []Signature
}

// Batch verifications errors
var (
	ErrBatchHasFailedSigs     = errors.New("at least one signature didn't pass verification")
	ErrZeroTransactionInBatch = errors.New("could not validate empty signature set")
)

// MakeBatchVerifier creates a BatchVerifier instance.
func MakeBatchVerifier() *BatchVerifier {
	return &BatchVerifier{bv: ed25519consensus.NewBatchVerifier()}
}

// EnqueueSignature enqueues a signature to be enqueued
func (b *BatchVerifier) EnqueueSignature(sigVerifier SignatureVerifier, message Hashable, sig Signature) {
	msg := HashRep(message)
	b.bv.Add(sigVerifier[:], msg, sig[:])
	b.messages = append(b.messages, msg)
	b.publicKeys = append(b.publicKeys, sigVerifier)
	b.signatures = append(b.signatures, sig)
	b.count++
}

// GetNumberOfEnqueuedSignatures returns the number of signatures currently enqueued into the BatchVerifier
func (b *BatchVerifier) GetNumberOfEnqueuedSignatures() int {
	return b.count
}

// VerifyWithFeedback verifies all the signatures. On failure it falls back to
// checking each signature alone and reports which ones failed.
func (b *BatchVerifier) VerifyWithFeedback() (failed []bool, err error) {
	if b.count == 0 {
		return nil, ErrZeroTransactionInBatch
	}
	if b.bv.Verify() {
		return nil, nil
	}
	failed = make([]bool, b.count)
	for i := range b.messages {
		failed[i] = !b.publicKeys[i].VerifyBytes(b.messages[i], b.signatures[i])
	}
	return failed, ErrBatchHasFailedSigs
}
