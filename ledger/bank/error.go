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

package bank

import (
	"errors"
	"fmt"

	"github.com/algorand/go-deposit-ledger/crypto"
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
)

var (
	// ErrClosed is returned by operations on a bank that has been closed.
	ErrClosed = errors.New("bank is closed")

	// ErrUnknownProgram is returned when an instruction names a program the
	// bank cannot execute.
	ErrUnknownProgram = errors.New("unknown program")

	// ErrPrivilegeEscalation is returned when a cross-program call asks for
	// signer or writable rights the caller does not hold.
	ErrPrivilegeEscalation = errors.New("cross-program invocation with unauthorized signer or writable account")

	// ErrCallDepth is returned when cross-program calls nest too deeply.
	ErrCallDepth = errors.New("cross-program invocation call depth too deep")

	// ErrAccountNotPassed is returned when a cross-program call names an
	// account that was not handed to the caller.
	ErrAccountNotPassed = errors.New("account required by instruction is missing")

	// ErrRuleViolation is returned when an instruction changes accounts in a
	// way the runtime forbids.
	ErrRuleViolation = errors.New("instruction broke account rules")
)

// TransactionInLedgerError is returned when a transaction cannot be processed because it has already been done
type TransactionInLedgerError struct {
	Txid transactions.Txid
}

// Error satisfies builtin interface `error`
func (tile TransactionInLedgerError) Error() string {
	return fmt.Sprintf("transaction already in ledger: %v", tile.Txid)
}

// BlockhashNotFoundError is returned when a transaction is anchored to a
// blockhash outside the recent window.
type BlockhashNotFoundError struct {
	Blockhash crypto.Digest
}

// Error satisfies builtin interface `error`
func (bnfe BlockhashNotFoundError) Error() string {
	return fmt.Sprintf("blockhash not found: %s", basics.EncodeBase58(bnfe.Blockhash[:]))
}

// InsufficientFeeError is returned when the fee payer cannot cover the
// transaction fee. Such transactions are not recorded.
type InsufficientFeeError struct {
	Payer   basics.Address
	Balance uint64
	Fee     uint64
}

// Error satisfies builtin interface `error`
func (ife InsufficientFeeError) Error() string {
	return fmt.Sprintf("fee payer %v has %d lamports, fee is %d", ife.Payer, ife.Balance, ife.Fee)
}

// InstructionError reports which instruction of a transaction failed.
type InstructionError struct {
	Index int
	Err   error
}

// Error satisfies builtin interface `error`
func (ie *InstructionError) Error() string {
	return fmt.Sprintf("instruction %d failed: %v", ie.Index, ie.Err)
}

// Unwrap returns the instruction's own error.
func (ie *InstructionError) Unwrap() error {
	return ie.Err
}

func ruleViolation(reason string, pairs ...any) error {
	if len(pairs) == 0 {
		return fmt.Errorf("%w: %s", ErrRuleViolation, reason)
	}
	return basics.Annotate(fmt.Errorf("%w: %s", ErrRuleViolation, reason), pairs...)
}
