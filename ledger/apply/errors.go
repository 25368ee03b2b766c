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

package apply

import (
	"errors"
	"fmt"

	"github.com/algorand/go-deposit-ledger/data/basics"
)

// ErrorCode is the stable numeric code a failed deposit program invocation
// reports to its caller.
type ErrorCode uint32

// Error codes, in wire order. Existing values must never change.
const (
	AdminRequired ErrorCode = iota
	MalformedRequest
	InvalidAccount
	MissingSignature
	AlreadyInitialized
	InsufficientFunds
	NotEnoughAccounts
	HistoryFull
	MalformedHistory
	Uninitialized
	ArithmeticOverflow
)

var errorCodeNames = [...]string{
	AdminRequired:      "AdminRequired",
	MalformedRequest:   "MalformedRequest",
	InvalidAccount:     "InvalidAccount",
	MissingSignature:   "MissingSignature",
	AlreadyInitialized: "AlreadyInitialized",
	InsufficientFunds:  "InsufficientFunds",
	NotEnoughAccounts:  "NotEnoughAccounts",
	HistoryFull:        "HistoryFull",
	MalformedHistory:   "MalformedHistory",
	Uninitialized:      "Uninitialized",
	ArithmeticOverflow: "ArithmeticOverflow",
}

func (c ErrorCode) String() string {
	if int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}
	return fmt.Sprintf("ErrorCode(%d)", uint32(c))
}

// ProgramError is a failed invocation. It carries the error code and,
// optionally, a structured description of what failed.
type ProgramError struct {
	Code   ErrorCode
	detail error
}

// Sentinels for matching with errors.Is. Any ProgramError matches the
// sentinel with the same code.
var (
	ErrAdminRequired      = &ProgramError{Code: AdminRequired}
	ErrMalformedRequest   = &ProgramError{Code: MalformedRequest}
	ErrInvalidAccount     = &ProgramError{Code: InvalidAccount}
	ErrMissingSignature   = &ProgramError{Code: MissingSignature}
	ErrAlreadyInitialized = &ProgramError{Code: AlreadyInitialized}
	ErrInsufficientFunds  = &ProgramError{Code: InsufficientFunds}
	ErrNotEnoughAccounts  = &ProgramError{Code: NotEnoughAccounts}
	ErrHistoryFull        = &ProgramError{Code: HistoryFull}
	ErrMalformedHistory   = &ProgramError{Code: MalformedHistory}
	ErrUninitialized      = &ProgramError{Code: Uninitialized}
	ErrArithmeticOverflow = &ProgramError{Code: ArithmeticOverflow}
)

// NewError returns a ProgramError described by msg and attribute pairs. A
// "%A" in msg is replaced by the attributes.
func NewError(code ErrorCode, msg string, pairs ...any) *ProgramError {
	return &ProgramError{Code: code, detail: basics.New(msg, pairs...)}
}

// WrapError returns a ProgramError caused by err, annotated with pairs.
func WrapError(code ErrorCode, err error, pairs ...any) *ProgramError {
	return &ProgramError{Code: code, detail: basics.Annotate(err, pairs...)}
}

func (e *ProgramError) Error() string {
	if e.detail == nil {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.detail.Error()
}

// Unwrap returns the underlying cause, if any.
func (e *ProgramError) Unwrap() error {
	return e.detail
}

// Is matches any ProgramError with the same code.
func (e *ProgramError) Is(target error) bool {
	t, ok := target.(*ProgramError)
	return ok && t.Code == e.Code
}

// Attributes returns the structured attributes describing the failure.
func (e *ProgramError) Attributes() map[string]any {
	return basics.Attributes(e.detail)
}

// CodeOf extracts the error code from err, if it carries one.
func CodeOf(err error) (ErrorCode, bool) {
	var perr *ProgramError
	if errors.As(err, &perr) {
		return perr.Code, true
	}
	return 0, false
}
