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
	"github.com/algorand/go-deposit-ledger/config"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
)

// Runtime is the host the deposit program runs in. The host owns account
// storage, rolls back every change of a failed invocation, and executes
// instructions the program issues on its own behalf.
type Runtime interface {
	// Invoke executes ix as a cross-program call. Accounts named by ix must
	// be among those handed to the calling program; changes to them are
	// visible through the caller's AccountInfo values once Invoke returns.
	// Each entry of signerSeeds, together with the calling program, derives
	// an address that is treated as a signer of ix.
	Invoke(ix transactions.Instruction, signerSeeds ...[][]byte) error

	// Logf records a diagnostic trace line.
	Logf(format string, args ...interface{})
}

// Processor executes deposit program instructions.
type Processor struct {
	params config.ProgramParams
}

// MakeProcessor returns a processor for the program described by params.
func MakeProcessor(params config.ProgramParams) *Processor {
	return &Processor{params: params}
}

// Params returns the parameters the processor was built with.
func (p *Processor) Params() config.ProgramParams {
	return p.params
}

// Process decodes data, validates accounts for the decoded operation and
// executes it. On error the caller must discard every change made to
// accounts.
func (p *Processor) Process(rt Runtime, accounts []ledgercore.AccountInfo, data []byte) error {
	di, err := transactions.DecodeDepositInstruction(data)
	if err != nil {
		rt.Logf("could not decode instruction: %v", err)
		return WrapError(MalformedRequest, err)
	}
	rt.Logf("instruction: %v", di.Kind)

	switch di.Kind {
	case transactions.DepositOp:
		return p.Deposit(rt, accounts, di.Amount)
	case transactions.WithdrawOp:
		return p.Withdraw(rt, accounts)
	case transactions.InitializeOp:
		return p.Initialize(rt, accounts)
	default:
		return NewError(MalformedRequest, "unhandled operation %A", "op", di.Kind)
	}
}
