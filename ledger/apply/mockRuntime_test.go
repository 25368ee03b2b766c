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
	"fmt"

	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
)

// mockRuntime executes system program calls directly against the accounts
// handed to the program, and records trace lines.
type mockRuntime struct {
	program  basics.Address
	accounts map[basics.Address]ledgercore.AccountInfo
	logs     []string
	invoked  []transactions.Instruction
}

func makeMockRuntime(program basics.Address, infos []ledgercore.AccountInfo) *mockRuntime {
	rt := &mockRuntime{
		program:  program,
		accounts: make(map[basics.Address]ledgercore.AccountInfo, len(infos)),
	}
	for _, info := range infos {
		rt.accounts[info.Key] = info
	}
	return rt
}

func (rt *mockRuntime) Logf(format string, args ...interface{}) {
	rt.logs = append(rt.logs, fmt.Sprintf(format, args...))
}

func (rt *mockRuntime) signed(addr basics.Address, signerSeeds [][][]byte) bool {
	if info, ok := rt.accounts[addr]; ok && info.IsSigner {
		return true
	}
	for _, seeds := range signerSeeds {
		derived, err := basics.CreateProgramAddress(rt.program, seeds...)
		if err == nil && derived == addr {
			return true
		}
	}
	return false
}

func (rt *mockRuntime) Invoke(ix transactions.Instruction, signerSeeds ...[][]byte) error {
	rt.invoked = append(rt.invoked, ix)
	if ix.ProgramID != basics.SystemProgramAddress {
		return fmt.Errorf("mock runtime only runs the system program, got %v", ix.ProgramID)
	}
	si, err := transactions.DecodeSystemInstruction(ix.Data)
	if err != nil {
		return err
	}
	fromMeta, toMeta, ok := transactions.SystemParties(ix)
	if !ok {
		return fmt.Errorf("system instruction needs two accounts")
	}
	for _, meta := range ix.Accounts {
		if _, ok := rt.accounts[meta.Address]; !ok {
			return fmt.Errorf("account %v was not handed to the program", meta.Address)
		}
		if meta.IsSigner && !rt.signed(meta.Address, signerSeeds) {
			return NewError(MissingSignature, "%A", "account", meta.Address)
		}
	}
	from, to := rt.accounts[fromMeta.Address], rt.accounts[toMeta.Address]

	switch si.Kind {
	case transactions.TransferOp:
		if from.Lamports < si.Lamports {
			return NewError(InsufficientFunds, "%A", "have", from.Lamports, "need", si.Lamports)
		}
		from.Lamports -= si.Lamports
		to.Lamports += si.Lamports
	case transactions.CreateAccountOp:
		if !to.IsEmpty() {
			return fmt.Errorf("account %v already in use", to.Key)
		}
		if from.Lamports < si.Lamports {
			return NewError(InsufficientFunds, "%A", "have", from.Lamports, "need", si.Lamports)
		}
		from.Lamports -= si.Lamports
		to.Lamports = si.Lamports
		to.Data = make([]byte, si.Space)
		to.Owner = si.Owner
	}
	return nil
}
