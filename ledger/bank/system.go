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
	"fmt"

	"github.com/algorand/go-deposit-ledger/config"
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/apply"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
)

// program is something the bank can run as the target of an instruction.
type program interface {
	execute(ic *invokeContext, accounts []ledgercore.AccountInfo, data []byte) error
}

// depositProgram adapts the deposit processor to the bank.
type depositProgram struct {
	proc *apply.Processor
}

func (dp depositProgram) execute(ic *invokeContext, accounts []ledgercore.AccountInfo, data []byte) error {
	return dp.proc.Process(ic, accounts, data)
}

// systemProgram creates accounts and moves lamports between accounts it owns.
type systemProgram struct{}

func (systemProgram) execute(ic *invokeContext, accounts []ledgercore.AccountInfo, data []byte) error {
	si, err := transactions.DecodeSystemInstruction(data)
	if err != nil {
		return err
	}
	if len(accounts) < 2 {
		return fmt.Errorf("system %v needs 2 accounts, got %d", si.Kind, len(accounts))
	}
	from, to := accounts[0], accounts[1]
	if !from.IsSigner {
		ic.Logf("%v: from account %v must sign", si.Kind, from.Key)
		return apply.NewError(apply.MissingSignature, "%A", "account", from.Key)
	}

	switch si.Kind {
	case transactions.TransferOp:
		if len(from.Data) != 0 {
			return fmt.Errorf("transfer: from account %v must not carry data", from.Key)
		}
		return transfer(ic, from, to, si.Lamports)

	case transactions.CreateAccountOp:
		if !to.IsSigner {
			ic.Logf("create_account: new account %v must sign", to.Key)
			return apply.NewError(apply.MissingSignature, "%A", "account", to.Key)
		}
		if !to.IsEmpty() {
			ic.Logf("create_account: account %v already in use", to.Key)
			return fmt.Errorf("create_account: account %v already in use", to.Key)
		}
		if si.Space > config.MaxAccountDataLen {
			return fmt.Errorf("create_account: requested %d bytes, limit is %d", si.Space, config.MaxAccountDataLen)
		}
		if err := transfer(ic, from, to, si.Lamports); err != nil {
			return err
		}
		to.Data = make([]byte, si.Space)
		to.Owner = si.Owner
		return nil

	default:
		return fmt.Errorf("unsupported system instruction %v", si.Kind)
	}
}

func transfer(ic *invokeContext, from, to ledgercore.AccountInfo, lamports uint64) error {
	if from.Lamports < lamports {
		ic.Logf("transfer: insufficient lamports %d, need %d", from.Lamports, lamports)
		return apply.NewError(apply.InsufficientFunds, "%A", "account", from.Key, "have", from.Lamports, "need", lamports)
	}
	// from and to may share an account
	from.Lamports -= lamports
	credited, overflowed := basics.OAdd(to.Lamports, lamports)
	if overflowed {
		from.Lamports += lamports
		return apply.NewError(apply.ArithmeticOverflow, "%A", "account", to.Key, "amount", lamports)
	}
	to.Lamports = credited
	return nil
}
