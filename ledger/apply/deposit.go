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

	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
)

// Deposit moves amount from the depositor into the custodial account and
// adds it to the depositor's cumulative total in the history record.
func (p *Processor) Deposit(rt Runtime, accounts []ledgercore.AccountInfo, amount uint64) error {
	da, err := p.validateDeposit(rt, accounts)
	if err != nil {
		return err
	}

	transfer := transactions.MakeTransfer(da.depositor.Key, da.custodial.Key, amount)
	if err := rt.Invoke(transfer); err != nil {
		rt.Logf("transfer of %d from %v failed: %v", amount, da.depositor.Key, err)
		return err
	}
	rt.Logf("transferred %d from %v", amount, da.depositor.Key)

	if !da.history.IsOwnedBy(p.params.ProgramID) || da.history.DataIsEmpty() {
		rt.Logf("history account %v is not initialized", da.history.Key)
		return NewError(Uninitialized, "%A", "account", da.history.Key)
	}

	history, err := ledgercore.DecodeDepositHistory(da.history.Data)
	if err != nil {
		return WrapError(MalformedHistory, err)
	}
	total, err := history.Credit(da.depositor.Key, amount)
	if err != nil {
		return WrapError(ArithmeticOverflow, err)
	}
	if err := history.EncodeInto(da.history.Data); err != nil {
		if errors.Is(err, ledgercore.ErrHistoryFull) {
			rt.Logf("history is full at %d depositors", history.Len()-1)
			return WrapError(HistoryFull, err)
		}
		return WrapError(MalformedHistory, err)
	}
	rt.Logf("depositor %v has deposited %d in total", da.depositor.Key, total)
	return nil
}
