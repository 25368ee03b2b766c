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
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
)

// Withdraw moves everything above the custodial account's rent-exempt
// reserve to the admin. The history record is not touched.
func (p *Processor) Withdraw(rt Runtime, accounts []ledgercore.AccountInfo) error {
	wa, err := p.validateWithdraw(rt, accounts)
	if err != nil {
		return err
	}
	if !wa.custodial.IsOwnedBy(p.params.ProgramID) {
		rt.Logf("custodial account %v is not initialized", wa.custodial.Key)
		return NewError(Uninitialized, "%A", "account", wa.custodial.Key)
	}

	balance := wa.custodial.Lamports
	if balance < p.params.MinWithdrawLamports {
		rt.Logf("custodial balance %d is below the withdrawal minimum %d", balance, p.params.MinWithdrawLamports)
		return NewError(InsufficientFunds, "%A", "balance", balance, "minimum", p.params.MinWithdrawLamports)
	}

	rent, err := ledgercore.RentFromAccount(wa.rent)
	if err != nil {
		return WrapError(InvalidAccount, err, "role", "rent sysvar")
	}
	reserve := rent.MinimumBalance(uint64(len(wa.custodial.Data)))
	amount, overflowed := basics.OSub(balance, reserve)
	if overflowed {
		rt.Logf("custodial balance %d does not cover its reserve %d", balance, reserve)
		return NewError(InsufficientFunds, "%A", "balance", balance, "reserve", reserve)
	}

	credited, overflowed := basics.OAdd(wa.admin.Lamports, amount)
	if overflowed {
		return NewError(ArithmeticOverflow, "%A", "account", wa.admin.Key, "amount", amount)
	}
	wa.custodial.Lamports = reserve
	wa.admin.Lamports = credited
	rt.Logf("withdrew %d to %v, %d kept in reserve", amount, wa.admin.Key, reserve)
	return nil
}
