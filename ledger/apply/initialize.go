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
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
)

// Initialize creates the history and custodial accounts at their derived
// addresses, both owned by the program and funded by the admin with their
// rent-exempt reserve. The freshly allocated history is all zeros, which
// decodes as an empty history.
func (p *Processor) Initialize(rt Runtime, accounts []ledgercore.AccountInfo) error {
	ia, err := p.validateInitialize(rt, accounts)
	if err != nil {
		return err
	}

	rent, err := ledgercore.RentFromAccount(ia.rent)
	if err != nil {
		return WrapError(InvalidAccount, err, "role", "rent sysvar")
	}

	_, historyBump, err := p.historyAddress()
	if err != nil {
		return err
	}
	size := p.params.HistoryAccountSize
	lamports := rent.MinimumBalance(size)
	create := transactions.MakeCreateAccount(ia.admin.Key, ia.history.Key, lamports, size, p.params.ProgramID)
	if err := rt.Invoke(create, [][]byte{p.params.HistorySeed, {historyBump}}); err != nil {
		rt.Logf("could not create history account: %v", err)
		return err
	}
	rt.Logf("created history account %v with %d bytes and %d lamports", ia.history.Key, size, lamports)

	_, custodialBump, err := p.custodialAddress()
	if err != nil {
		return err
	}
	lamports = rent.MinimumBalance(0)
	create = transactions.MakeCreateAccount(ia.admin.Key, ia.custodial.Key, lamports, 0, p.params.ProgramID)
	if err := rt.Invoke(create, [][]byte{p.params.DepositSeed, {custodialBump}}); err != nil {
		rt.Logf("could not create custodial account: %v", err)
		return err
	}
	rt.Logf("created custodial account %v with %d lamports", ia.custodial.Key, lamports)
	return nil
}
