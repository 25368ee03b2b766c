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
	"github.com/stretchr/testify/require"

	"github.com/algorand/go-deposit-ledger/config"
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
)

const (
	adminStartBalance     = 5_000_000_000
	depositorStartBalance = 3_000_000_000
)

// world is the account state the processor runs against in tests.
type world struct {
	params    config.ProgramParams
	proc      *Processor
	depositor basics.Address
	history   basics.Address
	custodial basics.Address
	accounts  map[basics.Address]*ledgercore.Account
}

func makeWorld(t require.TestingT, local config.Local) *world {
	params, err := local.ProgramParams()
	require.NoError(t, err)
	history, _, err := params.HistoryAddress()
	require.NoError(t, err)
	custodial, _, err := params.CustodialAddress()
	require.NoError(t, err)

	w := &world{
		params:    params,
		proc:      MakeProcessor(params),
		depositor: basics.Address{0xd0},
		history:   history,
		custodial: custodial,
		accounts:  make(map[basics.Address]*ledgercore.Account),
	}
	w.accounts[params.Admin] = &ledgercore.Account{Lamports: adminStartBalance}
	w.accounts[w.depositor] = &ledgercore.Account{Lamports: depositorStartBalance}
	w.accounts[basics.RentSysvarAddress] = &ledgercore.Account{
		Lamports: 1,
		Data:     ledgercore.EncodeRentSysvar(params.Rent),
	}
	w.accounts[basics.SystemProgramAddress] = &ledgercore.Account{Lamports: 1, Executable: true}
	return w
}

func makeDefaultWorld(t require.TestingT) *world {
	return makeWorld(t, config.GetDefaultLocal())
}

func (w *world) account(addr basics.Address) *ledgercore.Account {
	acct, ok := w.accounts[addr]
	if !ok {
		acct = &ledgercore.Account{}
		w.accounts[addr] = acct
	}
	return acct
}

func (w *world) infos(ix transactions.Instruction) []ledgercore.AccountInfo {
	infos := make([]ledgercore.AccountInfo, len(ix.Accounts))
	for i, meta := range ix.Accounts {
		infos[i] = ledgercore.AccountInfo{
			Key:        meta.Address,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
			Account:    w.account(meta.Address),
		}
	}
	return infos
}

func (w *world) run(ix transactions.Instruction) (*mockRuntime, error) {
	infos := w.infos(ix)
	rt := makeMockRuntime(ix.ProgramID, infos)
	return rt, w.proc.Process(rt, infos, ix.Data)
}

func (w *world) balance(addr basics.Address) uint64 {
	return w.account(addr).Lamports
}

func (w *world) snapshot() map[basics.Address]ledgercore.Account {
	snap := make(map[basics.Address]ledgercore.Account, len(w.accounts))
	for addr, acct := range w.accounts {
		snap[addr] = *acct.Clone()
	}
	return snap
}

func (w *world) initialize(t require.TestingT) {
	ix, err := transactions.MakeInitialize(w.params, w.params.Admin)
	require.NoError(t, err)
	_, err = w.run(ix)
	require.NoError(t, err)
}

func (w *world) deposit(t require.TestingT, depositor basics.Address, amount uint64) error {
	ix, err := transactions.MakeDeposit(w.params, depositor, amount)
	require.NoError(t, err)
	_, err = w.run(ix)
	return err
}

func (w *world) withdraw(t require.TestingT, signer basics.Address) error {
	ix, err := transactions.MakeWithdraw(w.params, signer)
	require.NoError(t, err)
	_, err = w.run(ix)
	return err
}

func (w *world) decodeHistory(t require.TestingT) *ledgercore.DepositHistory {
	h, err := ledgercore.DecodeDepositHistory(w.account(w.history).Data)
	require.NoError(t, err)
	return h
}
