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
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
)

type depositAccounts struct {
	depositor ledgercore.AccountInfo
	custodial ledgercore.AccountInfo
	history   ledgercore.AccountInfo
}

type withdrawAccounts struct {
	admin     ledgercore.AccountInfo
	custodial ledgercore.AccountInfo
	rent      ledgercore.AccountInfo
}

type initializeAccounts struct {
	admin     ledgercore.AccountInfo
	history   ledgercore.AccountInfo
	custodial ledgercore.AccountInfo
	rent      ledgercore.AccountInfo
}

func requireAccounts(rt Runtime, accounts []ledgercore.AccountInfo, want int) error {
	if len(accounts) < want {
		rt.Logf("expected %d accounts, got %d", want, len(accounts))
		return NewError(NotEnoughAccounts, "%A", "have", len(accounts), "need", want)
	}
	return nil
}

func (p *Processor) requireAdmin(rt Runtime, signer ledgercore.AccountInfo) error {
	if signer.Key != p.params.Admin {
		rt.Logf("signer %v is not the admin", signer.Key)
		return NewError(AdminRequired, "signer %A", "signer", signer.Key)
	}
	return nil
}

func requireSigner(rt Runtime, role string, info ledgercore.AccountInfo) error {
	if !info.IsSigner {
		rt.Logf("%s %v did not sign", role, info.Key)
		return NewError(MissingSignature, "%A", "role", role, "account", info.Key)
	}
	return nil
}

func requireAddress(rt Runtime, role string, info ledgercore.AccountInfo, expected basics.Address) error {
	if info.Key != expected {
		rt.Logf("%s account %v does not match expected %v", role, info.Key, expected)
		return NewError(InvalidAccount, "%A", "role", role, "account", info.Key, "expected", expected)
	}
	return nil
}

func requireWritable(rt Runtime, role string, info ledgercore.AccountInfo) error {
	if !info.IsWritable {
		rt.Logf("%s account %v is not writable", role, info.Key)
		return NewError(InvalidAccount, "not writable %A", "role", role, "account", info.Key)
	}
	return nil
}

func requireLoaded(rt Runtime, role string, info ledgercore.AccountInfo) error {
	if info.Account == nil {
		rt.Logf("%s account %v was not loaded", role, info.Key)
		return NewError(InvalidAccount, "missing %A", "role", role, "account", info.Key)
	}
	return nil
}

func (p *Processor) historyAddress() (basics.Address, uint8, error) {
	addr, bump, err := p.params.HistoryAddress()
	if err != nil {
		return basics.Address{}, 0, WrapError(InvalidAccount, err, "role", "history")
	}
	return addr, bump, nil
}

func (p *Processor) custodialAddress() (basics.Address, uint8, error) {
	addr, bump, err := p.params.CustodialAddress()
	if err != nil {
		return basics.Address{}, 0, WrapError(InvalidAccount, err, "role", "custodial")
	}
	return addr, bump, nil
}

// firstError returns the first non-nil error produced by checks, running
// them in order and stopping at the first failure.
func firstError(checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) validateDeposit(rt Runtime, accounts []ledgercore.AccountInfo) (depositAccounts, error) {
	if err := requireAccounts(rt, accounts, transactions.DepositAccountCount); err != nil {
		return depositAccounts{}, err
	}
	da := depositAccounts{
		depositor: accounts[transactions.DepositDepositorIndex],
		custodial: accounts[transactions.DepositCustodialIndex],
		history:   accounts[transactions.DepositHistoryIndex],
	}
	system := accounts[transactions.DepositSystemIndex]

	custodial, _, err := p.custodialAddress()
	if err != nil {
		return depositAccounts{}, err
	}
	history, _, err := p.historyAddress()
	if err != nil {
		return depositAccounts{}, err
	}

	err = firstError(
		func() error { return requireSigner(rt, "depositor", da.depositor) },
		func() error { return requireAddress(rt, "custodial", da.custodial, custodial) },
		func() error { return requireAddress(rt, "history", da.history, history) },
		func() error { return requireAddress(rt, "system program", system, basics.SystemProgramAddress) },
		func() error { return requireWritable(rt, "depositor", da.depositor) },
		func() error { return requireWritable(rt, "custodial", da.custodial) },
		func() error { return requireWritable(rt, "history", da.history) },
	)
	if err != nil {
		return depositAccounts{}, err
	}
	rt.Logf("deposit accounts validated")
	return da, nil
}

func (p *Processor) validateWithdraw(rt Runtime, accounts []ledgercore.AccountInfo) (withdrawAccounts, error) {
	if err := requireAccounts(rt, accounts, transactions.WithdrawAccountCount); err != nil {
		return withdrawAccounts{}, err
	}
	wa := withdrawAccounts{
		admin:     accounts[transactions.WithdrawAdminIndex],
		custodial: accounts[transactions.WithdrawCustodialIndex],
		rent:      accounts[transactions.WithdrawRentIndex],
	}

	custodial, _, err := p.custodialAddress()
	if err != nil {
		return withdrawAccounts{}, err
	}

	err = firstError(
		func() error { return p.requireAdmin(rt, wa.admin) },
		func() error { return requireSigner(rt, "admin", wa.admin) },
		func() error { return requireAddress(rt, "custodial", wa.custodial, custodial) },
		func() error { return requireAddress(rt, "rent sysvar", wa.rent, basics.RentSysvarAddress) },
		func() error { return requireWritable(rt, "admin", wa.admin) },
		func() error { return requireWritable(rt, "custodial", wa.custodial) },
		func() error { return requireLoaded(rt, "admin", wa.admin) },
	)
	if err != nil {
		return withdrawAccounts{}, err
	}
	rt.Logf("withdraw accounts validated")
	return wa, nil
}

func (p *Processor) validateInitialize(rt Runtime, accounts []ledgercore.AccountInfo) (initializeAccounts, error) {
	if err := requireAccounts(rt, accounts, transactions.InitializeAccountCount); err != nil {
		return initializeAccounts{}, err
	}
	ia := initializeAccounts{
		admin:     accounts[transactions.InitializeAdminIndex],
		history:   accounts[transactions.InitializeHistoryIndex],
		custodial: accounts[transactions.InitializeCustodialIndex],
		rent:      accounts[transactions.InitializeRentIndex],
	}
	system := accounts[transactions.InitializeSystemIndex]

	history, _, err := p.historyAddress()
	if err != nil {
		return initializeAccounts{}, err
	}
	custodial, _, err := p.custodialAddress()
	if err != nil {
		return initializeAccounts{}, err
	}

	err = firstError(
		func() error { return p.requireAdmin(rt, ia.admin) },
		func() error { return requireSigner(rt, "admin", ia.admin) },
		func() error { return requireAddress(rt, "history", ia.history, history) },
		func() error { return requireAddress(rt, "custodial", ia.custodial, custodial) },
		func() error { return requireAddress(rt, "rent sysvar", ia.rent, basics.RentSysvarAddress) },
		func() error { return requireAddress(rt, "system program", system, basics.SystemProgramAddress) },
		func() error { return requireWritable(rt, "admin", ia.admin) },
		func() error { return requireWritable(rt, "history", ia.history) },
		func() error { return requireWritable(rt, "custodial", ia.custodial) },
	)
	if err != nil {
		return initializeAccounts{}, err
	}
	if !ia.history.DataIsEmpty() {
		rt.Logf("history account %v already holds data", ia.history.Key)
		return initializeAccounts{}, NewError(AlreadyInitialized, "%A", "account", ia.history.Key, "len", len(ia.history.Data))
	}
	rt.Logf("initialize accounts validated")
	return ia, nil
}
