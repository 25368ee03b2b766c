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
	"bytes"
	"fmt"

	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
	"github.com/algorand/go-deposit-ledger/logging"
)

// maxInvokeDepth is how deep cross-program calls may nest, counting the
// top-level instruction as depth 1.
const maxInvokeDepth = 4

// txnState holds the accounts a transaction runs against. Programs change
// the accounts in place; base is the state to fall back to when the
// transaction fails.
type txnState struct {
	id       transactions.Txid
	msg      transactions.Message
	accounts map[basics.Address]*ledgercore.Account
	loaded   map[basics.Address]ledgercore.Account
	base     map[basics.Address]ledgercore.Account
	logs     []string
	log      logging.Logger
}

func (st *txnState) addresses() []basics.Address {
	addrs := []basics.Address{st.msg.FeePayer}
	seen := map[basics.Address]bool{st.msg.FeePayer: true}
	for _, ix := range st.msg.Instructions {
		if !seen[ix.ProgramID] {
			seen[ix.ProgramID] = true
			addrs = append(addrs, ix.ProgramID)
		}
		for _, meta := range ix.Accounts {
			if !seen[meta.Address] {
				seen[meta.Address] = true
				addrs = append(addrs, meta.Address)
			}
		}
	}
	return addrs
}

func snapshotAccounts(accounts map[basics.Address]*ledgercore.Account) map[basics.Address]ledgercore.Account {
	snap := make(map[basics.Address]ledgercore.Account, len(accounts))
	for addr, acct := range accounts {
		snap[addr] = *acct.Clone()
	}
	return snap
}

// checkpoint marks the current state as the one to restore on failure.
func (st *txnState) checkpoint() {
	st.base = snapshotAccounts(st.accounts)
}

// rollback restores the last checkpoint. Pointers handed out earlier keep
// pointing at the restored accounts.
func (st *txnState) rollback() {
	for addr, acct := range st.accounts {
		base := st.base[addr]
		*acct = *base.Clone()
	}
}

// modified lists the accounts whose state differs from what was loaded.
func (st *txnState) modified() map[basics.Address]*ledgercore.Account {
	mods := make(map[basics.Address]*ledgercore.Account)
	for addr, acct := range st.accounts {
		if !accountsEqual(st.loaded[addr], *acct) {
			mods[addr] = acct
		}
	}
	return mods
}

func (st *txnState) logf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	st.logs = append(st.logs, line)
	if st.log.IsLevelEnabled(logging.Debug) {
		st.log.Debug(line)
	}
}

func accountsEqual(a, b ledgercore.Account) bool {
	return a.Lamports == b.Lamports && a.Owner == b.Owner && a.Executable == b.Executable && bytes.Equal(a.Data, b.Data)
}

// invokeContext is the runtime one program invocation sees.
type invokeContext struct {
	bank    *Bank
	st      *txnState
	program basics.Address
	infos   []ledgercore.AccountInfo
	pre     map[basics.Address]ledgercore.Account
	depth   int
}

// Logf implements apply.Runtime.
func (ic *invokeContext) Logf(format string, args ...interface{}) {
	ic.st.logf("Program log: %s", fmt.Sprintf(format, args...))
}

// Invoke implements apply.Runtime. Changes the caller made so far are
// checked before the callee runs, and the callee's changes are checked
// against the callee's own rights.
func (ic *invokeContext) Invoke(ix transactions.Instruction, signerSeeds ...[][]byte) error {
	if ic.depth >= maxInvokeDepth {
		return ErrCallDepth
	}
	caller := make(map[basics.Address]ledgercore.AccountInfo, len(ic.infos))
	for _, info := range ic.infos {
		prev, ok := caller[info.Key]
		if ok {
			info.IsSigner = info.IsSigner || prev.IsSigner
			info.IsWritable = info.IsWritable || prev.IsWritable
		}
		caller[info.Key] = info
	}
	if _, ok := caller[ix.ProgramID]; !ok {
		return basics.Annotate(fmt.Errorf("%w: program %v", ErrAccountNotPassed, ix.ProgramID), "program", ix.ProgramID)
	}

	pdaSigners := make(map[basics.Address]bool, len(signerSeeds))
	for _, seeds := range signerSeeds {
		addr, err := basics.CreateProgramAddress(ic.program, seeds...)
		if err != nil {
			return err
		}
		pdaSigners[addr] = true
	}
	for _, meta := range ix.Accounts {
		info, ok := caller[meta.Address]
		if !ok {
			return basics.Annotate(fmt.Errorf("%w: %v", ErrAccountNotPassed, meta.Address), "account", meta.Address)
		}
		if meta.IsSigner && !info.IsSigner && !pdaSigners[meta.Address] {
			ic.Logf("%v's signer privilege escalated", meta.Address)
			return basics.Annotate(ErrPrivilegeEscalation, "account", meta.Address)
		}
		if meta.IsWritable && !info.IsWritable {
			ic.Logf("%v's writable privilege escalated", meta.Address)
			return basics.Annotate(ErrPrivilegeEscalation, "account", meta.Address)
		}
	}

	if err := ic.verify(); err != nil {
		return err
	}
	err := ic.bank.invoke(ic.st, ix, func(meta transactions.AccountMeta) (bool, bool) {
		return meta.IsSigner, meta.IsWritable
	}, ic.depth+1)
	if err != nil {
		return err
	}
	ic.snapshot()
	return nil
}

func (ic *invokeContext) snapshot() {
	ic.pre = make(map[basics.Address]ledgercore.Account, len(ic.infos))
	for _, info := range ic.infos {
		ic.pre[info.Key] = *info.Account.Clone()
	}
}

// verify checks the changes made since the last snapshot: lamports are
// conserved, only writable accounts change, only the owner debits an account
// or writes its data, and ownership moves only off zeroed accounts the
// program owns.
func (ic *invokeContext) verify() error {
	writable := make(map[basics.Address]bool, len(ic.infos))
	for _, info := range ic.infos {
		writable[info.Key] = writable[info.Key] || info.IsWritable
	}

	var preSum, postSum basics.LamportSum
	for addr, pre := range ic.pre {
		post := *ic.st.accounts[addr]
		preSum.Add(pre.Lamports)
		postSum.Add(post.Lamports)
		if accountsEqual(pre, post) {
			continue
		}
		if !writable[addr] {
			return ruleViolation("read-only account modified", "program", ic.program, "account", addr)
		}
		if pre.Executable != post.Executable {
			return ruleViolation("executable flag changed", "program", ic.program, "account", addr)
		}
		if pre.Executable {
			return ruleViolation("executable account modified", "program", ic.program, "account", addr)
		}
		owned := pre.Owner == ic.program
		if post.Lamports < pre.Lamports && !owned {
			return ruleViolation("account not owned by program debited", "program", ic.program, "account", addr)
		}
		if !bytes.Equal(pre.Data, post.Data) && !owned {
			return ruleViolation("data of account not owned by program modified", "program", ic.program, "account", addr)
		}
		if pre.Owner != post.Owner && (!owned || !isZeroed(pre.Data)) {
			return ruleViolation("account owner changed", "program", ic.program, "account", addr)
		}
	}
	if preSum.Overflowed || postSum.Overflowed {
		return ruleViolation("lamport sum overflowed", "program", ic.program)
	}
	if preSum.Total != postSum.Total {
		return ruleViolation("sum of lamports changed", "program", ic.program, "before", preSum.Total, "after", postSum.Total)
	}
	return nil
}

func isZeroed(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}

// invoke runs ix against st. rights reports the signer and writable flags
// each account is handed to the program with.
func (b *Bank) invoke(st *txnState, ix transactions.Instruction, rights func(transactions.AccountMeta) (signer, writable bool), depth int) error {
	prog, ok := b.programs[ix.ProgramID]
	if !ok {
		return basics.Annotate(fmt.Errorf("%w: %v", ErrUnknownProgram, ix.ProgramID), "program", ix.ProgramID)
	}

	infos := make([]ledgercore.AccountInfo, len(ix.Accounts))
	for i, meta := range ix.Accounts {
		acct, ok := st.accounts[meta.Address]
		if !ok {
			return basics.Annotate(fmt.Errorf("%w: %v", ErrAccountNotPassed, meta.Address), "account", meta.Address)
		}
		signer, writable := rights(meta)
		infos[i] = ledgercore.AccountInfo{
			Key:        meta.Address,
			IsSigner:   signer,
			IsWritable: writable,
			Account:    acct,
		}
	}

	ic := &invokeContext{
		bank:    b,
		st:      st,
		program: ix.ProgramID,
		infos:   infos,
		depth:   depth,
	}
	ic.snapshot()

	st.logf("Program %v invoke [%d]", ix.ProgramID, depth)
	err := prog.execute(ic, infos, ix.Data)
	if err == nil {
		err = ic.verify()
	}
	if err != nil {
		st.logf("Program %v failed: %v", ix.ProgramID, err)
		return err
	}
	st.logf("Program %v success", ix.ProgramID)
	return nil
}

// execute runs every instruction of st.msg in order, stopping at the first
// failure.
func (b *Bank) execute(st *txnState) error {
	msg := st.msg
	rights := func(meta transactions.AccountMeta) (bool, bool) {
		return msg.IsSigner(meta.Address), msg.IsWritable(meta.Address)
	}
	for i, ix := range msg.Instructions {
		if err := b.invoke(st, ix, rights, 1); err != nil {
			return &InstructionError{Index: i, Err: err}
		}
	}
	return nil
}
