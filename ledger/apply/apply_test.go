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
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/test/partitiontest"
)

func TestProcessMalformed(t *testing.T) {
	partitiontest.PartitionTest(t)

	w := makeDefaultWorld(t)
	for _, data := range [][]byte{nil, {3}, {0, 1}, {1, 1}} {
		rt := makeMockRuntime(w.params.ProgramID, nil)
		err := w.proc.Process(rt, nil, data)
		require.True(t, errors.Is(err, ErrMalformedRequest), "%v", err)
		require.True(t, errors.Is(err, transactions.ErrMalformedRequest))
		require.Equal(t, MalformedRequest, mustCode(t, err))
	}
}

func TestErrorCodes(t *testing.T) {
	partitiontest.PartitionTest(t)

	expected := []string{
		"AdminRequired", "MalformedRequest", "InvalidAccount", "MissingSignature",
		"AlreadyInitialized", "InsufficientFunds", "NotEnoughAccounts", "HistoryFull",
		"MalformedHistory", "Uninitialized", "ArithmeticOverflow",
	}
	for i, name := range expected {
		require.Equal(t, name, ErrorCode(i).String())
	}
	require.Equal(t, "ErrorCode(99)", ErrorCode(99).String())

	err := NewError(InvalidAccount, "%A", "role", "custodial")
	require.Equal(t, "InvalidAccount: role=custodial", err.Error())
	require.Equal(t, "custodial", err.Attributes()["role"])
	require.True(t, errors.Is(err, ErrInvalidAccount))
	require.False(t, errors.Is(err, ErrAdminRequired))
	require.Equal(t, "HistoryFull", ErrHistoryFull.Error())

	wrapped := fmt.Errorf("tx failed: %w", err)
	code, ok := CodeOf(wrapped)
	require.True(t, ok)
	require.Equal(t, InvalidAccount, code)

	_, ok = CodeOf(errors.New("plain"))
	require.False(t, ok)

	cause := errors.New("cause")
	werr := WrapError(HistoryFull, cause, "n", 1)
	require.True(t, errors.Is(werr, cause))
	require.Equal(t, 1, werr.Attributes()["n"])
}

func TestPrivilegedOpsRequireAdmin(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(rt *rapid.T) {
		var signer basics.Address
		copy(signer[:], rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(rt, "signer"))
		w := makeDefaultWorld(rt)
		if signer == w.params.Admin {
			return
		}
		w.initialize(rt)
		require.NoError(rt, w.deposit(rt, w.depositor, 50_000_000))
		w.account(signer).Lamports = 1_000_000_000
		before := w.snapshot()

		withdraw, err := transactions.MakeWithdraw(w.params, signer)
		require.NoError(rt, err)
		initialize, err := transactions.MakeInitialize(w.params, signer)
		require.NoError(rt, err)
		signed := rapid.Bool().Draw(rt, "signed")
		for _, ix := range []transactions.Instruction{withdraw, initialize} {
			ix.Accounts[0].IsSigner = signed
			_, err := w.run(ix)
			if !errors.Is(err, ErrAdminRequired) {
				rt.Fatalf("signer %v: got %v, want AdminRequired", signer, err)
			}
		}
		require.Equal(rt, before, w.snapshot())
	})
}

func TestDepositsNeverDecreaseTotals(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(rt *rapid.T) {
		w := makeDefaultWorld(rt)
		w.initialize(rt)
		depositors := []basics.Address{w.depositor, {0xd1}, {0xd2}}
		for _, d := range depositors {
			w.account(d).Lamports = 1 << 40
		}

		steps := rapid.IntRange(1, 20).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			before := make(map[basics.Address]uint64)
			prev := w.decodeHistory(rt)
			for _, d := range depositors {
				before[d] = prev.Get(d)
			}

			who := depositors[rapid.IntRange(0, len(depositors)-1).Draw(rt, "who")]
			amount := rapid.Uint64Range(0, 1<<30).Draw(rt, "amount")
			if rapid.Bool().Draw(rt, "withdraw") {
				_ = w.withdraw(rt, w.params.Admin)
			} else {
				require.NoError(rt, w.deposit(rt, who, amount))
			}

			after := w.decodeHistory(rt)
			for _, d := range depositors {
				if after.Get(d) < before[d] {
					rt.Fatalf("total of %v went from %d to %d", d, before[d], after.Get(d))
				}
			}
		}
		require.GreaterOrEqual(rt, w.balance(w.custodial), uint64(890880))
	})
}

func TestWithdrawLeavesReserve(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(rt *rapid.T) {
		w := makeDefaultWorld(rt)
		w.initialize(rt)
		amount := rapid.Uint64Range(10_000_000, depositorStartBalance).Draw(rt, "amount")
		require.NoError(rt, w.deposit(rt, w.depositor, amount))
		total := w.balance(w.custodial) + w.balance(w.params.Admin)

		require.NoError(rt, w.withdraw(rt, w.params.Admin))
		require.Equal(rt, w.params.Rent.MinimumBalance(0), w.balance(w.custodial))
		require.Equal(rt, total, w.balance(w.custodial)+w.balance(w.params.Admin))
	})
}

func TestTraceLines(t *testing.T) {
	partitiontest.PartitionTest(t)

	w := makeDefaultWorld(t)
	ix, err := transactions.MakeDeposit(w.params, w.depositor, 1)
	require.NoError(t, err)
	infos := w.infos(ix)
	infos[transactions.DepositDepositorIndex].IsSigner = false
	rt := makeMockRuntime(ix.ProgramID, infos)
	err = w.proc.Process(rt, infos, ix.Data)
	require.True(t, errors.Is(err, ErrMissingSignature))
	require.Equal(t, []string{
		"instruction: deposit",
		fmt.Sprintf("depositor %v did not sign", w.depositor),
	}, rt.logs)
}
