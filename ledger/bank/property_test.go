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
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/go-deposit-ledger/crypto"
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
	"github.com/algorand/go-deposit-ledger/logging"
	"github.com/algorand/go-deposit-ledger/test/partitiontest"
)

func TestDepositsConserveLamports(t *testing.T) {
	partitiontest.PartitionTest(t)

	log := logging.NewLogger()
	log.SetLevel(logging.Error)
	admin, err := crypto.SecretsFromPrivateKey(adminPrivateKey)
	require.NoError(t, err)
	depositors := []*crypto.SignatureSecrets{
		crypto.GenerateSignatureSecrets(crypto.Seed{1}),
		crypto.GenerateSignatureSecrets(crypto.Seed{2}),
		crypto.GenerateSignatureSecrets(crypto.Seed{3}),
	}

	rapid.Check(t, func(rt *rapid.T) {
		b, err := Open("", testConfig(), log, nil)
		require.NoError(rt, err)
		defer b.Close()
		params := b.Params()
		history, _, err := params.HistoryAddress()
		require.NoError(rt, err)
		custodial, _, err := params.CustodialAddress()
		require.NoError(rt, err)

		// process reports whether a fee was charged
		process := func(payer *crypto.SignatureSecrets, ix transactions.Instruction) (bool, error) {
			msg := transactions.MakeMessage(addr(payer), b.LatestBlockhash(), ix)
			stxn, err := msg.Sign(payer)
			require.NoError(rt, err)
			res, err := b.Process(stxn)
			return res != nil, err
		}
		balance := func(a basics.Address) uint64 {
			acct, err := b.Account(a)
			require.NoError(rt, err)
			return acct.Lamports
		}

		var minted, fees uint64
		for _, s := range append([]*crypto.SignatureSecrets{admin}, depositors...) {
			_, err := b.Airdrop(addr(s), startBalance)
			require.NoError(rt, err)
			minted += startBalance
		}
		ix, err := transactions.MakeInitialize(params, addr(admin))
		require.NoError(rt, err)
		charged, err := process(admin, ix)
		require.NoError(rt, err)
		require.True(rt, charged)
		fees += 5000

		expected := make(map[basics.Address]uint64)
		var deposited uint64
		steps := rapid.IntRange(1, 20).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			who := depositors[rapid.IntRange(0, len(depositors)-1).Draw(rt, "who")]
			amount := rapid.Uint64Range(0, 2_000_000_000).Draw(rt, "amount")
			ix, err := transactions.MakeDeposit(params, addr(who), amount)
			require.NoError(rt, err)
			charged, err := process(who, ix)
			if charged {
				fees += 5000
			}
			if err != nil {
				continue
			}
			expected[addr(who)] += amount
			deposited += amount
		}

		require.Equal(rt, params.Rent.MinimumBalance(0)+deposited, balance(custodial))
		acct, err := b.Account(history)
		require.NoError(rt, err)
		decoded, err := ledgercore.DecodeDepositHistory(acct.Data)
		require.NoError(rt, err)
		for _, d := range depositors {
			require.Equal(rt, expected[addr(d)], decoded.Get(addr(d)))
		}

		total := balance(custodial) + balance(history)
		for _, s := range append([]*crypto.SignatureSecrets{admin}, depositors...) {
			total += balance(addr(s))
		}
		require.Equal(rt, minted-fees, total)
	})
}
