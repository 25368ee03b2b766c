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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/algorand/go-deposit-ledger/config"
	"github.com/algorand/go-deposit-ledger/crypto"
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/logging"
)

// adminPrivateKey is the keypair of the default admin address.
var adminPrivateKey = []byte{
	203, 219, 86, 187, 107, 81, 112, 226, 4, 227, 158, 252, 76, 123, 149, 180, 95, 198, 36,
	9, 235, 156, 55, 45, 74, 84, 77, 104, 33, 95, 92, 16, 35, 32, 15, 255, 219, 159, 176,
	79, 195, 212, 154, 21, 69, 187, 78, 252, 114, 21, 13, 226, 204, 217, 246, 16, 100, 38,
	1, 39, 21, 32, 244, 59,
}

const startBalance = 5_000_000_000

func testConfig() config.Local {
	cfg := config.GetDefaultLocal()
	cfg.LedgerInMemory = true
	return cfg
}

type fixture struct {
	bank      *Bank
	reg       *prometheus.Registry
	admin     *crypto.SignatureSecrets
	user      *crypto.SignatureSecrets
	history   basics.Address
	custodial basics.Address
}

func makeFixture(t *testing.T, cfg config.Local) *fixture {
	admin, err := crypto.SecretsFromPrivateKey(adminPrivateKey)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	b, err := Open(t.TempDir(), cfg, logging.TestingLog(t), reg)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })

	history, _, err := b.Params().HistoryAddress()
	require.NoError(t, err)
	custodial, _, err := b.Params().CustodialAddress()
	require.NoError(t, err)

	return &fixture{
		bank:      b,
		reg:       reg,
		admin:     admin,
		user:      crypto.GenerateSignatureSecrets(crypto.Seed{0x55}),
		history:   history,
		custodial: custodial,
	}
}

func makeDefaultFixture(t *testing.T) *fixture {
	return makeFixture(t, testConfig())
}

func addr(s *crypto.SignatureSecrets) basics.Address {
	return basics.Address(s.SignatureVerifier)
}

func (f *fixture) fund(t *testing.T, secrets ...*crypto.SignatureSecrets) {
	for _, s := range secrets {
		_, err := f.bank.Airdrop(addr(s), startBalance)
		require.NoError(t, err)
	}
}

func (f *fixture) balance(t *testing.T, a basics.Address) uint64 {
	acct, err := f.bank.Account(a)
	require.NoError(t, err)
	return acct.Lamports
}

// sign builds a transaction paid for by payer, signed by payer and signers.
func (f *fixture) sign(t *testing.T, payer *crypto.SignatureSecrets, signers []*crypto.SignatureSecrets, ixs ...transactions.Instruction) transactions.SignedTxn {
	msg := transactions.MakeMessage(addr(payer), f.bank.LatestBlockhash(), ixs...)
	stxn, err := msg.Sign(append([]*crypto.SignatureSecrets{payer}, signers...)...)
	require.NoError(t, err)
	return stxn
}

func (f *fixture) initialize(t *testing.T) *TxnResult {
	ix, err := transactions.MakeInitialize(f.bank.Params(), addr(f.admin))
	require.NoError(t, err)
	res, err := f.bank.Process(f.sign(t, f.admin, nil, ix))
	require.NoError(t, err)
	return res
}

func (f *fixture) deposit(t *testing.T, depositor *crypto.SignatureSecrets, amount uint64) (*TxnResult, error) {
	ix, err := transactions.MakeDeposit(f.bank.Params(), addr(depositor), amount)
	require.NoError(t, err)
	return f.bank.Process(f.sign(t, depositor, nil, ix))
}

func (f *fixture) withdraw(t *testing.T, signer *crypto.SignatureSecrets) (*TxnResult, error) {
	ix, err := transactions.MakeWithdraw(f.bank.Params(), addr(signer))
	require.NoError(t, err)
	return f.bank.Process(f.sign(t, signer, nil, ix))
}
