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

package main

import (
	"github.com/spf13/cobra"

	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/bank"
)

var (
	keyfile       string
	depositAmount string
)

func init() {
	for _, cmd := range []*cobra.Command{initializeCmd, depositCmd, withdrawCmd} {
		cmd.Flags().StringVarP(&keyfile, "keyfile", "k", "", "Key file of the signing account")
		cmd.MarkFlagRequired("keyfile")
	}
	depositCmd.Flags().StringVarP(&depositAmount, "amount", "a", "", "Amount to deposit, in native units (e.g. 0.01)")
	depositCmd.MarkFlagRequired("amount")
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Create the history and custodial accounts, paid for by the admin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		admin, err := loadKeyfile(keyfile)
		if err != nil {
			return err
		}
		return withBank(func(b *bank.Bank) error {
			ix, err := transactions.MakeInitialize(b.Params(), basics.Address(admin.SignatureVerifier))
			if err != nil {
				return err
			}
			return submit(cmd, b, admin, ix)
		})
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Move native units from the signer into custody",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		depositor, err := loadKeyfile(keyfile)
		if err != nil {
			return err
		}
		amount, err := parseAmount(depositAmount)
		if err != nil {
			return err
		}
		return withBank(func(b *bank.Bank) error {
			ix, err := transactions.MakeDeposit(b.Params(), basics.Address(depositor.SignatureVerifier), amount)
			if err != nil {
				return err
			}
			return submit(cmd, b, depositor, ix)
		})
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Move everything above the rent reserve from custody to the admin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		admin, err := loadKeyfile(keyfile)
		if err != nil {
			return err
		}
		return withBank(func(b *bank.Bank) error {
			ix, err := transactions.MakeWithdraw(b.Params(), basics.Address(admin.SignatureVerifier))
			if err != nil {
				return err
			}
			return submit(cmd, b, admin, ix)
		})
	},
}
