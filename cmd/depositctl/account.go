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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/ledger/bank"
	"github.com/algorand/go-deposit-ledger/ledger/ledgercore"
)

var airdropCmd = &cobra.Command{
	Use:   "airdrop [address] [amount]",
	Short: "Credit an account with newly created native units",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		lamports, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		return withBank(func(b *bank.Bank) error {
			balance, err := b.Airdrop(addr, lamports)
			if err != nil {
				return err
			}
			return printBalance(cmd, addr, balance)
		})
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show the balance of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		return withBank(func(b *bank.Bank) error {
			acct, err := b.Account(addr)
			if err != nil {
				return err
			}
			return printBalance(cmd, addr, acct.Lamports)
		})
	},
}

func printBalance(cmd *cobra.Command, addr basics.Address, lamports uint64) error {
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), struct {
			Address  basics.Address `codec:"address"`
			Lamports uint64         `codec:"lamports"`
		}{addr, lamports})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v: %d lamports (%s)\n", addr, lamports, basics.LamportsToNative(lamports))
	return nil
}

var addressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "Show the program, admin and program-derived addresses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		params, err := cfg.ProgramParams()
		if err != nil {
			return err
		}
		history, historyBump, err := params.HistoryAddress()
		if err != nil {
			return err
		}
		custodial, custodialBump, err := params.CustodialAddress()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(out, struct {
				Program       basics.Address `codec:"program"`
				Admin         basics.Address `codec:"admin"`
				History       basics.Address `codec:"history"`
				HistoryBump   uint8          `codec:"history-bump"`
				Custodial     basics.Address `codec:"custodial"`
				CustodialBump uint8          `codec:"custodial-bump"`
			}{params.ProgramID, params.Admin, history, historyBump, custodial, custodialBump})
		}
		fmt.Fprintf(out, "program:   %v\n", params.ProgramID)
		fmt.Fprintf(out, "admin:     %v\n", params.Admin)
		fmt.Fprintf(out, "history:   %v (bump %d)\n", history, historyBump)
		fmt.Fprintf(out, "custodial: %v (bump %d)\n", custodial, custodialBump)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the cumulative deposit of every depositor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBank(func(b *bank.Bank) error {
			addr, _, err := b.Params().HistoryAddress()
			if err != nil {
				return err
			}
			acct, err := b.Account(addr)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if acct.Owner != b.Params().ProgramID || len(acct.Data) == 0 {
				fmt.Fprintln(out, infoNoHistory)
				return nil
			}
			history, err := ledgercore.DecodeDepositHistory(acct.Data)
			if err != nil {
				return err
			}

			entries := history.Entries()
			if jsonOutput {
				return writeJSON(out, entries)
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%v: %d lamports (%s)\n", e.Depositor, e.Amount, basics.LamportsToNative(e.Amount))
			}
			fmt.Fprintf(out, "%d of %d entries used\n", len(entries), ledgercore.HistoryCapacity(len(acct.Data)))
			return nil
		})
	},
}

var depositedCmd = &cobra.Command{
	Use:   "deposited",
	Short: "Show the withdrawable amount held in custody",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBank(func(b *bank.Bank) error {
			addr, _, err := b.Params().CustodialAddress()
			if err != nil {
				return err
			}
			acct, err := b.Account(addr)
			if err != nil {
				return err
			}
			reserve := b.Params().Rent.MinimumBalance(uint64(len(acct.Data)))
			return printBalance(cmd, addr, basics.SubSaturate(acct.Lamports, reserve))
		})
	},
}
