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
	"os"

	"github.com/spf13/cobra"
)

var dataDir string

var jsonOutput bool

var showLogs bool

func init() {
	// keys.go
	rootCmd.AddCommand(keygenCmd)

	// account.go
	rootCmd.AddCommand(airdropCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(addressesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(depositedCmd)

	// program.go
	rootCmd.AddCommand(initializeCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(withdrawCmd)

	// configcmd.go
	rootCmd.AddCommand(configCmd)

	rootCmd.PersistentFlags().StringVarP(&dataDir, "datadir", "d", "", "Data directory of the ledger")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&showLogs, "logs", false, "Print program logs of submitted transactions")
}

var rootCmd = &cobra.Command{
	Use:           "depositctl",
	Short:         "CLI for the deposit ledger",
	Long:          `depositctl runs the deposit program against a local ledger kept in a data directory: it creates keys, funds accounts, initializes the program and moves deposits in and out of custody.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		//If no arguments passed, we should fallback to help
		cmd.HelpFunc()(cmd, args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
