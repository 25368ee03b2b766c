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

	"github.com/algorand/go-deposit-ledger/crypto"
	"github.com/algorand/go-deposit-ledger/data/basics"
)

var keygenForce bool

func init() {
	keygenCmd.Flags().BoolVarP(&keygenForce, "force", "f", false, "Replace an existing key file")
}

var keygenCmd = &cobra.Command{
	Use:   "keygen [keyfile]",
	Short: "Generate a new keypair",
	Long:  "Generate a new ed25519 keypair and write it to keyfile as a JSON array of 64 bytes.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]
		if _, err := os.Stat(filename); err == nil && !keygenForce {
			return fmt.Errorf(errorKeyfileExists, filename)
		}

		var seed crypto.Seed
		crypto.RandBytes(seed[:])
		s := crypto.GenerateSignatureSecrets(seed)
		if err := saveKeyfile(filename, s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), infoCreatedKeyfile+"\n", filename, basics.Address(s.SignatureVerifier))
		return nil
	},
}
