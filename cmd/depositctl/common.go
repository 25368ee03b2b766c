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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/algorand/go-deposit-ledger/config"
	"github.com/algorand/go-deposit-ledger/crypto"
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
	"github.com/algorand/go-deposit-ledger/ledger/bank"
	"github.com/algorand/go-deposit-ledger/logging"
	"github.com/algorand/go-deposit-ledger/protocol"
	"github.com/algorand/go-deposit-ledger/util/codecs"
)

var log = logging.Base()

// resolveDataDir returns the -d flag, falling back to $DEPOSIT_DATA.
func resolveDataDir() (string, error) {
	dir := dataDir
	if dir == "" {
		dir = os.Getenv("DEPOSIT_DATA")
	}
	if dir == "" {
		return "", errors.New(errorNoDataDirectory)
	}
	return filepath.Abs(dir)
}

func loadConfig() (string, config.Local, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return "", config.Local{}, err
	}
	cfg, err := config.LoadConfigOrDefault(dir)
	if err != nil {
		return "", config.Local{}, err
	}
	log.SetLevel(cfg.LogLevel())
	if cfg.LogJSON {
		log.SetJSONFormatter()
	}
	if err := setupLogFile(dir, cfg); err != nil {
		return "", config.Local{}, err
	}
	return dir, cfg, nil
}

var logFile *logging.CyclicFileWriter

// setupLogFile points the base logger at the cyclic log file of the data
// directory, or at stderr when the size limit is zero.
func setupLogFile(dir string, cfg config.Local) error {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if cfg.LogSizeLimit == 0 {
		log.SetOutput(os.Stderr)
		return nil
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	w, err := logging.OpenCyclicFileWriter(filepath.Join(dir, config.LogFilename), filepath.Join(dir, config.LogArchiveFilename), cfg.LogSizeLimit)
	if err != nil {
		return err
	}
	logFile = w
	log.SetOutput(w)
	return nil
}

// withBank opens the ledger of the data directory for the duration of fn.
func withBank(fn func(b *bank.Bank) error) error {
	dir, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	b, err := bank.Open(dir, cfg, log, nil)
	if err != nil {
		return fmt.Errorf(errorOpenBank, dir, err)
	}
	defer b.Close()
	return fn(b)
}

func parseAddress(s string) (basics.Address, error) {
	addr, err := basics.UnmarshalAddress(s)
	if err != nil {
		return basics.Address{}, fmt.Errorf(errorParseAddr, err)
	}
	return addr, nil
}

func parseAmount(s string) (uint64, error) {
	lamports, err := basics.ParseNative(s)
	if err != nil {
		return 0, fmt.Errorf(errorParseAmount, s, err)
	}
	return lamports, nil
}

// saveKeyfile writes the 64-byte private key of s as a JSON array of numbers.
func saveKeyfile(filename string, s *crypto.SignatureSecrets) error {
	raw := make([]int, len(s.SK))
	for i, b := range s.SK {
		raw[i] = int(b)
	}
	return codecs.SaveObjectToFile(filename, raw, false)
}

func loadKeyfile(filename string) (*crypto.SignatureSecrets, error) {
	var raw []int
	if err := codecs.LoadObjectFromFile(filename, &raw); err != nil {
		return nil, fmt.Errorf(errorReadKeyfile, filename, err)
	}
	var sk crypto.PrivateKey
	if len(raw) != len(sk) {
		return nil, fmt.Errorf(errorKeyfileContent, filename, len(sk))
	}
	for i, v := range raw {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf(errorKeyfileContent, filename, len(sk))
		}
		sk[i] = byte(v)
	}
	s, err := crypto.SecretsFromPrivateKey(sk[:])
	if err != nil {
		return nil, fmt.Errorf(errorReadKeyfile, filename, err)
	}
	return s, nil
}

// submit signs ixs with the payer and signers and processes them.
func submit(cmd *cobra.Command, b *bank.Bank, payer *crypto.SignatureSecrets, ixs ...transactions.Instruction) error {
	msg := transactions.MakeMessage(basics.Address(payer.SignatureVerifier), b.LatestBlockhash(), ixs...)
	stxn, err := msg.Sign(payer)
	if err != nil {
		return err
	}
	res, err := b.Process(stxn)
	if res == nil {
		return fmt.Errorf(errorTxnRejected, err)
	}
	out := cmd.OutOrStdout()
	if showLogs {
		for _, line := range res.Logs {
			fmt.Fprintln(out, line)
		}
	}
	if err != nil {
		return fmt.Errorf(errorTxnFailed, res.ID, err)
	}
	if jsonOutput {
		return writeJSON(out, struct {
			ID   string `codec:"id"`
			Slot uint64 `codec:"slot"`
			Fee  uint64 `codec:"fee"`
		}{res.ID.String(), res.Slot, res.Fee})
	}
	fmt.Fprintf(out, infoTxnProcessed+"\n", res.ID, res.Slot, res.Fee)
	return nil
}

func writeJSON(w io.Writer, obj interface{}) error {
	_, err := w.Write(append(protocol.EncodeJSON(obj), '\n'))
	return err
}
