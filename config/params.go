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

package config

import (
	"fmt"

	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/logging"
)

// MaxAccountDataLen bounds the data a single account may hold.
const MaxAccountDataLen = 10 * 1024 * 1024

// MinHistoryAccountSize is the smallest record that holds the entry count
// and one depositor.
const MinHistoryAccountSize = 4 + 32 + 8

// ProgramParams is the immutable view of Local used by the deposit program.
// It is built once and passed explicitly to whoever needs it.
type ProgramParams struct {
	ProgramID           basics.Address
	Admin               basics.Address
	HistorySeed         []byte
	DepositSeed         []byte
	HistoryAccountSize  uint64
	MinWithdrawLamports uint64
	Rent                RentParams
}

// ProgramParams parses the textual settings of cfg.
func (cfg Local) ProgramParams() (ProgramParams, error) {
	program, err := basics.UnmarshalAddress(cfg.ProgramID)
	if err != nil {
		return ProgramParams{}, fmt.Errorf("ProgramID: %w", err)
	}
	admin, err := basics.UnmarshalAddress(cfg.AdminAddress)
	if err != nil {
		return ProgramParams{}, fmt.Errorf("AdminAddress: %w", err)
	}
	if cfg.HistorySeed == cfg.DepositSeed {
		return ProgramParams{}, fmt.Errorf("HistorySeed and DepositSeed must differ, both are %q", cfg.HistorySeed)
	}
	for _, seed := range []string{cfg.HistorySeed, cfg.DepositSeed} {
		if len(seed) == 0 || len(seed) > 32 {
			return ProgramParams{}, fmt.Errorf("seed %q must be between 1 and 32 bytes", seed)
		}
	}
	if cfg.HistoryAccountSize < MinHistoryAccountSize || cfg.HistoryAccountSize > MaxAccountDataLen {
		return ProgramParams{}, fmt.Errorf("HistoryAccountSize %d must be between %d and %d", cfg.HistoryAccountSize, MinHistoryAccountSize, MaxAccountDataLen)
	}
	return ProgramParams{
		ProgramID:           program,
		Admin:               admin,
		HistorySeed:         []byte(cfg.HistorySeed),
		DepositSeed:         []byte(cfg.DepositSeed),
		HistoryAccountSize:  cfg.HistoryAccountSize,
		MinWithdrawLamports: cfg.MinWithdrawLamports,
		Rent:                cfg.RentParams(),
	}, nil
}

// RentParams returns the rent settings of cfg.
func (cfg Local) RentParams() RentParams {
	return RentParams{
		LamportsPerByteYear: cfg.LamportsPerByteYear,
		ExemptionThreshold:  cfg.ExemptionThreshold,
		BurnPercent:         cfg.BurnPercent,
	}
}

// LogLevel maps BaseLoggerDebugLevel onto a logging level.
func (cfg Local) LogLevel() logging.Level {
	switch lvl := logging.Level(cfg.BaseLoggerDebugLevel); {
	case lvl < logging.Error:
		return logging.Error
	case lvl > logging.Debug:
		return logging.Debug
	default:
		return lvl
	}
}

// HistoryAddress derives the address of the account holding the deposit
// record, together with its bump seed.
func (p ProgramParams) HistoryAddress() (basics.Address, uint8, error) {
	return basics.FindProgramAddress(p.ProgramID, p.HistorySeed)
}

// CustodialAddress derives the address of the account holding deposited
// funds, together with its bump seed.
func (p ProgramParams) CustodialAddress() (basics.Address, uint8, error) {
	return basics.FindProgramAddress(p.ProgramID, p.DepositSeed)
}
