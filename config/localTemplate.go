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

// Local holds the per-data-directory configuration settings for the deposit
// program and the bank that hosts it.
//
// Every field may be overridden from the environment. Unset variables leave
// the file (or default) value untouched.
type Local struct {
	// Version tracks the version of the defaults the file was written against.
	Version uint32

	// ProgramID is the base58 identity the deposit program is deployed at.
	// Both program-derived accounts are derived from it.
	ProgramID string `env:"DEPOSIT_PROGRAM_ID"`

	// AdminAddress is the base58 identity allowed to initialize the program
	// and to withdraw from the custodial account.
	AdminAddress string `env:"DEPOSIT_ADMIN_ADDRESS"`

	// HistorySeed is the seed of the account holding the per-depositor record.
	HistorySeed string `env:"DEPOSIT_HISTORY_SEED"`

	// DepositSeed is the seed of the custodial account.
	DepositSeed string `env:"DEPOSIT_DEPOSIT_SEED"`

	// HistoryAccountSize is the number of data bytes allocated for the record
	// account at initialization. It bounds how many distinct depositors can
	// be recorded.
	HistoryAccountSize uint64 `env:"DEPOSIT_HISTORY_ACCOUNT_SIZE"`

	// MinWithdrawLamports is the smallest custodial balance a withdrawal
	// accepts.
	MinWithdrawLamports uint64 `env:"DEPOSIT_MIN_WITHDRAW_LAMPORTS"`

	// LamportsPerByteYear, ExemptionThreshold and BurnPercent are published
	// through the rent sysvar by the bank.
	LamportsPerByteYear uint64  `env:"DEPOSIT_LAMPORTS_PER_BYTE_YEAR"`
	ExemptionThreshold  float64 `env:"DEPOSIT_EXEMPTION_THRESHOLD"`
	BurnPercent         uint8   `env:"DEPOSIT_BURN_PERCENT"`

	// LamportsPerSignature is the fee charged to the fee payer for every
	// signature on a transaction, whether or not the transaction succeeds.
	LamportsPerSignature uint64 `env:"DEPOSIT_LAMPORTS_PER_SIGNATURE"`

	// MaxRecentBlockhashes is how many recent blockhashes the bank accepts
	// transactions against.
	MaxRecentBlockhashes int `env:"DEPOSIT_MAX_RECENT_BLOCKHASHES"`

	// LedgerBackend selects the key-value store holding accounts, "pebble"
	// or "badger".
	LedgerBackend string `env:"DEPOSIT_LEDGER_BACKEND"`

	// LedgerInMemory keeps the account store in memory only.
	LedgerInMemory bool `env:"DEPOSIT_LEDGER_IN_MEMORY"`

	// BaseLoggerDebugLevel specifies the logging level. The levels range from
	// 2 (errors only) to 5 (debug / verbose); values outside are clamped. The
	// default value is 4 (Info).
	BaseLoggerDebugLevel uint32 `env:"DEPOSIT_LOG_LEVEL"`

	// LogJSON switches the base logger to the JSON formatter.
	LogJSON bool `env:"DEPOSIT_LOG_JSON"`

	// LogSizeLimit is the size in bytes the log file in the data directory
	// may reach before it is moved to the archive file. Zero logs to stderr.
	LogSizeLimit uint64 `env:"DEPOSIT_LOG_SIZE_LIMIT"`
}

var defaultLocal = Local{
	Version:              1,
	ProgramID:            "AkCLhVcBtdSs2erJ5X129pQaTE6dqzhP8ou6AtZUBQkQ",
	AdminAddress:         "3N7dHiEv6fz59uwNBTMNp9Fei9JKWL6je1fUnDxWXdbQ",
	HistorySeed:          "deposit-history-seed",
	DepositSeed:          "deposit",
	HistoryAccountSize:   6000,
	MinWithdrawLamports:  10_000_000,
	LamportsPerByteYear:  3480,
	ExemptionThreshold:   2.0,
	BurnPercent:          50,
	LamportsPerSignature: 5000,
	MaxRecentBlockhashes: 150,
	LedgerBackend:        "pebble",
	LedgerInMemory:       false,
	BaseLoggerDebugLevel: 4,
	LogJSON:              false,
	LogSizeLimit:         1048576,
}
