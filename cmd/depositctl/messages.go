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

const (
	// General
	errorNoDataDirectory = "Data directory not specified.  Please use -d or set $DEPOSIT_DATA in your environment."
	errorOpenBank        = "Could not open the ledger in %s: %w"
	errorParseAddr       = "Failed to parse addr: %w"
	errorParseAmount     = "Failed to parse amount %q: %w"

	// Keys
	errorKeyfileExists  = "Key file %s already exists, use --force to replace it"
	errorReadKeyfile    = "Could not read key file %s: %w"
	errorKeyfileContent = "Key file %s must hold %d bytes, each between 0 and 255"
	infoCreatedKeyfile  = "Created key file %s for address %s"

	// Transactions
	infoTxnProcessed = "Transaction %s processed in slot %d, fee %d lamports"
	errorTxnFailed   = "Transaction %s failed: %w"
	errorTxnRejected = "Transaction rejected: %w"

	// Program
	infoNoHistory = "The deposit program has not been initialized"
)
