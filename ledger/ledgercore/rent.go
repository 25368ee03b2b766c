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

package ledgercore

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/algorand/go-deposit-ledger/config"
	"github.com/algorand/go-deposit-ledger/data/basics"
)

// RentSysvarLen is the size of the rent sysvar account data.
const RentSysvarLen = 8 + 8 + 1

// EncodeRentSysvar returns the account data published at the rent sysvar
// address: lamports per byte-year and the exemption threshold as
// little-endian u64 and f64, then the burn percentage.
func EncodeRentSysvar(rent config.RentParams) []byte {
	out := make([]byte, RentSysvarLen)
	binary.LittleEndian.PutUint64(out, rent.LamportsPerByteYear)
	binary.LittleEndian.PutUint64(out[8:], math.Float64bits(rent.ExemptionThreshold))
	out[16] = rent.BurnPercent
	return out
}

// DecodeRentSysvar parses rent sysvar account data.
func DecodeRentSysvar(data []byte) (config.RentParams, error) {
	if len(data) != RentSysvarLen {
		return config.RentParams{}, fmt.Errorf("rent sysvar has %d bytes, want %d", len(data), RentSysvarLen)
	}
	return config.RentParams{
		LamportsPerByteYear: binary.LittleEndian.Uint64(data),
		ExemptionThreshold:  math.Float64frombits(binary.LittleEndian.Uint64(data[8:])),
		BurnPercent:         data[16],
	}, nil
}

// RentFromAccount reads the rent parameters from the rent sysvar account.
func RentFromAccount(info AccountInfo) (config.RentParams, error) {
	if info.Key != basics.RentSysvarAddress {
		return config.RentParams{}, fmt.Errorf("account %v is not the rent sysvar", info.Key)
	}
	if info.Account == nil {
		return config.RentParams{}, fmt.Errorf("rent sysvar account is missing")
	}
	return DecodeRentSysvar(info.Data)
}
