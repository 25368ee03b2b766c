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

package basics

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// LamportsPerNative is the number of smallest value units in one native unit.
const LamportsPerNative = 1_000_000_000

const nativeDecimals = 9

var maxLamports = decimal.NewFromBigInt(new(big.Int).SetUint64(^uint64(0)), 0)

// NativeToLamports converts an amount of native units into lamports. The
// amount must be non-negative, representable in a uint64, and must not carry
// more precision than one lamport.
func NativeToLamports(native decimal.Decimal) (uint64, error) {
	if native.Sign() < 0 {
		return 0, fmt.Errorf("amount %s is negative", native)
	}
	lamports := native.Shift(nativeDecimals)
	if !lamports.IsInteger() {
		return 0, fmt.Errorf("amount %s is finer than one lamport", native)
	}
	if lamports.GreaterThan(maxLamports) {
		return 0, fmt.Errorf("amount %s overflows", native)
	}
	return lamports.BigInt().Uint64(), nil
}

// ParseNative parses a decimal string of native units into lamports.
func ParseNative(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return NativeToLamports(d)
}

// LamportsToNative converts lamports into native units.
func LamportsToNative(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -nativeDecimals)
}
