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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/algorand/go-deposit-ledger/test/partitiontest"
)

func TestNativeToLamports(t *testing.T) {
	partitiontest.PartitionTest(t)

	tests := []struct {
		in  string
		out uint64
	}{
		{"0.01", 10_000_000},
		{"2", 2_000_000_000},
		{"0", 0},
		{"0.000000001", 1},
		{"18446744073.709551615", ^uint64(0)},
	}
	for _, test := range tests {
		got, err := ParseNative(test.in)
		require.NoError(t, err, test.in)
		require.Equal(t, test.out, got, test.in)
	}
}

func TestNativeToLamportsRejects(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, in := range []string{"-1", "0.0000000001", "18446744073.709551616", "abc"} {
		_, err := ParseNative(in)
		require.Error(t, err, in)
	}
}

func TestLamportsToNative(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.True(t, decimal.RequireFromString("0.01").Equal(LamportsToNative(10_000_000)))
	require.Equal(t, "6.95644824", LamportsToNative(6956448240).String())
}
