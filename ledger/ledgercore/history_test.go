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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/go-deposit-ledger/config"
	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/test/partitiontest"
)

func TestDepositHistoryKnownEncoding(t *testing.T) {
	partitiontest.PartitionTest(t)

	depositor, err := basics.UnmarshalAddress("GizgqMPamZ5joAZ8XxLPqshwvqD8xDFCp1buwhbi28sp")
	require.NoError(t, err)

	h := NewDepositHistory()
	total, err := h.Credit(depositor, 100)
	require.NoError(t, err)
	require.Equal(t, uint64(100), total)

	expected := []byte{
		1, 0, 0, 0,
		233, 161, 87, 254, 99, 44, 51, 57, 46, 43, 81, 249, 106, 108, 21, 162,
		103, 253, 138, 211, 216, 110, 229, 99, 108, 33, 51, 118, 232, 151, 89, 119,
		100, 0, 0, 0, 0, 0, 0, 0,
	}
	require.Equal(t, expected, h.Encode())

	decoded, err := DecodeDepositHistory(expected)
	require.NoError(t, err)
	require.Equal(t, uint64(100), decoded.Get(depositor))
	require.Equal(t, []HistoryEntry{{Depositor: depositor, Amount: 100}}, decoded.Entries())
}

func TestDepositHistoryPadding(t *testing.T) {
	partitiontest.PartitionTest(t)

	var depositor basics.Address
	depositor[0] = 42

	buf := make([]byte, 6000)
	for i := range buf {
		buf[i] = 0xff
	}
	require.NoError(t, NewDepositHistory().EncodeInto(buf))
	require.Equal(t, make([]byte, 6000), buf)

	h, err := DecodeDepositHistory(buf)
	require.NoError(t, err)
	_, err = h.Credit(depositor, 10_000_000)
	require.NoError(t, err)
	require.NoError(t, h.EncodeInto(buf))

	decoded, err := DecodeDepositHistory(buf)
	require.NoError(t, err)
	require.Equal(t, 1, decoded.Len())
	require.Equal(t, uint64(10_000_000), decoded.Get(depositor))
	require.Zero(t, decoded.Get(basics.Address{1}))
	require.Equal(t, make([]byte, 6000-HistoryEncodedLen(1)), buf[HistoryEncodedLen(1):])
}

func TestDepositHistoryCapacity(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.Equal(t, 149, HistoryCapacity(6000))
	require.Equal(t, 0, HistoryCapacity(0))
	require.Equal(t, 0, HistoryCapacity(43))
	require.Equal(t, 1, HistoryCapacity(44))
	require.Equal(t, HistoryEncodedLen(1), config.MinHistoryAccountSize)

	buf := make([]byte, 6000)
	h := NewDepositHistory()
	for i := 0; i < 149; i++ {
		_, err := h.Credit(basics.Address{byte(i), 1}, uint64(i+1))
		require.NoError(t, err)
	}
	require.NoError(t, h.EncodeInto(buf))

	_, err := h.Credit(basics.Address{0xff, 0xff}, 1)
	require.NoError(t, err)
	snapshot := append([]byte(nil), buf...)
	err = h.EncodeInto(buf)
	require.True(t, errors.Is(err, ErrHistoryFull))
	require.Equal(t, snapshot, buf)

	// existing depositors can still be credited once full
	full, err := DecodeDepositHistory(buf)
	require.NoError(t, err)
	_, err = full.Credit(basics.Address{0, 1}, 5)
	require.NoError(t, err)
	require.NoError(t, full.EncodeInto(buf))
}

func TestDepositHistoryOverflow(t *testing.T) {
	partitiontest.PartitionTest(t)

	h := NewDepositHistory()
	_, err := h.Credit(basics.Address{1}, math.MaxUint64-1)
	require.NoError(t, err)
	_, err = h.Credit(basics.Address{1}, 2)
	require.True(t, errors.Is(err, ErrHistoryOverflow))
	require.Equal(t, uint64(math.MaxUint64-1), h.Get(basics.Address{1}))
}

func TestDecodeDepositHistoryRejects(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, err := DecodeDepositHistory(nil)
	require.True(t, errors.Is(err, ErrMalformedHistory))

	_, err = DecodeDepositHistory([]byte{2, 0, 0, 0})
	require.True(t, errors.Is(err, ErrMalformedHistory))

	h := NewDepositHistory()
	_, err = h.Credit(basics.Address{1}, 1)
	require.NoError(t, err)
	entry := h.Encode()[historyCountLen:]
	dup := append([]byte{2, 0, 0, 0}, entry...)
	dup = append(dup, entry...)
	_, err = DecodeDepositHistory(dup)
	require.True(t, errors.Is(err, ErrMalformedHistory))
}

func TestDepositHistoryMonotonic(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		buf := make([]byte, 6000)
		require.NoError(t, NewDepositHistory().EncodeInto(buf))
		totals := make(map[basics.Address]uint64)

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			depositor := basics.Address{byte(rapid.IntRange(0, 7).Draw(t, "depositor"))}
			amount := rapid.Uint64Range(0, 1<<40).Draw(t, "amount")

			h, err := DecodeDepositHistory(buf)
			require.NoError(t, err)
			before := h.Get(depositor)
			_, err = h.Credit(depositor, amount)
			require.NoError(t, err)
			require.NoError(t, h.EncodeInto(buf))

			after, err := DecodeDepositHistory(buf)
			require.NoError(t, err)
			require.Equal(t, before+amount, after.Get(depositor))
			for other, total := range totals {
				if other != depositor {
					require.Equal(t, total, after.Get(other))
				}
			}
			totals[depositor] = before + amount
		}
	})
}
