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

package transactions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/test/partitiontest"
)

func TestSystemInstructionEncoding(t *testing.T) {
	partitiontest.PartitionTest(t)

	transfer := SystemInstruction{Kind: TransferOp, Lamports: 10_000_000}
	data := transfer.Encode()
	require.Equal(t, []byte{2, 0, 0, 0, 0x80, 0x96, 0x98, 0, 0, 0, 0, 0}, data)
	decoded, err := DecodeSystemInstruction(data)
	require.NoError(t, err)
	require.Equal(t, transfer, decoded)

	create := SystemInstruction{Kind: CreateAccountOp, Lamports: 42650880, Space: 6000, Owner: basics.Address{9, 9}}
	data = create.Encode()
	require.Len(t, data, 52)
	require.Equal(t, []byte{0, 0, 0, 0}, data[:4])
	decoded, err = DecodeSystemInstruction(data)
	require.NoError(t, err)
	require.Equal(t, create, decoded)
}

func TestSystemInstructionRejects(t *testing.T) {
	partitiontest.PartitionTest(t)

	for _, data := range [][]byte{
		nil,
		{2, 0, 0},
		{2, 0, 0, 0, 1},
		{1, 0, 0, 0},
		append(SystemInstruction{Kind: TransferOp}.Encode(), 0),
		SystemInstruction{Kind: CreateAccountOp}.Encode()[:40],
	} {
		_, err := DecodeSystemInstruction(data)
		require.True(t, errors.Is(err, ErrMalformedRequest), "%v", data)
	}
}

func TestSystemBuilders(t *testing.T) {
	partitiontest.PartitionTest(t)

	from, to, owner := basics.Address{1}, basics.Address{2}, basics.Address{3}

	ix := MakeTransfer(from, to, 5)
	require.Equal(t, basics.SystemProgramAddress, ix.ProgramID)
	src, dst, ok := SystemParties(ix)
	require.True(t, ok)
	require.Equal(t, WritableSigner(from), src)
	require.Equal(t, Writable(to), dst)

	ix = MakeCreateAccount(from, to, 890880, 0, owner)
	src, dst, ok = SystemParties(ix)
	require.True(t, ok)
	require.Equal(t, WritableSigner(from), src)
	require.Equal(t, WritableSigner(to), dst)
	si, err := DecodeSystemInstruction(ix.Data)
	require.NoError(t, err)
	require.Equal(t, owner, si.Owner)

	_, _, ok = SystemParties(Instruction{})
	require.False(t, ok)
}
