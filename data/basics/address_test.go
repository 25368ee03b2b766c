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

	"github.com/stretchr/testify/require"

	"github.com/algorand/go-deposit-ledger/crypto"
	"github.com/algorand/go-deposit-ledger/test/partitiontest"
)

const deployedProgram = "AkCLhVcBtdSs2erJ5X129pQaTE6dqzhP8ou6AtZUBQkQ"

func TestAddressRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)

	var addr Address
	crypto.RandBytes(addr[:])

	parsed, err := UnmarshalAddress(addr.String())
	require.NoError(t, err)
	require.Equal(t, addr, parsed)

	text, err := addr.MarshalText()
	require.NoError(t, err)
	var back Address
	require.NoError(t, back.UnmarshalText(text))
	require.Equal(t, addr, back)
}

func TestAddressKnownBytes(t *testing.T) {
	partitiontest.PartitionTest(t)

	addr, err := UnmarshalAddress("GizgqMPamZ5joAZ8XxLPqshwvqD8xDFCp1buwhbi28sp")
	require.NoError(t, err)
	require.Equal(t, Address{
		233, 161, 87, 254, 99, 44, 51, 57, 46, 43, 81, 249, 106, 108, 21, 162,
		103, 253, 138, 211, 216, 110, 229, 99, 108, 33, 51, 118, 232, 151, 89, 119,
	}, addr)

	admin, err := UnmarshalAddress("3N7dHiEv6fz59uwNBTMNp9Fei9JKWL6je1fUnDxWXdbQ")
	require.NoError(t, err)
	require.Equal(t, Address{
		35, 32, 15, 255, 219, 159, 176, 79, 195, 212, 154, 21, 69, 187, 78, 252,
		114, 21, 13, 226, 204, 217, 246, 16, 100, 38, 1, 39, 21, 32, 244, 59,
	}, admin)
}

func TestWellKnownAddresses(t *testing.T) {
	partitiontest.PartitionTest(t)

	require.True(t, SystemProgramAddress.IsZero())
	require.Equal(t, "11111111111111111111111111111111", SystemProgramAddress.String())
	require.Equal(t, "SysvarRent111111111111111111111111111111111", RentSysvarAddress.String())
	require.False(t, RentSysvarAddress.IsZero())
}

func TestAddressMalformed(t *testing.T) {
	partitiontest.PartitionTest(t)

	_, err := UnmarshalAddress("")
	require.Error(t, err)

	// 0, O, I and l are not part of the alphabet
	_, err = UnmarshalAddress("0N7dHiEv6fz59uwNBTMNp9Fei9JKWL6je1fUnDxWXdbQ")
	require.Error(t, err)

	// too short
	_, err = UnmarshalAddress("3N7dHiEv6fz59uwNBTMN")
	require.Error(t, err)

	var addr Address
	require.Error(t, addr.UnmarshalText([]byte("not an address")))
}

func TestFindProgramAddressDeployment(t *testing.T) {
	partitiontest.PartitionTest(t)

	program, err := UnmarshalAddress(deployedProgram)
	require.NoError(t, err)

	history, bump, err := FindProgramAddress(program, []byte("deposit-history-seed"))
	require.NoError(t, err)
	require.Equal(t, "7jYpqqFSVDCGwTigh8a2vkcUfZKHGsrSVXAsfj8GeS7j", history.String())
	require.Equal(t, uint8(255), bump)

	deposit, bump, err := FindProgramAddress(program, []byte("deposit"))
	require.NoError(t, err)
	require.Equal(t, "9Ry9NaGh9kKrBSxyUMWTsgRDVDfocUrDvMoZCbvh9LxC", deposit.String())
	require.Equal(t, uint8(255), bump)

	again, err := CreateProgramAddress(program, []byte("deposit"), []byte{bump})
	require.NoError(t, err)
	require.Equal(t, deposit, again)
}
