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

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/algorand/go-deposit-ledger/crypto"
)

type (
	// Address is a unique identifier corresponding to ownership of money,
	// a program, or a program-derived account
	Address crypto.Digest
)

var (
	// SystemProgramAddress identifies the built-in value-transfer facility.
	SystemProgramAddress = Address{}

	// RentSysvarAddress identifies the read-only account that publishes the
	// rent parameters.
	RentSysvarAddress = mustUnmarshalAddress("SysvarRent111111111111111111111111111111111")
)

// UnmarshalAddress parses the base58 text form of an address.
func UnmarshalAddress(address string) (Address, error) {
	decoded := base58.Decode(address)
	if len(decoded) == 0 && address != "" {
		return Address{}, fmt.Errorf("failed to decode address %s from base 58", address)
	}
	var addr Address
	if len(decoded) != len(addr) {
		return Address{}, fmt.Errorf("decoded bad addr: %s has %d bytes", address, len(decoded))
	}
	copy(addr[:], decoded)

	// Validate that we had a canonical string representation
	if addr.String() != address {
		return Address{}, fmt.Errorf("address %s is non-canonical", address)
	}
	return addr, nil
}

func mustUnmarshalAddress(address string) Address {
	addr, err := UnmarshalAddress(address)
	if err != nil {
		panic(err)
	}
	return addr
}

// String returns the base58 representation of Address
func (addr Address) String() string {
	return base58.Encode(addr[:])
}

// IsZero checks if an address is the zero value.
func (addr Address) IsZero() bool {
	return addr == Address{}
}

// MarshalText returns the address string as an array of bytes
func (addr Address) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

// UnmarshalText initializes the Address from an array of bytes.
func (addr *Address) UnmarshalText(text []byte) error {
	address, err := UnmarshalAddress(string(text))
	if err == nil {
		*addr = address
		return nil
	}
	return err
}

// FindProgramAddress derives the off-curve address owned by program for the
// given seeds, together with the bump seed that was appended to reach it.
func FindProgramAddress(program Address, seeds ...[]byte) (Address, uint8, error) {
	addr, bump, err := crypto.FindProgramAddress(seeds, crypto.Digest(program))
	return Address(addr), bump, err
}

// CreateProgramAddress derives the address owned by program for seeds that
// already include the bump seed.
func CreateProgramAddress(program Address, seeds ...[]byte) (Address, error) {
	addr, err := crypto.CreateProgramAddress(seeds, crypto.Digest(program))
	return Address(addr), err
}

// EncodeBase58 returns the base58 text form of arbitrary bytes.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}
