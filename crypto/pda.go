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

package crypto

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
)

const (
	// MaxSeeds is the maximum number of seeds (including the bump seed)
	// accepted by CreateProgramAddress.
	MaxSeeds = 16

	// MaxSeedLen is the maximum length of a single seed.
	MaxSeedLen = 32

	programDerivedAddressMarker = "ProgramDerivedAddress"
)

var (
	// ErrMaxSeedLengthExceeded is returned when a seed is longer than MaxSeedLen
	// or too many seeds were supplied.
	ErrMaxSeedLengthExceeded = errors.New("length of the seed is too long for address generation")
	// ErrInvalidSeeds is returned when the seeds hash to a point on the ed25519 curve.
	ErrInvalidSeeds = errors.New("provided seeds do not result in a valid address")
	// ErrNoViableBump is returned when every bump from 255 down to 1 lands on the curve.
	ErrNoViableBump = errors.New("unable to find a viable program address bump seed")
)

// IsOnCurve reports whether b is the encoding of a point on the ed25519 curve,
// i.e. whether some private key could produce it as a public key.
func IsOnCurve(b Digest) bool {
	_, err := new(edwards25519.Point).SetBytes(b[:])
	return err == nil
}

// CreateProgramAddress derives the address owned by programID for seeds.
// The address is sha256(seeds... || programID || "ProgramDerivedAddress");
// derivations that land on the ed25519 curve are rejected with ErrInvalidSeeds.
func CreateProgramAddress(seeds [][]byte, programID Digest) (Digest, error) {
	if len(seeds) > MaxSeeds {
		return Digest{}, ErrMaxSeedLengthExceeded
	}
	parts := make([][]byte, 0, len(seeds)+2)
	for _, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return Digest{}, ErrMaxSeedLengthExceeded
		}
		parts = append(parts, seed)
	}
	parts = append(parts, programID[:], []byte(programDerivedAddressMarker))

	addr := HashParts(parts...)
	if IsOnCurve(addr) {
		return Digest{}, ErrInvalidSeeds
	}
	return addr, nil
}

// FindProgramAddress searches for the highest bump seed in [1, 255] for which
// seeds||bump yields a valid program address. The result is a pure function of
// its inputs, so any party holding the seeds and programID can recompute it.
func FindProgramAddress(seeds [][]byte, programID Digest) (Digest, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return Digest{}, 0, ErrMaxSeedLengthExceeded
	}
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump > 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}
		addr, err := CreateProgramAddress(withBump, programID)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if !errors.Is(err, ErrInvalidSeeds) {
			return Digest{}, 0, fmt.Errorf("FindProgramAddress: %w", err)
		}
	}
	return Digest{}, 0, ErrNoViableBump
}
