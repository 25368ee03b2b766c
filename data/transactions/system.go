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
	"encoding/binary"
	"fmt"

	"github.com/algorand/go-deposit-ledger/data/basics"
)

// SystemKind selects a system program operation. It is encoded as a
// little-endian uint32 at the start of the instruction data.
type SystemKind uint32

const (
	// CreateAccountOp allocates a new account owned by a program.
	CreateAccountOp SystemKind = 0
	// TransferOp moves lamports between two accounts.
	TransferOp SystemKind = 2
)

const (
	systemTagLen     = 4
	createAccountLen = systemTagLen + 8 + 8 + len(basics.Address{})
	transferLen      = systemTagLen + 8
	systemFrom       = 0
	systemTo         = 1
)

func (k SystemKind) String() string {
	switch k {
	case CreateAccountOp:
		return "create_account"
	case TransferOp:
		return "transfer"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(k))
	}
}

// SystemInstruction is a decoded system program request. Space and Owner are
// only meaningful for CreateAccountOp.
type SystemInstruction struct {
	Kind     SystemKind
	Lamports uint64
	Space    uint64
	Owner    basics.Address
}

// DecodeSystemInstruction parses system program instruction data.
func DecodeSystemInstruction(data []byte) (SystemInstruction, error) {
	if len(data) < systemTagLen {
		return SystemInstruction{}, malformed("short system instruction", "len", len(data))
	}
	si := SystemInstruction{Kind: SystemKind(binary.LittleEndian.Uint32(data))}
	switch si.Kind {
	case CreateAccountOp:
		if len(data) != createAccountLen {
			return SystemInstruction{}, malformed("bad create_account length", "len", len(data))
		}
		si.Lamports = binary.LittleEndian.Uint64(data[4:])
		si.Space = binary.LittleEndian.Uint64(data[12:])
		copy(si.Owner[:], data[20:])
	case TransferOp:
		if len(data) != transferLen {
			return SystemInstruction{}, malformed("bad transfer length", "len", len(data))
		}
		si.Lamports = binary.LittleEndian.Uint64(data[4:])
	default:
		return SystemInstruction{}, malformed("unsupported system instruction", "tag", uint32(si.Kind))
	}
	return si, nil
}

// Encode returns the wire form of si.
func (si SystemInstruction) Encode() []byte {
	switch si.Kind {
	case CreateAccountOp:
		out := make([]byte, createAccountLen)
		binary.LittleEndian.PutUint32(out, uint32(si.Kind))
		binary.LittleEndian.PutUint64(out[4:], si.Lamports)
		binary.LittleEndian.PutUint64(out[12:], si.Space)
		copy(out[20:], si.Owner[:])
		return out
	default:
		out := make([]byte, transferLen)
		binary.LittleEndian.PutUint32(out, uint32(si.Kind))
		binary.LittleEndian.PutUint64(out[4:], si.Lamports)
		return out
	}
}

// MakeCreateAccount builds a system instruction allocating space bytes at
// to, funded with lamports from from, and assigned to owner. Both accounts
// must sign, a program-derived to signs through its seeds.
func MakeCreateAccount(from, to basics.Address, lamports, space uint64, owner basics.Address) Instruction {
	return Instruction{
		ProgramID: basics.SystemProgramAddress,
		Accounts:  []AccountMeta{WritableSigner(from), WritableSigner(to)},
		Data:      SystemInstruction{Kind: CreateAccountOp, Lamports: lamports, Space: space, Owner: owner}.Encode(),
	}
}

// MakeTransfer builds a system instruction moving lamports from from to to.
func MakeTransfer(from, to basics.Address, lamports uint64) Instruction {
	return Instruction{
		ProgramID: basics.SystemProgramAddress,
		Accounts:  []AccountMeta{WritableSigner(from), Writable(to)},
		Data:      SystemInstruction{Kind: TransferOp, Lamports: lamports}.Encode(),
	}
}

// SystemParties returns the funding and receiving accounts of a system
// instruction.
func SystemParties(ix Instruction) (from, to AccountMeta, ok bool) {
	if len(ix.Accounts) < 2 {
		return AccountMeta{}, AccountMeta{}, false
	}
	return ix.Accounts[systemFrom], ix.Accounts[systemTo], true
}
