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
	"github.com/algorand/go-deposit-ledger/data/basics"
)

// AccountMeta names an account an instruction touches, and how.
type AccountMeta struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Address    basics.Address `codec:"addr"`
	IsSigner   bool           `codec:"sig"`
	IsWritable bool           `codec:"w"`
}

// WritableSigner is an account that signs the transaction and may change.
func WritableSigner(addr basics.Address) AccountMeta {
	return AccountMeta{Address: addr, IsSigner: true, IsWritable: true}
}

// Writable is an account that may change but does not sign.
func Writable(addr basics.Address) AccountMeta {
	return AccountMeta{Address: addr, IsWritable: true}
}

// ReadOnly is an account that is only read.
func ReadOnly(addr basics.Address) AccountMeta {
	return AccountMeta{Address: addr}
}

// Instruction is a single invocation of a program: the program to run, the
// ordered accounts it is handed, and its opaque input.
type Instruction struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	ProgramID basics.Address `codec:"prog"`
	Accounts  []AccountMeta  `codec:"accts"`
	Data      []byte         `codec:"data"`
}
