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
	"github.com/algorand/go-deposit-ledger/data/basics"
)

// Account is the stored state of a single address.
type Account struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Lamports   uint64         `codec:"lam"`
	Data       []byte         `codec:"data"`
	Owner      basics.Address `codec:"own"`
	Executable bool           `codec:"exe"`
}

// IsEmpty reports whether the account has never been funded or allocated.
// Empty accounts are not stored.
func (a Account) IsEmpty() bool {
	return a.Lamports == 0 && len(a.Data) == 0 && a.Owner.IsZero() && !a.Executable
}

// Clone returns a deep copy of a.
func (a Account) Clone() *Account {
	c := a
	if a.Data != nil {
		c.Data = append([]byte(nil), a.Data...)
	}
	return &c
}

// AccountInfo is an account as handed to a program: its address, how the
// transaction declared it, and its live state. Changes made through Account
// are visible to every holder of the same AccountInfo.
type AccountInfo struct {
	Key        basics.Address
	IsSigner   bool
	IsWritable bool
	*Account
}

// IsOwnedBy reports whether the account exists and belongs to owner.
func (ai AccountInfo) IsOwnedBy(owner basics.Address) bool {
	return ai.Account != nil && ai.Owner == owner
}

// DataIsEmpty reports whether the account holds no data bytes.
func (ai AccountInfo) DataIsEmpty() bool {
	return ai.Account == nil || len(ai.Data) == 0
}
