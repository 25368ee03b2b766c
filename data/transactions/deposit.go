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

	"github.com/algorand/go-deposit-ledger/config"
	"github.com/algorand/go-deposit-ledger/data/basics"
)

// DepositKind selects one of the deposit program operations. It is the
// leading byte of the instruction data.
type DepositKind uint8

const (
	// DepositOp moves funds from a depositor into the custodial account.
	DepositOp DepositKind = 0
	// WithdrawOp sweeps the custodial account to the administrator.
	WithdrawOp DepositKind = 1
	// InitializeOp creates the record and custodial accounts.
	InitializeOp DepositKind = 2
)

const depositAmountLen = 8

func (k DepositKind) String() string {
	switch k {
	case DepositOp:
		return "deposit"
	case WithdrawOp:
		return "withdraw"
	case InitializeOp:
		return "initialize"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// DepositInstruction is a decoded deposit program request. Amount is only
// meaningful for DepositOp.
type DepositInstruction struct {
	Kind   DepositKind
	Amount uint64
}

// DecodeDepositInstruction parses instruction data. Unknown tags, short
// payloads and trailing bytes are rejected so that every accepted buffer
// re-encodes to itself.
func DecodeDepositInstruction(data []byte) (DepositInstruction, error) {
	if len(data) == 0 {
		return DepositInstruction{}, malformed("empty instruction data")
	}
	kind := DepositKind(data[0])
	payload := data[1:]
	switch kind {
	case DepositOp:
		if len(payload) < depositAmountLen {
			return DepositInstruction{}, malformed("short deposit amount", "len", len(payload))
		}
		if len(payload) > depositAmountLen {
			return DepositInstruction{}, malformed("trailing bytes", "op", kind, "extra", len(payload)-depositAmountLen)
		}
		return DepositInstruction{Kind: kind, Amount: binary.LittleEndian.Uint64(payload)}, nil
	case WithdrawOp, InitializeOp:
		if len(payload) != 0 {
			return DepositInstruction{}, malformed("trailing bytes", "op", kind, "extra", len(payload))
		}
		return DepositInstruction{Kind: kind}, nil
	default:
		return DepositInstruction{}, malformed("unknown operation", "tag", uint8(kind))
	}
}

// Encode returns the wire form of di.
func (di DepositInstruction) Encode() []byte {
	if di.Kind != DepositOp {
		return []byte{byte(di.Kind)}
	}
	out := make([]byte, 1+depositAmountLen)
	out[0] = byte(DepositOp)
	binary.LittleEndian.PutUint64(out[1:], di.Amount)
	return out
}

// Account positions expected by each operation.
const (
	DepositDepositorIndex = 0
	DepositCustodialIndex = 1
	DepositHistoryIndex   = 2
	DepositSystemIndex    = 3
	DepositAccountCount   = 4

	WithdrawAdminIndex     = 0
	WithdrawCustodialIndex = 1
	WithdrawRentIndex      = 2
	WithdrawAccountCount   = 3

	InitializeAdminIndex     = 0
	InitializeHistoryIndex   = 1
	InitializeCustodialIndex = 2
	InitializeRentIndex      = 3
	InitializeSystemIndex    = 4
	InitializeAccountCount   = 5
)

// MakeDeposit builds the instruction crediting amount from depositor.
func MakeDeposit(params config.ProgramParams, depositor basics.Address, amount uint64) (Instruction, error) {
	history, _, err := params.HistoryAddress()
	if err != nil {
		return Instruction{}, err
	}
	custodial, _, err := params.CustodialAddress()
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: params.ProgramID,
		Accounts: []AccountMeta{
			WritableSigner(depositor),
			Writable(custodial),
			Writable(history),
			ReadOnly(basics.SystemProgramAddress),
		},
		Data: DepositInstruction{Kind: DepositOp, Amount: amount}.Encode(),
	}, nil
}

// MakeWithdraw builds the instruction sweeping the custodial account to admin.
func MakeWithdraw(params config.ProgramParams, admin basics.Address) (Instruction, error) {
	custodial, _, err := params.CustodialAddress()
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: params.ProgramID,
		Accounts: []AccountMeta{
			WritableSigner(admin),
			Writable(custodial),
			ReadOnly(basics.RentSysvarAddress),
		},
		Data: DepositInstruction{Kind: WithdrawOp}.Encode(),
	}, nil
}

// MakeInitialize builds the instruction creating the program accounts,
// funded by admin.
func MakeInitialize(params config.ProgramParams, admin basics.Address) (Instruction, error) {
	history, _, err := params.HistoryAddress()
	if err != nil {
		return Instruction{}, err
	}
	custodial, _, err := params.CustodialAddress()
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: params.ProgramID,
		Accounts: []AccountMeta{
			WritableSigner(admin),
			Writable(history),
			Writable(custodial),
			ReadOnly(basics.RentSysvarAddress),
			ReadOnly(basics.SystemProgramAddress),
		},
		Data: DepositInstruction{Kind: InitializeOp}.Encode(),
	}, nil
}
