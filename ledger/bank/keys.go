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

package bank

import (
	"encoding/binary"
	"fmt"

	"github.com/algorand/go-deposit-ledger/data/basics"
	"github.com/algorand/go-deposit-ledger/data/transactions"
)

// Every record kind lives under its own 4-byte prefix.
const (
	kvPrefixAccount   = "\x00\x00\x00\x01"
	kvPrefixTxnStatus = "\x00\x00\x00\x02"
	kvPrefixBlockhash = "\x00\x00\x00\x03"
)

// return the big-endian binary encoding of a uint64
func bigEndianUint64(v uint64) []byte {
	ret := make([]byte, 8)
	binary.BigEndian.PutUint64(ret, v)
	return ret
}

// accountKey: 4-byte prefix + 32-byte address
func accountKey(addr basics.Address) []byte {
	return append([]byte(kvPrefixAccount), addr[:]...)
}

// txnStatusKey: 4-byte prefix + 64-byte first signature
func txnStatusKey(id transactions.Txid) []byte {
	return append([]byte(kvPrefixTxnStatus), id[:]...)
}

// blockhashKey: 4-byte prefix + 8-byte big-endian slot
func blockhashKey(slot uint64) []byte {
	return append([]byte(kvPrefixBlockhash), bigEndianUint64(slot)...)
}

func splitBlockhashKey(key []byte) (slot uint64, err error) {
	if len(key) != 12 {
		err = fmt.Errorf("splitBlockhashKey not correct length")
		return
	}
	slot = binary.BigEndian.Uint64(key[4:12])
	return
}
