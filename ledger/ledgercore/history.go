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
	"encoding/binary"
	"errors"

	"github.com/algorand/go-deposit-ledger/data/basics"
)

const (
	historyCountLen = 4
	// HistoryEntryLen is the encoded size of one depositor entry: the
	// 32-byte identity followed by the little-endian cumulative amount.
	HistoryEntryLen = 32 + 8
)

var (
	// ErrHistoryFull is returned when the record no longer fits in the
	// storage allocated for it.
	ErrHistoryFull = errors.New("deposit history is full")
	// ErrMalformedHistory is returned when stored record bytes do not decode.
	ErrMalformedHistory = errors.New("malformed deposit history")
	// ErrHistoryOverflow is returned when a credit would overflow a
	// depositor's cumulative amount.
	ErrHistoryOverflow = errors.New("deposit history amount overflow")
)

// HistoryEntry is the cumulative amount deposited by one depositor.
type HistoryEntry struct {
	Depositor basics.Address
	Amount    uint64
}

// DepositHistory maps depositors to the cumulative amount they ever
// deposited. Entries keep their insertion order, so equal histories encode
// to equal bytes.
type DepositHistory struct {
	entries []HistoryEntry
	index   map[basics.Address]int
}

// HistoryCapacity returns how many entries fit in size bytes of storage.
func HistoryCapacity(size int) int {
	if size < historyCountLen {
		return 0
	}
	return (size - historyCountLen) / HistoryEntryLen
}

// HistoryEncodedLen returns the number of bytes needed for n entries.
func HistoryEncodedLen(n int) int {
	return historyCountLen + n*HistoryEntryLen
}

// NewDepositHistory returns an empty history.
func NewDepositHistory() *DepositHistory {
	return &DepositHistory{index: make(map[basics.Address]int)}
}

// DecodeDepositHistory parses a stored record. Bytes after the last entry
// are ignored; they are the unused part of the allocation.
func DecodeDepositHistory(data []byte) (*DepositHistory, error) {
	if len(data) < historyCountLen {
		return nil, basics.Annotate(ErrMalformedHistory, "len", len(data))
	}
	count := binary.LittleEndian.Uint32(data)
	if uint64(count) > uint64(HistoryCapacity(len(data))) {
		return nil, basics.Annotate(ErrMalformedHistory, "count", count, "len", len(data))
	}

	h := &DepositHistory{
		entries: make([]HistoryEntry, 0, count),
		index:   make(map[basics.Address]int, count),
	}
	off := historyCountLen
	for i := 0; i < int(count); i++ {
		var e HistoryEntry
		copy(e.Depositor[:], data[off:off+32])
		e.Amount = binary.LittleEndian.Uint64(data[off+32:])
		off += HistoryEntryLen
		if _, dup := h.index[e.Depositor]; dup {
			return nil, basics.Annotate(ErrMalformedHistory, "duplicate", e.Depositor)
		}
		h.index[e.Depositor] = len(h.entries)
		h.entries = append(h.entries, e)
	}
	return h, nil
}

// Len returns the number of depositors.
func (h *DepositHistory) Len() int {
	return len(h.entries)
}

// Get returns the cumulative amount for depositor, zero if absent.
func (h *DepositHistory) Get(depositor basics.Address) uint64 {
	if i, ok := h.index[depositor]; ok {
		return h.entries[i].Amount
	}
	return 0
}

// Credit adds amount to depositor's cumulative total and returns the new
// total. The history is unchanged on overflow.
func (h *DepositHistory) Credit(depositor basics.Address, amount uint64) (uint64, error) {
	i, ok := h.index[depositor]
	if !ok {
		h.index[depositor] = len(h.entries)
		h.entries = append(h.entries, HistoryEntry{Depositor: depositor, Amount: amount})
		return amount, nil
	}
	total, overflowed := basics.OAdd(h.entries[i].Amount, amount)
	if overflowed {
		return 0, basics.Annotate(ErrHistoryOverflow, "depositor", depositor, "total", h.entries[i].Amount, "amount", amount)
	}
	h.entries[i].Amount = total
	return total, nil
}

// Entries returns a copy of the entries in insertion order.
func (h *DepositHistory) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

// EncodeInto writes the history over buf, zeroing whatever the entries do
// not cover. buf is left untouched if the history does not fit.
func (h *DepositHistory) EncodeInto(buf []byte) error {
	need := HistoryEncodedLen(len(h.entries))
	if need > len(buf) {
		return basics.Annotate(ErrHistoryFull, "entries", len(h.entries), "capacity", HistoryCapacity(len(buf)))
	}
	binary.LittleEndian.PutUint32(buf, uint32(len(h.entries)))
	off := historyCountLen
	for _, e := range h.entries {
		copy(buf[off:], e.Depositor[:])
		binary.LittleEndian.PutUint64(buf[off+32:], e.Amount)
		off += HistoryEntryLen
	}
	clear(buf[off:])
	return nil
}

// Encode returns the history in its minimal encoded form.
func (h *DepositHistory) Encode() []byte {
	buf := make([]byte, HistoryEncodedLen(len(h.entries)))
	// cannot fail, buf is exactly large enough
	_ = h.EncodeInto(buf)
	return buf
}
