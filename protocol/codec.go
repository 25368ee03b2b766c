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

package protocol

import (
	"errors"
	"fmt"
	"sync"

	"github.com/algorand/go-codec/codec"
)

// ErrTrailingBytes is returned when a buffer holds more than the one object
// being decoded.
var ErrTrailingBytes = errors.New("trailing bytes after encoded object")

// Stored accounts, transaction statuses and signed messages are msgpack.
// The handle is canonical so equal values always encode to equal bytes.
var msgpackHandle = newMsgpackHandle()

// CLI output is indented JSON.
var jsonHandle = newJSONHandle()

func newMsgpackHandle() *codec.MsgpackHandle {
	h := new(codec.MsgpackHandle)
	h.ErrorIfNoField = true
	h.ErrorIfNoArrayExpand = true
	h.Canonical = true
	h.RecursiveEmptyCheck = true
	h.WriteExt = true
	h.PositiveIntUnsigned = true
	h.Raw = true
	return h
}

func newJSONHandle() *codec.JsonHandle {
	h := new(codec.JsonHandle)
	h.Canonical = true
	h.RecursiveEmptyCheck = true
	h.Indent = 2
	h.HTMLCharsAsIs = true
	return h
}

var encoderPool = sync.Pool{
	New: func() interface{} {
		return codec.NewEncoderBytes(nil, msgpackHandle)
	},
}

// EncodeReflect returns the canonical msgpack encoding of obj.
func EncodeReflect(obj interface{}) []byte {
	var b []byte
	enc := encoderPool.Get().(*codec.Encoder)
	enc.ResetBytes(&b)
	enc.MustEncode(obj)
	encoderPool.Put(enc)
	return b
}

// DecodeReflect decodes the msgpack object in b into objptr. b must hold
// exactly one object.
func DecodeReflect(b []byte, objptr interface{}) error {
	dec := codec.NewDecoderBytes(b, msgpackHandle)
	if err := dec.Decode(objptr); err != nil {
		return err
	}
	if n := dec.NumBytesRead(); n != len(b) {
		return fmt.Errorf("%w: %d of %d bytes used", ErrTrailingBytes, n, len(b))
	}
	return nil
}

// EncodeJSON returns the indented JSON encoding of obj.
func EncodeJSON(obj interface{}) []byte {
	var b []byte
	codec.NewEncoderBytes(&b, jsonHandle).MustEncode(obj)
	return b
}
