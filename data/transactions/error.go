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
	"errors"

	"github.com/algorand/go-deposit-ledger/data/basics"
)

// ErrMalformedRequest is wrapped by every instruction decoding failure.
var ErrMalformedRequest = errors.New("malformed request")

func malformed(reason string, pairs ...any) error {
	msg := "malformed request: " + reason
	if len(pairs) > 0 {
		msg += " (%A)"
	}
	err := basics.New(msg, pairs...)
	err.Wrapped = ErrMalformedRequest
	return err
}
