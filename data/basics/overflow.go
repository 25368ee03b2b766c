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
	"golang.org/x/exp/constraints"
)

// OAdd returns a+b and whether the sum wrapped around.
func OAdd[T constraints.Unsigned](a, b T) (sum T, overflowed bool) {
	sum = a + b
	return sum, sum < a
}

// OSub returns a-b and whether b was larger than a.
func OSub[T constraints.Unsigned](a, b T) (diff T, underflowed bool) {
	diff = a - b
	return diff, diff > a
}

// SubSaturate returns a-b, or zero when b is larger than a.
func SubSaturate[T constraints.Unsigned](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}

// LamportSum totals account balances and remembers whether the total ever
// wrapped around. Once overflowed, Total is meaningless.
type LamportSum struct {
	Total      uint64
	Overflowed bool
}

// Add includes lamports in the total.
func (s *LamportSum) Add(lamports uint64) {
	total, overflowed := OAdd(s.Total, lamports)
	s.Total = total
	s.Overflowed = s.Overflowed || overflowed
}
