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

package config

import "math"

// accountStorageOverhead is the number of bytes charged for every account on
// top of its data, covering its metadata.
const accountStorageOverhead = 128

// RentParams describe the storage cost of an account. An account holding at
// least MinimumBalance of its data length is exempt from rent collection.
type RentParams struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  float64
	BurnPercent         uint8
}

// MinimumBalance computes the rent-exempt reserve for an account holding
// dataLen bytes of data.
func (r RentParams) MinimumBalance(dataLen uint64) uint64 {
	bytes := float64(accountStorageOverhead+dataLen) * float64(r.LamportsPerByteYear)
	reserve := bytes * r.ExemptionThreshold
	if reserve >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(reserve)
}
