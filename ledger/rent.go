// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// AccountStorageOverhead - bytes charged for every account in addition to its data
const AccountStorageOverhead = 128

// default rent parameters
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2
)

// Rent - cost of keeping an allocation alive
type Rent struct {
	LamportsPerByteYear uint64 `json:"lamportsPerByteYear"`
	ExemptionThreshold  uint64 `json:"exemptionThreshold"`
}

// DefaultRent - the usual parameters
var DefaultRent = Rent{
	LamportsPerByteYear: DefaultLamportsPerByteYear,
	ExemptionThreshold:  DefaultExemptionThreshold,
}

// MinimumBalance - lamports needed for space bytes to be exempt from rent
func (rent Rent) MinimumBalance(space int) uint64 {
	return (AccountStorageOverhead + uint64(space)) * rent.LamportsPerByteYear * rent.ExemptionThreshold
}
