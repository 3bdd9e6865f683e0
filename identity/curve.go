// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"filippo.io/edwards25519"
)

// IsOnCurve - true if the bytes decode to a point on the ed25519 curve
//
// non-canonical encodings of valid points are accepted, which matches
// the decompression used by other ledger implementations
func IsOnCurve(buffer []byte) bool {
	if Size != len(buffer) {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(buffer)
	return nil == err
}

// IsOnCurve - true if a private key could exist for this identity
func (id Identity) IsOnCurve() bool {
	return IsOnCurve(id[:])
}
