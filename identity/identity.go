// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"bytes"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/util"
)

// Size - bytes in an identity (an ed25519 public key or a derived address)
const Size = 32

// Identity - a 32 byte account key
//
// user identities are ed25519 public keys; derived addresses share the
// same space but are chosen off the curve so no private key exists
type Identity [Size]byte

// SystemProgram - the built-in program that owns unallocated accounts
var SystemProgram = Identity{}

// FromBytes - make an identity from a raw 32 byte key
func FromBytes(buffer []byte) (Identity, error) {
	id := Identity{}
	if Size != len(buffer) {
		return id, fault.ErrInvalidKeyLength
	}
	copy(id[:], buffer)
	return id, nil
}

// FromBase58 - convert a Base58 encoded string to an identity
func FromBase58(s string) (Identity, error) {
	buffer := util.FromBase58(s)
	if 0 == len(buffer) {
		return Identity{}, fault.ErrInvalidIdentity
	}
	return FromBytes(buffer)
}

// MustFromBase58 - for compiled-in constants only
func MustFromBase58(s string) Identity {
	id, err := FromBase58(s)
	if nil != err {
		panic("identity: " + s + ": " + err.Error())
	}
	return id
}

// Bytes - the raw key as a byte slice
func (id Identity) Bytes() []byte {
	return id[:]
}

// IsZero - true for the system program identity
func (id Identity) IsZero() bool {
	return id == Identity{}
}

// Compare - bytewise ordering
func (id Identity) Compare(other Identity) int {
	return bytes.Compare(id[:], other[:])
}

// String - Base58 encoding for use by the fmt package (for %s)
func (id Identity) String() string {
	return util.ToBase58(id[:])
}

// GoString - for %#v
func (id Identity) GoString() string {
	return "<identity:" + id.String() + ">"
}

// MarshalText - convert to Base58 for JSON
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert from Base58 text
func (id *Identity) UnmarshalText(s []byte) error {
	i, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = i
	return nil
}
