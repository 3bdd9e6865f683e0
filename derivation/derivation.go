// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - program controlled addresses
//
// an address is SHA-256 over the seeds, the program identity and a fixed
// marker; only results that are not valid ed25519 points are accepted so
// that no private key can ever sign for them
//
//	address = SHA-256(seed[0] ++ … ++ seed[n] ++ nonce ++ program ++ "ProgramDerivedAddress")
//
// the canonical nonce is the first value, scanning down from 255, that
// yields an off-curve address
package derivation

import (
	"crypto/sha256"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
)

// limits on seeds, the nonce counts as one seed
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
	MaxNonce      = 255
)

var marker = []byte("ProgramDerivedAddress")

// CreateAddress - hash the seeds into an address owned by program
//
// fails if the result lies on the curve
func CreateAddress(seeds [][]byte, program identity.Identity) (identity.Identity, error) {
	if len(seeds) > MaxSeeds {
		return identity.Identity{}, fault.ErrInvalidSeeds
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return identity.Identity{}, fault.ErrInvalidSeeds
		}
		h.Write(seed)
	}
	h.Write(program[:])
	h.Write(marker)

	address := identity.Identity{}
	copy(address[:], h.Sum(nil))

	if address.IsOnCurve() {
		return identity.Identity{}, fault.ErrAddressOnCurve
	}
	return address, nil
}

// Find - locate the canonical nonce for a set of seeds
//
// the nonce is appended as a final single byte seed
func Find(seeds [][]byte, program identity.Identity) (identity.Identity, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return identity.Identity{}, 0, fault.ErrInvalidSeeds
	}

	nonce := []byte{MaxNonce}
	withNonce := append(append(make([][]byte, 0, len(seeds)+1), seeds...), nonce)

	for n := MaxNonce; n > 0; n -= 1 {
		nonce[0] = byte(n)
		address, err := CreateAddress(withNonce, program)
		switch err {
		case nil:
			return address, byte(n), nil
		case fault.ErrAddressOnCurve:
			// try the next nonce
		default:
			return identity.Identity{}, 0, err
		}
	}
	return identity.Identity{}, 0, fault.ErrDerivationFailure
}

// Seeds - the standard seed list: a namespace tag and the owner
func Seeds(namespace []byte, owner identity.Identity) [][]byte {
	return [][]byte{namespace, owner.Bytes()}
}

// Derive - the address and nonce of owner's record under namespace
func Derive(namespace []byte, owner identity.Identity, program identity.Identity) (identity.Identity, uint8, error) {
	return Find(Seeds(namespace, owner), program)
}

// SignerSeeds - seeds including the nonce, as needed to sign for the address
func SignerSeeds(namespace []byte, owner identity.Identity, nonce uint8) [][]byte {
	return append(Seeds(namespace, owner), []byte{nonce})
}
