// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/programs/fault"
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - generate a new key from secure random data
func NewPrivateKey() (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromSeed - deterministic key from a 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// PrivateKeyFromBytes - from the 64 byte seed ++ public key form
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey, err := PrivateKeyFromSeed(buffer[:ed25519.SeedSize])
	if nil != err {
		return nil, err
	}

	// the embedded public key must agree with the seed
	if !bytes.Equal(privateKey.key[ed25519.SeedSize:], buffer[ed25519.SeedSize:]) {
		return nil, fault.ErrInvalidIdentity
	}
	return privateKey, nil
}

// Identity - the public half of the key
func (privateKey *PrivateKey) Identity() Identity {
	id := Identity{}
	copy(id[:], privateKey.key[ed25519.SeedSize:])
	return id
}

// Bytes - the 64 byte seed ++ public key form
func (privateKey *PrivateKey) Bytes() []byte {
	b := make([]byte, len(privateKey.key))
	copy(b, privateKey.key)
	return b
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(privateKey.key, message))
}
