// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"crypto/sha256"
	"encoding/hex"
)

// DiscriminatorSize - bytes at the start of every record, event and instruction
const DiscriminatorSize = 8

// Discriminator - schema tag
type Discriminator [DiscriminatorSize]byte

func discriminator(namespace string, name string) Discriminator {
	digest := sha256.Sum256([]byte(namespace + ":" + name))
	d := Discriminator{}
	copy(d[:], digest[:DiscriminatorSize])
	return d
}

// AccountDiscriminator - tag for an account record type
func AccountDiscriminator(name string) Discriminator {
	return discriminator("account", name)
}

// EventDiscriminator - tag for an emitted event type
func EventDiscriminator(name string) Discriminator {
	return discriminator("event", name)
}

// InstructionDiscriminator - tag for an instruction, name is in snake case
func InstructionDiscriminator(name string) Discriminator {
	return discriminator("global", name)
}

// Bytes - discriminator as a slice
func (d Discriminator) Bytes() []byte {
	return d[:]
}

// String - hex representation
func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}

// GoString - for %#v
func (d Discriminator) GoString() string {
	return "<discriminator:" + hex.EncodeToString(d[:]) + ">"
}

// MarshalText - for JSON
func (d Discriminator) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
