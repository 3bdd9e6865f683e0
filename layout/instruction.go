// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/bitmark-inc/programs/fault"
)

// NewInstructionEncoder - instruction data starts with the tag of its name
func NewInstructionEncoder(name string) *Encoder {
	return NewEncoder(InstructionDiscriminator(name))
}

// SplitInstruction - separate the tag from the argument bytes
func SplitInstruction(data []byte) (Discriminator, []byte, error) {
	d := Discriminator{}
	if len(data) < DiscriminatorSize {
		return d, nil, fault.ErrInstructionNotFound
	}
	copy(d[:], data)
	return d, data[DiscriminatorSize:], nil
}
