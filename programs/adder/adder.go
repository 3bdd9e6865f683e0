// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package adder - add two numbers and log the sum
package adder

import (
	"math/bits"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
)

// DefaultID - usual program identity
var DefaultID = identity.MustFromBase58("Adder11111111111111111111111111111111111111")

var addDiscriminator = layout.InstructionDiscriminator("add")

// Program - the adder program, it holds no state
type Program struct {
	id identity.Identity
}

// New - adder program with the given identity
func New(id identity.Identity) *Program {
	return &Program{id: id}
}

// ID - program identity
func (p *Program) ID() identity.Identity {
	return p.id
}

// Name - for logging
func (p *Program) Name() string {
	return "adder"
}

// Process - add is the only instruction
func (p *Program) Process(ctx *ledger.InvokeContext, data []byte) error {
	d, arguments, err := layout.SplitInstruction(data)
	if nil != err {
		return err
	}
	if addDiscriminator != d {
		return fault.ErrInstructionNotFound
	}

	decoder := layout.NewArgumentDecoder(arguments)
	d1, err := decoder.Uint64()
	if nil != err {
		return fault.ErrInvalidInstructionData
	}
	d2, err := decoder.Uint64()
	if nil != err {
		return fault.ErrInvalidInstructionData
	}

	sum, err := Add(d1, d2)
	if nil != err {
		return err
	}
	ctx.Log("Sum is: %d!", sum)
	return nil
}

// Add - checked sum
func Add(d1 uint64, d2 uint64) (uint64, error) {
	sum, carry := bits.Add64(d1, d2, 0)
	if 0 != carry {
		return 0, fault.ErrArithmeticOverflow
	}
	return sum, nil
}

// NewAddInstruction - log d1 + d2
func NewAddInstruction(program identity.Identity, d1 uint64, d2 uint64) ledger.Instruction {
	e := layout.NewEncoder(addDiscriminator)
	e.PutUint64(d1)
	e.PutUint64(d2)
	return ledger.Instruction{
		ProgramID: program,
		Accounts:  []ledger.AccountMeta{},
		Data:      e.Bytes(),
	}
}
