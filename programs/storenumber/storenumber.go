// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storenumber - store one number in a fresh keypair account
package storenumber

import (
	"github.com/bitmark-inc/programs/constraint"
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/lifecycle"
)

// DefaultID - usual program identity
var DefaultID = identity.MustFromBase58("DV7LYjynbeNzCBYdfpD2TGtaQF4SBz3Xvwk7WAoHuitF")

var initializeDiscriminator = layout.InstructionDiscriminator("initialize")

// the new account signs for its own creation
var checklist = constraint.New().
	Account("new_account").Signer().Mutable().
	Account("signer").Signer().Mutable().
	Account("system_program").Address(identity.SystemProgram).
	Checklist()

// Program - the store number program
type Program struct {
	id identity.Identity
}

// New - store number program with the given identity
func New(id identity.Identity) *Program {
	return &Program{id: id}
}

// ID - program identity
func (p *Program) ID() identity.Identity {
	return p.id
}

// Name - for logging
func (p *Program) Name() string {
	return "storenumber"
}

// Process - initialize is the only instruction
func (p *Program) Process(ctx *ledger.InvokeContext, data []byte) error {
	d, arguments, err := layout.SplitInstruction(data)
	if nil != err {
		return err
	}
	if initializeDiscriminator != d {
		return fault.ErrInstructionNotFound
	}

	value, err := layout.NewArgumentDecoder(arguments).Uint64()
	if nil != err {
		return fault.ErrInvalidInstructionData
	}

	accounts, err := checklist.Validate(ctx)
	if nil != err {
		return err
	}

	// an account can only be used once
	_, err = lifecycle.Create(ctx, accounts.Get("new_account"), accounts.Get("signer"), nil, &layout.DataStore{Data: value})
	if nil != err {
		return err
	}
	ctx.Log("Changed data to: %d!", value)
	return nil
}
