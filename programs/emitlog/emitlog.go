// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package emitlog - log a line and emit two events
package emitlog

import (
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
)

// DefaultID - usual program identity
var DefaultID = identity.MustFromBase58("EmitLog111111111111111111111111111111111111")

var initializeDiscriminator = layout.InstructionDiscriminator("initialize")

// values carried by the emitted events
const (
	Value        = 12
	MessageValue = 3
	Message      = "hello world"
)

// Program - the event program
type Program struct {
	id identity.Identity
}

// New - event program with the given identity
func New(id identity.Identity) *Program {
	return &Program{id: id}
}

// ID - program identity
func (p *Program) ID() identity.Identity {
	return p.id
}

// Name - for logging
func (p *Program) Name() string {
	return "emitlog"
}

// Process - initialize is the only instruction
func (p *Program) Process(ctx *ledger.InvokeContext, data []byte) error {
	d, _, err := layout.SplitInstruction(data)
	if nil != err {
		return err
	}
	if initializeDiscriminator != d {
		return fault.ErrInstructionNotFound
	}

	ctx.Log("Program ID: %s will emit log", ctx.ProgramID())

	err = ctx.Emit(&layout.ValueEvent{Value: Value})
	if nil != err {
		return err
	}
	return ctx.Emit(&layout.MessageEvent{Value: MessageValue, Message: Message})
}

// NewInitializeInstruction - log and emit
func NewInitializeInstruction(program identity.Identity) ledger.Instruction {
	return ledger.Instruction{
		ProgramID: program,
		Accounts:  []ledger.AccountMeta{},
		Data:      layout.NewEncoder(initializeDiscriminator).Bytes(),
	}
}
