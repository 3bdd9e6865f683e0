// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a per user counter at an address derived from the user
package counter

import (
	"github.com/bitmark-inc/programs/constraint"
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/lifecycle"
)

// Namespace - seed tag of counter records
const Namespace = "counter"

// DefaultID - usual program identity
var DefaultID = identity.MustFromBase58("BqVNxB4bggMbrAkiV6v5cyREqS4VFjD2d8i1ZAV8C9v5")

var (
	initializeDiscriminator = layout.InstructionDiscriminator("initialize")
	incrementDiscriminator  = layout.InstructionDiscriminator("increment")
)

// both instructions take the same accounts
var checklist = constraint.New().
	Account("user").Signer().Mutable().
	Account("counter").Mutable().Derived(Namespace, "user").
	Account("system_program").Address(identity.SystemProgram).
	Checklist()

// Program - the counter program
type Program struct {
	id identity.Identity
}

// New - counter program with the given identity
func New(id identity.Identity) *Program {
	return &Program{id: id}
}

// ID - program identity
func (p *Program) ID() identity.Identity {
	return p.id
}

// Name - for logging
func (p *Program) Name() string {
	return "counter"
}

// Process - initialize or increment
func (p *Program) Process(ctx *ledger.InvokeContext, data []byte) error {
	d, _, err := layout.SplitInstruction(data)
	if nil != err {
		return err
	}

	switch d {
	case initializeDiscriminator:
		return p.initialize(ctx)
	case incrementDiscriminator:
		return p.increment(ctx)
	default:
		return fault.ErrInstructionNotFound
	}
}

func obtain(ctx *ledger.InvokeContext) (*lifecycle.Handle, *ledger.AccountRef, error) {
	accounts, err := checklist.Validate(ctx)
	if nil != err {
		return nil, nil, err
	}
	user := accounts.Get("user")
	h, err := lifecycle.ObtainOrCreate(ctx, accounts.Get("counter"), user, accounts.SignerSeeds("counter"), &layout.Counter{})
	if nil != err {
		return nil, nil, err
	}
	return h, user, nil
}

// an existing counter keeps its value
func (p *Program) initialize(ctx *ledger.InvokeContext) error {
	h, user, err := obtain(ctx)
	if nil != err {
		return err
	}
	if h.Fresh {
		ctx.Log("Counter initialized to 0 for user: %s", user.Address)
	} else {
		ctx.Log("Counter already initialized for user: %s, count: %d", user.Address, h.Record.(*layout.Counter).Count)
	}
	return nil
}

func (p *Program) increment(ctx *ledger.InvokeContext) error {
	h, user, err := obtain(ctx)
	if nil != err {
		return err
	}

	counter := h.Record.(*layout.Counter)
	if ^uint64(0) == counter.Count {
		return fault.ErrArithmeticOverflow
	}
	counter.Count += 1

	err = h.Save()
	if nil != err {
		return err
	}
	ctx.Log("User %s's count: %d", user.Address, counter.Count)
	return nil
}
