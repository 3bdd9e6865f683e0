// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package favorites - a user's favourite number and colour
package favorites

import (
	"github.com/bitmark-inc/programs/constraint"
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/lifecycle"
)

// Namespace - seed tag of favorites records
const Namespace = "favorites"

// DefaultID - usual program identity
var DefaultID = identity.MustFromBase58("ASY7ppSzeCdfpB6H4Pg8aW3VWeMmghrwT9NJF3nR5ZZb")

var setFavoritesDiscriminator = layout.InstructionDiscriminator("set_favorites")

var checklist = constraint.New().
	Account("user").Signer().Mutable().
	Account("favorites").Mutable().Derived(Namespace, "user").
	Account("system_program").Address(identity.SystemProgram).
	Checklist()

// Program - the favorites program
type Program struct {
	id identity.Identity
}

// New - favorites program with the given identity
func New(id identity.Identity) *Program {
	return &Program{id: id}
}

// ID - program identity
func (p *Program) ID() identity.Identity {
	return p.id
}

// Name - for logging
func (p *Program) Name() string {
	return "favorites"
}

// Process - set_favorites is the only instruction
func (p *Program) Process(ctx *ledger.InvokeContext, data []byte) error {
	d, arguments, err := layout.SplitInstruction(data)
	if nil != err {
		return err
	}
	if setFavoritesDiscriminator != d {
		return fault.ErrInstructionNotFound
	}

	decoder := layout.NewArgumentDecoder(arguments)
	number, err := decoder.Uint64()
	if nil != err {
		return fault.ErrInvalidInstructionData
	}
	color, err := decoder.String(layout.MaxColorLength)
	if fault.ErrRecordTruncated == err || fault.ErrInvalidText == err {
		return fault.ErrInvalidInstructionData
	} else if nil != err {
		return err
	}

	return p.setFavorites(ctx, number, color)
}

// overwrites both fields, the record is allocated on first use
func (p *Program) setFavorites(ctx *ledger.InvokeContext, number uint64, color string) error {
	accounts, err := checklist.Validate(ctx)
	if nil != err {
		return err
	}
	user := accounts.Get("user")

	h, err := lifecycle.ObtainOrCreate(ctx, accounts.Get("favorites"), user, accounts.SignerSeeds("favorites"), &layout.Favorites{})
	if nil != err {
		return err
	}

	ctx.Log("Greetings from %s", ctx.ProgramID())
	ctx.Log("User %s's favorite number is %d, favorite color is: %s", user.Address, number, color)

	favorites := h.Record.(*layout.Favorites)
	favorites.Number = number
	favorites.Color = color
	return h.Save()
}
