// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"github.com/bitmark-inc/programs/derivation"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/lifecycle"
)

// Address - where a user's counter lives
func Address(program identity.Identity, user identity.Identity) (identity.Identity, uint8, error) {
	return derivation.Derive([]byte(Namespace), user, program)
}

// NewInitializeInstruction - create the user's counter if needed
func NewInitializeInstruction(program identity.Identity, user identity.Identity) (ledger.Instruction, error) {
	return newInstruction(program, user, initializeDiscriminator)
}

// NewIncrementInstruction - add one to the user's counter
func NewIncrementInstruction(program identity.Identity, user identity.Identity) (ledger.Instruction, error) {
	return newInstruction(program, user, incrementDiscriminator)
}

func newInstruction(program identity.Identity, user identity.Identity, d layout.Discriminator) (ledger.Instruction, error) {
	address, _, err := Address(program, user)
	if nil != err {
		return ledger.Instruction{}, err
	}
	metas, err := checklist.Metas(user, address, identity.SystemProgram)
	if nil != err {
		return ledger.Instruction{}, err
	}
	return ledger.Instruction{
		ProgramID: program,
		Accounts:  metas,
		Data:      layout.NewEncoder(d).Bytes(),
	}, nil
}

// Fetch - read a user's counter, fault.ErrNotInitialised if there is none
func Fetch(runtime *ledger.Runtime, program identity.Identity, user identity.Identity) (*layout.Counter, error) {
	address, _, err := Address(program, user)
	if nil != err {
		return nil, err
	}
	account, err := runtime.Account(address)
	if nil != err {
		return nil, err
	}
	counter := &layout.Counter{}
	err = lifecycle.Load(program, account, counter)
	if nil != err {
		return nil, err
	}
	return counter, nil
}
