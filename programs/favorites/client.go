// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"github.com/bitmark-inc/programs/derivation"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/lifecycle"
)

// Address - where a user's favorites live
func Address(program identity.Identity, user identity.Identity) (identity.Identity, uint8, error) {
	return derivation.Derive([]byte(Namespace), user, program)
}

// NewSetFavoritesInstruction - replace the user's favorites
//
// a colour longer than layout.MaxColorLength, or one that is not UTF-8,
// is refused here
func NewSetFavoritesInstruction(program identity.Identity, user identity.Identity, number uint64, color string) (ledger.Instruction, error) {
	address, _, err := Address(program, user)
	if nil != err {
		return ledger.Instruction{}, err
	}
	metas, err := checklist.Metas(user, address, identity.SystemProgram)
	if nil != err {
		return ledger.Instruction{}, err
	}

	e := layout.NewEncoder(setFavoritesDiscriminator)
	e.PutUint64(number)
	err = e.PutString(color, layout.MaxColorLength)
	if nil != err {
		return ledger.Instruction{}, err
	}

	return ledger.Instruction{
		ProgramID: program,
		Accounts:  metas,
		Data:      e.Bytes(),
	}, nil
}

// Fetch - read a user's favorites, fault.ErrNotInitialised if there are none
func Fetch(runtime *ledger.Runtime, program identity.Identity, user identity.Identity) (*layout.Favorites, error) {
	address, _, err := Address(program, user)
	if nil != err {
		return nil, err
	}
	account, err := runtime.Account(address)
	if nil != err {
		return nil, err
	}
	favorites := &layout.Favorites{}
	err = lifecycle.Load(program, account, favorites)
	if nil != err {
		return nil, err
	}
	return favorites, nil
}
