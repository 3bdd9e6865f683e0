// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storenumber

import (
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/lifecycle"
)

// NewInitializeInstruction - create newAccount holding value, paid for by
// signer; both must sign the transaction
func NewInitializeInstruction(program identity.Identity, newAccount identity.Identity, signer identity.Identity, value uint64) (ledger.Instruction, error) {
	metas, err := checklist.Metas(newAccount, signer, identity.SystemProgram)
	if nil != err {
		return ledger.Instruction{}, err
	}

	e := layout.NewEncoder(initializeDiscriminator)
	e.PutUint64(value)

	return ledger.Instruction{
		ProgramID: program,
		Accounts:  metas,
		Data:      e.Bytes(),
	}, nil
}

// Fetch - read a stored number
func Fetch(runtime *ledger.Runtime, program identity.Identity, address identity.Identity) (*layout.DataStore, error) {
	account, err := runtime.Account(address)
	if nil != err {
		return nil, err
	}
	store := &layout.DataStore{}
	err = lifecycle.Load(program, account, store)
	if nil != err {
		return nil, err
	}
	return store, nil
}
