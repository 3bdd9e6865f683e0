// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package programs_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/programs"
	"github.com/bitmark-inc/programs/programs/counter"
	"github.com/bitmark-inc/programs/programs/favorites"
	"github.com/bitmark-inc/programs/programs/programstest"
)

func TestMain(m *testing.M) {
	os.Exit(programstest.Main(m))
}

func TestRegister(t *testing.T) {
	r := programstest.Runtime(t)
	assert.Nil(t, programs.Register(r, programs.DefaultIDs))
	assert.Equal(t, fault.ErrDuplicateProgram, programs.Register(r, programs.DefaultIDs))
}

func TestRegisterZero(t *testing.T) {
	r := programstest.Runtime(t)
	ids := programs.DefaultIDs
	ids.EmitLog = identity.Identity{}
	assert.Equal(t, fault.ErrInvalidProgramIdentity, programs.Register(r, ids))
}

// one transaction touching two programs, both records paid by one user
func TestMultipleInstructions(t *testing.T) {
	r := programstest.Runtime(t)
	assert.Nil(t, programs.Register(r, programs.DefaultIDs))
	u := programstest.Funded(t, r, 1)

	increment, err := counter.NewIncrementInstruction(programs.DefaultIDs.Counter, u.Identity())
	assert.Nil(t, err)
	set, err := favorites.NewSetFavoritesInstruction(programs.DefaultIDs.Favorites, u.Identity(), 5, "teal")
	assert.Nil(t, err)

	message := ledger.Message{Instructions: []ledger.Instruction{increment, set}}
	receipt, err := r.Execute(message.Sign(u))
	assert.Nil(t, err)
	assert.Equal(t, 4, len(receipt.Messages()))

	c, err := counter.Fetch(r, programs.DefaultIDs.Counter, u.Identity())
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), c.Count)

	assert.Equal(t, uint64(programstest.Balance-1002240-1378080), programstest.Lamports(t, r, u.Identity()))
}

// a failing later instruction discards the earlier one
func TestAtomicity(t *testing.T) {
	r := programstest.Runtime(t)
	assert.Nil(t, programs.Register(r, programs.DefaultIDs))
	u := programstest.Funded(t, r, 1)

	increment, err := counter.NewIncrementInstruction(programs.DefaultIDs.Counter, u.Identity())
	assert.Nil(t, err)
	set, err := favorites.NewSetFavoritesInstruction(programs.DefaultIDs.Favorites, u.Identity(), 5, "teal")
	assert.Nil(t, err)
	set.Data = set.Data[:10]

	message := ledger.Message{Instructions: []ledger.Instruction{increment, set}}
	_, err = r.Execute(message.Sign(u))
	assert.Equal(t, fault.ErrInvalidInstructionData, err)

	_, err = counter.Fetch(r, programs.DefaultIDs.Counter, u.Identity())
	assert.Equal(t, fault.ErrNotInitialised, err)
	assert.Equal(t, uint64(programstest.Balance), programstest.Lamports(t, r, u.Identity()))
}
