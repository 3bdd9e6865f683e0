// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storenumber_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/programs/programstest"
	"github.com/bitmark-inc/programs/programs/storenumber"
)

const dataStoreRent = 1002240

func TestMain(m *testing.M) {
	os.Exit(programstest.Main(m))
}

func TestStoreNumber(t *testing.T) {
	r := programstest.Runtime(t, storenumber.New(storenumber.DefaultID))
	signer := programstest.Funded(t, r, 1)
	account := programstest.Key(t, 2)

	initialize, err := storenumber.NewInitializeInstruction(storenumber.DefaultID, account.Identity(), signer.Identity(), 1234)
	assert.Nil(t, err)
	receipt, err := programstest.Run(r, 0, initialize, signer, account)
	assert.Nil(t, err)
	assert.Contains(t, receipt.Messages(), "Changed data to: 1234!")

	stored, err := storenumber.Fetch(r, storenumber.DefaultID, account.Identity())
	assert.Nil(t, err)
	assert.Equal(t, uint64(1234), stored.Data)

	assert.Equal(t, uint64(dataStoreRent), programstest.Lamports(t, r, account.Identity()))
	assert.Equal(t, uint64(programstest.Balance-dataStoreRent), programstest.Lamports(t, r, signer.Identity()))
}

func TestAccountUsedOnce(t *testing.T) {
	r := programstest.Runtime(t, storenumber.New(storenumber.DefaultID))
	signer := programstest.Funded(t, r, 1)
	account := programstest.Key(t, 2)

	initialize, err := storenumber.NewInitializeInstruction(storenumber.DefaultID, account.Identity(), signer.Identity(), 1)
	assert.Nil(t, err)
	_, err = programstest.Run(r, 0, initialize, signer, account)
	assert.Nil(t, err)

	again, err := storenumber.NewInitializeInstruction(storenumber.DefaultID, account.Identity(), signer.Identity(), 2)
	assert.Nil(t, err)
	receipt, err := programstest.Run(r, 1, again, signer, account)
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err)
	assert.Equal(t, fault.ErrAccountAlreadyInUse, receipt.Err())

	stored, err := storenumber.Fetch(r, storenumber.DefaultID, account.Identity())
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), stored.Data)
	assert.Equal(t, uint64(programstest.Balance-dataStoreRent), programstest.Lamports(t, r, signer.Identity()))
}

func TestNewAccountMustSign(t *testing.T) {
	r := programstest.Runtime(t, storenumber.New(storenumber.DefaultID))
	signer := programstest.Funded(t, r, 1)
	account := programstest.Key(t, 2)

	initialize, err := storenumber.NewInitializeInstruction(storenumber.DefaultID, account.Identity(), signer.Identity(), 1)
	assert.Nil(t, err)
	initialize.Accounts[0].IsSigner = false

	message := ledger.Message{Instructions: []ledger.Instruction{initialize}}
	_, err = r.Execute(message.Sign(signer))
	assert.Equal(t, fault.ErrUnauthorized, err)

	_, err = storenumber.Fetch(r, storenumber.DefaultID, account.Identity())
	assert.Equal(t, fault.ErrNotInitialised, err)
}
