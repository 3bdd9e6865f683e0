// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/storage"
)

func setupDatabase(t *testing.T) *ledger.DatabaseStore {
	name := filepath.Join(testingDirName, "ledger.leveldb")
	_ = os.RemoveAll(name)
	err := storage.Initialise(name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	store, err := ledger.NewDatabaseStore()
	if nil != err {
		t.Fatalf("database store error: %s", err)
	}
	return store
}

func teardownDatabase() {
	storage.Finalise()
	_ = os.RemoveAll(filepath.Join(testingDirName, "ledger.leveldb"))
}

func TestDatabaseStoreNotInitialised(t *testing.T) {
	_, err := ledger.NewDatabaseStore()
	assert.Equal(t, fault.ErrNotInitialised, err)
}

func TestDatabaseStoreAccounts(t *testing.T) {
	store := setupDatabase(t)
	defer teardownDatabase()

	a := makeKey(t, 1).Identity()
	b := makeKey(t, 2).Identity()

	account, err := store.Account(a)
	assert.Nil(t, err)
	assert.True(t, account.IsEmpty(), "missing account reads as empty")

	err = store.Commit([]ledger.KeyedAccount{
		{Address: a, Account: &ledger.Account{Lamports: 10, Data: []byte{1}, Owner: fixtureProgramID}},
		{Address: b, Account: &ledger.Account{Lamports: 20}},
	}, nil)
	assert.Nil(t, err)

	account, err = store.Account(a)
	assert.Nil(t, err)
	assert.Equal(t, uint64(10), account.Lamports)
	assert.Equal(t, []byte{1}, account.Data)

	owned, err := store.ProgramAccounts(fixtureProgramID)
	assert.Nil(t, err)
	assert.Equal(t, []identity.Identity{a}, owned)

	system, err := store.ProgramAccounts(identity.SystemProgram)
	assert.Nil(t, err)
	assert.Equal(t, []identity.Identity{b}, system)

	// owner change moves the index, empty account is removed
	err = store.Commit([]ledger.KeyedAccount{
		{Address: a, Account: &ledger.Account{Lamports: 10}},
		{Address: b, Account: &ledger.Account{}},
	}, nil)
	assert.Nil(t, err)

	owned, err = store.ProgramAccounts(fixtureProgramID)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(owned))

	system, err = store.ProgramAccounts(identity.SystemProgram)
	assert.Nil(t, err)
	assert.Equal(t, []identity.Identity{a}, system)

	assert.False(t, storage.Pool.Accounts.Has(b[:]))
}

func TestDatabaseRuntime(t *testing.T) {
	store := setupDatabase(t)
	defer teardownDatabase()

	r := ledger.NewRuntime(store, ledger.DefaultRent)
	assert.Nil(t, r.Register(fixtureProgram{}))

	from := makeKey(t, 1)
	to := makeKey(t, 2).Identity()
	_, err := r.Airdrop(from.Identity(), 1000)
	assert.Nil(t, err)

	ids := make([]ledger.TransactionID, 0, 3)
	for i := 0; i < 3; i += 1 {
		message := ledger.Message{
			Nonce:        uint64(i),
			Instructions: []ledger.Instruction{ledger.NewTransferInstruction(from.Identity(), to, 100)},
		}
		receipt, err := r.Execute(message.Sign(from))
		assert.Nil(t, err, "%d: execute", i)
		assert.Equal(t, uint64(i), receipt.Sequence, "%d: sequence", i)
		ids = append(ids, receipt.ID)
	}

	message := ledger.Message{
		Nonce:        99,
		Instructions: []ledger.Instruction{ledger.NewTransferInstruction(from.Identity(), to, 1000)},
	}
	failed, err := r.Execute(message.Sign(from))
	assert.Equal(t, fault.ErrInsufficientFunds, err)
	assert.Equal(t, uint64(3), failed.Sequence)

	a, _ := r.Account(from.Identity())
	b, _ := r.Account(to)
	assert.Equal(t, uint64(700), a.Lamports)
	assert.Equal(t, uint64(300), b.Lamports)

	receipt, err := r.Receipt(ids[1])
	assert.Nil(t, err)
	assert.Equal(t, ids[1], receipt.ID)
	assert.Equal(t, uint64(1), receipt.Sequence)
	assert.Nil(t, receipt.Transaction.Verify())

	receipts, err := r.Journal(2, 10)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(receipts))
	assert.Equal(t, ids[2], receipts[0].ID)
	assert.Equal(t, failed.ID, receipts[1].ID)
	assert.Equal(t, fault.CodeInsufficientFunds, receipts[1].Code)

	_, err = r.Execute(message.Sign(from))
	assert.Equal(t, fault.ErrDuplicateTransaction, err)
}
