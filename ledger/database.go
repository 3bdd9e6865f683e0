// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/storage"
)

// key of the journal sequence counter
var journalCounterKey = []byte("journal")

// DatabaseStore - a Store on the storage pools
//
// storage.Initialise must have been called
type DatabaseStore struct{}

// NewDatabaseStore - store backed by the open database
func NewDatabaseStore() (*DatabaseStore, error) {
	if !storage.IsInitialised() {
		return nil, fault.ErrNotInitialised
	}
	return &DatabaseStore{}, nil
}

// Account - stored state or the zero account
func (store *DatabaseStore) Account(address identity.Identity) (*Account, error) {
	packed := storage.Pool.Accounts.Get(address[:])
	if nil == packed {
		return &Account{}, nil
	}
	return PackedAccount(packed).Unpack()
}

// ProgramAccounts - addresses owned by program, sorted
func (store *DatabaseStore) ProgramAccounts(program identity.Identity) ([]identity.Identity, error) {
	addresses := make([]identity.Identity, 0, 8)
	cursor := storage.Pool.ProgramIndex.NewFetchCursor().Prefix(program[:])
	err := cursor.Map(func(key []byte, value []byte) error {
		address, err := identity.FromBytes(key[identity.Size:])
		if nil != err {
			return err
		}
		addresses = append(addresses, address)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return addresses, nil
}

// Commit - apply updates and record the receipt in one batch
func (store *DatabaseStore) Commit(updates []KeyedAccount, receipt *Receipt) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	if nil != receipt && trx.Has(storage.Pool.Journal, receipt.ID[:]) {
		trx.Abort()
		return fault.ErrDuplicateTransaction
	}

	for _, update := range updates {
		address := update.Address[:]

		// move the owner index entry if the owner changed
		if previous := trx.Get(storage.Pool.Accounts, address); nil != previous {
			old, err := PackedAccount(previous).Unpack()
			if nil != err {
				trx.Abort()
				return err
			}
			trx.Delete(storage.Pool.ProgramIndex, append(old.Owner.Bytes(), address...))
		}

		if update.Account.IsEmpty() {
			trx.Delete(storage.Pool.Accounts, address)
			continue
		}
		trx.Put(storage.Pool.Accounts, address, update.Account.Pack())
		trx.Put(storage.Pool.ProgramIndex, append(update.Account.Owner.Bytes(), address...), []byte{})
	}

	if nil != receipt {
		sequence, _ := trx.GetN(storage.Pool.Counters, journalCounterKey)
		receipt.Sequence = sequence

		trx.Put(storage.Pool.Journal, receipt.ID[:], receipt.Pack())
		trx.Put(storage.Pool.Sequence, sequenceKey(sequence), receipt.ID[:])
		trx.PutN(storage.Pool.Counters, journalCounterKey, sequence+1)
	}

	return trx.Commit()
}

// Receipt - journal entry for a transaction
func (store *DatabaseStore) Receipt(id TransactionID) (*Receipt, error) {
	packed := storage.Pool.Journal.Get(id[:])
	if nil == packed {
		return nil, fault.ErrTransactionNotFound
	}
	return PackedReceipt(packed).Unpack()
}

// Journal - receipts in processing order from start
func (store *DatabaseStore) Journal(start uint64, count int) ([]*Receipt, error) {
	elements, err := storage.Pool.Sequence.NewFetchCursor().Seek(sequenceKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	receipts := make([]*Receipt, 0, len(elements))
	for _, e := range elements {
		id := TransactionID{}
		copy(id[:], e.Value)
		receipt, err := store.Receipt(id)
		if nil != err {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

func sequenceKey(sequence uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, sequence)
	return key
}
