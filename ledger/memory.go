// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
)

// MemoryStore - a Store that is lost on exit
type MemoryStore struct {
	sync.RWMutex
	accounts map[identity.Identity]PackedAccount
	receipts map[TransactionID]PackedReceipt
	sequence []TransactionID
}

// NewMemoryStore - empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[identity.Identity]PackedAccount),
		receipts: make(map[TransactionID]PackedReceipt),
		sequence: make([]TransactionID, 0, 16),
	}
}

// Account - stored state or the zero account
func (store *MemoryStore) Account(address identity.Identity) (*Account, error) {
	store.RLock()
	defer store.RUnlock()

	packed, ok := store.accounts[address]
	if !ok {
		return &Account{}, nil
	}
	return packed.Unpack()
}

// ProgramAccounts - addresses owned by program, sorted
func (store *MemoryStore) ProgramAccounts(program identity.Identity) ([]identity.Identity, error) {
	store.RLock()
	defer store.RUnlock()

	addresses := make([]identity.Identity, 0, 8)
	for address, packed := range store.accounts {
		account, err := packed.Unpack()
		if nil != err {
			return nil, err
		}
		if account.Owner == program {
			addresses = append(addresses, address)
		}
	}
	sort.Slice(addresses, func(i, j int) bool {
		return addresses[i].Compare(addresses[j]) < 0
	})
	return addresses, nil
}

// Commit - apply updates and record the receipt
func (store *MemoryStore) Commit(updates []KeyedAccount, receipt *Receipt) error {
	store.Lock()
	defer store.Unlock()

	if nil != receipt {
		if _, ok := store.receipts[receipt.ID]; ok {
			return fault.ErrDuplicateTransaction
		}
	}

	for _, update := range updates {
		if update.Account.IsEmpty() {
			delete(store.accounts, update.Address)
		} else {
			store.accounts[update.Address] = update.Account.Pack()
		}
	}

	if nil != receipt {
		receipt.Sequence = uint64(len(store.sequence))
		store.receipts[receipt.ID] = receipt.Pack()
		store.sequence = append(store.sequence, receipt.ID)
	}
	return nil
}

// Receipt - journal entry for a transaction
func (store *MemoryStore) Receipt(id TransactionID) (*Receipt, error) {
	store.RLock()
	defer store.RUnlock()

	packed, ok := store.receipts[id]
	if !ok {
		return nil, fault.ErrTransactionNotFound
	}
	return packed.Unpack()
}

// Journal - receipts in processing order from start
func (store *MemoryStore) Journal(start uint64, count int) ([]*Receipt, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	store.RLock()
	defer store.RUnlock()

	receipts := make([]*Receipt, 0, count)
	for i := start; i < uint64(len(store.sequence)) && len(receipts) < count; i += 1 {
		receipt, err := store.receipts[store.sequence[i]].Unpack()
		if nil != err {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}
