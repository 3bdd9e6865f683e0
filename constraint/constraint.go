// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package constraint - declare and check the accounts an instruction expects
//
// e.g.
//
//	checklist := constraint.New().
//		Account("user").Signer().Mutable().
//		Account("counter").Mutable().Derived("counter", "user").
//		Account("system_program").Address(identity.SystemProgram).
//		Checklist()
//
// a checklist is built once and validated on every call; items are
// checked in declaration order and the first failure is returned
package constraint

import (
	"github.com/bitmark-inc/programs/derivation"
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/ledger"
)

// Checklist - the ordered account requirements of one instruction
type Checklist struct {
	items []*Item
	index map[string]int
}

// Item - requirements on one account
type Item struct {
	checklist   *Checklist
	name        string
	signer      bool
	mutable     bool
	owner       *identity.Identity
	address     *identity.Identity
	namespace   []byte
	seedAccount string
}

// New - empty checklist
func New() *Checklist {
	return &Checklist{
		items: make([]*Item, 0, 4),
		index: make(map[string]int),
	}
}

// Account - declare the next account
func (c *Checklist) Account(name string) *Item {
	if _, ok := c.index[name]; ok {
		panic("constraint: duplicate account name: " + name)
	}
	item := &Item{
		checklist: c,
		name:      name,
	}
	c.index[name] = len(c.items)
	c.items = append(c.items, item)
	return item
}

// Account - declare the following account
func (item *Item) Account(name string) *Item {
	return item.checklist.Account(name)
}

// Checklist - finish declaring
func (item *Item) Checklist() *Checklist {
	return item.checklist
}

// Signer - account must have signed
func (item *Item) Signer() *Item {
	item.signer = true
	return item
}

// Mutable - account must be writable
func (item *Item) Mutable() *Item {
	item.mutable = true
	return item
}

// Owner - account must be owned by program
func (item *Item) Owner(program identity.Identity) *Item {
	item.owner = &program
	return item
}

// Address - account must be exactly this address
func (item *Item) Address(address identity.Identity) *Item {
	item.address = &address
	return item
}

// Derived - account must be the canonical derived address of
// namespace and an earlier declared account, for the calling program
func (item *Item) Derived(namespace string, seedAccount string) *Item {
	i, ok := item.checklist.index[seedAccount]
	if !ok || item.checklist.items[i] == item {
		panic("constraint: seed account must be declared first: " + seedAccount)
	}
	item.namespace = []byte(namespace)
	item.seedAccount = seedAccount
	return item
}

// Names - declared account names in order
func (c *Checklist) Names() []string {
	names := make([]string, 0, len(c.items))
	for _, item := range c.items {
		names = append(names, item.name)
	}
	return names
}

// Metas - account declarations for a client, addresses in declaration order
func (c *Checklist) Metas(addresses ...identity.Identity) ([]ledger.AccountMeta, error) {
	if len(addresses) != len(c.items) {
		return nil, fault.ErrMissingAccounts
	}
	metas := make([]ledger.AccountMeta, 0, len(c.items))
	for i, item := range c.items {
		metas = append(metas, ledger.AccountMeta{
			Address:    addresses[i],
			IsSigner:   item.signer,
			IsWritable: item.mutable,
		})
	}
	return metas, nil
}

// Accounts - validated accounts by name
type Accounts struct {
	refs   map[string]*ledger.AccountRef
	nonces map[string]uint8
	seeds  map[string][][]byte
}

// Get - the named account, nil if not declared
func (a *Accounts) Get(name string) *ledger.AccountRef {
	return a.refs[name]
}

// Bump - canonical nonce of a derived account
func (a *Accounts) Bump(name string) uint8 {
	return a.nonces[name]
}

// SignerSeeds - seeds that sign for a derived account, nil otherwise
func (a *Accounts) SignerSeeds(name string) [][]byte {
	return a.seeds[name]
}

// Validate - check every requirement against the invoked accounts
func (c *Checklist) Validate(ctx *ledger.InvokeContext) (*Accounts, error) {
	refs := ctx.Accounts()
	if len(refs) < len(c.items) {
		return nil, fault.ErrMissingAccounts
	}

	accounts := &Accounts{
		refs:   make(map[string]*ledger.AccountRef, len(c.items)),
		nonces: make(map[string]uint8),
		seeds:  make(map[string][][]byte),
	}

	for i, item := range c.items {
		ref := refs[i]

		if item.signer && !ref.IsSigner {
			return nil, fault.ErrUnauthorized
		}
		if item.mutable && !ref.IsWritable {
			return nil, fault.ErrAccountNotMutable
		}
		if nil != item.address && *item.address != ref.Address {
			return nil, fault.ErrAddressMismatch
		}
		if nil != item.owner && *item.owner != ref.Account.Owner {
			return nil, fault.ErrAccountOwnedByWrongProgram
		}
		if nil != item.namespace {
			owner := accounts.refs[item.seedAccount].Address
			address, nonce, err := derivation.Derive(item.namespace, owner, ctx.ProgramID())
			if nil != err {
				return nil, err
			}
			if address != ref.Address {
				return nil, fault.ErrSeedsMismatch
			}
			accounts.nonces[item.name] = nonce
			accounts.seeds[item.name] = derivation.SignerSeeds(item.namespace, owner, nonce)
		}

		accounts.refs[item.name] = ref
	}
	return accounts, nil
}
