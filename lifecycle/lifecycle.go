// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lifecycle - obtain program records, allocating them on first use
//
// an account moves from unallocated to initialised exactly once and
// afterwards is only updated in place:
//
//	unallocated --ObtainOrCreate/Create--> initialised --Save--> initialised
//
// the payer is charged only when the allocation is made
package lifecycle

import (
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
)

// Handle - a decoded record bound to its account
type Handle struct {
	Ref    *ledger.AccountRef
	Record layout.Record
	Fresh  bool
}

// ObtainOrCreate - the record at target, allocated and written with the
// values in record if target is unallocated
//
// signerSeeds sign for a derived target, nil if target itself signed
func ObtainOrCreate(ctx *ledger.InvokeContext, target *ledger.AccountRef, payer *ledger.AccountRef, signerSeeds [][]byte, record layout.Record) (*Handle, error) {
	err := checkPayment(target, payer)
	if nil != err {
		return nil, err
	}
	if !target.Account.IsAllocated() {
		return create(ctx, target, payer, signerSeeds, record)
	}
	return open(ctx, target, record)
}

// Create - allocate and write record, target must be unallocated
func Create(ctx *ledger.InvokeContext, target *ledger.AccountRef, payer *ledger.AccountRef, signerSeeds [][]byte, record layout.Record) (*Handle, error) {
	err := checkPayment(target, payer)
	if nil != err {
		return nil, err
	}
	if target.Account.IsAllocated() {
		return nil, fault.ErrAccountAlreadyInUse
	}
	return create(ctx, target, payer, signerSeeds, record)
}

// Open - decode an existing record into record
func Open(ctx *ledger.InvokeContext, target *ledger.AccountRef, record layout.Record) (*Handle, error) {
	if !target.Account.IsAllocated() {
		return nil, fault.ErrNotInitialised
	}
	return open(ctx, target, record)
}

// Save - write the record back over its account data
//
// nothing is written if the record does not fit
func (h *Handle) Save() error {
	if !h.Ref.IsWritable {
		return fault.ErrAccountNotMutable
	}
	return layout.EncodeInto(h.Record, h.Ref.Account.Data)
}

// all checked before anything is allocated or written
func checkPayment(target *ledger.AccountRef, payer *ledger.AccountRef) error {
	if !payer.IsSigner {
		return fault.ErrUnauthorized
	}
	if !payer.IsWritable || !target.IsWritable {
		return fault.ErrAccountNotMutable
	}
	return nil
}

func create(ctx *ledger.InvokeContext, target *ledger.AccountRef, payer *ledger.AccountRef, signerSeeds [][]byte, record layout.Record) (*Handle, error) {
	packed, err := layout.Encode(record)
	if nil != err {
		return nil, err
	}

	err = ctx.CreateAccount(payer, target, record.Space(), ctx.ProgramID(), signerSeeds)
	if nil != err {
		return nil, err
	}
	copy(target.Account.Data, packed)

	return &Handle{
		Ref:    target,
		Record: record,
		Fresh:  true,
	}, nil
}

// Load - decode the record held by an account owned by program, for
// readers outside an instruction
func Load(program identity.Identity, account *ledger.Account, record layout.Record) error {
	if !account.IsAllocated() {
		return fault.ErrNotInitialised
	}
	return load(program, account, record)
}

func load(program identity.Identity, account *ledger.Account, record layout.Record) error {
	if account.Owner != program {
		return fault.ErrSchemaMismatch
	}
	if !layout.Matches(account.Data, record) {
		return fault.ErrSchemaMismatch
	}
	if len(account.Data) < record.Space() {
		return fault.ErrAccountTooSmall
	}
	return layout.Decode(account.Data, record)
}

func open(ctx *ledger.InvokeContext, target *ledger.AccountRef, record layout.Record) (*Handle, error) {
	err := load(ctx.ProgramID(), target.Account, record)
	if nil != err {
		return nil, err
	}

	return &Handle{
		Ref:    target,
		Record: record,
		Fresh:  false,
	}, nil
}
