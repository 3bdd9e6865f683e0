// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
)

// system instruction tags
const (
	systemCreateAccount uint32 = 0
	systemTransfer      uint32 = 2
)

// SystemProgram - the built in program that owns unallocated accounts
type SystemProgram struct{}

// ID - always the zero identity
func (SystemProgram) ID() identity.Identity {
	return identity.SystemProgram
}

// Name - for logging
func (SystemProgram) Name() string {
	return "system"
}

// Process - create account or transfer
func (SystemProgram) Process(ctx *InvokeContext, data []byte) error {
	d := layout.NewArgumentDecoder(data)
	tag, err := d.Uint32()
	if nil != err {
		return fault.ErrInvalidInstructionData
	}

	accounts := ctx.Accounts()
	if len(accounts) < 2 {
		return fault.ErrMissingAccounts
	}

	switch tag {

	case systemCreateAccount:
		lamports, err := d.Uint64()
		if nil != err {
			return fault.ErrInvalidInstructionData
		}
		space, err := d.Uint64()
		if nil != err || space > maxDataLength {
			return fault.ErrInvalidInstructionData
		}
		buffer, err := d.Bytes(identity.Size)
		if nil != err {
			return fault.ErrInvalidInstructionData
		}
		owner, err := identity.FromBytes(buffer)
		if nil != err {
			return err
		}
		if !accounts[1].IsSigner {
			return fault.ErrUnauthorized
		}
		return allocate(accounts[0], accounts[1], lamports, int(space), owner)

	case systemTransfer:
		lamports, err := d.Uint64()
		if nil != err {
			return fault.ErrInvalidInstructionData
		}
		return transfer(accounts[0], accounts[1], lamports)

	default:
		return fault.ErrInstructionNotFound
	}
}

// NewCreateAccountInstruction - allocate a keypair account funded by payer
//
// both payer and target must sign
func NewCreateAccountInstruction(payer identity.Identity, target identity.Identity, lamports uint64, space uint64, owner identity.Identity) Instruction {
	e := layout.NewArgumentEncoder()
	e.PutUint32(systemCreateAccount)
	e.PutUint64(lamports)
	e.PutUint64(space)
	e.PutBytes(owner[:])

	return Instruction{
		ProgramID: identity.SystemProgram,
		Accounts: []AccountMeta{
			{Address: payer, IsSigner: true, IsWritable: true},
			{Address: target, IsSigner: true, IsWritable: true},
		},
		Data: e.Bytes(),
	}
}

// NewTransferInstruction - move lamports, from must sign
func NewTransferInstruction(from identity.Identity, to identity.Identity, lamports uint64) Instruction {
	e := layout.NewArgumentEncoder()
	e.PutUint32(systemTransfer)
	e.PutUint64(lamports)

	return Instruction{
		ProgramID: identity.SystemProgram,
		Accounts: []AccountMeta{
			{Address: from, IsSigner: true, IsWritable: true},
			{Address: to, IsSigner: false, IsWritable: true},
		},
		Data: e.Bytes(),
	}
}
