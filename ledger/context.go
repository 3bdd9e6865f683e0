// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/base64"
	"fmt"

	"github.com/bitmark-inc/programs/derivation"
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
)

// AccountRef - a declared account and its working copy
type AccountRef struct {
	Address    identity.Identity
	IsSigner   bool
	IsWritable bool
	Account    *Account
}

// InvokeContext - what a program sees while processing one instruction
type InvokeContext struct {
	programID identity.Identity
	accounts  []*AccountRef
	rent      Rent
	depth     int
	logs      *[]string

	// state before the instruction, moved forward by system calls
	pre map[identity.Identity]*Account
}

// NewInvokeContext - context for running a program directly on the given
// accounts, outside any transaction and without the post instruction checks
func NewInvokeContext(programID identity.Identity, accounts []*AccountRef, rent Rent) *InvokeContext {
	ctx := &InvokeContext{
		programID: programID,
		accounts:  accounts,
		rent:      rent,
		depth:     1,
		logs:      new([]string),
		pre:       make(map[identity.Identity]*Account),
	}
	for _, ref := range accounts {
		ctx.pre[ref.Address] = ref.Account.Clone()
	}
	return ctx
}

// Logs - lines logged so far
func (ctx *InvokeContext) Logs() []string {
	return *ctx.logs
}

// ProgramID - the program being invoked
func (ctx *InvokeContext) ProgramID() identity.Identity {
	return ctx.programID
}

// Accounts - declared accounts in instruction order
func (ctx *InvokeContext) Accounts() []*AccountRef {
	return ctx.accounts
}

// Rent - current rent parameters
func (ctx *InvokeContext) Rent() Rent {
	return ctx.rent
}

// Log - append a program log line
func (ctx *InvokeContext) Log(format string, arguments ...interface{}) {
	*ctx.logs = append(*ctx.logs, logPrefix+fmt.Sprintf(format, arguments...))
}

// Emit - append an encoded event, unlike an account it is not padded
func (ctx *InvokeContext) Emit(event layout.Record) error {
	e := layout.NewEncoder(event.Discriminator())
	err := event.Pack(e)
	if nil != err {
		return err
	}
	*ctx.logs = append(*ctx.logs, dataPrefix+base64.StdEncoding.EncodeToString(e.Bytes()))
	return nil
}

func (ctx *InvokeContext) logInvoke(program identity.Identity, depth int) {
	*ctx.logs = append(*ctx.logs, fmt.Sprintf("Program %s invoke [%d]", program, depth))
}

func (ctx *InvokeContext) logResult(program identity.Identity, err error) {
	if nil == err {
		*ctx.logs = append(*ctx.logs, fmt.Sprintf("Program %s success", program))
	} else {
		*ctx.logs = append(*ctx.logs, fmt.Sprintf("Program %s failed: %s", program, err))
	}
}

// CreateAccount - allocate space bytes at target, owned by owner
//
// payer funds the rent exempt minimum less any balance the target holds.
// target must have signed, or be the address derived from signerSeeds
// for the calling program.
func (ctx *InvokeContext) CreateAccount(payer *AccountRef, target *AccountRef, space int, owner identity.Identity, signerSeeds [][]byte) (err error) {
	if !payer.IsSigner {
		return fault.ErrUnauthorized
	}
	if !target.IsSigner {
		if nil == signerSeeds {
			return fault.ErrUnauthorized
		}
		address, err := derivation.CreateAddress(signerSeeds, ctx.programID)
		if nil != err {
			return err
		}
		if address != target.Address {
			return fault.ErrSeedsMismatch
		}
	}

	err = verify(ctx)
	if nil != err {
		return err
	}

	ctx.logInvoke(identity.SystemProgram, ctx.depth+1)
	defer func() {
		ctx.logResult(identity.SystemProgram, err)
	}()

	required := ctx.rent.MinimumBalance(space)
	lamports := uint64(0)
	if target.Account.Lamports < required {
		lamports = required - target.Account.Lamports
	}

	err = allocate(payer, target, lamports, space, owner)
	if nil != err {
		return err
	}

	ctx.rebase(payer, target)
	return nil
}

// Transfer - move lamports between accounts through the system program
func (ctx *InvokeContext) Transfer(from *AccountRef, to *AccountRef, lamports uint64) (err error) {
	if !from.IsSigner {
		return fault.ErrUnauthorized
	}

	err = verify(ctx)
	if nil != err {
		return err
	}

	ctx.logInvoke(identity.SystemProgram, ctx.depth+1)
	defer func() {
		ctx.logResult(identity.SystemProgram, err)
	}()

	err = transfer(from, to, lamports)
	if nil != err {
		return err
	}

	ctx.rebase(from, to)
	return nil
}

// the caller's changes were accepted by verify and the system call by the
// system program rules, so the current state becomes the new baseline
func (ctx *InvokeContext) rebase(refs ...*AccountRef) {
	for _, ref := range ctx.accounts {
		ctx.pre[ref.Address] = ref.Account.Clone()
	}
	for _, ref := range refs {
		ctx.pre[ref.Address] = ref.Account.Clone()
	}
}

// shared with the system program
func allocate(payer *AccountRef, target *AccountRef, lamports uint64, space int, owner identity.Identity) error {
	if !payer.IsSigner {
		return fault.ErrUnauthorized
	}
	if !payer.IsWritable || !target.IsWritable {
		return fault.ErrAccountNotMutable
	}
	if target.Account.IsAllocated() {
		return fault.ErrAccountAlreadyInUse
	}
	if payer.Address == target.Address {
		return fault.ErrAccountAlreadyInUse
	}
	if space < 0 || space > maxDataLength {
		return fault.ErrInvalidInstructionData
	}
	if payer.Account.IsAllocated() {
		return fault.ErrInvalidTransferSource
	}
	if payer.Account.Lamports < lamports {
		return fault.ErrInsufficientPayerBalance
	}

	payer.Account.Lamports -= lamports
	target.Account.Lamports += lamports
	target.Account.Data = make([]byte, space)
	target.Account.Owner = owner
	return nil
}

func transfer(from *AccountRef, to *AccountRef, lamports uint64) error {
	if !from.IsSigner {
		return fault.ErrUnauthorized
	}
	if !from.IsWritable || !to.IsWritable {
		return fault.ErrAccountNotMutable
	}
	if from.Account.IsAllocated() {
		return fault.ErrInvalidTransferSource
	}
	if from.Account.Lamports < lamports {
		return fault.ErrInsufficientFunds
	}
	if from.Address == to.Address {
		return nil
	}
	if to.Account.Lamports+lamports < to.Account.Lamports {
		return fault.ErrArithmeticOverflow
	}

	from.Account.Lamports -= lamports
	to.Account.Lamports += lamports
	return nil
}
