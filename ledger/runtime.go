// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"fmt"
	"math/bits"
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
)

// Runtime - executes transactions against a store
//
// transactions are processed one at a time, each either commits all of
// its account changes or none of them
type Runtime struct {
	sync.Mutex
	log      *logger.L
	store    Store
	rent     Rent
	programs map[identity.Identity]Program
}

// NewRuntime - a runtime with only the system program registered
func NewRuntime(store Store, rent Rent) *Runtime {
	r := &Runtime{
		log:      logger.New("ledger"),
		store:    store,
		rent:     rent,
		programs: make(map[identity.Identity]Program),
	}
	r.programs[identity.SystemProgram] = SystemProgram{}
	return r
}

// Register - make a program callable
func (r *Runtime) Register(program Program) error {
	r.Lock()
	defer r.Unlock()

	id := program.ID()
	if id.IsZero() {
		return fault.ErrInvalidProgramIdentity
	}
	if _, ok := r.programs[id]; ok {
		return fault.ErrDuplicateProgram
	}
	r.programs[id] = program
	r.log.Infof("registered program: %s  id: %s", program.Name(), id)
	return nil
}

// Rent - the rent parameters in force
func (r *Runtime) Rent() Rent {
	return r.rent
}

// Account - committed state of an address
func (r *Runtime) Account(address identity.Identity) (*Account, error) {
	return r.store.Account(address)
}

// ProgramAccounts - addresses owned by a program
func (r *Runtime) ProgramAccounts(program identity.Identity) ([]identity.Identity, error) {
	return r.store.ProgramAccounts(program)
}

// Receipt - journal entry of a processed transaction
func (r *Runtime) Receipt(id TransactionID) (*Receipt, error) {
	return r.store.Receipt(id)
}

// Journal - receipts in processing order
func (r *Runtime) Journal(start uint64, count int) ([]*Receipt, error) {
	return r.store.Journal(start, count)
}

// Airdrop - credit lamports to an address
func (r *Runtime) Airdrop(address identity.Identity, lamports uint64) (*Account, error) {
	r.Lock()
	defer r.Unlock()

	account, err := r.store.Account(address)
	if nil != err {
		return nil, err
	}
	if account.Lamports+lamports < account.Lamports {
		return nil, fault.ErrArithmeticOverflow
	}
	account.Lamports += lamports

	err = r.store.Commit([]KeyedAccount{{Address: address, Account: account}}, nil)
	if nil != err {
		return nil, err
	}
	r.log.Infof("airdrop: %d lamports to: %s  balance: %d", lamports, address, account.Lamports)
	return account, nil
}

// Execute - process a transaction
//
// a receipt is journalled whether or not the transaction succeeds; on
// failure the returned error is the cause and no account is changed
func (r *Runtime) Execute(transaction *Transaction) (*Receipt, error) {
	r.Lock()
	defer r.Unlock()

	id := transaction.ID()
	if _, err := r.store.Receipt(id); nil == err {
		return nil, fault.ErrDuplicateTransaction
	}

	receipt := &Receipt{
		ID:          id,
		Transaction: transaction,
		Logs:        make([]string, 0, 16),
	}

	updates, err := r.process(transaction, receipt)
	for _, line := range receipt.Logs {
		r.log.Debugf("%s: %s", id, line)
	}

	if nil != err {
		receipt.Code = fault.ErrorCode(err)
		receipt.Error = err.Error()
		r.log.Warnf("transaction: %s  failed: %s", id, err)
		if e := r.store.Commit(nil, receipt); nil != e {
			r.log.Errorf("transaction: %s  journal error: %s", id, e)
			return nil, e
		}
		return receipt, err
	}

	err = r.store.Commit(updates, receipt)
	if nil != err {
		r.log.Errorf("transaction: %s  commit error: %s", id, err)
		return nil, err
	}
	r.log.Infof("transaction: %s  sequence: %d  accounts changed: %d", id, receipt.Sequence, len(updates))
	return receipt, nil
}

// run every instruction against working copies and return the changed accounts
func (r *Runtime) process(transaction *Transaction, receipt *Receipt) ([]KeyedAccount, error) {
	err := transaction.Verify()
	if nil != err {
		return nil, err
	}

	loaded := make(map[identity.Identity]*Account)
	working := make(map[identity.Identity]*Account)
	writable := make(map[identity.Identity]bool)

	for _, instruction := range transaction.Message.Instructions {
		for _, meta := range instruction.Accounts {
			if _, ok := working[meta.Address]; !ok {
				account, err := r.store.Account(meta.Address)
				if nil != err {
					return nil, err
				}
				loaded[meta.Address] = account
				working[meta.Address] = account.Clone()
			}
			if meta.IsWritable {
				writable[meta.Address] = true
			}
		}
	}

	for _, instruction := range transaction.Message.Instructions {
		err := r.invoke(instruction, working, &receipt.Logs)
		if nil != err {
			return nil, err
		}
	}

	updates := make([]KeyedAccount, 0, len(writable))
	for address := range writable {
		if !working[address].Equal(loaded[address]) {
			updates = append(updates, KeyedAccount{
				Address: address,
				Account: working[address],
			})
		}
	}
	sort.Slice(updates, func(i, j int) bool {
		return updates[i].Address.Compare(updates[j].Address) < 0
	})
	return updates, nil
}

func (r *Runtime) invoke(instruction Instruction, working map[identity.Identity]*Account, logs *[]string) (err error) {
	ctx := &InvokeContext{
		programID: instruction.ProgramID,
		accounts:  make([]*AccountRef, 0, len(instruction.Accounts)),
		rent:      r.rent,
		depth:     1,
		logs:      logs,
		pre:       make(map[identity.Identity]*Account),
	}

	for _, meta := range instruction.Accounts {
		ctx.accounts = append(ctx.accounts, &AccountRef{
			Address:    meta.Address,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
			Account:    working[meta.Address],
		})
		if _, ok := ctx.pre[meta.Address]; !ok {
			ctx.pre[meta.Address] = working[meta.Address].Clone()
		}
	}

	ctx.logInvoke(instruction.ProgramID, ctx.depth)
	defer func() {
		ctx.logResult(instruction.ProgramID, err)
	}()

	program, ok := r.programs[instruction.ProgramID]
	if !ok {
		return fault.ErrUnknownProgram
	}

	err = run(program, ctx, instruction.Data)
	if nil != err {
		return err
	}
	return verify(ctx)
}

// a panicking program fails its transaction
func run(program Program, ctx *InvokeContext, data []byte) (err error) {
	defer func() {
		if p := recover(); nil != p {
			err = fault.ProcessError(fmt.Sprintf("program %s panic: %v", program.Name(), p))
		}
	}()
	return program.Process(ctx, data)
}

// check the changes made by one instruction
func verify(ctx *InvokeContext) error {
	writable := make(map[identity.Identity]bool)
	for _, ref := range ctx.accounts {
		writable[ref.Address] = writable[ref.Address] || ref.IsWritable
	}

	var preHigh, preLow, postHigh, postLow uint64
	carry := uint64(0)

	seen := make(map[identity.Identity]struct{})
	for _, ref := range ctx.accounts {
		if _, ok := seen[ref.Address]; ok {
			continue
		}
		seen[ref.Address] = struct{}{}

		pre := ctx.pre[ref.Address]
		post := ref.Account

		if !writable[ref.Address] && !pre.Equal(post) {
			return fault.ErrReadOnlyModified
		}

		if pre.Owner != ctx.programID {
			if pre.Owner != post.Owner || pre.Executable != post.Executable || !bytes.Equal(pre.Data, post.Data) {
				return fault.ErrExternalDataModified
			}
			if post.Lamports < pre.Lamports {
				return fault.ErrExternalLamportSpend
			}
		}

		preLow, carry = bits.Add64(preLow, pre.Lamports, 0)
		preHigh += carry
		postLow, carry = bits.Add64(postLow, post.Lamports, 0)
		postHigh += carry
	}

	if preHigh != postHigh || preLow != postLow {
		return fault.ErrUnbalancedInstruction
	}
	return nil
}
