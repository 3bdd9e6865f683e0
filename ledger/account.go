// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/util"
)

// Account - state held at an address
//
// an address that was never written reads as the zero Account,
// owned by the system program
type Account struct {
	Lamports   uint64            `json:"lamports"`
	Data       []byte            `json:"data"`
	Owner      identity.Identity `json:"owner"`
	Executable bool              `json:"executable"`
}

// KeyedAccount - an account with its address
type KeyedAccount struct {
	Address identity.Identity `json:"address"`
	Account *Account          `json:"account"`
}

// IsAllocated - true once storage has been assigned to a program
func (account *Account) IsAllocated() bool {
	return 0 != len(account.Data) || account.Owner != identity.SystemProgram
}

// IsEmpty - nothing worth storing
func (account *Account) IsEmpty() bool {
	return 0 == account.Lamports && !account.IsAllocated() && !account.Executable
}

// Clone - deep copy
func (account *Account) Clone() *Account {
	return &Account{
		Lamports:   account.Lamports,
		Data:       append([]byte{}, account.Data...),
		Owner:      account.Owner,
		Executable: account.Executable,
	}
}

// Equal - compare all fields
func (account *Account) Equal(other *Account) bool {
	return account.Lamports == other.Lamports &&
		account.Owner == other.Owner &&
		account.Executable == other.Executable &&
		bytes.Equal(account.Data, other.Data)
}

// PackedAccount - account as stored
type PackedAccount []byte

// Pack - lamports ++ owner ++ executable ++ length ++ data
func (account *Account) Pack() PackedAccount {
	buffer := make([]byte, 0, 64+len(account.Data))
	buffer = util.AppendVarint64(buffer, account.Lamports)
	buffer = append(buffer, account.Owner[:]...)
	buffer = appendBool(buffer, account.Executable)
	buffer = appendBytes(buffer, account.Data)
	return buffer
}

// Unpack - restore an account from storage
func (record PackedAccount) Unpack() (*Account, error) {
	u := &unpacker{buffer: record}

	lamports, err := u.varint()
	if nil != err {
		return nil, err
	}
	owner, err := u.identity()
	if nil != err {
		return nil, err
	}
	executable, err := u.bool()
	if nil != err {
		return nil, err
	}
	data, err := u.bytes(maxDataLength)
	if nil != err {
		return nil, err
	}
	if !u.done() {
		return nil, fault.ErrRecordTruncated
	}

	return &Account{
		Lamports:   lamports,
		Data:       data,
		Owner:      owner,
		Executable: executable,
	}, nil
}
