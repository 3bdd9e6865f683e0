// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/ledger"
)

func TestAccountPack(t *testing.T) {
	items := []ledger.Account{
		{},
		{Lamports: 1002240, Data: []byte{1, 2, 3}, Owner: fixtureProgramID},
		{Lamports: 300, Executable: true, Owner: identity.SystemProgram},
	}

	for i, item := range items {
		packed := item.Pack()
		account, err := packed.Unpack()
		assert.Nil(t, err, "%d: unpack", i)
		assert.True(t, item.Equal(account), "%d: equal", i)

		_, err = packed[:len(packed)-1].Unpack()
		assert.Equal(t, fault.ErrRecordTruncated, err, "%d: truncated", i)

		_, err = append(packed, 0x00).Unpack()
		assert.Equal(t, fault.ErrRecordTruncated, err, "%d: trailing", i)
	}
}

func TestAccountState(t *testing.T) {
	a := &ledger.Account{}
	assert.False(t, a.IsAllocated())
	assert.True(t, a.IsEmpty())

	a.Lamports = 10
	assert.False(t, a.IsAllocated())
	assert.False(t, a.IsEmpty())

	b := a.Clone()
	b.Data = []byte{0}
	assert.True(t, b.IsAllocated())
	assert.False(t, a.Equal(b))
	assert.Equal(t, 0, len(a.Data), "clone is independent")

	c := &ledger.Account{Owner: fixtureProgramID}
	assert.True(t, c.IsAllocated())
}

func TestRent(t *testing.T) {
	assert.Equal(t, uint64(1002240), ledger.DefaultRent.MinimumBalance(16))
	assert.Equal(t, uint64(1378080), ledger.DefaultRent.MinimumBalance(70))
	assert.Equal(t, uint64(890880), ledger.DefaultRent.MinimumBalance(0))

	free := ledger.Rent{LamportsPerByteYear: 0, ExemptionThreshold: 2}
	assert.Equal(t, uint64(0), free.MinimumBalance(1000))
}
