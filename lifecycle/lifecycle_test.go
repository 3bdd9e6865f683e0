// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/programs/derivation"
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/lifecycle"
)

const (
	startingBalance = 5000000
	counterRent     = 1002240
)

var (
	program = identity.MustFromBase58("BqVNxB4bggMbrAkiV6v5cyREqS4VFjD2d8i1ZAV8C9v5")
	user    = identity.MustFromBase58("FVen3X669xLzsi6N2V91DoiyzHzg1uAgqiT8jZ9nS96Z")
)

type fixture struct {
	payer  *ledger.AccountRef
	target *ledger.AccountRef
	seeds  [][]byte
}

func newFixture(t *testing.T) *fixture {
	address, nonce, err := derivation.Derive([]byte("counter"), user, program)
	if nil != err {
		t.Fatalf("derive error: %s", err)
	}
	return &fixture{
		payer: &ledger.AccountRef{
			Address:    user,
			IsSigner:   true,
			IsWritable: true,
			Account:    &ledger.Account{Lamports: startingBalance},
		},
		target: &ledger.AccountRef{
			Address:    address,
			IsWritable: true,
			Account:    &ledger.Account{},
		},
		seeds: derivation.SignerSeeds([]byte("counter"), user, nonce),
	}
}

func (f *fixture) context() *ledger.InvokeContext {
	return ledger.NewInvokeContext(program, []*ledger.AccountRef{f.payer, f.target}, ledger.DefaultRent)
}

func TestObtainOrCreateIdempotent(t *testing.T) {
	f := newFixture(t)

	h, err := lifecycle.ObtainOrCreate(f.context(), f.target, f.payer, f.seeds, &layout.Counter{})
	assert.Nil(t, err)
	assert.True(t, h.Fresh)
	assert.Equal(t, uint64(0), h.Record.(*layout.Counter).Count)
	assert.Equal(t, uint64(startingBalance-counterRent), f.payer.Account.Lamports)
	assert.Equal(t, uint64(counterRent), f.target.Account.Lamports)
	assert.Equal(t, program, f.target.Account.Owner)
	assert.Equal(t, 16, len(f.target.Account.Data))

	h.Record.(*layout.Counter).Count = 7
	assert.Nil(t, h.Save())

	for i := 0; i < 3; i += 1 {
		h, err = lifecycle.ObtainOrCreate(f.context(), f.target, f.payer, f.seeds, &layout.Counter{})
		assert.Nil(t, err, "%d: again", i)
		assert.False(t, h.Fresh, "%d: fresh", i)
		assert.Equal(t, uint64(7), h.Record.(*layout.Counter).Count, "%d: value kept", i)
	}

	// charged exactly once
	assert.Equal(t, uint64(startingBalance-counterRent), f.payer.Account.Lamports)
	assert.Equal(t, uint64(counterRent), f.target.Account.Lamports)
}

func TestAuthorisationGate(t *testing.T) {
	f := newFixture(t)

	_, err := lifecycle.ObtainOrCreate(f.context(), f.target, f.payer, f.seeds, &layout.Counter{})
	assert.Nil(t, err)
	before := f.target.Account.Clone()
	payerBefore := f.payer.Account.Clone()

	items := []struct {
		signer   bool
		writable bool
		target   bool
		err      error
	}{
		{false, true, true, fault.ErrUnauthorized},
		{true, false, true, fault.ErrAccountNotMutable},
		{true, true, false, fault.ErrAccountNotMutable},
	}

	for i, item := range items {
		f.payer.IsSigner = item.signer
		f.payer.IsWritable = item.writable
		f.target.IsWritable = item.target

		ctx := f.context()
		_, err := lifecycle.ObtainOrCreate(ctx, f.target, f.payer, f.seeds, &layout.Counter{})
		assert.Equal(t, item.err, err, "%d: obtain", i)
		_, err = lifecycle.Create(ctx, f.target, f.payer, f.seeds, &layout.Counter{})
		assert.Equal(t, item.err, err, "%d: create", i)

		assert.Equal(t, before, f.target.Account, "%d: target unchanged", i)
		assert.Equal(t, payerBefore, f.payer.Account, "%d: payer unchanged", i)
		assert.Equal(t, 0, len(ctx.Logs()), "%d: nothing logged", i)
	}
}

func TestUnauthorisedCreateAllocatesNothing(t *testing.T) {
	f := newFixture(t)
	f.payer.IsSigner = false

	_, err := lifecycle.ObtainOrCreate(f.context(), f.target, f.payer, f.seeds, &layout.Counter{})
	assert.Equal(t, fault.ErrUnauthorized, err)
	assert.False(t, f.target.Account.IsAllocated())
	assert.Equal(t, uint64(startingBalance), f.payer.Account.Lamports)
}

func TestInsufficientPayer(t *testing.T) {
	f := newFixture(t)
	f.payer.Account.Lamports = counterRent - 1

	_, err := lifecycle.ObtainOrCreate(f.context(), f.target, f.payer, f.seeds, &layout.Counter{})
	assert.Equal(t, fault.ErrInsufficientPayerBalance, err)
	assert.False(t, f.target.Account.IsAllocated())
	assert.Equal(t, uint64(counterRent-1), f.payer.Account.Lamports)
}

func TestWrongSeeds(t *testing.T) {
	f := newFixture(t)
	seeds := derivation.SignerSeeds([]byte("favorites"), user, 254)

	_, err := lifecycle.ObtainOrCreate(f.context(), f.target, f.payer, seeds, &layout.Counter{})
	assert.NotNil(t, err)
	assert.False(t, f.target.Account.IsAllocated())

	_, err = lifecycle.ObtainOrCreate(f.context(), f.target, f.payer, nil, &layout.Counter{})
	assert.Equal(t, fault.ErrUnauthorized, err, "no seeds and target did not sign")
}

func TestSchemaMismatch(t *testing.T) {
	f := newFixture(t)

	packed, err := layout.Encode(&layout.DataStore{Data: 5})
	assert.Nil(t, err)
	f.target.Account.Owner = program
	f.target.Account.Data = packed
	f.target.Account.Lamports = counterRent
	before := f.target.Account.Clone()

	_, err = lifecycle.ObtainOrCreate(f.context(), f.target, f.payer, f.seeds, &layout.Counter{})
	assert.Equal(t, fault.ErrSchemaMismatch, err)
	_, err = lifecycle.Open(f.context(), f.target, &layout.Favorites{})
	assert.Equal(t, fault.ErrSchemaMismatch, err)
	assert.Equal(t, before, f.target.Account)

	// right schema, wrong owner
	packed, err = layout.Encode(&layout.Counter{Count: 5})
	assert.Nil(t, err)
	f.target.Account.Data = packed
	f.target.Account.Owner = user
	_, err = lifecycle.ObtainOrCreate(f.context(), f.target, f.payer, f.seeds, &layout.Counter{})
	assert.Equal(t, fault.ErrSchemaMismatch, err)

	// right schema, allocation too small
	f.target.Account.Owner = program
	f.target.Account.Data = packed[:12]
	_, err = lifecycle.ObtainOrCreate(f.context(), f.target, f.payer, f.seeds, &layout.Counter{})
	assert.Equal(t, fault.ErrAccountTooSmall, err)
}

func TestCreateStrict(t *testing.T) {
	f := newFixture(t)

	h, err := lifecycle.Create(f.context(), f.target, f.payer, f.seeds, &layout.Counter{Count: 3})
	assert.Nil(t, err)
	assert.True(t, h.Fresh)

	_, err = lifecycle.Create(f.context(), f.target, f.payer, f.seeds, &layout.Counter{})
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err)

	h, err = lifecycle.Open(f.context(), f.target, &layout.Counter{})
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), h.Record.(*layout.Counter).Count)
}

func TestOpenUnallocated(t *testing.T) {
	f := newFixture(t)
	_, err := lifecycle.Open(f.context(), f.target, &layout.Counter{})
	assert.Equal(t, fault.ErrNotInitialised, err)
}

func TestSaveFailures(t *testing.T) {
	address, nonce, err := derivation.Derive([]byte("favorites"), user, program)
	assert.Nil(t, err)
	payer := &ledger.AccountRef{Address: user, IsSigner: true, IsWritable: true, Account: &ledger.Account{Lamports: startingBalance}}
	target := &ledger.AccountRef{Address: address, IsWritable: true, Account: &ledger.Account{}}
	ctx := ledger.NewInvokeContext(program, []*ledger.AccountRef{payer, target}, ledger.DefaultRent)
	seeds := derivation.SignerSeeds([]byte("favorites"), user, nonce)

	h, err := lifecycle.ObtainOrCreate(ctx, target, payer, seeds, &layout.Favorites{Number: 1, Color: "red"})
	assert.Nil(t, err)
	before := append([]byte{}, target.Account.Data...)

	h.Record.(*layout.Favorites).Color = strings.Repeat("z", 51)
	assert.Equal(t, fault.ErrLengthOverflow, h.Save())
	assert.Equal(t, before, target.Account.Data)

	h.Record.(*layout.Favorites).Color = "blue"
	target.IsWritable = false
	assert.Equal(t, fault.ErrAccountNotMutable, h.Save())
	assert.Equal(t, before, target.Account.Data)

	// creating with an oversized default allocates nothing
	other := &ledger.AccountRef{Address: user, IsWritable: true, Account: &ledger.Account{}}
	_, err = lifecycle.ObtainOrCreate(ctx, other, payer, seeds, &layout.Favorites{Color: strings.Repeat("z", 51)})
	assert.Equal(t, fault.ErrLengthOverflow, err)
	assert.False(t, other.Account.IsAllocated())
}

func TestLoad(t *testing.T) {
	f := newFixture(t)

	err := lifecycle.Load(program, f.target.Account, &layout.Counter{})
	assert.Equal(t, fault.ErrNotInitialised, err)

	_, err = lifecycle.Create(f.context(), f.target, f.payer, f.seeds, &layout.Counter{Count: 9})
	assert.Nil(t, err)

	counter := &layout.Counter{}
	err = lifecycle.Load(program, f.target.Account, counter)
	assert.Nil(t, err)
	assert.Equal(t, uint64(9), counter.Count)

	err = lifecycle.Load(user, f.target.Account, &layout.Counter{})
	assert.Equal(t, fault.ErrSchemaMismatch, err)

	err = lifecycle.Load(program, f.target.Account, &layout.DataStore{})
	assert.Equal(t, fault.ErrSchemaMismatch, err)
}
