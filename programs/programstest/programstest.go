// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package programstest - shared set up for program tests
package programstest

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/ledger"
)

const (
	testingDirName = "testing"

	// Balance - lamports given to every funded key
	Balance = 10000000
)

// Main - run the tests of a package with logging sent to a scratch directory
func Main(m *testing.M) int {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	return rc
}

// Key - a deterministic key
func Key(t *testing.T, n byte) *identity.PrivateKey {
	seed := make([]byte, 32)
	seed[0] = n
	seed[31] = 0x5a
	key, err := identity.PrivateKeyFromSeed(seed)
	if nil != err {
		t.Fatalf("key error: %s", err)
	}
	return key
}

// Funded - a deterministic key holding Balance lamports
func Funded(t *testing.T, r *ledger.Runtime, n byte) *identity.PrivateKey {
	key := Key(t, n)
	if _, err := r.Airdrop(key.Identity(), Balance); nil != err {
		t.Fatalf("airdrop error: %s", err)
	}
	return key
}

// Runtime - a memory backed runtime with the given programs
func Runtime(t *testing.T, programs ...ledger.Program) *ledger.Runtime {
	r := ledger.NewRuntime(ledger.NewMemoryStore(), ledger.DefaultRent)
	for _, p := range programs {
		if err := r.Register(p); nil != err {
			t.Fatalf("register error: %s", err)
		}
	}
	return r
}

// Run - sign and execute a single instruction
func Run(r *ledger.Runtime, nonce uint64, instruction ledger.Instruction, keys ...*identity.PrivateKey) (*ledger.Receipt, error) {
	message := ledger.Message{
		Nonce:        nonce,
		Instructions: []ledger.Instruction{instruction},
	}
	return r.Execute(message.Sign(keys...))
}

// Lamports - committed balance of an address
func Lamports(t *testing.T, r *ledger.Runtime, address identity.Identity) uint64 {
	account, err := r.Account(address)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	return account.Lamports
}
