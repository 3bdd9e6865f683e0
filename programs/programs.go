// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package programs - the set of programs a node runs
package programs

import (
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/programs/adder"
	"github.com/bitmark-inc/programs/programs/counter"
	"github.com/bitmark-inc/programs/programs/emitlog"
	"github.com/bitmark-inc/programs/programs/favorites"
	"github.com/bitmark-inc/programs/programs/storenumber"
)

// IDs - identity of each program
type IDs struct {
	Adder       identity.Identity `json:"adder"`
	Counter     identity.Identity `json:"counter"`
	Favorites   identity.Identity `json:"favorites"`
	StoreNumber identity.Identity `json:"storeNumber"`
	EmitLog     identity.Identity `json:"emitLog"`
}

// DefaultIDs - identities used when none are configured
var DefaultIDs = IDs{
	Adder:       adder.DefaultID,
	Counter:     counter.DefaultID,
	Favorites:   favorites.DefaultID,
	StoreNumber: storenumber.DefaultID,
	EmitLog:     emitlog.DefaultID,
}

// Register - add every program to a runtime
func Register(runtime *ledger.Runtime, ids IDs) error {
	all := []ledger.Program{
		adder.New(ids.Adder),
		counter.New(ids.Counter),
		favorites.New(ids.Favorites),
		storenumber.New(ids.StoreNumber),
		emitlog.New(ids.EmitLog),
	}
	for _, p := range all {
		err := runtime.Register(p)
		if nil != err {
			return err
		}
	}
	return nil
}
