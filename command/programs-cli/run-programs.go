// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/programs/adder"
	"github.com/bitmark-inc/programs/programs/counter"
	"github.com/bitmark-inc/programs/programs/emitlog"
	"github.com/bitmark-inc/programs/programs/favorites"
	"github.com/bitmark-inc/programs/programs/storenumber"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	instruction := adder.NewAddInstruction(m.ids.Adder, c.Uint64("first"), c.Uint64("second"))
	return submit(m, []ledger.Instruction{instruction})
}

func runCounterInitialize(c *cli.Context) error {
	return runCounter(c, counter.NewInitializeInstruction)
}

func runCounterIncrement(c *cli.Context) error {
	return runCounter(c, counter.NewIncrementInstruction)
}

func runCounter(c *cli.Context, build func(identity.Identity, identity.Identity) (ledger.Instruction, error)) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	instruction, err := build(m.ids.Counter, key.Identity())
	if nil != err {
		return err
	}
	return submit(m, []ledger.Instruction{instruction}, key)
}

func runSetFavorites(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	color := c.String("color")
	if "" == color {
		return fmt.Errorf("color is required")
	}

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	instruction, err := favorites.NewSetFavoritesInstruction(m.ids.Favorites, key.Identity(), c.Uint64("number"), color)
	if nil != err {
		return err
	}
	return submit(m, []ledger.Instruction{instruction}, key)
}

func runStoreNumber(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	// the number lives in a fresh account that signs its own creation
	account, err := identity.NewPrivateKey()
	if nil != err {
		return err
	}
	fmt.Fprintf(m.e, "new account: %s\n", account.Identity())

	instruction, err := storenumber.NewInitializeInstruction(m.ids.StoreNumber, account.Identity(), key.Identity(), c.Uint64("data"))
	if nil != err {
		return err
	}
	return submit(m, []ledger.Instruction{instruction}, key, account)
}

func runEmitLog(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	instruction := emitlog.NewInitializeInstruction(m.ids.EmitLog)
	return submit(m, []ledger.Instruction{instruction})
}
