// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
)

type balance struct {
	Address  identity.Identity `json:"address"`
	Lamports uint64            `json:"lamports"`
}

type decoded struct {
	Address  identity.Identity `json:"address"`
	Owner    identity.Identity `json:"owner"`
	Lamports uint64            `json:"lamports"`
	Space    int               `json:"space"`
	Type     string            `json:"type,omitempty"`
	Record   layout.Record     `json:"record,omitempty"`
	Data     []byte            `json:"data,omitempty"`
}

func runAirdrop(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := identity.FromBase58(c.String("address"))
	if nil != err {
		return err
	}
	lamports := c.Uint64("lamports")
	if 0 == lamports {
		return fmt.Errorf("lamports must be positive")
	}

	account, err := m.runtime.Airdrop(address, lamports)
	if nil != err {
		return err
	}
	return printJson(m.w, balance{Address: address, Lamports: account.Lamports})
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := addressOrKey(c, m)
	if nil != err {
		return err
	}

	account, err := m.runtime.Account(address)
	if nil != err {
		return err
	}
	return printJson(m.w, balance{Address: address, Lamports: account.Lamports})
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, err := identity.FromBase58(c.String("to"))
	if nil != err {
		return err
	}
	lamports := c.Uint64("lamports")
	if 0 == lamports {
		return fmt.Errorf("lamports must be positive")
	}

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	instruction := ledger.NewTransferInstruction(key.Identity(), to, lamports)
	return submit(m, []ledger.Instruction{instruction}, key)
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := identity.FromBase58(c.String("address"))
	if nil != err {
		return err
	}
	account, err := m.runtime.Account(address)
	if nil != err {
		return err
	}

	d := decoded{
		Address:  address,
		Owner:    account.Owner,
		Lamports: account.Lamports,
		Space:    len(account.Data),
	}

	if record, err := layout.Packed(account.Data).Unpack(); nil == err {
		d.Type = record.Name()
		d.Record = record
	} else if 0 != len(account.Data) {
		d.Data = account.Data
	}
	return printJson(m.w, d)
}

func runAccounts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := programID(m, c.String("program"))
	if nil != err {
		return err
	}

	addresses, err := m.runtime.ProgramAccounts(program)
	if nil != err {
		return err
	}
	return printJson(m.w, addresses)
}
