// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/programs/ledger"
)

func runTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := ledger.TransactionIDFromString(c.String("id"))
	if nil != err {
		return err
	}

	receipt, err := m.runtime.Receipt(id)
	if nil != err {
		return err
	}
	return printJson(m.w, newResult(receipt, true))
}

func runJournal(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	receipts, err := m.runtime.Journal(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	results := make([]*result, 0, len(receipts))
	for _, receipt := range receipts {
		results = append(results, newResult(receipt, m.verbose))
	}
	return printJson(m.w, results)
}
