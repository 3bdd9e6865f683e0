// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	password := c.GlobalString("password")
	if c.Bool("encrypt") && "" == password {
		p, err := promptPassword(fmt.Sprintf("set key password (>= %d): ", keypair.MinimumPasswordLength))
		if nil != err {
			return err
		}
		verify, err := promptPassword("verify password: ")
		if nil != err {
			return err
		}
		if p != verify {
			return fault.ErrWrongPassword
		}
		password = p
	} else if !c.Bool("encrypt") {
		password = ""
	}

	rawKeyPair, _, err := keypair.MakeRawKeyPair(password)
	if nil != err {
		return err
	}

	output := c.String("output")
	if "" == output {
		return printJson(m.w, rawKeyPair)
	}

	err = rawKeyPair.Save(output)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "saved: %s\n", output)
	}
	fmt.Fprintf(m.w, "%s\n", rawKeyPair.Identity)
	return nil
}
