// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/programs/derivation"
	"github.com/bitmark-inc/programs/identity"
)

type derived struct {
	Program   identity.Identity `json:"program"`
	Namespace string            `json:"namespace"`
	Owner     identity.Identity `json:"owner"`
	Address   identity.Identity `json:"address"`
	Nonce     uint8             `json:"nonce"`
}

func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := programID(m, c.String("program"))
	if nil != err {
		return err
	}
	namespace := c.String("namespace")
	if "" == namespace {
		return fmt.Errorf("namespace is required")
	}
	owner, err := identity.FromBase58(c.String("owner"))
	if nil != err {
		return err
	}

	address, nonce, err := derivation.Derive([]byte(namespace), owner, program)
	if nil != err {
		return err
	}

	return printJson(m.w, derived{
		Program:   program,
		Namespace: namespace,
		Owner:     owner,
		Address:   address,
		Nonce:     nonce,
	})
}
