// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/programs/configuration"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/keypair"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/programs"
	"github.com/bitmark-inc/programs/storage"
)

// set once the genesis airdrops have been made
var genesisKey = []byte("genesis")

func openLedger(m *metadata, file string) error {
	config, err := configuration.GetConfiguration(file, map[string]string{
		"home": os.Getenv("HOME"),
	})
	if nil != err {
		return err
	}
	m.config = config

	err = logger.Initialise(config.Logging)
	if nil != err {
		return err
	}
	m.log = logger.New("main")
	m.log.Infof("version: %s", version)

	err = storage.Initialise(config.DatabaseFile(), false)
	if nil != err {
		return err
	}

	store, err := ledger.NewDatabaseStore()
	if nil != err {
		return err
	}

	m.ids, err = config.ProgramIDs()
	if nil != err {
		return err
	}

	m.runtime = ledger.NewRuntime(store, config.LedgerRent())
	err = programs.Register(m.runtime, m.ids)
	if nil != err {
		return err
	}

	return genesis(m)
}

func closeLedger(m *metadata) {
	if nil != m.config {
		storage.Finalise()
	}
	if nil != m.log {
		m.log.Info("finished")
		logger.Finalise()
	}
}

// credit the configured airdrops once per database
func genesis(m *metadata) error {
	if storage.Pool.Counters.Has(genesisKey) {
		return nil
	}

	for _, airdrop := range m.config.Genesis {
		address, err := identity.FromBase58(airdrop.Address)
		if nil != err {
			return err
		}
		_, err = m.runtime.Airdrop(address, airdrop.Lamports)
		if nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "genesis: %d lamports to: %s\n", airdrop.Lamports, address)
		}
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = trx.Begin()
	if nil != err {
		return err
	}
	trx.PutN(storage.Pool.Counters, genesisKey, uint64(len(m.config.Genesis)))
	return trx.Commit()
}

// the signing key from the global key file option
func signingKey(c *cli.Context, m *metadata) (*identity.PrivateKey, error) {
	file := c.GlobalString("key")
	if "" == file {
		return nil, fmt.Errorf("a key file is required")
	}
	if m.verbose {
		fmt.Fprintf(m.e, "key file: %s\n", file)
	}

	raw, err := keypair.Load(file)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if raw.IsEncrypted() && "" == password {
		password, err = promptPassword("password: ")
		if nil != err {
			return nil, err
		}
	}
	return raw.PrivateKey(password)
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if nil != err {
		return "", err
	}
	return string(b), nil
}

// an address given directly, or the key's own identity
func addressOrKey(c *cli.Context, m *metadata) (identity.Identity, error) {
	if s := c.String("address"); "" != s {
		return identity.FromBase58(s)
	}
	key, err := signingKey(c, m)
	if nil != err {
		return identity.Identity{}, err
	}
	return key.Identity(), nil
}

// a program by name or identity
func programID(m *metadata, s string) (identity.Identity, error) {
	switch strings.ToLower(s) {
	case "":
		return identity.Identity{}, fmt.Errorf("program is required")
	case "adder":
		return m.ids.Adder, nil
	case "counter":
		return m.ids.Counter, nil
	case "favorites":
		return m.ids.Favorites, nil
	case "storenumber", "store-number":
		return m.ids.StoreNumber, nil
	case "emitlog", "emit-log":
		return m.ids.EmitLog, nil
	case "system":
		return identity.SystemProgram, nil
	default:
		return identity.FromBase58(s)
	}
}
