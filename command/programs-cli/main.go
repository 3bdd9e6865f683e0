// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/programs/configuration"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/programs"
)

type metadata struct {
	config  *configuration.Configuration
	runtime *ledger.Runtime
	ids     programs.IDs
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that do not need the ledger
var standalone = map[string]bool{
	"":         true,
	"generate": true,
	"help":     true,
	"h":        true,
	"version":  true,
}

func main() {

	app := cli.NewApp()
	app.Name = "programs-cli"
	app.Usage = "run derived-address programs against a local ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "config-file, c",
			Value:  "programs.conf",
			Usage:  " ledger configuration `FILE`",
			EnvVar: "PROGRAMS_CONFIG",
		},
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: " signing key `FILE`",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " key file `PASSWORD` [prompt if needed]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write to `FILE` instead of printing",
				},
				cli.BoolFlag{
					Name:  "encrypt, e",
					Usage: " protect the key with a password",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "airdrop",
			Usage:     "credit lamports to an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("*address to credit"),
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 0,
					Usage: "*amount to credit `LAMPORTS`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "balance",
			Usage:     "lamports held by an address",
			ArgsUsage: "\n   (+ = address or key file)",
			Flags: []cli.Flag{
				addressFlag("+address to query"),
			},
			Action: runBalance,
		},
		{
			Name:      "transfer",
			Usage:     "move lamports from the key to an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*recipient `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 0,
					Usage: "*amount `LAMPORTS`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "derive",
			Usage:     "compute a derived address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				programFlag(),
				cli.StringFlag{
					Name:  "namespace, n",
					Value: "",
					Usage: "*seed tag `NAMESPACE`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ADDRESS`",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "add",
			Usage:     "log the sum of two numbers",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "first, a",
					Usage: "*first `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "second, b",
					Usage: "*second `NUMBER`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "counter-initialize",
			Usage:  "create the key's counter",
			Action: runCounterInitialize,
		},
		{
			Name:   "counter-increment",
			Usage:  "add one to the key's counter",
			Action: runCounterIncrement,
		},
		{
			Name:      "set-favorites",
			Usage:     "record the key's favourite number and colour",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "number, n",
					Usage: "*favourite `NUMBER`",
				},
				cli.StringFlag{
					Name:  "color",
					Value: "",
					Usage: "*favourite `COLOR`",
				},
			},
			Action: runSetFavorites,
		},
		{
			Name:      "store-number",
			Usage:     "store a number in a new account paid for by the key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "data, d",
					Usage: "*value to store `NUMBER`",
				},
			},
			Action: runStoreNumber,
		},
		{
			Name:   "emit-log",
			Usage:  "log a line and emit events",
			Action: runEmitLog,
		},
		{
			Name:      "show",
			Usage:     "decode the record held by an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				addressFlag("*address to decode"),
			},
			Action: runShow,
		},
		{
			Name:      "accounts",
			Usage:     "addresses owned by a program",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				programFlag(),
			},
			Action: runAccounts,
		},
		{
			Name:      "transaction",
			Usage:     "show a journalled transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*transaction `ID`",
				},
			},
			Action: runTransaction,
		},
		{
			Name:      "journal",
			Usage:     "list transactions in processing order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first `SEQUENCE`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " number of transactions `COUNT`",
				},
			},
			Action: runJournal,
		},
		{
			Name:  "version",
			Usage: "display programs-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// open the ledger
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		if standalone[c.Args().Get(0)] {
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		return openLedger(m, file)
	}

	// close the ledger
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		closeLedger(m)
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func addressFlag(usage string) cli.Flag {
	return cli.StringFlag{
		Name:  "address, a",
		Value: "",
		Usage: usage + " `ADDRESS`",
	}
}

func programFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "program, P",
		Value: "",
		Usage: "*program `NAME` or identity [adder|counter|favorites|storenumber|emitlog]",
	}
}
