// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/ledger"
	"github.com/bitmark-inc/programs/programs"
	"github.com/bitmark-inc/programs/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "programs.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "programs.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		"main":            "info",
		"ledger":          "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where the ledger is kept
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ProgramsType - base58 program identities, blank selects the default
type ProgramsType struct {
	Adder       string `gluamapper:"adder" json:"adder"`
	Counter     string `gluamapper:"counter" json:"counter"`
	Favorites   string `gluamapper:"favorites" json:"favorites"`
	StoreNumber string `gluamapper:"store_number" json:"store_number"`
	EmitLog     string `gluamapper:"emit_log" json:"emit_log"`
}

// RentType - rent parameters
type RentType struct {
	LamportsPerByteYear uint64 `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  uint64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
}

// AirdropType - lamports credited when a database is first created
type AirdropType struct {
	Address  string `gluamapper:"address" json:"address"`
	Lamports uint64 `gluamapper:"lamports" json:"lamports"`
}

// Configuration - the whole file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Programs      ProgramsType         `gluamapper:"programs" json:"programs"`
	Rent          RentType             `gluamapper:"rent" json:"rent"`
	Genesis       []AirdropType        `gluamapper:"genesis" json:"genesis"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the parser fills in the levels map, so it must not be shared
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Rent: RentType{
			LamportsPerByteYear: ledger.DefaultLamportsPerByteYear,
			ExemptionThreshold:  ledger.DefaultExemptionThreshold,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if 0 == options.Rent.LamportsPerByteYear || 0 == options.Rent.ExemptionThreshold {
		return nil, fmt.Errorf("Rent: %+v has a zero parameter", options.Rent)
	}

	// check identities now rather than at first use
	if _, err := options.ProgramIDs(); nil != err {
		return nil, err
	}
	for _, airdrop := range options.Genesis {
		if _, err := identity.FromBase58(airdrop.Address); nil != err {
			return nil, fmt.Errorf("Genesis: %q: %s", airdrop.Address, err)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator
	mustNotBePaths := []*string{
		&options.Database.Name,
		&options.Logging.File,
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f) {
		case "", ".":
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0o700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// DatabaseFile - full path of the leveldb database
func (options *Configuration) DatabaseFile() string {
	return filepath.Join(options.Database.Directory, options.Database.Name)
}

// LedgerRent - rent parameters for the runtime
func (options *Configuration) LedgerRent() ledger.Rent {
	return ledger.Rent{
		LamportsPerByteYear: options.Rent.LamportsPerByteYear,
		ExemptionThreshold:  options.Rent.ExemptionThreshold,
	}
}

// ProgramIDs - configured identities with defaults filled in
func (options *Configuration) ProgramIDs() (programs.IDs, error) {
	ids := programs.DefaultIDs

	items := []struct {
		name  string
		value string
		id    *identity.Identity
	}{
		{"adder", options.Programs.Adder, &ids.Adder},
		{"counter", options.Programs.Counter, &ids.Counter},
		{"favorites", options.Programs.Favorites, &ids.Favorites},
		{"store_number", options.Programs.StoreNumber, &ids.StoreNumber},
		{"emit_log", options.Programs.EmitLog, &ids.EmitLog},
	}

	seen := make(map[identity.Identity]string)
	for _, item := range items {
		if "" != item.value {
			id, err := identity.FromBase58(item.value)
			if nil != err {
				return ids, fmt.Errorf("Programs: %s: %q: %s", item.name, item.value, err)
			}
			*item.id = id
		}
		if other, ok := seen[*item.id]; ok {
			return ids, fmt.Errorf("Programs: %s and %s share identity: %s", other, item.name, *item.id)
		}
		seen[*item.id] = item.name
	}
	return ids, nil
}
