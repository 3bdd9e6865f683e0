// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte account identity
// 4. txId         = transaction digest as 32 byte SHA3-256(message)
// 5. sequence     = successive journal index as big endian uint64 (8 bytes)
// 6. *others*     = byte values of various length
//
// Accounts:
//
//	A ++ address               - account state
//	                             data: lamports(varint) ++ owner ++ executable(varint) ++ length(varint) ++ data
//	P ++ owner ++ address      - accounts owned by a program
//	                             data: (empty)
//
// Journal:
//
//	J ++ txId                  - processed transaction and its outcome
//	                             data: sequence ++ code(varint) ++ packed transaction ++ log lines
//	S ++ sequence              - processing order
//	                             data: txId
//	N ++ name                  - named counters
//	                             data: count
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
