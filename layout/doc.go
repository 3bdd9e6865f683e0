// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package layout - binary layout of account records, events and instruction data
//
// every record starts with an 8 byte discriminator, the first 8 bytes of
// SHA-256 over "account:<Name>" (or "event:<Name>"); the discriminator is
// checked before any field is read
//
// fields follow in declaration order:
//
//	u64     little endian, 8 bytes
//	string  u32 little endian length then the bytes, space reserved for the maximum
//
// a record always occupies exactly Space() bytes, unused trailing bytes are zero
//
//	Counter    16 bytes
//	Favorites  70 bytes
//	DataStore  16 bytes
//
// instruction data is the first 8 bytes of SHA-256 over
// "global:<snake_case_name>" followed by the arguments in the same encoding
package layout
