// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - a local single process host for programs
//
// A transaction is a signed message of instructions, each naming a
// program and the accounts it may touch. The runtime verifies the
// signatures, runs each instruction against private copies of the
// declared accounts, checks what each instruction changed and then
// commits every change together with a journal receipt, or journals
// only the failure.
//
// Checks after every instruction:
//
//	read-only accounts are unchanged
//	only the owning program changes data or owner
//	only the owning program debits lamports
//	the sum of lamports is unchanged
//
// Log lines follow the usual format:
//
//	Program <id> invoke [<depth>]
//	Program log: <text>
//	Program data: <base64 event>
//	Program <id> success
//	Program <id> failed: <error>
package ledger
