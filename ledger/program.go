// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/programs/identity"
)

// Program - code invoked by instructions addressed to its ID
//
// Process receives the instruction data unparsed; any error aborts the
// whole transaction
type Program interface {
	ID() identity.Identity
	Name() string
	Process(ctx *InvokeContext, data []byte) error
}
