// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/programs/identity"
)

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/bitmark-inc/programs/ledger Store

// Store - persistent ledger state
//
// Commit applies all updates and the receipt atomically; either may be
// empty. An update holding an empty account removes it. The store assigns
// the receipt's sequence number.
type Store interface {
	Account(identity.Identity) (*Account, error)
	ProgramAccounts(identity.Identity) ([]identity.Identity, error)
	Commit([]KeyedAccount, *Receipt) error
	Receipt(TransactionID) (*Receipt, error)
	Journal(start uint64, count int) ([]*Receipt, error)
}
