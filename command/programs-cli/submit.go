// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/ledger"
)

// what is printed for an executed transaction
type result struct {
	ID       ledger.TransactionID `json:"id"`
	Sequence uint64               `json:"sequence"`
	Status   string               `json:"status"`
	Code     fault.Code           `json:"code"`
	Error    string               `json:"error,omitempty"`
	Messages []string             `json:"messages"`
	Events   []event              `json:"events,omitempty"`
	Logs     []string             `json:"logs,omitempty"`
}

type event struct {
	Name  string        `json:"name"`
	Value layout.Record `json:"value"`
}

func newResult(receipt *ledger.Receipt, verbose bool) *result {
	r := &result{
		ID:       receipt.ID,
		Sequence: receipt.Sequence,
		Status:   "success",
		Code:     receipt.Code,
		Error:    receipt.Error,
		Messages: receipt.Messages(),
	}
	if fault.CodeSuccess != receipt.Code {
		r.Status = "failed"
	}
	for _, e := range receipt.Events() {
		r.Events = append(r.Events, event{Name: e.Name(), Value: e})
	}
	if verbose {
		r.Logs = receipt.Logs
	}
	return r
}

// sign, execute and print
//
// a failed transaction is printed before its error is returned
func submit(m *metadata, instructions []ledger.Instruction, keys ...*identity.PrivateKey) error {
	message := ledger.Message{
		Nonce:        uint64(time.Now().UnixNano()),
		Instructions: instructions,
	}
	transaction := message.Sign(keys...)

	if m.verbose {
		fmt.Fprintf(m.e, "transaction: %s\n", transaction.ID())
	}

	receipt, err := m.runtime.Execute(transaction)
	if nil != receipt {
		if e := printJson(m.w, newResult(receipt, m.verbose)); nil != e {
			return e
		}
	}
	return err
}
