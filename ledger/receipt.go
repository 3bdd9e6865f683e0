// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/base64"
	"strings"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/layout"
	"github.com/bitmark-inc/programs/util"
)

// prefixes of the log lines written for programs
const (
	logPrefix  = "Program log: "
	dataPrefix = "Program data: "
)

// Receipt - journal entry for a processed transaction
type Receipt struct {
	ID          TransactionID `json:"id"`
	Sequence    uint64        `json:"sequence"`
	Code        fault.Code    `json:"code"`
	Error       string        `json:"error,omitempty"`
	Transaction *Transaction  `json:"transaction"`
	Logs        []string      `json:"logs"`
}

// Err - the failure recorded, nil on success
func (receipt *Receipt) Err() error {
	if fault.CodeSuccess == receipt.Code {
		return nil
	}
	if err := fault.FromCode(receipt.Code); nil != err {
		return err
	}
	return fault.ProcessError(receipt.Error)
}

// Messages - text logged by programs
func (receipt *Receipt) Messages() []string {
	messages := make([]string, 0, len(receipt.Logs))
	for _, line := range receipt.Logs {
		if strings.HasPrefix(line, logPrefix) {
			messages = append(messages, strings.TrimPrefix(line, logPrefix))
		}
	}
	return messages
}

// Events - decode every event emitted, unknown events are skipped
func (receipt *Receipt) Events() []layout.Record {
	events := make([]layout.Record, 0, 2)
	for _, line := range receipt.Logs {
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(line, dataPrefix))
		if nil != err {
			continue
		}
		event, err := layout.UnpackEvent(data)
		if nil != err {
			continue
		}
		events = append(events, event)
	}
	return events
}

// PackedReceipt - receipt as stored in the journal
type PackedReceipt []byte

// Pack - sequence ++ code ++ error ++ transaction ++ count ++ [log line]
func (receipt *Receipt) Pack() PackedReceipt {
	buffer := make([]byte, 0, 512)
	buffer = util.AppendVarint64(buffer, receipt.Sequence)
	buffer = util.AppendVarint64(buffer, uint64(receipt.Code))
	buffer = appendBytes(buffer, []byte(receipt.Error))
	buffer = append(buffer, receipt.Transaction.Pack()...)
	buffer = util.AppendVarint64(buffer, uint64(len(receipt.Logs)))
	for _, line := range receipt.Logs {
		buffer = appendBytes(buffer, []byte(line))
	}
	return buffer
}

// Unpack - restore a receipt, the id is not stored in the value
func (record PackedReceipt) Unpack() (*Receipt, error) {
	u := &unpacker{buffer: record}

	sequence, err := u.varint()
	if nil != err {
		return nil, err
	}
	code, err := u.varint()
	if nil != err {
		return nil, err
	}
	message, err := u.bytes(maxLogLineLength)
	if nil != err {
		return nil, err
	}
	transaction, err := unpackTransaction(u)
	if nil != err {
		return nil, err
	}
	count, err := u.length(maxCount)
	if nil != err {
		return nil, err
	}
	logs := make([]string, 0, count)
	for i := 0; i < count; i += 1 {
		line, err := u.bytes(maxLogLineLength)
		if nil != err {
			return nil, err
		}
		logs = append(logs, string(line))
	}
	if !u.done() {
		return nil, fault.ErrRecordTruncated
	}

	return &Receipt{
		ID:          transaction.ID(),
		Sequence:    sequence,
		Code:        fault.Code(code),
		Error:       string(message),
		Transaction: transaction,
		Logs:        logs,
	}, nil
}
