// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/util"
)

// AccountMeta - an account declared by an instruction
type AccountMeta struct {
	Address    identity.Identity `json:"address"`
	IsSigner   bool              `json:"isSigner"`
	IsWritable bool              `json:"isWritable"`
}

// Instruction - a call to one program
type Instruction struct {
	ProgramID identity.Identity `json:"programId"`
	Accounts  []AccountMeta     `json:"accounts"`
	Data      []byte            `json:"data"`
}

// Message - the signed part of a transaction
//
// Nonce distinguishes otherwise identical messages
type Message struct {
	Nonce        uint64        `json:"nonce"`
	Instructions []Instruction `json:"instructions"`
}

// Signed - one signer's signature over the packed message
type Signed struct {
	Signer    identity.Identity  `json:"signer"`
	Signature identity.Signature `json:"signature"`
}

// Transaction - a message with its signatures
type Transaction struct {
	Message    Message  `json:"message"`
	Signatures []Signed `json:"signatures"`
}

// TransactionIDSize - bytes in a transaction id
const TransactionIDSize = 32

// TransactionID - SHA3-256 of the packed message
type TransactionID [TransactionIDSize]byte

// String - hex representation
func (id TransactionID) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - for %#v
func (id TransactionID) GoString() string {
	return "<txId:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - for JSON
func (id TransactionID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - from hex
func (id *TransactionID) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if TransactionIDSize != n {
		return fault.ErrInvalidKeyLength
	}
	copy(id[:], buffer)
	return nil
}

// TransactionIDFromString - parse hex
func TransactionIDFromString(s string) (TransactionID, error) {
	id := TransactionID{}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

// PackedMessage - message bytes as signed
type PackedMessage []byte

// Pack - nonce ++ count ++ [program ++ count ++ [address ++ flags] ++ data]
func (message *Message) Pack() PackedMessage {
	buffer := make([]byte, 0, 256)
	buffer = util.AppendVarint64(buffer, message.Nonce)
	buffer = util.AppendVarint64(buffer, uint64(len(message.Instructions)))
	for _, instruction := range message.Instructions {
		buffer = append(buffer, instruction.ProgramID[:]...)
		buffer = util.AppendVarint64(buffer, uint64(len(instruction.Accounts)))
		for _, meta := range instruction.Accounts {
			buffer = append(buffer, meta.Address[:]...)
			flags := byte(0)
			if meta.IsSigner {
				flags |= 0x01
			}
			if meta.IsWritable {
				flags |= 0x02
			}
			buffer = append(buffer, flags)
		}
		buffer = appendBytes(buffer, instruction.Data)
	}
	return buffer
}

// ID - digest of the packed message
func (message *Message) ID() TransactionID {
	return TransactionID(sha3.Sum256(message.Pack()))
}

// Signers - every address declared as a signer, in first appearance order
func (message *Message) Signers() []identity.Identity {
	signers := make([]identity.Identity, 0, 4)
	seen := make(map[identity.Identity]struct{})
	for _, instruction := range message.Instructions {
		for _, meta := range instruction.Accounts {
			if !meta.IsSigner {
				continue
			}
			if _, ok := seen[meta.Address]; ok {
				continue
			}
			seen[meta.Address] = struct{}{}
			signers = append(signers, meta.Address)
		}
	}
	return signers
}

// Sign - sign the message with each key
func (message *Message) Sign(keys ...*identity.PrivateKey) *Transaction {
	packed := message.Pack()
	signatures := make([]Signed, 0, len(keys))
	for _, key := range keys {
		signatures = append(signatures, Signed{
			Signer:    key.Identity(),
			Signature: key.Sign(packed),
		})
	}
	return &Transaction{
		Message:    *message,
		Signatures: signatures,
	}
}

// ID - the transaction id
func (transaction *Transaction) ID() TransactionID {
	return transaction.Message.ID()
}

// Verify - every signature is valid and every declared signer has signed
func (transaction *Transaction) Verify() error {
	if 0 == len(transaction.Message.Instructions) {
		return fault.ErrEmptyTransaction
	}

	signers := transaction.Message.Signers()
	required := make(map[identity.Identity]bool, len(signers))
	for _, signer := range signers {
		required[signer] = false
	}

	packed := transaction.Message.Pack()
	for _, s := range transaction.Signatures {
		signed, ok := required[s.Signer]
		if !ok || signed {
			return fault.ErrSignatureCount
		}
		err := s.Signer.CheckSignature(packed, s.Signature)
		if nil != err {
			return err
		}
		required[s.Signer] = true
	}

	for _, signer := range signers {
		if !required[signer] {
			return fault.ErrUnauthorized
		}
	}
	return nil
}

// PackedTransaction - packed message then signatures
type PackedTransaction []byte

// Pack - message ++ count ++ [signer ++ length ++ signature]
func (transaction *Transaction) Pack() PackedTransaction {
	buffer := []byte(transaction.Message.Pack())
	buffer = util.AppendVarint64(buffer, uint64(len(transaction.Signatures)))
	for _, s := range transaction.Signatures {
		buffer = append(buffer, s.Signer[:]...)
		buffer = appendBytes(buffer, s.Signature)
	}
	return buffer
}

// Unpack - restore a transaction
func (record PackedTransaction) Unpack() (*Transaction, error) {
	u := &unpacker{buffer: record}
	transaction, err := unpackTransaction(u)
	if nil != err {
		return nil, err
	}
	if !u.done() {
		return nil, fault.ErrRecordTruncated
	}
	return transaction, nil
}

func unpackTransaction(u *unpacker) (*Transaction, error) {
	nonce, err := u.varint()
	if nil != err {
		return nil, err
	}
	instructionCount, err := u.length(maxCount)
	if nil != err {
		return nil, err
	}

	message := Message{
		Nonce:        nonce,
		Instructions: make([]Instruction, 0, instructionCount),
	}

	for i := 0; i < instructionCount; i += 1 {
		programID, err := u.identity()
		if nil != err {
			return nil, err
		}
		metaCount, err := u.length(maxCount)
		if nil != err {
			return nil, err
		}
		metas := make([]AccountMeta, 0, metaCount)
		for j := 0; j < metaCount; j += 1 {
			address, err := u.identity()
			if nil != err {
				return nil, err
			}
			flags, err := u.fixed(1)
			if nil != err {
				return nil, err
			}
			metas = append(metas, AccountMeta{
				Address:    address,
				IsSigner:   0 != flags[0]&0x01,
				IsWritable: 0 != flags[0]&0x02,
			})
		}
		data, err := u.bytes(maxDataLength)
		if nil != err {
			return nil, err
		}
		message.Instructions = append(message.Instructions, Instruction{
			ProgramID: programID,
			Accounts:  metas,
			Data:      data,
		})
	}

	signatureCount, err := u.length(maxCount)
	if nil != err {
		return nil, err
	}
	signatures := make([]Signed, 0, signatureCount)
	for i := 0; i < signatureCount; i += 1 {
		signer, err := u.identity()
		if nil != err {
			return nil, err
		}
		signature, err := u.bytes(maxCount)
		if nil != err {
			return nil, err
		}
		signatures = append(signatures, Signed{
			Signer:    signer,
			Signature: signature,
		})
	}

	return &Transaction{
		Message:    message,
		Signatures: signatures,
	}, nil
}
