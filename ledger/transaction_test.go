// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/ledger"
)

func TestTransactionPack(t *testing.T) {
	payer := makeKey(t, 1)
	target := makeKey(t, 2)

	message := ledger.Message{
		Nonce: 99,
		Instructions: []ledger.Instruction{
			ledger.NewCreateAccountInstruction(payer.Identity(), target.Identity(), 5000, 16, fixtureProgramID),
			fixtureInstruction(opLog, ledger.AccountMeta{Address: target.Identity(), IsWritable: true}),
		},
	}
	tx := message.Sign(payer, target)

	packed := tx.Pack()
	restored, err := packed.Unpack()
	assert.Nil(t, err)
	assert.Equal(t, tx, restored)
	assert.Equal(t, tx.ID(), restored.ID())
	assert.Nil(t, restored.Verify())

	_, err = packed[:len(packed)-3].Unpack()
	assert.Equal(t, fault.ErrRecordTruncated, err)

	// any change to the message changes the id
	message.Nonce = 100
	assert.NotEqual(t, tx.ID(), message.ID())
}

func TestSigners(t *testing.T) {
	a := makeKey(t, 1).Identity()
	b := makeKey(t, 2).Identity()
	c := makeKey(t, 3).Identity()

	message := ledger.Message{
		Instructions: []ledger.Instruction{
			ledger.NewTransferInstruction(b, c, 1),
			ledger.NewCreateAccountInstruction(a, b, 1, 0, fixtureProgramID),
		},
	}
	assert.Equal(t, []identity.Identity{b, a}, message.Signers())
}

func TestVerify(t *testing.T) {
	from := makeKey(t, 1)
	to := makeKey(t, 2)
	other := makeKey(t, 3)

	message := ledger.Message{
		Instructions: []ledger.Instruction{
			ledger.NewTransferInstruction(from.Identity(), to.Identity(), 10),
		},
	}

	assert.Nil(t, message.Sign(from).Verify(), "valid")
	assert.Equal(t, fault.ErrUnauthorized, message.Sign().Verify(), "unsigned")
	assert.Equal(t, fault.ErrSignatureCount, message.Sign(from, to).Verify(), "undeclared signer")
	assert.Equal(t, fault.ErrSignatureCount, message.Sign(from, from).Verify(), "duplicate")

	forged := message.Sign(other)
	forged.Signatures[0].Signer = from.Identity()
	assert.Equal(t, fault.ErrInvalidSignature, forged.Verify(), "forged")

	tampered := message.Sign(from)
	tampered.Message.Nonce = 1
	assert.Equal(t, fault.ErrInvalidSignature, tampered.Verify(), "tampered")

	empty := ledger.Message{}
	assert.Equal(t, fault.ErrEmptyTransaction, empty.Sign().Verify())
}

func TestTransactionID(t *testing.T) {
	message := ledger.Message{
		Instructions: []ledger.Instruction{
			fixtureInstruction(opNothing),
		},
	}
	id := message.ID()

	parsed, err := ledger.TransactionIDFromString(id.String())
	assert.Nil(t, err)
	assert.Equal(t, id, parsed)

	buffer, err := json.Marshal(id)
	assert.Nil(t, err)
	assert.Equal(t, `"`+id.String()+`"`, string(buffer))

	_, err = ledger.TransactionIDFromString("abcd")
	assert.Equal(t, fault.ErrInvalidKeyLength, err)

	_, err = ledger.TransactionIDFromString("not hex")
	assert.NotNil(t, err)
}
