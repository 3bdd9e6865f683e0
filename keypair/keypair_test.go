// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/keypair"
)

const password = "correct horse battery"

func TestPlain(t *testing.T) {
	raw, privateKey, err := keypair.MakeRawKeyPair("")
	assert.Nil(t, err)
	assert.False(t, raw.IsEncrypted())
	assert.Equal(t, privateKey.Identity(), raw.Identity)

	recovered, err := raw.PrivateKey("ignored")
	assert.Nil(t, err)
	assert.Equal(t, privateKey.Bytes(), recovered.Bytes())
}

func TestEncrypted(t *testing.T) {
	raw, privateKey, err := keypair.MakeRawKeyPair(password)
	assert.Nil(t, err)
	assert.True(t, raw.IsEncrypted())
	assert.Equal(t, "", raw.PrivateKeyHex)
	assert.True(t, raw.Iterations >= 1000 && raw.Iterations < 6000)

	recovered, err := raw.PrivateKey(password)
	assert.Nil(t, err)
	assert.Equal(t, privateKey.Identity(), recovered.Identity())

	_, err = raw.PrivateKey("wrong horse battery")
	assert.Equal(t, fault.ErrWrongPassword, err)
}

func TestShortPassword(t *testing.T) {
	_, _, err := keypair.MakeRawKeyPair("short")
	assert.Equal(t, fault.ErrPasswordLength, err)
}

func TestIdentityMismatch(t *testing.T) {
	raw, _, err := keypair.MakeRawKeyPair("")
	assert.Nil(t, err)

	other, err := identity.NewPrivateKey()
	assert.Nil(t, err)
	raw.Identity = other.Identity()

	_, err = raw.PrivateKey("")
	assert.Equal(t, fault.ErrInvalidIdentity, err)
}

func TestSaveLoad(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "key.json")

	raw, privateKey, err := keypair.MakeRawKeyPair(password)
	assert.Nil(t, err)
	assert.Nil(t, raw.Save(fileName))

	info, err := os.Stat(fileName)
	assert.Nil(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := keypair.Load(fileName)
	assert.Nil(t, err)
	assert.Equal(t, raw, loaded)

	recovered, err := loaded.PrivateKey(password)
	assert.Nil(t, err)
	assert.Equal(t, privateKey.Identity(), recovered.Identity())

	_, err = keypair.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.NotNil(t, err)
}
