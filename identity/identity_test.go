// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
)

// RFC 8032 section 7.1 test 1
const (
	rfcSeed      = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	rfcPublicKey = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	rfcBase58    = "FVen3X669xLzsi6N2V91DoiyzHzg1uAgqiT8jZ9nS96Z"
	rfcSignature = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
)

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestBase58RoundTrip(t *testing.T) {
	id, err := identity.FromBytes(decodeHex(rfcPublicKey))
	assert.Nil(t, err, "from bytes")
	assert.Equal(t, rfcBase58, id.String(), "base58 encoding")

	decoded, err := identity.FromBase58(rfcBase58)
	assert.Nil(t, err, "from base58")
	assert.Equal(t, id, decoded, "decoded identity")
}

func TestKnownProgramIdentities(t *testing.T) {
	ids := []struct {
		base58 string
		raw    string
	}{
		{"BqVNxB4bggMbrAkiV6v5cyREqS4VFjD2d8i1ZAV8C9v5", "a100d5f2e605c5e39d7d413f3e0c256f054c740a628461ca64b6f7e3f5a52c0e"},
		{"ASY74LTn3x8Ms5L8FfRXDwnrvRnwWZuURvSLqtcHwKqd", "8c43df59f31b4f901371376d2799866b477a32accb5df83e432ad9298be0b99c"},
		{"11111111111111111111111111111111", "0000000000000000000000000000000000000000000000000000000000000000"},
	}

	for i, item := range ids {
		id, err := identity.FromBase58(item.base58)
		if nil != err {
			t.Fatalf("%d: FromBase58(%q) error: %s", i, item.base58, err)
		}
		assert.Equal(t, item.raw, hex.EncodeToString(id.Bytes()), "raw bytes")
	}

	assert.True(t, identity.SystemProgram.IsZero(), "system program is zero")
	assert.Equal(t, "11111111111111111111111111111111", identity.SystemProgram.String(), "system program base58")
}

func TestInvalidIdentities(t *testing.T) {
	_, err := identity.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key")

	_, err = identity.FromBase58("not-base58-0OIl")
	assert.Equal(t, fault.ErrInvalidIdentity, err, "bad characters")

	// 11 bytes
	_, err = identity.FromBase58("StV1DL6CwTryKyV")
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "wrong length")
}

func TestJSON(t *testing.T) {
	id := identity.MustFromBase58(rfcBase58)

	item := struct {
		Owner identity.Identity `json:"owner"`
	}{
		Owner: id,
	}

	b, err := json.Marshal(item)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"owner":"`+rfcBase58+`"}`, string(b), "json")

	item.Owner = identity.Identity{}
	err = json.Unmarshal(b, &item)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, id, item.Owner, "unmarshalled owner")
}

func TestIsOnCurve(t *testing.T) {
	id := identity.MustFromBase58(rfcBase58)
	assert.True(t, id.IsOnCurve(), "public key is on the curve")

	// the neutral element (0, 1)
	one := identity.Identity{0x01}
	assert.True(t, one.IsOnCurve(), "identity point")

	assert.False(t, identity.IsOnCurve([]byte{1, 2, 3}), "short buffer")
}

func TestSignAndVerify(t *testing.T) {
	privateKey, err := identity.PrivateKeyFromSeed(decodeHex(rfcSeed))
	assert.Nil(t, err, "from seed")
	assert.Equal(t, rfcBase58, privateKey.Identity().String(), "public key")

	signature := privateKey.Sign([]byte{})
	assert.Equal(t, rfcSignature, signature.String(), "deterministic signature")

	id := privateKey.Identity()
	assert.Nil(t, id.CheckSignature([]byte{}, signature), "verify")
	assert.Equal(t, fault.ErrInvalidSignature, id.CheckSignature([]byte{0x00}, signature), "wrong message")
	assert.Equal(t, fault.ErrInvalidSignature, id.CheckSignature([]byte{}, signature[:10]), "short signature")

	restored, err := identity.PrivateKeyFromBytes(privateKey.Bytes())
	assert.Nil(t, err, "from bytes")
	assert.Equal(t, id, restored.Identity(), "restored identity")

	corrupt := privateKey.Bytes()
	corrupt[63] ^= 0xff
	_, err = identity.PrivateKeyFromBytes(corrupt)
	assert.Equal(t, fault.ErrInvalidIdentity, err, "mismatched public half")
}

func TestNewPrivateKey(t *testing.T) {
	k1, err := identity.NewPrivateKey()
	assert.Nil(t, err, "first key")
	k2, err := identity.NewPrivateKey()
	assert.Nil(t, err, "second key")
	assert.NotEqual(t, k1.Identity(), k2.Identity(), "keys differ")
	assert.True(t, k1.Identity().IsOnCurve(), "generated key is on the curve")
}

func TestSignatureText(t *testing.T) {
	signature := identity.Signature(decodeHex(rfcSignature))
	text, err := signature.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, rfcSignature, string(text), "hex text")

	var decoded identity.Signature
	assert.Nil(t, decoded.UnmarshalText(text), "unmarshal")
	assert.Equal(t, signature, decoded, "round trip")
}
