// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - key files for signing transactions
//
// a key file holds the identity and either the plain private key or the
// private key encrypted with a key derived from a password
package keypair

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"io/ioutil"

	"golang.org/x/crypto/pbkdf2"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
)

const (
	saltSize       = 32
	keySize        = 32
	iterBase       = 1000
	iterRange      = 5000
	privateKeySize = 64

	// MinimumPasswordLength - shorter passwords are refused
	MinimumPasswordLength = 8
)

// RawKeyPair - text version of a key file
type RawKeyPair struct {
	Identity      identity.Identity `json:"identity"`
	PrivateKeyHex string            `json:"private_key,omitempty"`
	Encrypted     string            `json:"encrypted,omitempty"`
	Salt          string            `json:"salt,omitempty"`
	Iterations    int               `json:"iterations,omitempty"`
}

// MakeRawKeyPair - create a new key, encrypted if password is not blank
func MakeRawKeyPair(password string) (*RawKeyPair, *identity.PrivateKey, error) {
	privateKey, err := identity.NewPrivateKey()
	if nil != err {
		return nil, nil, err
	}
	raw, err := NewRawKeyPair(privateKey, password)
	if nil != err {
		return nil, nil, err
	}
	return raw, privateKey, nil
}

// NewRawKeyPair - the key file form of an existing key
func NewRawKeyPair(privateKey *identity.PrivateKey, password string) (*RawKeyPair, error) {
	raw := &RawKeyPair{
		Identity: privateKey.Identity(),
	}

	if "" == password {
		raw.PrivateKeyHex = hex.EncodeToString(privateKey.Bytes())
		return raw, nil
	}
	if len(password) < MinimumPasswordLength {
		return nil, fault.ErrPasswordLength
	}

	salt := make([]byte, saltSize+2)
	if _, err := io.ReadFull(rand.Reader, salt); nil != err {
		return nil, err
	}
	iterations := iterBase + (int(salt[saltSize])<<8|int(salt[saltSize+1]))%iterRange
	salt = salt[:saltSize]

	ciphertext, err := encryptPrivateKey(privateKey.Bytes(), generateKey(password, salt, iterations))
	if nil != err {
		return nil, err
	}

	raw.Encrypted = hex.EncodeToString(ciphertext)
	raw.Salt = hex.EncodeToString(salt)
	raw.Iterations = iterations
	return raw, nil
}

// IsEncrypted - a password is needed to use the key
func (raw *RawKeyPair) IsEncrypted() bool {
	return "" != raw.Encrypted
}

// PrivateKey - recover the signing key, password is ignored for a plain key
func (raw *RawKeyPair) PrivateKey(password string) (*identity.PrivateKey, error) {
	var plaintext []byte

	if raw.IsEncrypted() {
		salt, err := hex.DecodeString(raw.Salt)
		if nil != err {
			return nil, err
		}
		ciphertext, err := hex.DecodeString(raw.Encrypted)
		if nil != err {
			return nil, err
		}
		plaintext, err = decryptPrivateKey(ciphertext, generateKey(password, salt, raw.Iterations))
		if nil != err {
			return nil, err
		}
	} else {
		b, err := hex.DecodeString(raw.PrivateKeyHex)
		if nil != err {
			return nil, err
		}
		plaintext = b
	}

	privateKey, err := identity.PrivateKeyFromBytes(plaintext)
	if fault.ErrInvalidIdentity == err && raw.IsEncrypted() {
		return nil, fault.ErrWrongPassword
	} else if nil != err {
		return nil, err
	}

	if privateKey.Identity() != raw.Identity {
		if raw.IsEncrypted() {
			return nil, fault.ErrWrongPassword
		}
		return nil, fault.ErrInvalidIdentity
	}
	return privateKey, nil
}

// Save - write a key file readable only by its owner
func (raw *RawKeyPair) Save(fileName string) error {
	b, err := json.MarshalIndent(raw, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, append(b, '\n'), 0o600)
}

// Load - read a key file
func Load(fileName string) (*RawKeyPair, error) {
	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	raw := &RawKeyPair{}
	err = json.Unmarshal(b, raw)
	if nil != err {
		return nil, err
	}
	if !raw.IsEncrypted() && "" == raw.PrivateKeyHex {
		return nil, fault.ErrInvalidKeyLength
	}
	return raw, nil
}

func generateKey(password string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keySize, sha512.New)
}

func encryptPrivateKey(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	if len(plaintext) != privateKeySize {
		return nil, fault.ErrInvalidKeyLength
	}

	ciphertext := make([]byte, aes.BlockSize+privateKeySize)
	iv := ciphertext[:aes.BlockSize]
	if _, err = io.ReadFull(rand.Reader, iv); nil != err {
		return nil, err
	}
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext[aes.BlockSize:], plaintext)

	return ciphertext, nil
}

func decryptPrivateKey(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	if len(ciphertext) != aes.BlockSize+privateKeySize {
		return nil, fault.ErrInvalidKeyLength
	}

	iv := ciphertext[:aes.BlockSize]
	plaintext := make([]byte, privateKeySize)
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(plaintext, ciphertext[aes.BlockSize:])

	return plaintext, nil
}
