// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/identity"
	"github.com/bitmark-inc/programs/util"
)

// limits applied when unpacking
const (
	maxDataLength    = 10 * 1024 * 1024
	maxCount         = 65535
	maxLogLineLength = 65535
)

func appendBytes(buffer []byte, data []byte) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

func appendBool(buffer []byte, b bool) []byte {
	if b {
		return util.AppendVarint64(buffer, 1)
	}
	return util.AppendVarint64(buffer, 0)
}

// sequential reader over a packed buffer
type unpacker struct {
	buffer []byte
	n      int
}

func (u *unpacker) varint() (uint64, error) {
	value, count := util.FromVarint64(u.buffer[u.n:])
	if 0 == count {
		return 0, fault.ErrRecordTruncated
	}
	u.n += count
	return value, nil
}

func (u *unpacker) length(maximum int) (int, error) {
	value, count := util.ClippedVarint64(u.buffer[u.n:], 0, maximum)
	if 0 == count {
		return 0, fault.ErrRecordTruncated
	}
	u.n += count
	return value, nil
}

func (u *unpacker) bool() (bool, error) {
	value, err := u.varint()
	if nil != err {
		return false, err
	}
	return 0 != value, nil
}

func (u *unpacker) fixed(length int) ([]byte, error) {
	if u.n+length > len(u.buffer) {
		return nil, fault.ErrRecordTruncated
	}
	b := make([]byte, length)
	copy(b, u.buffer[u.n:])
	u.n += length
	return b, nil
}

func (u *unpacker) bytes(maximum int) ([]byte, error) {
	length, err := u.length(maximum)
	if nil != err {
		return nil, err
	}
	return u.fixed(length)
}

func (u *unpacker) identity() (identity.Identity, error) {
	b, err := u.fixed(identity.Size)
	if nil != err {
		return identity.Identity{}, err
	}
	return identity.FromBytes(b)
}

func (u *unpacker) done() bool {
	return u.n == len(u.buffer)
}
