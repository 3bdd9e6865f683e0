// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/programs/fault"
)

// widths of the fixed size fields
const (
	Uint32Size       = 4
	Uint64Size       = 8
	LengthPrefixSize = 4
)

// StringSize - space reserved for text of up to max bytes
func StringSize(max int) int {
	return LengthPrefixSize + max
}

// Encoder - append fields to a buffer
type Encoder struct {
	buffer []byte
}

// NewEncoder - start a buffer with its discriminator
func NewEncoder(d Discriminator) *Encoder {
	return &Encoder{
		buffer: append(make([]byte, 0, 64), d[:]...),
	}
}

// NewArgumentEncoder - a buffer with no discriminator
func NewArgumentEncoder() *Encoder {
	return &Encoder{
		buffer: make([]byte, 0, 64),
	}
}

// PutUint32 - little endian
func (e *Encoder) PutUint32(value uint32) {
	b := [Uint32Size]byte{}
	binary.LittleEndian.PutUint32(b[:], value)
	e.buffer = append(e.buffer, b[:]...)
}

// PutUint64 - little endian
func (e *Encoder) PutUint64(value uint64) {
	b := [Uint64Size]byte{}
	binary.LittleEndian.PutUint64(b[:], value)
	e.buffer = append(e.buffer, b[:]...)
}

// PutBytes - fixed width bytes, no prefix
func (e *Encoder) PutBytes(value []byte) {
	e.buffer = append(e.buffer, value...)
}

// PutString - u32 length prefix then UTF-8 bytes
func (e *Encoder) PutString(value string, max int) error {
	if len(value) > max {
		return fault.ErrLengthOverflow
	}
	if !utf8.ValidString(value) {
		return fault.ErrInvalidText
	}
	b := [LengthPrefixSize]byte{}
	binary.LittleEndian.PutUint32(b[:], uint32(len(value)))
	e.buffer = append(e.buffer, b[:]...)
	e.buffer = append(e.buffer, value...)
	return nil
}

// Bytes - the encoded buffer
func (e *Encoder) Bytes() []byte {
	return e.buffer
}

// Len - bytes encoded so far
func (e *Encoder) Len() int {
	return len(e.buffer)
}

// Decoder - read fields in order from a buffer
type Decoder struct {
	buffer []byte
	offset int
}

// NewDecoder - check the discriminator before any field is read
func NewDecoder(buffer []byte, d Discriminator) (*Decoder, error) {
	if len(buffer) < DiscriminatorSize {
		return nil, fault.ErrRecordTruncated
	}
	for i := range d {
		if buffer[i] != d[i] {
			return nil, fault.ErrDiscriminatorMismatch
		}
	}
	return &Decoder{
		buffer: buffer,
		offset: DiscriminatorSize,
	}, nil
}

// NewArgumentDecoder - read a buffer that has no discriminator
func NewArgumentDecoder(buffer []byte) *Decoder {
	return &Decoder{
		buffer: buffer,
		offset: 0,
	}
}

func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.offset+n > len(d.buffer) {
		return nil, fault.ErrRecordTruncated
	}
	b := d.buffer[d.offset : d.offset+n]
	d.offset += n
	return b, nil
}

// Uint32 - little endian
func (d *Decoder) Uint32() (uint32, error) {
	b, err := d.take(Uint32Size)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64 - little endian
func (d *Decoder) Uint64() (uint64, error) {
	b, err := d.take(Uint64Size)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Bytes - fixed width bytes, copied
func (d *Decoder) Bytes(n int) ([]byte, error) {
	b, err := d.take(n)
	if nil != err {
		return nil, err
	}
	return append([]byte{}, b...), nil
}

// String - u32 length prefix then UTF-8 bytes
//
// the prefix may not exceed max or the bytes remaining
func (d *Decoder) String(max int) (string, error) {
	b, err := d.take(LengthPrefixSize)
	if nil != err {
		return "", err
	}
	length := binary.LittleEndian.Uint32(b)
	if uint64(length) > uint64(max) || int(length) > d.Remaining() {
		return "", fault.ErrLengthOverflow
	}
	b, err = d.take(int(length))
	if nil != err {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fault.ErrInvalidText
	}
	return string(b), nil
}

// Remaining - bytes not yet consumed
func (d *Decoder) Remaining() int {
	return len(d.buffer) - d.offset
}
