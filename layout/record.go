// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/bitmark-inc/programs/fault"
)

// Record - a fixed size schema stored in an account or emitted as an event
type Record interface {
	Name() string
	Discriminator() Discriminator
	Space() int
	Pack(*Encoder) error
	Unpack(*Decoder) error
}

// Packed - an encoded record
type Packed []byte

// Encode - discriminator, fields, then zero padding up to Space
func Encode(record Record) (Packed, error) {
	e := NewEncoder(record.Discriminator())
	err := record.Pack(e)
	if nil != err {
		return nil, err
	}
	space := record.Space()
	if e.Len() > space {
		return nil, fault.ErrLengthOverflow
	}
	buffer := make([]byte, space)
	copy(buffer, e.Bytes())
	return buffer, nil
}

// EncodeInto - encode over the start of buffer
//
// buffer is left untouched if encoding fails
func EncodeInto(record Record, buffer []byte) error {
	if len(buffer) < record.Space() {
		return fault.ErrAccountTooSmall
	}
	packed, err := Encode(record)
	if nil != err {
		return err
	}
	copy(buffer, packed)
	return nil
}

// Decode - fill record from buffer, the discriminator must match
func Decode(buffer []byte, record Record) error {
	d, err := NewDecoder(buffer, record.Discriminator())
	if nil != err {
		return err
	}
	return record.Unpack(d)
}

// Matches - true if buffer starts with the record's discriminator
func Matches(buffer []byte, record Record) bool {
	if len(buffer) < DiscriminatorSize {
		return false
	}
	d := record.Discriminator()
	for i := range d {
		if buffer[i] != d[i] {
			return false
		}
	}
	return true
}

// Unpack - identify and decode any known account record
//
// must cast result to correct type
//
// e.g.
//
//	switch r := record.(type) {
//	case *layout.Counter:
func (record Packed) Unpack() (Record, error) {
	return unpackFrom(record, accountRecords)
}

func unpackFrom(buffer []byte, known map[Discriminator]func() Record) (Record, error) {
	if len(buffer) < DiscriminatorSize {
		return nil, fault.ErrRecordTruncated
	}
	d := Discriminator{}
	copy(d[:], buffer)

	create, ok := known[d]
	if !ok {
		return nil, fault.ErrUnknownRecord
	}
	r := create()
	err := Decode(buffer, r)
	if nil != err {
		return nil, err
	}
	return r, nil
}
