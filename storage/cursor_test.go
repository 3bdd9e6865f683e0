// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/programs/fault"
	"github.com/bitmark-inc/programs/storage"
)

func TestFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	populate(t)

	cursor := storage.Pool.TestData.NewFetchCursor()
	first, err := cursor.Fetch(3)
	assert.Nil(t, err)
	assert.Equal(t, expectedElements[:3], first)

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err)
	assert.Equal(t, expectedElements[3:], rest)

	none, err := cursor.Fetch(10)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(none))

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err)
}

func TestSeek(t *testing.T) {
	setup(t)
	defer teardown(t)

	populate(t)

	elements, err := storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-s")).Fetch(10)
	assert.Nil(t, err)
	assert.Equal(t, expectedElements[3:], elements)
}

func TestPrefix(t *testing.T) {
	setup(t)
	defer teardown(t)

	populate(t)

	elements, err := storage.Pool.TestData.NewFetchCursor().Prefix([]byte("key-t")).Fetch(10)
	assert.Nil(t, err)
	assert.Equal(t, expectedElements[5:], elements)
}

func TestMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	populate(t)

	elements := make([]storage.Element, 0, len(expectedElements))
	err := storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		elements = append(elements, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, expectedElements, elements)

	count := 0
	err = storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		if 2 == count {
			return fault.ErrInvalidCount
		}
		return nil
	})
	assert.Equal(t, fault.ErrInvalidCount, err)
	assert.Equal(t, 2, count)

	var nilCursor *storage.FetchCursor
	assert.Equal(t, fault.ErrInvalidCursor, nilCursor.Map(nil))
}
