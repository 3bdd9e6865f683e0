// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

// MaxColorLength - longest favourite colour in bytes
const MaxColorLength = 50

var (
	counterDiscriminator   = AccountDiscriminator("Counter")
	favoritesDiscriminator = AccountDiscriminator("Favorites")
	dataStoreDiscriminator = AccountDiscriminator("DataStore")
)

var accountRecords = map[Discriminator]func() Record{
	counterDiscriminator:   func() Record { return &Counter{} },
	favoritesDiscriminator: func() Record { return &Favorites{} },
	dataStoreDiscriminator: func() Record { return &DataStore{} },
}

// Counter - per user count
type Counter struct {
	Count uint64 `json:"count"`
}

// Name - the counter type name
func (c *Counter) Name() string { return "Counter" }

// Discriminator - identifies a counter in account data
func (c *Counter) Discriminator() Discriminator { return counterDiscriminator }

// Space - discriminator and count
func (c *Counter) Space() int { return DiscriminatorSize + Uint64Size }

// Pack - append the count
func (c *Counter) Pack(e *Encoder) error {
	e.PutUint64(c.Count)
	return nil
}

// Unpack - read the count
func (c *Counter) Unpack(d *Decoder) (err error) {
	c.Count, err = d.Uint64()
	return err
}

// Favorites - a user's favourite number and colour
type Favorites struct {
	Number uint64 `json:"number"`
	Color  string `json:"color"`
}

// Name - the favorites record name
func (f *Favorites) Name() string { return "Favorites" }

// Discriminator - identifies a favorites record in account data
func (f *Favorites) Discriminator() Discriminator { return favoritesDiscriminator }

// Space - room for the longest colour
func (f *Favorites) Space() int {
	return DiscriminatorSize + Uint64Size + StringSize(MaxColorLength)
}

// Pack - append number then colour, fails if the colour is too long or not UTF-8
func (f *Favorites) Pack(e *Encoder) error {
	e.PutUint64(f.Number)
	return e.PutString(f.Color, MaxColorLength)
}

// Unpack - read number then colour, the record is unchanged on error
func (f *Favorites) Unpack(d *Decoder) error {
	number, err := d.Uint64()
	if nil != err {
		return err
	}
	color, err := d.String(MaxColorLength)
	if nil != err {
		return err
	}
	f.Number = number
	f.Color = color
	return nil
}

// DataStore - a single stored number
type DataStore struct {
	Data uint64 `json:"data"`
}

// Name - the data store type name
func (s *DataStore) Name() string { return "DataStore" }

// Discriminator - identifies a data store in account data
func (s *DataStore) Discriminator() Discriminator { return dataStoreDiscriminator }

// Space - discriminator and stored number
func (s *DataStore) Space() int { return DiscriminatorSize + Uint64Size }

// Pack - append the stored number
func (s *DataStore) Pack(e *Encoder) error {
	e.PutUint64(s.Data)
	return nil
}

// Unpack - read the stored number
func (s *DataStore) Unpack(d *Decoder) (err error) {
	s.Data, err = d.Uint64()
	return err
}
