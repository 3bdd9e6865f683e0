// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

// MaxMessageLength - longest event message in bytes
const MaxMessageLength = 256

var (
	valueEventDiscriminator   = EventDiscriminator("ValueEvent")
	messageEventDiscriminator = EventDiscriminator("MessageEvent")
)

var eventRecords = map[Discriminator]func() Record{
	valueEventDiscriminator:   func() Record { return &ValueEvent{} },
	messageEventDiscriminator: func() Record { return &MessageEvent{} },
}

// UnpackEvent - identify and decode emitted event data
func UnpackEvent(data []byte) (Record, error) {
	return unpackFrom(data, eventRecords)
}

// ValueEvent - a single number
type ValueEvent struct {
	Value uint64 `json:"value"`
}

// Name - the value event type name
func (v *ValueEvent) Name() string { return "ValueEvent" }

// Discriminator - identifies a value event in log data
func (v *ValueEvent) Discriminator() Discriminator { return valueEventDiscriminator }

// Space - encoded size of the event
func (v *ValueEvent) Space() int { return DiscriminatorSize + Uint64Size }

// Pack - append the value
func (v *ValueEvent) Pack(e *Encoder) error {
	e.PutUint64(v.Value)
	return nil
}

// Unpack - read the value
func (v *ValueEvent) Unpack(d *Decoder) (err error) {
	v.Value, err = d.Uint64()
	return err
}

// MessageEvent - a number with some text
type MessageEvent struct {
	Value   uint64 `json:"value"`
	Message string `json:"message"`
}

// Name - the message event type name
func (m *MessageEvent) Name() string { return "MessageEvent" }

// Discriminator - identifies a message event in log data
func (m *MessageEvent) Discriminator() Discriminator { return messageEventDiscriminator }

// Space - room for the longest message
func (m *MessageEvent) Space() int {
	return DiscriminatorSize + Uint64Size + StringSize(MaxMessageLength)
}

// Pack - append value then message
func (m *MessageEvent) Pack(e *Encoder) error {
	e.PutUint64(m.Value)
	return e.PutString(m.Message, MaxMessageLength)
}

// Unpack - read value then message, the event is unchanged on error
func (m *MessageEvent) Unpack(d *Decoder) error {
	value, err := d.Uint64()
	if nil != err {
		return err
	}
	message, err := d.String(MaxMessageLength)
	if nil != err {
		return err
	}
	m.Value = value
	m.Message = message
	return nil
}
