package bcs

import (
	"bytes"
	"slices"
)

// A MapEncoder stages map entries until the whole map has been delivered.
// Canonical order is defined over the encoded form of the keys, not their
// logical values, so each key and value is encoded into a scratch buffer
// first and the sorted concatenation is emitted at the end.
//
// The body must alternate Key and Value calls, one pair per entry, and may
// deliver entries in any order.
type MapEncoder struct {
	parent  *Encoder
	entries []mapEntry
	pending []byte // encoded key awaiting its value
	hasKey  bool   // pending is live (a key may encode to zero bytes)
}

type mapEntry struct {
	key   []byte
	value []byte
}

// Key encodes the next entry's key into a scratch buffer. The sub-encoder
// carries the parent's current depth budget by value, so a key cannot nest
// named containers deeper than the surrounding value could.
func (m *MapEncoder) Key(key func(*Encoder) error) error {
	if m.hasKey {
		return ErrExpectedMapValue
	}
	var buf byteSink
	sub := Encoder{out: &buf, remainingDepth: m.parent.remainingDepth}
	if err := key(&sub); err != nil {
		return err
	}
	m.pending = buf.finalize()
	m.hasKey = true
	return nil
}

// Value encodes the value for the pending key and stages the pair.
func (m *MapEncoder) Value(value func(*Encoder) error) error {
	if !m.hasKey {
		return ErrExpectedMapKey
	}
	var buf byteSink
	sub := Encoder{out: &buf, remainingDepth: m.parent.remainingDepth}
	if err := value(&sub); err != nil {
		return err
	}
	m.entries = append(m.entries, mapEntry{key: m.pending, value: buf.finalize()})
	m.pending = nil
	m.hasKey = false
	return nil
}

// end sorts the staged pairs by encoded key (unsigned lexicographic),
// collapses duplicate encoded keys, and writes the entry count followed by
// each key ++ value. Duplicate keys are semantically forbidden; the decoder
// rejects them as non-canonical, this side keeps the first staged entry.
func (m *MapEncoder) end() error {
	if m.hasKey {
		return ErrExpectedMapValue
	}
	slices.SortStableFunc(m.entries, func(a, b mapEntry) int {
		return bytes.Compare(a.key, b.key)
	})
	m.entries = slices.CompactFunc(m.entries, func(a, b mapEntry) bool {
		return bytes.Equal(a.key, b.key)
	})

	if err := m.parent.seqLen(len(m.entries)); err != nil {
		return err
	}
	for _, entry := range m.entries {
		m.parent.out.extend(entry.key)
		m.parent.out.extend(entry.value)
	}
	return nil
}
