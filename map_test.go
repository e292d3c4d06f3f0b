package bcs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// byteStrMap builds a Marshaler for a u8 -> byte-string map delivered in
// the given entry order.
func byteStrMap(entries [][2]any) Marshaler {
	return marshalerFunc(func(e *Encoder) error {
		return e.Map(func(m *MapEncoder) error {
			for _, entry := range entries {
				k := entry[0].(uint8)
				v := entry[1].(string)
				if err := m.Key(func(e *Encoder) error { return e.U8(k) }); err != nil {
					return err
				}
				if err := m.Value(func(e *Encoder) error { return e.Str(v) }); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func TestMapCanonicalOrder(t *testing.T) {
	data, err := ToBytes(byteStrMap([][2]any{{uint8(2), "x"}, {uint8(1), "y"}}))
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "02 01 01 79 02 01 78"), data)
}

// The output must not depend on the order the adapter delivered entries.
func TestMapOrderIndependence(t *testing.T) {
	orders := [][][2]any{
		{{uint8(1), "y"}, {uint8(2), "x"}, {uint8(3), "z"}},
		{{uint8(3), "z"}, {uint8(1), "y"}, {uint8(2), "x"}},
		{{uint8(2), "x"}, {uint8(3), "z"}, {uint8(1), "y"}},
	}
	first, err := ToBytes(byteStrMap(orders[0]))
	require.NoError(t, err)
	for _, order := range orders[1:] {
		data, err := ToBytes(byteStrMap(order))
		require.NoError(t, err)
		require.Equal(t, first, data)
	}
}

func TestMapDuplicateKeysCollapse(t *testing.T) {
	data, err := ToBytes(byteStrMap([][2]any{{uint8(1), "y"}, {uint8(1), "z"}}))
	require.NoError(t, err)
	// one entry survives; the first staged value wins
	require.Equal(t, mustHex(t, "01 01 01 79"), data)
}

// Keys may legitimately encode to zero bytes (unit keys); the pending-key
// bookkeeping must not mistake them for "no key delivered".
func TestMapZeroByteKeys(t *testing.T) {
	v := marshalerFunc(func(e *Encoder) error {
		return e.Map(func(m *MapEncoder) error {
			for _, val := range []uint8{7, 8} {
				if err := m.Key(func(e *Encoder) error { return e.Unit() }); err != nil {
					return err
				}
				if err := m.Value(func(e *Encoder) error { return e.U8(val) }); err != nil {
					return err
				}
			}
			return nil
		})
	})
	data, err := ToBytes(v)
	require.NoError(t, err)
	// both keys encode identically (empty), so the entries collapse to one
	require.Equal(t, mustHex(t, "01 07"), data)
}

func TestMapProtocolViolations(t *testing.T) {
	t.Run("key after key", func(t *testing.T) {
		v := marshalerFunc(func(e *Encoder) error {
			return e.Map(func(m *MapEncoder) error {
				if err := m.Key(func(e *Encoder) error { return e.U8(1) }); err != nil {
					return err
				}
				return m.Key(func(e *Encoder) error { return e.U8(2) })
			})
		})
		_, err := ToBytes(v)
		require.ErrorIs(t, err, ErrExpectedMapValue)
	})

	t.Run("value without key", func(t *testing.T) {
		v := marshalerFunc(func(e *Encoder) error {
			return e.Map(func(m *MapEncoder) error {
				return m.Value(func(e *Encoder) error { return e.U8(1) })
			})
		})
		_, err := ToBytes(v)
		require.ErrorIs(t, err, ErrExpectedMapKey)
	})

	t.Run("dangling key at end", func(t *testing.T) {
		v := marshalerFunc(func(e *Encoder) error {
			return e.Map(func(m *MapEncoder) error {
				return m.Key(func(e *Encoder) error { return e.U8(1) })
			})
		})
		_, err := ToBytes(v)
		require.ErrorIs(t, err, ErrExpectedMapValue)
	})
}

// Map keys and values run on fresh buffers but share the surrounding depth
// budget; a key cannot nest named containers past what the parent had left.
func TestMapKeyDepthBudget(t *testing.T) {
	mapWithKeyDepth := func(n int) Marshaler {
		return marshalerFunc(func(e *Encoder) error {
			return e.Struct("Holder", func(e *Encoder) error {
				return e.Map(func(m *MapEncoder) error {
					if err := m.Key(func(e *Encoder) error { return encodeNested(e, n) }); err != nil {
						return err
					}
					return m.Value(func(e *Encoder) error { return e.U8(1) })
				})
			})
		})
	}

	// limit 3: Holder consumes one slot, leaving two for the key subtree
	_, err := ToBytesWithLimit(mapWithKeyDepth(2), 3)
	require.NoError(t, err)

	_, err = ToBytesWithLimit(mapWithKeyDepth(3), 3)
	var depthErr *DepthLimitError
	require.ErrorAs(t, err, &depthErr)
}

func TestMapEntryErrorPropagates(t *testing.T) {
	v := marshalerFunc(func(e *Encoder) error {
		return e.Map(func(m *MapEncoder) error {
			if err := m.Key(func(e *Encoder) error { return e.U8(1) }); err != nil {
				return err
			}
			return m.Value(func(e *Encoder) error { return e.F32(1.0) })
		})
	})
	_, err := ToBytes(v)
	require.Equal(t, NotSupportedError("serialize_f32"), err)
}

func TestNestedMaps(t *testing.T) {
	inner := func(k, v uint8) func(*Encoder) error {
		return func(e *Encoder) error {
			return e.Map(func(m *MapEncoder) error {
				if err := m.Key(func(e *Encoder) error { return e.U8(k) }); err != nil {
					return err
				}
				return m.Value(func(e *Encoder) error { return e.U8(v) })
			})
		}
	}
	v := marshalerFunc(func(e *Encoder) error {
		return e.Map(func(m *MapEncoder) error {
			// delivered in reverse key order on purpose
			if err := m.Key(func(e *Encoder) error { return e.U8(9) }); err != nil {
				return err
			}
			if err := m.Value(inner(3, 30)); err != nil {
				return err
			}
			if err := m.Key(func(e *Encoder) error { return e.U8(4) }); err != nil {
				return err
			}
			return m.Value(inner(2, 20))
		})
	})
	data, err := ToBytes(v)
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "02 04 01 02 14 09 01 03 1e"), data)
}
