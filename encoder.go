package bcs

import (
	"encoding/binary"
	"math/big"
)

// An Encoder writes one BCS value to its sink. It is the visitor surface a
// Marshaler drives: exactly one shape method per logical value, in schema
// order. Encoders are created by the package entry points and by the
// container methods; the zero value is not usable.
//
// remainingDepth is the named-container budget left on this branch of the
// value tree. Container methods hand their body a child carrying the
// decremented budget, so when control returns to a sibling the parent's
// budget is intact.
type Encoder struct {
	out            sink
	remainingDepth int
}

// uleb128 writes v as unsigned little-endian base-128: 7 bits per byte,
// least-significant group first, high bit set on all but the last byte.
// The terminator byte is zero only when v == 0, so the form is minimal.
func (e *Encoder) uleb128(v uint32) {
	var buf [5]byte
	n := 0
	for v >= 0x80 {
		buf[n] = byte(v&0x7f) | 0x80
		n++
		v >>= 7
	}
	buf[n] = byte(v)
	e.out.extend(buf[:n+1])
}

func (e *Encoder) variantIndex(v uint32) {
	e.uleb128(v)
}

// seqLen writes a sequence length, rejecting anything beyond the protocol
// ceiling before a single element is encoded.
func (e *Encoder) seqLen(n int) error {
	if n > MaxSequenceLength {
		return &MaxLenError{Len: n}
	}
	e.uleb128(uint32(n))
	return nil
}

// enterNamed charges one depth slot for a named container and returns the
// child encoder its body runs on. Anonymous containers (sequences, tuples,
// maps, options) never pass through here.
func (e *Encoder) enterNamed(name string) (Encoder, error) {
	if e.remainingDepth == 0 {
		return Encoder{}, &DepthLimitError{Name: name}
	}
	return Encoder{out: e.out, remainingDepth: e.remainingDepth - 1}, nil
}

// Bool writes a single 0x00 or 0x01 byte.
func (e *Encoder) Bool(v bool) error {
	if v {
		return e.U8(1)
	}
	return e.U8(0)
}

// Signed integers are reinterpreted bit-for-bit as unsigned and written
// little-endian like everything else.

func (e *Encoder) I8(v int8) error   { return e.U8(uint8(v)) }
func (e *Encoder) I16(v int16) error { return e.U16(uint16(v)) }
func (e *Encoder) I32(v int32) error { return e.U32(uint32(v)) }
func (e *Encoder) I64(v int64) error { return e.U64(uint64(v)) }

// I128 writes a signed 128-bit integer in two's complement. v must be in
// [-2^127, 2^127).
func (e *Encoder) I128(v *big.Int) error {
	if v == nil || v.Cmp(i128Min) < 0 || v.Cmp(i128Max) > 0 {
		return NotSupportedError("i128 out of range")
	}
	if v.Sign() < 0 {
		return e.u128Bits(new(big.Int).Add(v, u128Mod))
	}
	return e.u128Bits(v)
}

func (e *Encoder) U8(v uint8) error {
	e.out.extend([]byte{v})
	return nil
}

func (e *Encoder) U16(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.out.extend(b[:])
	return nil
}

func (e *Encoder) U32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.out.extend(b[:])
	return nil
}

func (e *Encoder) U64(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.out.extend(b[:])
	return nil
}

// U128 writes an unsigned 128-bit integer. v must be in [0, 2^128).
func (e *Encoder) U128(v *big.Int) error {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		return NotSupportedError("u128 out of range")
	}
	return e.u128Bits(v)
}

// u128Bits writes the low 128 bits of a non-negative v, little-endian.
func (e *Encoder) u128Bits(v *big.Int) error {
	var b [16]byte
	v.FillBytes(b[:])
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	e.out.extend(b[:])
	return nil
}

var (
	u128Mod = new(big.Int).Lsh(big.NewInt(1), 128)
	i128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	i128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// F32 always fails: BCS has no float encoding.
func (e *Encoder) F32(_ float32) error {
	return NotSupportedError("serialize_f32")
}

// F64 always fails: BCS has no float encoding.
func (e *Encoder) F64(_ float64) error {
	return NotSupportedError("serialize_f64")
}

// Char always fails: BCS has no single-character encoding; use Str.
func (e *Encoder) Char(_ rune) error {
	return NotSupportedError("serialize_char")
}

// Str writes a string as its raw UTF-8 bytes with a length prefix.
func (e *Encoder) Str(v string) error {
	return e.Bytes([]byte(v))
}

// Bytes writes a ULEB128 length prefix followed by the bytes themselves.
func (e *Encoder) Bytes(v []byte) error {
	if err := e.seqLen(len(v)); err != nil {
		return err
	}
	e.out.extend(v)
	return nil
}

// None writes the absent-option tag 0x00.
func (e *Encoder) None() error {
	return e.U8(0)
}

// Some writes the present-option tag 0x01 and then the payload. Options are
// anonymous, so the payload runs on the same encoder with the same budget.
func (e *Encoder) Some(value func(*Encoder) error) error {
	if err := e.U8(1); err != nil {
		return err
	}
	return value(e)
}

// Unit writes nothing.
func (e *Encoder) Unit() error {
	return nil
}

// UnitStruct charges a depth slot for the named container and writes nothing.
func (e *Encoder) UnitStruct(name string) error {
	_, err := e.enterNamed(name)
	return err
}

// UnitVariant writes the ULEB128 variant index of a payload-free variant.
func (e *Encoder) UnitVariant(name string, index uint32) error {
	sub, err := e.enterNamed(name)
	if err != nil {
		return err
	}
	sub.variantIndex(index)
	return nil
}

// NewtypeStruct encodes a single-value wrapper: the wrapper itself adds no
// bytes but counts toward the depth limit.
func (e *Encoder) NewtypeStruct(name string, value func(*Encoder) error) error {
	sub, err := e.enterNamed(name)
	if err != nil {
		return err
	}
	return value(&sub)
}

// NewtypeVariant writes the variant index, then the single payload value.
func (e *Encoder) NewtypeVariant(name string, index uint32, value func(*Encoder) error) error {
	sub, err := e.enterNamed(name)
	if err != nil {
		return err
	}
	sub.variantIndex(index)
	return value(&sub)
}

// Sequence writes a length prefix and then n elements in order. The length
// must be known up front; a negative n means the caller could not supply
// one and fails with ErrMissingLen.
func (e *Encoder) Sequence(n int, elem func(*Encoder, int) error) error {
	if n < 0 {
		return ErrMissingLen
	}
	if err := e.seqLen(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := elem(e, i); err != nil {
			return err
		}
	}
	return nil
}

// Tuple encodes n elements back to back. Tuples are fixed-size, so there is
// no length prefix and no depth charge.
func (e *Encoder) Tuple(n int, elem func(*Encoder, int) error) error {
	for i := 0; i < n; i++ {
		if err := elem(e, i); err != nil {
			return err
		}
	}
	return nil
}

// TupleStruct encodes a named fixed-size tuple: a depth slot, then the
// elements with no framing.
func (e *Encoder) TupleStruct(name string, n int, elem func(*Encoder, int) error) error {
	sub, err := e.enterNamed(name)
	if err != nil {
		return err
	}
	return sub.Tuple(n, elem)
}

// TupleVariant writes the variant index, then the elements with no framing.
func (e *Encoder) TupleVariant(name string, index uint32, n int, elem func(*Encoder, int) error) error {
	sub, err := e.enterNamed(name)
	if err != nil {
		return err
	}
	sub.variantIndex(index)
	return sub.Tuple(n, elem)
}

// Struct encodes a named struct: a depth slot, then the fields in
// declaration order with no framing.
func (e *Encoder) Struct(name string, fields func(*Encoder) error) error {
	sub, err := e.enterNamed(name)
	if err != nil {
		return err
	}
	return fields(&sub)
}

// StructVariant writes the variant index, then the fields in declaration
// order with no framing.
func (e *Encoder) StructVariant(name string, index uint32, fields func(*Encoder) error) error {
	sub, err := e.enterNamed(name)
	if err != nil {
		return err
	}
	sub.variantIndex(index)
	return fields(&sub)
}

// Map buffers the entries delivered by the body, then emits them in
// canonical order. See MapEncoder.
func (e *Encoder) Map(entries func(*MapEncoder) error) error {
	m := MapEncoder{parent: e}
	if err := entries(&m); err != nil {
		return err
	}
	return m.end()
}
