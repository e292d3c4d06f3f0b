// Package bcs implements the serializer for Binary Canonical Serialization.
//
// # Overview
//
// BCS is a schema-driven, non-self-describing binary format built for
// consensus-critical systems: two honest encoders given logically equal
// inputs must produce byte-identical output. The format carries no type
// information beyond enum variant indices; the schema lives in the code
// that reads and writes it.
//
// The wire rules are small:
//   - Integers are little-endian, two's complement for signed.
//   - Booleans are a single 0x00 or 0x01 byte.
//   - Options are 0x00 (absent) or 0x01 followed by the payload.
//   - Sequences, strings and byte strings carry a minimal ULEB128 length
//     prefix; fixed-size tuples and structs carry no framing at all.
//   - Enum variants carry a ULEB128 variant index, then the payload.
//   - Map entries are sorted by the bytes of their encoded keys, so the
//     output never depends on iteration order.
//
// # Canonicalization
//
// Two properties make the encoding canonical. ULEB128 lengths are minimal
// (no trailing zero continuation group), and maps are buffered, sorted by
// encoded key and deduplicated before emission. Everything else streams
// straight to the output.
//
// # Resource Bounds
//
// Sequence lengths are capped at MaxSequenceLength and the nesting depth of
// named containers (structs, newtypes, enum variants) is capped at a
// configurable limit, MaxContainerDepth by default. Depth accounting covers
// named containers only: it guards against adversarial schema depth, not
// against long but legitimate variable-length data.
//
// # Basic Usage
//
// Types describe themselves to the encoder by implementing Marshaler:
//
//	type Service struct {
//	    IP      [4]byte
//	    Port    []uint16
//	    ConnMax *uint32
//	    Enabled bool
//	}
//
//	func (s Service) MarshalBCS(e *bcs.Encoder) error {
//	    return e.Struct("Service", func(e *bcs.Encoder) error {
//	        if err := e.Tuple(4, func(e *bcs.Encoder, i int) error {
//	            return e.U8(s.IP[i])
//	        }); err != nil {
//	            return err
//	        }
//	        if err := e.Sequence(len(s.Port), func(e *bcs.Encoder, i int) error {
//	            return e.U16(s.Port[i])
//	        }); err != nil {
//	            return err
//	        }
//	        if s.ConnMax == nil {
//	            if err := e.None(); err != nil {
//	                return err
//	            }
//	        } else if err := e.Some(func(e *bcs.Encoder) error {
//	            return e.U32(*s.ConnMax)
//	        }); err != nil {
//	            return err
//	        }
//	        return e.Bool(s.Enabled)
//	    })
//	}
//
//	data, err := bcs.ToBytes(service)
//	size, err := bcs.SerializedSize(service) // len(data), without allocating it
//
// # Scope
//
// This package encodes only. Decoding is a separate concern, as is any
// reflection-based adapter that walks arbitrary Go values; both drive or
// consume the same wire format but live outside this package. Floats and
// single characters are not part of BCS and are rejected with
// NotSupportedError.
package bcs
