package bcs

const (
	// MaxSequenceLength is the ceiling on any single sequence length or
	// byte-string length.
	MaxSequenceLength = 1<<31 - 1

	// MaxContainerDepth is the default (and maximum) nesting limit for
	// named containers.
	MaxContainerDepth = 500
)

// Marshaler is implemented by types that can describe themselves to an
// Encoder. MarshalBCS must drive exactly one shape method for the value.
type Marshaler interface {
	MarshalBCS(e *Encoder) error
}

// ToBytes encodes v and returns the canonical byte string. On error the
// partial encoding is discarded.
func ToBytes(v Marshaler) ([]byte, error) {
	var out byteSink
	if err := encodeInto(v, &out, MaxContainerDepth); err != nil {
		return nil, err
	}
	return out.finalize(), nil
}

// ToBytesWithLimit is ToBytes with limit as the named-container depth
// budget instead of MaxContainerDepth. limit must not exceed
// MaxContainerDepth.
func ToBytesWithLimit(v Marshaler, limit int) ([]byte, error) {
	if err := checkDepthLimit(limit); err != nil {
		return nil, err
	}
	var out byteSink
	if err := encodeInto(v, &out, limit); err != nil {
		return nil, err
	}
	return out.finalize(), nil
}

// SerializedSize reports len(ToBytes(v)) without allocating the output.
func SerializedSize(v Marshaler) (int, error) {
	var out countSink
	if err := encodeInto(v, &out, MaxContainerDepth); err != nil {
		return 0, err
	}
	return out.finalize(), nil
}

// SerializedSizeWithLimit is SerializedSize with limit as the depth budget.
func SerializedSizeWithLimit(v Marshaler, limit int) (int, error) {
	if err := checkDepthLimit(limit); err != nil {
		return 0, err
	}
	var out countSink
	if err := encodeInto(v, &out, limit); err != nil {
		return 0, err
	}
	return out.finalize(), nil
}

// IsHumanReadable reports whether the format is human readable. BCS is a
// binary format, so this is always false.
func IsHumanReadable() bool {
	return false
}

func encodeInto(v Marshaler, out sink, limit int) error {
	e := Encoder{out: out, remainingDepth: limit}
	return v.MarshalBCS(&e)
}

func checkDepthLimit(limit int) error {
	if limit < 0 || limit > MaxContainerDepth {
		return NotSupportedError("limit exceeds the max allowed depth")
	}
	return nil
}
