package bcs

import (
	"errors"
	"fmt"
)

// The error taxonomy is shared with the matching decoder so both halves of
// the codec surface the same kinds. The decode-only sentinels are declared
// here and produced nowhere in this package.
var (
	// ErrEof indicates the input ended before a complete value was read.
	ErrEof = errors.New("bcs: unexpected end of input")

	// ErrRemainingInput indicates trailing bytes after a complete value.
	ErrRemainingInput = errors.New("bcs: remaining input")

	// ErrUtf8 indicates a string field that is not valid UTF-8.
	ErrUtf8 = errors.New("bcs: malformed utf8")

	// ErrNonCanonicalUleb128 indicates a ULEB128 encoding that was not
	// minimal in size.
	ErrNonCanonicalUleb128 = errors.New("bcs: ULEB128 encoding was not minimal in size")

	// ErrUleb128Overflow indicates a ULEB128-encoded integer that did not
	// fit in the target size.
	ErrUleb128Overflow = errors.New("bcs: ULEB128-encoded integer did not fit in the target size")

	// ErrNonCanonicalMap indicates map keys that are not unique and in
	// increasing encoded order.
	ErrNonCanonicalMap = errors.New("bcs: keys of serialized maps must be unique and in increasing order")

	// ErrMissingLen indicates a sequence visited without an up-front length.
	ErrMissingLen = errors.New("bcs: sequence missing length")

	// ErrExpectedMapKey indicates a map value delivered with no key pending.
	ErrExpectedMapKey = errors.New("bcs: expected map key")

	// ErrExpectedMapValue indicates a map key delivered while another key
	// was still waiting for its value, or a map finalized with a dangling key.
	ErrExpectedMapValue = errors.New("bcs: expected map value")
)

// MaxLenError reports a sequence length beyond MaxSequenceLength.
type MaxLenError struct {
	Len int
}

func (e *MaxLenError) Error() string {
	return fmt.Sprintf("bcs: exceeded max sequence length (%d)", e.Len)
}

// DepthLimitError reports entry into a named container when the depth
// budget is already exhausted. Name is the container being entered.
type DepthLimitError struct {
	Name string
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("bcs: exceeded max container depth while entering %s", e.Name)
}

// NotSupportedError reports a shape BCS does not define, such as floats,
// or an invalid depth limit.
type NotSupportedError string

func (e NotSupportedError) Error() string {
	return "bcs: not supported: " + string(e)
}

// IoError wraps a failure of an I/O-backed sink. The in-memory sinks in
// this package never produce it; it is reserved for external sinks.
type IoError string

func (e IoError) Error() string {
	return "bcs: " + string(e)
}
