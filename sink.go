package bcs

// A sink is the byte-consuming target of an Encoder. The encoder only ever
// appends; what a completed encoding resolves to (the bytes themselves, or
// just their count) is the concrete sink's business.
type sink interface {
	extend(data []byte)
}

// byteSink accumulates the encoding in memory.
type byteSink struct {
	buf []byte
}

func (s *byteSink) extend(data []byte) {
	s.buf = append(s.buf, data...)
}

// finalize returns the accumulated bytes. An empty encoding is a non-nil
// empty slice.
func (s *byteSink) finalize() []byte {
	if s.buf == nil {
		return []byte{}
	}
	return s.buf
}

// countSink measures the encoded size without retaining any bytes. Running
// the same value through a countSink and a byteSink yields n == len(buf).
type countSink struct {
	n int
}

func (s *countSink) extend(data []byte) {
	s.n += len(data)
}

func (s *countSink) finalize() int {
	return s.n
}
