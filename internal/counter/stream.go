package counter

import (
	"bytes"
	"errors"
)

// ErrStreamClosed is returned when writing to a closed Stream.
var ErrStreamClosed = errors.New("write to closed stream")

// Stream accumulates written chunks and counts them once on Close. Chunks may
// split multi-byte characters; counting only happens on the whole buffer.
type Stream struct {
	counter  *Counter
	encoding string
	buf      bytes.Buffer
	counts   Counts
	closed   bool
}

// NewStream returns a Stream that decodes its input with encoding (see
// Decode) and counts it with c.
func (c *Counter) NewStream(encoding string) *Stream {
	return &Stream{
		counter:  c,
		encoding: encoding,
	}
}

// NewStream returns a Stream backed by the default Counter.
func NewStream(encoding string) *Stream {
	return defaultCounter.NewStream(encoding)
}

// Write implements io.Writer.
func (s *Stream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrStreamClosed
	}
	return s.buf.Write(p)
}

// WriteString implements io.StringWriter.
func (s *Stream) WriteString(str string) (int, error) {
	if s.closed {
		return 0, ErrStreamClosed
	}
	return s.buf.WriteString(str)
}

// Close counts everything written so far. Closing twice is a no-op.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}

	counts, err := s.counter.CountBytes(s.buf.Bytes(), s.encoding)
	if err != nil {
		return err
	}

	s.counts = counts
	s.closed = true
	s.buf.Reset()
	return nil
}

// Counts returns the result of Close; it is zero until the stream is closed.
func (s *Stream) Counts() Counts {
	return s.counts
}

// Words returns the word count of a closed stream.
func (s *Stream) Words() int {
	return s.counts.Words
}

// Chars returns the character count of a closed stream.
func (s *Stream) Chars() int {
	return s.counts.Chars
}
