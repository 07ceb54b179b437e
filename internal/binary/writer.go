package binary

import (
	"io"
)

// SafeWriter wraps io.Writer with position tracking.
//
// The first write error is sticky: once a write fails, later writes are
// no-ops returning the same error.
type SafeWriter struct {
	w      io.Writer
	err    error
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{
		w:      w,
		offset: 0,
	}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// Err returns the first write error, if any.
func (sw *SafeWriter) Err() error {
	return sw.err
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	if sw.err != nil {
		return sw.err
	}
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	sw.err = err
	return err
}

// WriteString writes a string as bytes to the underlying writer.
func (sw *SafeWriter) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// Write writes a value of type T in big-endian byte order.
func Write[T Unsigned](sw *SafeWriter, val T) error {
	return sw.WriteBytes(Encode(nil, val, BigEndian))
}

// WriteLE writes a value of type T in little-endian byte order.
func WriteLE[T Unsigned](sw *SafeWriter, val T) error {
	return sw.WriteBytes(Encode(nil, val, LittleEndian))
}
