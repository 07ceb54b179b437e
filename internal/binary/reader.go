// Package binary provides bounds-checked binary reading and writing
// primitives with offset tracking.
package binary

import (
	"io"

	"github.com/simonhull/vorbiscomment/internal/types"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the path or name associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt fills b from the given offset.
//
// If fewer than len(b) bytes exist past off, the available prefix is
// still copied into b and a *types.TruncatedError reporting how many
// bytes were available is returned.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	avail := max(sr.size-off, 0)
	want := int64(len(b))
	n := min(want, avail)

	if n > 0 {
		got, err := sr.r.ReadAt(b[:n], off)
		if err != nil && err != io.EOF {
			return err
		}
		n = int64(got)
	}

	if n < want {
		return &types.TruncatedError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Wanted: want,
			Got:    n,
		}
	}
	return nil
}

// Reader provides sequential access to a segment of a SafeReader.
//
// The cursor only moves forward. A read that runs past the end of the
// data consumes everything that was available, so Offset()-Start() is
// always the number of bytes actually consumed.
type Reader struct {
	*SafeReader
	start  int64
	offset int64
}

// NewReader creates a new Reader whose segment begins at offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		start:      offset,
		offset:     offset,
	}
}

// Start returns the offset the segment began at.
func (r *Reader) Start() int64 {
	return r.start
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Consumed returns the number of bytes consumed since Start.
func (r *Reader) Consumed() int64 {
	return r.offset - r.start
}

// Remaining returns the number of bytes left before the end of the data.
func (r *Reader) Remaining() int64 {
	return max(r.size-r.offset, 0)
}

// ReadFull reads exactly len(b) bytes and advances the offset.
func (r *Reader) ReadFull(b []byte, what string) error {
	err := r.SafeReader.ReadAt(b, r.offset, what)
	if err != nil {
		if te, ok := err.(*types.TruncatedError); ok {
			r.offset += te.Got
		}
		return err
	}
	r.offset += int64(len(b))
	return nil
}

// ReadBytes reads n bytes into a new slice and advances the offset.
//
// The length is checked against the remaining data before allocating, so a
// corrupt length prefix cannot trigger a huge allocation.
func (r *Reader) ReadBytes(n int64, what string) ([]byte, error) {
	if n > r.Remaining() {
		got := r.Remaining()
		off := r.offset
		r.offset += got
		return nil, &types.TruncatedError{
			Path:   r.path,
			What:   what,
			Offset: off,
			Wanted: n,
			Got:    got,
		}
	}

	buf := make([]byte, n)
	if err := r.ReadFull(buf, what); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadString reads a string of the given length and advances the offset.
func (r *Reader) ReadString(length int, what string) (string, error) {
	buf, err := r.ReadBytes(int64(length), what)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Skip advances the offset by n bytes without reading them.
//
// Skipping past the end of the data moves the cursor to the end and
// returns a *types.TruncatedError.
func (r *Reader) Skip(n int64, what string) error {
	if n > r.Remaining() {
		got := r.Remaining()
		off := r.offset
		r.offset += got
		return &types.TruncatedError{
			Path:   r.path,
			What:   what,
			Offset: off,
			Wanted: n,
			Got:    got,
		}
	}
	r.offset += n
	return nil
}
