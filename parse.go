package vorbiscomment

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/vorbiscomment/internal/binary"
	"github.com/simonhull/vorbiscomment/internal/types"
	"github.com/simonhull/vorbiscomment/internal/vorbis"
)

const contextParse = "parsing Vorbis comment"

// signature is the packet type 0x03 followed by "vorbis".
var signature = [7]byte{0x03, 'v', 'o', 'r', 'b', 'i', 's'}

// signatureValue is signature read as a big-endian uint64 with a zero
// low byte.
const signatureValue uint64 = 0x03766F7262697300

// Parse reads a Vorbis comment block starting at offset 0 of r.
//
// The returned Tag is never nil: on failure it holds whatever was decoded
// before the error, its Size reports the bytes consumed and its
// notifications explain what went wrong. The error wraps ErrInvalidFormat
// for a bad signature and ErrTruncated if r ended inside the block.
//
// Example:
//
//	tag, err := vorbiscomment.Parse(f, size)
//	if errors.Is(err, vorbiscomment.ErrTruncated) {
//		// skip tag.Size() bytes and resynchronize
//	}
func Parse(r io.ReaderAt, size int64, opts ...Option) (*Tag, error) {
	t := New(opts...)
	err := t.Parse(r, size, 0)
	return t, err
}

// ParseBytes reads a Vorbis comment block from data.
func ParseBytes(data []byte, opts ...Option) (*Tag, error) {
	return Parse(bytes.NewReader(data), int64(len(data)), opts...)
}

// Parse reads a Vorbis comment block that starts at offset within r, which
// holds size bytes in total.
//
// Decoded fields are added to the Tag's existing fields. The vendor, the
// size and the notifications of a previous Parse or Make are cleared first,
// so a failed Parse never reports a stale vendor.
func (t *Tag) Parse(r io.ReaderAt, size, offset int64) error {
	sr := binary.NewSafeReader(r, size, t.config().path)
	if err := t.parse(binary.NewReader(sr, offset)); err != nil {
		return fmt.Errorf("parse Vorbis comment: %w", err)
	}

	if t.config().strictParsing && t.notes.Worst() >= SeverityWarning {
		for n := range t.notes.All() {
			if n.Severity >= SeverityWarning {
				return fmt.Errorf("strict parsing failed: %s", n.Message)
			}
		}
	}
	return nil
}

// parse runs the block state machine on r. It stops at the first
// truncation or at a bad signature; a malformed field only drops that
// field.
func (t *Tag) parse(r *binary.Reader) (err error) {
	t.notes.Clear()
	t.vendor = nil
	t.size = 0

	defer func() {
		if errors.Is(err, ErrTruncated) {
			t.size = r.Consumed()
			t.notes.Add(SeverityCritical, "Vorbis comment is truncated.", contextParse)
		}
	}()

	var sig [8]byte
	if err := r.ReadFull(sig[:7], "signature"); err != nil {
		return err
	}
	if binary.Decode[uint64](sig[:], binary.BigEndian)&0xffffffffffffff00 != signatureValue {
		t.notes.Add(SeverityCritical, "Signature is invalid.", contextParse)
		return &types.InvalidFormatError{
			Path:   r.Path(),
			Offset: r.Start(),
			Reason: fmt.Sprintf("signature is invalid: % x", sig[:7]),
		}
	}

	vendorSize, err := binary.ReadLE[uint32](r, "vendor length")
	if err != nil {
		return err
	}
	vendor, err := r.ReadBytes(int64(vendorSize), "vendor")
	if err != nil {
		return err
	}
	t.vendor = vendor

	fieldCount, err := binary.ReadLE[uint32](r, "field count")
	if err != nil {
		return err
	}

	// Each field gets a fresh log so one bad field does not leak into the next.
	var fieldNotes types.Notifications
	for i := range fieldCount {
		id, value, err := vorbis.ReadField(r, int(i), &fieldNotes)
		t.notes.AddAll("", &fieldNotes)
		fieldNotes.Clear()
		if err != nil {
			if errors.Is(err, ErrTruncated) {
				return err
			}
			continue
		}
		t.fields.Add(Field{ID: id, Value: value})
	}

	// The framing bit is not validated.
	if err := r.Skip(1, "framing byte"); err != nil {
		return err
	}

	t.size = r.Consumed()
	return nil
}
