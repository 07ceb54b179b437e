package vorbiscomment

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/simonhull/vorbiscomment/internal/binary"
	"github.com/simonhull/vorbiscomment/internal/types"
	"github.com/simonhull/vorbiscomment/internal/vorbis"
)

const (
	contextMake = "making Vorbis comment"
	framingByte = 0x01
)

// Make writes the Tag as a Vorbis comment block to w.
//
// Fields with an empty value are skipped, as are fields whose identifier
// cannot be encoded; each skipped-for-error field leaves a notification.
// A vendor that is not valid UTF-8 is written as an empty string with a
// warning. Only write errors from w are returned.
func (t *Tag) Make(w io.Writer) error {
	t.notes.Clear()

	vendor, err := t.vendorString()
	if err != nil {
		t.notes.Add(SeverityWarning, "Can not convert the assigned vendor to string.", contextMake)
		vendor = ""
	}

	// Encode up front so the written count matches the written fields.
	var fieldNotes types.Notifications
	encoded := make([][]byte, 0, t.fields.Len())
	for f := range t.fields.All() {
		if f.IsEmpty() {
			continue
		}
		buf, err := vorbis.PrepareField(f.ID, f.Value, &fieldNotes)
		t.notes.AddAll(contextMake, &fieldNotes)
		fieldNotes.Clear()
		if err != nil {
			continue
		}
		encoded = append(encoded, buf)
	}

	sw := binary.NewSafeWriter(w)
	_ = sw.WriteBytes(signature[:])
	_ = binary.WriteLE(sw, uint32(len(vendor)))
	_ = sw.WriteString(vendor)
	_ = binary.WriteLE(sw, uint32(len(encoded)))
	for _, buf := range encoded {
		_ = sw.WriteBytes(buf)
	}
	_ = binary.Write[uint8](sw, framingByte)

	if err := sw.Err(); err != nil {
		t.notes.Add(SeverityCritical, fmt.Sprintf("Can not write Vorbis comment: %v", err), contextMake)
		return fmt.Errorf("make Vorbis comment: %w", err)
	}
	return nil
}

// Bytes returns the Tag encoded as a Vorbis comment block.
func (t *Tag) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Make(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// vendorString returns the vendor in the textual form written to the block.
func (t *Tag) vendorString() (string, error) {
	if !utf8.Valid(t.vendor) {
		return "", &types.ValueConversionError{What: "vendor", Reason: "not valid UTF-8"}
	}
	if uint64(len(t.vendor)) > math.MaxUint32 {
		return "", &types.ValueConversionError{What: "vendor", Reason: "longer than 2^32-1 bytes"}
	}
	return string(t.vendor), nil
}
