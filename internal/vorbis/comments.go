// Package vorbis provides single-field Vorbis comment coding.
//
// Each field on the wire is a 32-bit little-endian length followed by
// that many bytes of "IDENTIFIER=VALUE". The identifier is everything
// before the first '='; the value is kept as raw bytes.
package vorbis

import (
	"bytes"
	"fmt"
	"math"

	"github.com/simonhull/vorbiscomment/internal/binary"
	"github.com/simonhull/vorbiscomment/internal/types"
)

const (
	contextParse = "parsing Vorbis comment field"
	contextMake  = "making Vorbis comment field"
)

// DecodeField splits a "KEY=VALUE" payload into identifier and value.
//
// The identifier is returned exactly as found; callers compare it
// case-insensitively. Returns a *types.FieldDecodeError if the payload has
// no '=' separator.
func DecodeField(payload []byte) (string, []byte, error) {
	eq := bytes.IndexByte(payload, '=')
	if eq == -1 {
		return "", nil, &types.FieldDecodeError{Reason: "missing '=' separator"}
	}
	return string(payload[:eq]), payload[eq+1:], nil
}

// ReadField reads one length-prefixed field from r.
//
// Problems are recorded in notes. A *types.TruncatedError is returned as
// is and must abort the caller's loop; any other error means only this
// field is unusable and the cursor is already positioned at the next one.
func ReadField(r *binary.Reader, index int, notes *types.Notifications) (string, []byte, error) {
	length, err := binary.ReadLE[uint32](r, "field length")
	if err != nil {
		notes.Add(types.SeverityCritical, fmt.Sprintf("Field %d is truncated.", index), contextParse)
		return "", nil, err
	}

	payload, err := r.ReadBytes(int64(length), "field data")
	if err != nil {
		notes.Add(types.SeverityCritical, fmt.Sprintf("Field %d is truncated.", index), contextParse)
		return "", nil, err
	}

	id, value, err := DecodeField(payload)
	if err != nil {
		if de, ok := err.(*types.FieldDecodeError); ok {
			de.Index = index
		}
		notes.Add(types.SeverityWarning,
			fmt.Sprintf("Field %d is malformed (%v) and has been dropped.", index, err), contextParse)
		return "", nil, err
	}
	return id, value, nil
}

// ValidIdentifier reports whether id may be written as a field name.
//
// Vorbis I restricts names to printable ASCII 0x20 through 0x7D
// excluding '='.
func ValidIdentifier(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c < 0x20 || c > 0x7D || c == '=' {
			return false
		}
	}
	return true
}

// EncodeField returns the complete wire form of a field, length prefix
// included.
func EncodeField(id string, value []byte) ([]byte, error) {
	if !ValidIdentifier(id) {
		return nil, &types.FieldEncodeError{ID: id, Reason: "identifier contains invalid characters"}
	}

	size := uint64(len(id)) + 1 + uint64(len(value))
	if size > math.MaxUint32 {
		return nil, &types.FieldEncodeError{ID: id, Reason: fmt.Sprintf("field size %d exceeds 32 bits", size)}
	}

	buf := make([]byte, 0, 4+size)
	buf = binary.Encode(buf, uint32(size), binary.LittleEndian)
	buf = append(buf, id...)
	buf = append(buf, '=')
	buf = append(buf, value...)
	return buf, nil
}

// PrepareField encodes a field for writing, recording a notification in
// notes if it cannot be encoded.
func PrepareField(id string, value []byte, notes *types.Notifications) ([]byte, error) {
	encoded, err := EncodeField(id, value)
	if err != nil {
		notes.Add(types.SeverityCritical,
			fmt.Sprintf("Can not make %v; the field has been skipped.", err), contextMake)
		return nil, err
	}
	return encoded, nil
}
