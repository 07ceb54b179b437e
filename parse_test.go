package vorbiscomment

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleField(t *testing.T) {
	data := newBlock("abcde").count(1).field("TITLE=Hello").framing(0x01)

	tag, err := ParseBytes(data)
	require.NoError(t, err)

	assert.Equal(t, []byte("abcde"), tag.Vendor())
	assert.Equal(t, int64(36), tag.Size())
	assert.Equal(t, 1, tag.FieldCount())

	fields := tag.Fields().Get("TITLE")
	require.Len(t, fields, 1)
	assert.Equal(t, "TITLE", fields[0].ID)
	assert.Equal(t, []byte("Hello"), fields[0].Value)

	title, ok := tag.Value(Title)
	require.True(t, ok)
	assert.Equal(t, []byte("Hello"), title)
	assert.Empty(t, tag.Notifications())
}

func TestParse_InvalidSignature(t *testing.T) {
	tests := []struct {
		name string
		sig  []byte
	}{
		{"identification header", []byte{0x01, 'v', 'o', 'r', 'b', 'i', 's'}},
		{"setup header", []byte{0x05, 'v', 'o', 'r', 'b', 'i', 's'}},
		{"opus tags", []byte("OpusTag")},
		{"upper case", []byte{0x03, 'V', 'O', 'R', 'B', 'I', 'S'}},
		{"last byte", []byte{0x03, 'v', 'o', 'r', 'b', 'i', 'z'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := newBlock("vendor").count(1).field("TITLE=x").framing(0x01)
			copy(data, tt.sig)

			tag, err := ParseBytes(data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
			assert.NotErrorIs(t, err, ErrTruncated)

			var fe *InvalidFormatError
			require.ErrorAs(t, err, &fe)

			assert.Equal(t, 0, tag.Fields().Len())
			assert.Empty(t, tag.Vendor())
			assert.Equal(t, int64(0), tag.Size())

			notes := tag.Notifications()
			require.Len(t, notes, 1)
			assert.Equal(t, SeverityCritical, notes[0].Severity)
			assert.Equal(t, "Signature is invalid.", notes[0].Message)
		})
	}
}

func TestParse_TruncatedAtEveryOffset(t *testing.T) {
	full := newBlock("libvorbis").count(3).
		field("TITLE=Hello").
		field("ARTIST=Someone").
		field("GENRE=").
		framing(0x01)

	for cut := 1; cut < len(full); cut++ {
		tag, err := ParseBytes(full[:cut])
		require.Errorf(t, err, "cut at %d", cut)
		assert.ErrorIsf(t, err, ErrTruncated, "cut at %d", cut)
		assert.Equalf(t, int64(cut), tag.Size(), "consumed bytes for cut at %d", cut)
		assert.Equalf(t, SeverityCritical, tag.Worst(), "cut at %d", cut)
	}

	tag, err := ParseBytes(full)
	require.NoError(t, err)
	assert.Equal(t, int64(len(full)), tag.Size())
}

func TestParse_DeclaredCountExceedsData(t *testing.T) {
	data := newBlock("abcde").count(2).field("TITLE=Hello").bytes()

	tag, err := ParseBytes(data)
	require.ErrorIs(t, err, ErrTruncated)

	var te *TruncatedError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "field length", te.What)

	assert.Equal(t, int64(len(data)), tag.Size())
	assert.Equal(t, int64(35), tag.Size())

	// The field decoded before the truncation is kept.
	title, ok := tag.Value(Title)
	require.True(t, ok)
	assert.Equal(t, []byte("Hello"), title)

	var truncated int
	for _, n := range tag.Notifications() {
		if strings.Contains(n.Message, "truncated") {
			truncated++
		}
	}
	assert.Equal(t, 2, truncated, "field and block truncation should both be reported")
}

func TestParse_MalformedFieldSkipped(t *testing.T) {
	data := newBlock("v").count(3).
		field("TITLE=First").
		field("NOSEPARATOR").
		field("ARTIST=Third").
		framing(0x01)

	tag, err := ParseBytes(data)
	require.NoError(t, err)

	assert.Equal(t, 2, tag.Fields().Len())
	assert.Equal(t, int64(len(data)), tag.Size())

	notes := tag.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, SeverityWarning, notes[0].Severity)
	assert.Contains(t, notes[0].Message, "Field 1")

	artist, ok := tag.Value(Artist)
	require.True(t, ok)
	assert.Equal(t, []byte("Third"), artist)
}

func TestParse_FramingByteNotValidated(t *testing.T) {
	for _, framing := range []byte{0x00, 0x01, 0xFF} {
		data := newBlock("v").count(0).framing(framing)

		tag, err := ParseBytes(data)
		require.NoError(t, err)
		assert.Equal(t, int64(7+4+1+4+1), tag.Size())
	}
}

func TestParse_DuplicateIdentifiers(t *testing.T) {
	data := newBlock("v").count(3).
		field("PERFORMER=One").
		field("performer=Two").
		field("Performer=Three").
		framing(0x01)

	tag, err := ParseBytes(data)
	require.NoError(t, err)

	fields := tag.Fields().Get("PERFORMER")
	require.Len(t, fields, 3)
	assert.Equal(t, "PERFORMER", fields[0].ID)
	assert.Equal(t, "performer", fields[1].ID)
	assert.Equal(t, "Performer", fields[2].ID)

	first, ok := tag.Value(Performers)
	require.True(t, ok)
	assert.Equal(t, []byte("One"), first)
}

func TestParse_InterleavedIdentifiersKeepOrder(t *testing.T) {
	data := newBlock("v").count(4).
		field("TITLE=a").
		field("ARTIST=b").
		field("TITLE=c").
		field("artist=d").
		framing(0x01)

	tag, err := ParseBytes(data)
	require.NoError(t, err)

	var got []string
	for f := range tag.All() {
		got = append(got, f.String())
	}
	assert.Equal(t, []string{"TITLE=a", "ARTIST=b", "TITLE=c", "artist=d"}, got)

	again, err := tag.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestParse_ResetsVendorOnReuse(t *testing.T) {
	tag := New()

	good := newBlock("libvorbis").count(1).field("TITLE=ok").framing(0x01)
	require.NoError(t, tag.Parse(bytes.NewReader(good), int64(len(good)), 0))
	require.Equal(t, []byte("libvorbis"), tag.Vendor())

	bad := newBlock("other").count(0).framing(0x01)
	bad[0] = 0x01
	err := tag.Parse(bytes.NewReader(bad), int64(len(bad)), 0)
	require.ErrorIs(t, err, ErrInvalidFormat)

	assert.Empty(t, tag.Vendor())
	_, ok := tag.Value(Vendor)
	assert.False(t, ok)
	assert.Equal(t, int64(0), tag.Size())

	short := good[:9]
	err = tag.Parse(bytes.NewReader(short), int64(len(short)), 0)
	require.ErrorIs(t, err, ErrTruncated)
	assert.Empty(t, tag.Vendor())
	assert.Equal(t, int64(9), tag.Size())
}

func TestParse_AtOffset(t *testing.T) {
	block := newBlock("v").count(1).field("ALBUM=Blue").framing(0x01)
	stream := append([]byte("OggS-prefix"), block...)
	stream = append(stream, "trailing page data"...)

	tag := New()
	err := tag.Parse(bytes.NewReader(stream), int64(len(stream)), 11)
	require.NoError(t, err)

	assert.Equal(t, int64(len(block)), tag.Size())
	album, _ := tag.Value(Album)
	assert.Equal(t, []byte("Blue"), album)
}

func TestParse_ClearsPreviousNotifications(t *testing.T) {
	tag := New()

	bad := newBlock("v").count(1).field("BROKEN").framing(0x01)
	require.NoError(t, tag.Parse(bytes.NewReader(bad), int64(len(bad)), 0))
	require.Len(t, tag.Notifications(), 1)

	good := newBlock("v").count(1).field("TITLE=ok").framing(0x01)
	require.NoError(t, tag.Parse(bytes.NewReader(good), int64(len(good)), 0))
	assert.Empty(t, tag.Notifications())
}

func TestParse_StrictParsing(t *testing.T) {
	data := newBlock("v").count(2).field("BROKEN").field("TITLE=ok").framing(0x01)

	tag, err := ParseBytes(data, WithStrictParsing())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict parsing failed")
	assert.False(t, errors.Is(err, ErrTruncated))

	// The tag is still populated.
	title, ok := tag.Value(Title)
	require.True(t, ok)
	assert.Equal(t, []byte("ok"), title)
}

func TestParse_PathInErrors(t *testing.T) {
	data := newBlock("vendor").bytes()[:9]

	_, err := ParseBytes(data, WithPath("song.ogg"))
	require.ErrorIs(t, err, ErrTruncated)
	assert.Contains(t, err.Error(), "song.ogg")
}

func TestParse_HugeVendorLength(t *testing.T) {
	var data []byte
	data = append(data, signature[:]...)
	data = append(data, 0xFF, 0xFF, 0xFF, 0xFF)
	data = append(data, "short"...)

	tag, err := ParseBytes(data)
	require.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, int64(len(data)), tag.Size())
}
