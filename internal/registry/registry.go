// Package registry maps known field categories to Vorbis comment identifiers.
//
// The forward direction is a switch; the reverse direction is a map built
// on first use and never modified afterwards, so concurrent lookups are
// safe once Init (or any lookup) has run.
package registry

import (
	"sync"

	"github.com/simonhull/vorbiscomment/internal/types"
)

// Canonical Vorbis comment field identifiers.
const (
	IDAlbum           = "ALBUM"
	IDArtist          = "ARTIST"
	IDComment         = "COMMENT"
	IDCover           = "METADATA_BLOCK_PICTURE"
	IDDate            = "DATE"
	IDTitle           = "TITLE"
	IDGenre           = "GENRE"
	IDTrackNumber     = "TRACKNUMBER"
	IDDiskNumber      = "DISCNUMBER"
	IDPartNumber      = "PARTNUMBER"
	IDComposer        = "COMPOSER"
	IDEncodedBy       = "ENCODEDBY"
	IDEncoderSettings = "ENCODERSETTINGS"
	IDDescription     = "DESCRIPTION"
	IDLabel           = "LABEL"
	IDPerformer       = "PERFORMER"
	IDLyricist        = "LYRICIST"
	IDLanguage        = "LANGUAGE"
)

// IDFor returns the canonical identifier for field.
//
// Returns an empty string for types.Invalid and types.Vendor, which have no
// identifier of their own.
func IDFor(field types.KnownField) string {
	switch field {
	case types.Album:
		return IDAlbum
	case types.Artist:
		return IDArtist
	case types.Comment:
		return IDComment
	case types.Cover:
		return IDCover
	case types.Year:
		return IDDate
	case types.Title:
		return IDTitle
	case types.Genre:
		return IDGenre
	case types.TrackPosition:
		return IDTrackNumber
	case types.DiskPosition:
		return IDDiskNumber
	case types.PartNumber:
		return IDPartNumber
	case types.Composer:
		return IDComposer
	case types.Encoder:
		return IDEncodedBy
	case types.EncoderSettings:
		return IDEncoderSettings
	case types.Description:
		return IDDescription
	case types.RecordLabel:
		return IDLabel
	case types.Performers:
		return IDPerformer
	case types.Lyricist:
		return IDLyricist
	default:
		return ""
	}
}

// knownFields is the reverse lookup, keyed by exact canonical identifier.
var knownFields = sync.OnceValue(func() map[string]types.KnownField {
	m := make(map[string]types.KnownField)
	for _, field := range types.KnownFields() {
		if id := IDFor(field); id != "" {
			m[id] = field
		}
	}
	return m
})

// KnownFieldFor returns the category whose canonical identifier is exactly
// id, or types.Invalid.
//
// The comparison is case-sensitive; callers holding an identifier read from
// a file should normalize it first.
func KnownFieldFor(id string) types.KnownField {
	if field, ok := knownFields()[id]; ok {
		return field
	}
	return types.Invalid
}

// Init builds the reverse lookup table. Call it during startup before
// lookups happen from multiple goroutines.
func Init() {
	knownFields()
}
