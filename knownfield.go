package vorbiscomment

import (
	"github.com/simonhull/vorbiscomment/internal/registry"
	"github.com/simonhull/vorbiscomment/internal/types"
)

// KnownField is an alias to types.KnownField.
// Re-exporting from internal/types to maintain public API.
type KnownField = types.KnownField

// Re-export all known field constants.
const (
	Invalid         = types.Invalid
	Album           = types.Album
	Artist          = types.Artist
	Comment         = types.Comment
	Cover           = types.Cover
	Year            = types.Year
	Title           = types.Title
	Genre           = types.Genre
	TrackPosition   = types.TrackPosition
	DiskPosition    = types.DiskPosition
	PartNumber      = types.PartNumber
	Composer        = types.Composer
	Encoder         = types.Encoder
	EncoderSettings = types.EncoderSettings
	Description     = types.Description
	RecordLabel     = types.RecordLabel
	Performers      = types.Performers
	Lyricist        = types.Lyricist
	Vendor          = types.Vendor
)

// FieldID returns the canonical Vorbis identifier for field, or an empty
// string if the format defines none (Invalid and Vendor).
func FieldID(field KnownField) string {
	return registry.IDFor(field)
}

// KnownFieldFor returns the category of a Vorbis identifier.
//
// The identifier is matched ignoring ASCII case, so "title" and "TITLE"
// both map to Title. Unknown identifiers map to Invalid.
func KnownFieldFor(id string) KnownField {
	return registry.KnownFieldFor(normalizeID(id))
}
