package types

// KnownField is a format-independent field category.
//
// Callers that do not want to deal with Vorbis identifiers address fields
// through KnownField; the registry maps each category to its canonical
// identifier.
type KnownField int

const (
	// Invalid marks an identifier with no known category.
	Invalid KnownField = iota
	// Album is the album or collection title.
	Album
	// Artist is the performing artist.
	Artist
	// Comment is a free-form comment.
	Comment
	// Cover is embedded cover art.
	Cover
	// Year is the release date.
	Year
	// Title is the track title.
	Title
	// Genre is the genre.
	Genre
	// TrackPosition is the track number.
	TrackPosition
	// DiskPosition is the disc number.
	DiskPosition
	// PartNumber is the part of a multi-part work.
	PartNumber
	// Composer is the composer.
	Composer
	// Encoder is the person or organization that encoded the file.
	Encoder
	// EncoderSettings describes the encoder configuration.
	EncoderSettings
	// Description is a longer description of the content.
	Description
	// RecordLabel is the record label.
	RecordLabel
	// Performers lists performers; usually multi-valued.
	Performers
	// Lyricist is the lyricist.
	Lyricist
	// Vendor is the encoder vendor string stored ahead of the field list.
	Vendor
)

var knownFieldNames = [...]string{
	Invalid:         "Invalid",
	Album:           "Album",
	Artist:          "Artist",
	Comment:         "Comment",
	Cover:           "Cover",
	Year:            "Year",
	Title:           "Title",
	Genre:           "Genre",
	TrackPosition:   "Track position",
	DiskPosition:    "Disk position",
	PartNumber:      "Part number",
	Composer:        "Composer",
	Encoder:         "Encoder",
	EncoderSettings: "Encoder settings",
	Description:     "Description",
	RecordLabel:     "Record label",
	Performers:      "Performers",
	Lyricist:        "Lyricist",
	Vendor:          "Vendor",
}

// String returns the display name of the field category.
func (f KnownField) String() string {
	if f < 0 || int(f) >= len(knownFieldNames) {
		return knownFieldNames[Invalid]
	}
	return knownFieldNames[f]
}

// KnownFields returns every category except Invalid, in declaration order.
func KnownFields() []KnownField {
	fields := make([]KnownField, 0, len(knownFieldNames)-1)
	for f := Album; f <= Vendor; f++ {
		fields = append(fields, f)
	}
	return fields
}
