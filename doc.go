// Package vorbiscomment reads and writes Vorbis comment blocks.
//
// A Vorbis comment block is the metadata packet of an Ogg Vorbis stream:
// a vendor string followed by a list of "IDENTIFIER=VALUE" fields, all
// length-prefixed with 32-bit little-endian integers. vorbiscomment parses
// such a block into a Tag and writes a Tag back byte-for-byte in the same
// layout. Ogg page framing is left to the caller.
//
// # Quick Start
//
// Reading a block:
//
//	tag, err := vorbiscomment.ParseBytes(packet)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	title, _ := tag.Value(vorbiscomment.Title)
//	fmt.Printf("%s (vendor %s)\n", title, tag.Vendor())
//
// Writing a block:
//
//	tag := vorbiscomment.New()
//	tag.SetValue(vorbiscomment.Vendor, []byte("libvorbis 1.3.7"))
//	tag.SetValue(vorbiscomment.Title, []byte("Hello"))
//	tag.Fields().Add(vorbiscomment.Field{ID: "PERFORMER", Value: []byte("A")})
//	tag.Fields().Add(vorbiscomment.Field{ID: "PERFORMER", Value: []byte("B")})
//
//	packet, err := tag.Bytes()
//
// # Block Layout
//
//	offset  size        field
//	0       7           0x03 "vorbis"
//	7       4           vendor length (LE)
//	11      n           vendor
//	11+n    4           field count (LE)
//	...                 fields: 4-byte LE length + "IDENTIFIER=VALUE"
//	end     1           framing byte (written as 0x01, not checked on read)
//
// # Fields
//
// Identifiers compare ignoring ASCII case but are stored and written
// exactly as given, so "ARTIST" and "artist" are both found by
// Value(Artist) and both survive a round trip. A Tag may hold several
// fields with the same identifier; they keep their insertion order.
// Fields with an empty value stay in memory but are not written.
//
// Values are raw bytes. vorbiscomment never interprets them: track numbers,
// dates and embedded pictures are returned exactly as stored.
//
// # Error Handling
//
// vorbiscomment distinguishes between fatal errors and notifications:
//
//   - ErrInvalidFormat: the signature is wrong; nothing is decoded.
//   - ErrTruncated: the data ended inside the block. Tag.Size still
//     reports how many bytes were consumed so the caller can skip them.
//   - Notifications: a malformed field was dropped, a vendor could not be
//     converted, a field could not be encoded. The operation continues.
//
// Every Parse and Make clears and refills the Tag's notification log:
//
//	for _, n := range tag.Notifications() {
//		log.Printf("%s", n)
//	}
//
// Pass WithLogger to mirror notifications to a *slog.Logger as they are
// recorded.
//
// # Concurrency
//
// A Tag is not safe for concurrent use. The identifier and language
// lookup tables are built once and only read afterwards; call Init during
// startup to build them before goroutines start. ParseMany parses
// independent blocks in parallel.
package vorbiscomment
