package vorbiscomment

import (
	"log/slog"
)

// Option configures a Tag.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := vorbiscomment.ParseBytes(data,
//	    vorbiscomment.WithLogger(slog.Default()),
//	    vorbiscomment.WithStrictParsing(),
//	)
type Option func(*options)

// options holds configuration for a Tag.
type options struct {
	logger        *slog.Logger // Mirrors notifications; nil = silent
	path          string       // Name used in error messages
	strictParsing bool         // Fail on any warning
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:        nil,
		path:          "vorbis comment",
		strictParsing: false,
	}
}

// WithLogger mirrors every notification to logger.
//
// Notifications are always collected on the Tag; the logger only adds a
// second sink. Critical maps to slog.LevelError, Warning to LevelWarn,
// Information to LevelInfo and Debug to LevelDebug.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, Parse drops malformed fields, records a notification and
// continues. With strict parsing enabled, Parse returns an error if any
// warning or critical notification was recorded, even though the Tag is
// still populated.
func WithStrictParsing() Option {
	return func(o *options) {
		o.strictParsing = true
	}
}

// WithPath sets the name reported in error messages, typically the file
// the block was read from.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}
