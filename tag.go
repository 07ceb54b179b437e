package vorbiscomment

import (
	"context"
	"iter"
	"log/slog"
	"slices"

	"github.com/simonhull/vorbiscomment/internal/locale"
	"github.com/simonhull/vorbiscomment/internal/registry"
	"github.com/simonhull/vorbiscomment/internal/types"
)

// Tag is an in-memory Vorbis comment block.
//
// A Tag holds the vendor string, an ordered multi-valued field table, the
// number of bytes the block occupied when it was parsed and a log of the
// notifications produced by the last Parse or Make.
//
// The zero value is an empty Tag with default options. A Tag is not safe
// for concurrent use; Parse and Make on the same Tag must be serialized by
// the caller.
type Tag struct {
	opts   *options
	vendor []byte
	fields FieldTable
	notes  types.Notifications
	size   int64
}

// New creates an empty Tag.
func New(opts ...Option) *Tag {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	t := &Tag{
		opts: options,
	}
	if options.logger != nil {
		logger := options.logger
		t.notes.Observe(func(n Notification) {
			logger.Log(context.Background(), slogLevel(n.Severity), n.Message,
				slog.String("context", n.Context),
				slog.String("severity", n.Severity.String()))
		})
	}
	return t
}

func slogLevel(s Severity) slog.Level {
	switch s {
	case SeverityCritical:
		return slog.LevelError
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityInformation:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Vendor returns a copy of the raw vendor value.
func (t *Tag) Vendor() []byte {
	return slices.Clone(t.vendor)
}

// SetVendor replaces the vendor value.
func (t *Tag) SetVendor(vendor []byte) {
	t.vendor = slices.Clone(vendor)
}

// Fields returns the field table. Changes to it are reflected in the Tag.
func (t *Tag) Fields() *FieldTable {
	return &t.fields
}

func (t *Tag) config() *options {
	if t.opts == nil {
		t.opts = defaultOptions()
	}
	return t.opts
}

// All returns an iterator over every raw field in table order.
func (t *Tag) All() iter.Seq[Field] {
	return t.fields.All()
}

// FieldCount returns the number of fields with a non-empty value.
func (t *Tag) FieldCount() int {
	return t.fields.NonEmptyLen()
}

// Size returns the number of bytes consumed by the last Parse, including
// when it stopped on truncated data.
func (t *Tag) Size() int64 {
	return t.size
}

// Notifications returns the log of the last Parse or Make.
func (t *Tag) Notifications() []Notification {
	return t.notes.Slice()
}

// Worst returns the highest severity recorded by the last Parse or Make.
func (t *Tag) Worst() Severity {
	return t.notes.Worst()
}

// Value returns a copy of the value of a known field.
//
// Vendor reads the dedicated vendor slot. Any other field returns the value
// of the first matching entry. ok is false if the field is absent or the
// format defines no identifier for it.
func (t *Tag) Value(field KnownField) (value []byte, ok bool) {
	if field == Vendor {
		return slices.Clone(t.vendor), len(t.vendor) > 0
	}

	id := registry.IDFor(field)
	if id == "" {
		return nil, false
	}
	return t.fields.First(id)
}

// SetValue assigns the value of a known field.
//
// Vendor always succeeds and replaces the vendor slot. Any other field
// replaces the first matching entry or adds one. Returns false if the
// format defines no identifier for field.
func (t *Tag) SetValue(field KnownField, value []byte) bool {
	if field == Vendor {
		t.SetVendor(value)
		return true
	}

	id := registry.IDFor(field)
	if id == "" {
		return false
	}
	t.fields.Set(id, value)
	return true
}

// Language returns the display name of the LANGUAGE field.
//
// ISO 639 codes, bibliographic ones included, are expanded ("ger" becomes
// "German"); other values are returned unchanged. Returns an empty string if the field is absent.
func (t *Tag) Language() string {
	value, ok := t.fields.First(registry.IDLanguage)
	if !ok {
		return ""
	}
	return locale.LanguageNameWithFallback(string(value))
}
