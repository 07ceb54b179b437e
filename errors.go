package vorbiscomment

import (
	"github.com/simonhull/vorbiscomment/internal/types"
)

// ErrInvalidFormat is returned (wrapped) when a block has a bad signature.
var ErrInvalidFormat = types.ErrInvalidFormat

// ErrTruncated is returned (wrapped) when a block ends prematurely.
var ErrTruncated = types.ErrTruncated

// TruncatedError is an alias to types.TruncatedError.
// Re-exporting from internal/types to maintain public API.
type TruncatedError = types.TruncatedError

// InvalidFormatError is an alias to types.InvalidFormatError.
// Re-exporting from internal/types to maintain public API.
type InvalidFormatError = types.InvalidFormatError

// FieldDecodeError is an alias to types.FieldDecodeError.
type FieldDecodeError = types.FieldDecodeError

// FieldEncodeError is an alias to types.FieldEncodeError.
type FieldEncodeError = types.FieldEncodeError

// ValueConversionError is an alias to types.ValueConversionError.
type ValueConversionError = types.ValueConversionError
