package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: the Vorbis packet signature check.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: every length and count in a Vorbis comment block.
	LittleEndian
)

// Unsigned is the set of integer types the readers and writers support.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// ReadLE reads a numeric value of type T using little-endian byte order
// and advances the offset.
//
// Example:
//
//	length, err := binary.ReadLE[uint32](r, "vendor length")
func ReadLE[T Unsigned](r *Reader, what string) (T, error) {
	return ReadEndian[T](r, what, LittleEndian)
}

// ReadBE reads a numeric value of type T using big-endian byte order and
// advances the offset.
func ReadBE[T Unsigned](r *Reader, what string) (T, error) {
	return ReadEndian[T](r, what, BigEndian)
}

// ReadEndian reads a numeric value of type T with the specified byte order.
//
// This is the low-level function used by ReadLE and ReadBE.
// Most code should use the convenience wrappers instead.
func ReadEndian[T Unsigned](r *Reader, what string, endian Endianness) (T, error) {
	buf := make([]byte, sizeOf[T]())
	if err := r.ReadFull(buf, what); err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](buf, endian), nil
}

// Decode converts buf to a value of type T. buf must hold at least
// sizeOf[T] bytes.
func Decode[T Unsigned](buf []byte, endian Endianness) T {
	var zero T
	var order binary.ByteOrder = binary.BigEndian
	if endian == LittleEndian {
		order = binary.LittleEndian
	}

	switch any(zero).(type) {
	case uint8:
		return T(buf[0])
	case uint16:
		return T(order.Uint16(buf))
	case uint32:
		return T(order.Uint32(buf))
	default:
		return T(order.Uint64(buf))
	}
}

// Encode appends val to dst using the given byte order.
func Encode[T Unsigned](dst []byte, val T, endian Endianness) []byte {
	var order binary.AppendByteOrder = binary.BigEndian
	if endian == LittleEndian {
		order = binary.LittleEndian
	}

	switch sizeOf[T]() {
	case 1:
		return append(dst, byte(val))
	case 2:
		return order.AppendUint16(dst, uint16(val))
	case 4:
		return order.AppendUint32(dst, uint32(val))
	default:
		return order.AppendUint64(dst, uint64(val))
	}
}
