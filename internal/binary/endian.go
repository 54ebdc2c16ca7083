package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: FLAC block headers, PICTURE, STREAMINFO and CUESHEET fields.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: Vorbis comment lengths and counts.
	LittleEndian
)

func (e Endianness) order() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ReadLE reads a numeric value of type T using little-endian byte order.
//
// This is a convenience wrapper for ReadEndian with LittleEndian.
// Use for Vorbis comment lengths.
//
// Example:
//
//	length, err := binary.ReadLE[uint32](r, "vorbis comment length")
func ReadLE[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	return ReadEndian[T](r, what, LittleEndian)
}

// ReadBE reads a numeric value of type T using big-endian byte order.
//
// Equivalent to Read() but more explicit about byte order.
func ReadBE[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	return ReadEndian[T](r, what, BigEndian)
}

// ReadEndian reads a numeric value of type T with specified byte order.
//
// This is the low-level function used by Read, ReadLE, and ReadBE.
// Most code should use the convenience wrappers instead.
func ReadEndian[T uint8 | uint16 | uint32 | uint64](r *Reader, what string, endian Endianness) (T, error) {
	var buf [8]byte
	b := buf[:sizeOf[T]()]
	if err := r.ReadFull(b, what); err != nil {
		var zero T
		return zero, err
	}
	return decode[T](b, endian.order()), nil
}
