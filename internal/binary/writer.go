package binary

import (
	"io"

	"github.com/simonhull/flactag/internal/types"
)

// SafeWriter wraps io.Writer with position tracking.
//
// Write failures are reported as *types.IOError carrying the offset at
// which the failed write started.
type SafeWriter struct {
	w      io.Writer
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{
		w:      w,
		offset: 0,
	}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte, what string) error {
	start := sw.offset
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &types.IOError{Op: "write " + what, Offset: start, Err: err}
	}
	return nil
}

// WriteString writes a string as bytes to the underlying writer.
func (sw *SafeWriter) WriteString(s string, what string) error {
	return sw.WriteBytes([]byte(s), what)
}

// Write writes a value of type T in big-endian byte order.
// T must be uint8, uint16, uint32, or uint64.
func Write[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, val T, what string) error {
	return WriteEndian(sw, val, what, BigEndian)
}

// WriteLE writes a value of type T in little-endian byte order.
// T must be uint8, uint16, uint32, or uint64.
func WriteLE[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, val T, what string) error {
	return WriteEndian(sw, val, what, LittleEndian)
}

// WriteEndian writes a value of type T with the specified byte order.
func WriteEndian[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, val T, what string, endian Endianness) error {
	var buf [8]byte
	b := buf[:sizeOf[T]()]
	order := endian.order()

	var zero T
	switch any(zero).(type) {
	case uint8:
		b[0] = byte(val)
	case uint16:
		order.PutUint16(b, uint16(val))
	case uint32:
		order.PutUint32(b, uint32(val))
	default:
		order.PutUint64(b, uint64(val))
	}

	return sw.WriteBytes(b, what)
}

// WriteUint24 writes the low 24 bits of val in big-endian byte order.
// Callers must range-check val; the high byte is dropped.
func WriteUint24(sw *SafeWriter, val uint32, what string) error {
	return sw.WriteBytes([]byte{byte(val >> 16), byte(val >> 8), byte(val)}, what)
}
