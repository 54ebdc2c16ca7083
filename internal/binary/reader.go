// Package binary provides type-safe binary reading primitives with offset tracking
package binary

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"go4.org/readerutil"

	"github.com/simonhull/flactag/internal/types"
)

// smallRead is the largest length allocated up front by ReadBytes on a
// stream of unknown size. Larger reads grow with the data actually received.
const smallRead = 64 << 10

// Reader wraps io.Reader with offset tracking and helpful error messages.
//
// A short read is reported as *types.FormatError (the data ended before the
// declared structure did); any other failure of the underlying reader is
// reported as *types.IOError.
type Reader struct {
	r      io.Reader
	n      int64 // bytes consumed since construction
	base   int64
	remain int64 // -1 when the total length is unknown
}

// NewReader creates a Reader over a stream whose first byte sits at the
// given absolute offset.
func NewReader(r io.Reader, base int64) *Reader {
	rd := &Reader{base: base, remain: -1}
	rd.r = readerutil.CountingReader{Reader: r, N: &rd.n}
	return rd
}

// NewBytesReader creates a Reader over an in-memory payload whose first byte
// sits at the given absolute offset. Reads larger than the remaining payload
// fail before anything is allocated.
func NewBytesReader(b []byte, base int64) *Reader {
	rd := NewReader(bytes.NewReader(b), base)
	rd.remain = int64(len(b))
	return rd
}

// Offset returns the absolute offset of the next byte to be read.
func (r *Reader) Offset() int64 {
	return r.base + r.n
}

// Remaining returns the number of unread bytes, or -1 for streams of
// unknown length.
func (r *Reader) Remaining() int64 {
	if r.remain < 0 {
		return -1
	}
	return r.remain - r.n
}

func (r *Reader) fail(start int64, want int64, what string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &types.FormatError{
			Offset: start,
			Reason: fmt.Sprintf("unexpected end of data while reading %s: got %d bytes, expected %d",
				what, r.Offset()-start, want),
		}
	}
	return &types.IOError{Op: "read " + what, Offset: start, Err: err}
}

func (r *Reader) checkRemaining(n int64, what string) error {
	if rem := r.Remaining(); rem >= 0 && n > rem {
		return &types.FormatError{
			Offset: r.Offset(),
			Reason: fmt.Sprintf("%s of %d bytes exceeds the %d bytes left", what, n, rem),
		}
	}
	return nil
}

// ReadFull fills b, with context for error messages.
func (r *Reader) ReadFull(b []byte, what string) error {
	if err := r.checkRemaining(int64(len(b)), what); err != nil {
		return err
	}
	start := r.Offset()
	if _, err := io.ReadFull(r.r, b); err != nil {
		return r.fail(start, int64(len(b)), what, err)
	}
	return nil
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int64, what string) ([]byte, error) {
	if n < 0 {
		return nil, &types.FormatError{Offset: r.Offset(), Reason: fmt.Sprintf("negative length for %s", what)}
	}
	if err := r.checkRemaining(n, what); err != nil {
		return nil, err
	}
	if n <= smallRead {
		buf := make([]byte, n)
		if err := r.ReadFull(buf, what); err != nil {
			return nil, err
		}
		return buf, nil
	}

	start := r.Offset()
	var buf bytes.Buffer
	buf.Grow(smallRead)
	if _, err := buf.ReadFrom(io.LimitReader(r.r, n)); err != nil {
		return nil, r.fail(start, n, what, err)
	}
	if int64(buf.Len()) < n {
		return nil, r.fail(start, n, what, io.ErrUnexpectedEOF)
	}
	return buf.Bytes(), nil
}

// ReadString reads a string of the given length.
func (r *Reader) ReadString(n int64, what string) (string, error) {
	b, err := r.ReadBytes(n, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Skip discards n bytes.
func (r *Reader) Skip(n int64, what string) error {
	if err := r.checkRemaining(n, what); err != nil {
		return err
	}
	start := r.Offset()
	copied, err := io.CopyN(io.Discard, r.r, n)
	if err != nil {
		return r.fail(start, n, what, err)
	}
	if copied < n {
		return r.fail(start, n, what, io.ErrUnexpectedEOF)
	}
	return nil
}

// Read reads a value of type T in big-endian byte order.
// T must be uint8, uint16, uint32, or uint64.
func Read[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	return ReadEndian[T](r, what, BigEndian)
}

// ReadUint24 reads a 24-bit big-endian unsigned value, as used by FLAC
// metadata block lengths.
func ReadUint24(r *Reader, what string) (uint32, error) {
	var buf [3]byte
	if err := r.ReadFull(buf[:], what); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), nil
}

func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
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

func decode[T uint8 | uint16 | uint32 | uint64](buf []byte, order binary.ByteOrder) T {
	var zero T
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

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a big-endian value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := Read[T](cr.Reader, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// Bytes reads n bytes, accumulating any error.
func (cr *ChainReader) Bytes(n int64, what string) []byte {
	if cr.err != nil {
		return nil
	}

	val, err := cr.Reader.ReadBytes(n, what)
	if err != nil {
		cr.err = err
		return nil
	}

	return val
}

// Fail records err unless an earlier error is already pending.
func (cr *ChainReader) Fail(err error) {
	if cr.err == nil {
		cr.err = err
	}
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
