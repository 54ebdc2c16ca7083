package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrFormat matches every *FormatError via errors.Is.
var ErrFormat = errors.New("flac: format error")

// ErrIO matches every *IOError via errors.Is.
var ErrIO = errors.New("flac: i/o error")

// ErrNotFLAC is returned when a stream does not start with the "fLaC" marker.
var ErrNotFLAC = &FormatError{Offset: 0, Reason: "missing fLaC stream marker"}

// FormatError is returned when the metadata region does not follow the
// FLAC block layout: a bad stream marker, a truncated block, a payload too
// large for the 24-bit length field, or a malformed Vorbis comment or
// picture payload.
type FormatError struct {
	Reason string
	// Stream offset of the offending data, or -1 when it is not known
	// (for example while encoding).
	Offset int64
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("flac: invalid metadata: %s", e.Reason)
	}
	return fmt.Sprintf("flac: invalid metadata at offset %d: %s", e.Offset, e.Reason)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// IOError wraps a failure of the underlying reader or writer.
type IOError struct {
	Err    error
	Op     string // "read block payload", "write block header", ...
	Offset int64  // -1 for whole-file operations
}

func (e *IOError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("flac: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("flac: %s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
