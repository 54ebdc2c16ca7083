package flactag

import (
	"github.com/simonhull/flactag/internal/types"
)

// FormatError reports metadata that does not follow the FLAC block
// layout. Offset is the stream offset of the offending data, or -1 when
// the error arose while encoding.
type FormatError = types.FormatError

// IOError reports a failure of the underlying reader or writer. It
// unwraps to the original error.
type IOError = types.IOError

var (
	// ErrFormat matches every *FormatError via errors.Is.
	ErrFormat = types.ErrFormat

	// ErrIO matches every *IOError via errors.Is.
	ErrIO = types.ErrIO

	// ErrNotFLAC is returned when a stream does not start with "fLaC".
	// It is a *FormatError and so also matches ErrFormat.
	ErrNotFLAC = types.ErrNotFLAC
)
