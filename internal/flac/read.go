package flac

import (
	"io"

	"github.com/simonhull/flactag/internal/block"
	"github.com/simonhull/flactag/internal/types"
)

// Read decodes the stream marker and every metadata block up to and
// including the one flagged last. r is left positioned at the first audio
// frame.
//
// A stream without the marker yields types.ErrNotFLAC. Truncated or
// malformed blocks yield a *types.FormatError and read failures a
// *types.IOError.
func Read(r io.Reader, opts ...Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, types.ErrNotFLAC
		}
		return nil, &types.IOError{Op: "read stream marker", Offset: 0, Err: err}
	}
	if string(magic[:]) != Magic {
		return nil, types.ErrNotFLAC
	}

	t := NewTag()
	t.SetLogger(options.logger)

	d := block.NewDecoder(r, int64(len(Magic)))
	for {
		last, b, err := d.Decode()
		if err != nil {
			return nil, err
		}
		t.AddBlock(b)
		if last {
			break
		}
	}

	t.log().Debug("read metadata", "blocks", len(t.blocks), "audio_offset", d.Offset())
	return t, nil
}
