package flac

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/simonhull/flactag/internal/block"
	"github.com/simonhull/flactag/internal/types"
)

func TestRead_Sample(t *testing.T) {
	r := bytes.NewReader(sampleFLAC())
	tag, err := Read(r)
	require.NoError(t, err)

	require.Equal(t, []string{"STREAMINFO", "VORBIS_COMMENT", "PADDING"}, typesOf(tag))
	require.Empty(t, tag.Path())

	artist, ok := tag.Artist()
	require.True(t, ok)
	require.Equal(t, "Band", artist)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, audioFrames, rest, "reader should be left at the first audio frame")
}

func TestRead_NotFLAC(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte("fL")},
		{"id3", []byte("ID3\x03\x00\x00\x00\x00\x00\x00")},
		{"lowercase", []byte("flac\x80\x00\x00\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(bytes.NewReader(tt.data))
			require.ErrorIs(t, err, types.ErrNotFLAC)
			require.ErrorIs(t, err, types.ErrFormat)
		})
	}
}

func TestRead_Truncated(t *testing.T) {
	sample := sampleFLAC()
	// Cut inside the VORBIS_COMMENT payload, which starts at 4+4+34+4.
	_, err := Read(bytes.NewReader(sample[:50]))

	var formatErr *types.FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, int64(46), formatErr.Offset)
}

func TestRead_NoLastBlock(t *testing.T) {
	data := buildFLAC(nil, rawBlock(false, 0, streamInfoPayload()))
	_, err := Read(bytes.NewReader(data))
	require.ErrorIs(t, err, types.ErrFormat)
}

func TestRead_TransportError(t *testing.T) {
	boom := errors.New("network unreachable")

	_, err := Read(iotest.ErrReader(boom))
	var ioErr *types.IOError
	require.ErrorAs(t, err, &ioErr)
	require.ErrorIs(t, err, boom)
	require.Equal(t, int64(0), ioErr.Offset)

	r := io.MultiReader(bytes.NewReader(sampleFLAC()[:20]), iotest.ErrReader(boom))
	_, err = Read(r)
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, int64(8), ioErr.Offset, "failure inside the STREAMINFO payload")
}

func TestRead_UnknownBlockKept(t *testing.T) {
	data := buildFLAC(audioFrames,
		rawBlock(false, 0, streamInfoPayload()),
		rawBlock(false, 9, []byte{7, 8, 9}),
		rawBlock(true, 1, nil),
	)
	tag := mustRead(t, data)

	u, ok := tag.BlockAt(1).(*block.Unknown)
	require.True(t, ok, "got %T", tag.BlockAt(1))
	require.Equal(t, block.Type(9), u.Type())

	out, err := tag.Bytes()
	require.NoError(t, err)
	require.Equal(t, data[:len(data)-len(audioFrames)], out)
}

func TestRead_WithLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tag, err := Read(bytes.NewReader(sampleFLAC()), WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, logs.String(), "read metadata")
	require.Contains(t, logs.String(), "blocks=3")

	logs.Reset()
	_, err = tag.Bytes()
	require.NoError(t, err)
	require.True(t, strings.Contains(logs.String(), "sorted metadata blocks"), "got %q", logs.String())
}
