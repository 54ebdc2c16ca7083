package flac

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/simonhull/flactag/internal/binary"
	"github.com/simonhull/flactag/internal/block"
)

// Magic is the stream marker that precedes the metadata blocks.
const Magic = "fLaC"

// priority orders blocks on write: STREAMINFO first, padding last.
func priority(b block.Block) int {
	switch b.Type() {
	case block.TypeStreamInfo:
		return 0
	case block.TypePadding:
		return 2
	default:
		return 1
	}
}

// normalize consolidates padding and puts the blocks in write order.
// Blocks of equal priority keep their relative order.
func (t *Tag) normalize() {
	t.AggregatePadding()
	slices.SortStableFunc(t.blocks, func(a, b block.Block) int {
		return priority(a) - priority(b)
	})

	logger := t.log()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		names := make([]string, len(t.blocks))
		for i, b := range t.blocks {
			names[i] = b.Type().String()
		}
		logger.Debug("sorted metadata blocks", "order", strings.Join(names, ", "))
	}
}

// WriteTo normalizes the tag and writes the marker followed by every
// block, flagging the final one as last.
//
// The stream is encoded in memory first: if any block fails to encode,
// nothing is written to w.
func (t *Tag) WriteTo(w io.Writer) (int64, error) {
	data, err := t.Bytes()
	if err != nil {
		return 0, err
	}
	sw := binary.NewSafeWriter(w)
	err = sw.WriteBytes(data, "metadata")
	return sw.Offset(), err
}

// Bytes normalizes the tag and returns its encoded form, marker included.
func (t *Tag) Bytes() ([]byte, error) {
	t.normalize()

	var buf bytes.Buffer
	buf.WriteString(Magic)
	for i, b := range t.blocks {
		if err := block.Encode(&buf, i == len(t.blocks)-1, b); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// ensurePadding grows the single padding block left by normalize to at
// least n bytes.
func (t *Tag) ensurePadding(n uint32) {
	for _, b := range t.blocks {
		if p, ok := b.(*block.Padding); ok && p.Size < n {
			p.Size = n
		}
	}
}
