// Package flac implements the FLAC tag engine: an ordered sequence of
// metadata blocks with comment and picture views over it, canonical
// re-serialization, and crash-atomic rewrites of files on disk.
package flac

import (
	"log/slog"
	"math"
	"slices"

	"github.com/simonhull/flactag/internal/block"
)

// Tag is the metadata region of a FLAC stream: the blocks between the
// "fLaC" marker and the first audio frame.
//
// A Tag owns its blocks. It is not safe for concurrent use.
type Tag struct {
	path   string
	blocks []block.Block
	logger *slog.Logger
}

// NewTag returns a tag with no blocks and no originating path.
func NewTag() *Tag {
	return &Tag{logger: discardLogger()}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Path returns the file the tag was read from or last saved to, or "".
func (t *Tag) Path() string {
	return t.path
}

// SetLogger sets the destination for debug events emitted while writing
// and saving. A nil logger silences them.
func (t *Tag) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger()
	}
	t.logger = logger
}

func (t *Tag) log() *slog.Logger {
	if t.logger == nil {
		return discardLogger()
	}
	return t.logger
}

// AddBlock appends b to the tag.
func (t *Tag) AddBlock(b block.Block) {
	t.blocks = append(t.blocks, b)
}

// Blocks returns the tag's blocks in order. The slice is the tag's own;
// elements may be replaced in place.
func (t *Tag) Blocks() []block.Block {
	return t.blocks
}

// BlocksWithType returns the blocks of the given type, in order.
func (t *Tag) BlocksWithType(typ block.Type) []block.Block {
	var out []block.Block
	for _, b := range t.blocks {
		if b.Type() == typ {
			out = append(out, b)
		}
	}
	return out
}

// RemoveBlocksWithType removes every block of the given type.
func (t *Tag) RemoveBlocksWithType(typ block.Type) {
	t.blocks = slices.DeleteFunc(t.blocks, func(b block.Block) bool { return b.Type() == typ })
}

// AggregatePadding replaces every padding block with a single padding
// block, appended at the end, holding their total size. Exactly one
// padding block remains afterwards, even if the total is zero.
func (t *Tag) AggregatePadding() {
	var total uint64
	for _, b := range t.blocks {
		if p, ok := b.(*block.Padding); ok {
			total += uint64(p.Size)
		}
	}
	t.RemoveBlocksWithType(block.TypePadding)
	// A total beyond the 24-bit limit is kept (saturated) so that writing
	// fails rather than silently shrinking the padding.
	t.AddBlock(&block.Padding{Size: uint32(min(total, math.MaxUint32))})
}

// VorbisCommentIndices returns the positions of the comment blocks in
// Blocks().
func (t *Tag) VorbisCommentIndices() []int {
	var idx []int
	for i, b := range t.blocks {
		if _, ok := b.(*block.VorbisComment); ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// BlockAt returns the block at position i, or nil if i is out of range.
func (t *Tag) BlockAt(i int) block.Block {
	if i < 0 || i >= len(t.blocks) {
		return nil
	}
	return t.blocks[i]
}
